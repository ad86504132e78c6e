package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soham-0510/vyapar-sathi-final/internal/application/assistant"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/insights"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/memory"
)

const assistantTestUser = "00000000-0000-0000-0000-000000000001"

func newDashboardUC() *insights.DashboardUseCase {
	repo := memory.NewInsightsRepository(
		memory.NewInventoryRepository(),
		memory.NewStaffRepository(),
		memory.NewSupplierRepository(),
		memory.NewPaymentRepository(),
	)
	return insights.NewDashboardUseCase(repo)
}

// stubLLM returns a fixed reply or a fixed error.
type stubLLM struct {
	reply string
	err   error
}

func (s stubLLM) Reply(context.Context, string, []string) (string, error) {
	return s.reply, s.err
}

func TestPrompts_ReturnsSuggestions(t *testing.T) {
	uc := assistant.NewUseCase(nil, newDashboardUC())
	out := uc.Prompts()
	require.NotNil(t, out)
	assert.Len(t, out.Prompts, 4)
	assert.Contains(t, out.Prompts, "How to reduce dead stock?")
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	uc := assistant.NewUseCase(nil, newDashboardUC())
	_, err := uc.Chat(context.Background(), assistantTestUser, dto.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChat_NoModelUsesSummaryReply(t *testing.T) {
	uc := assistant.NewUseCase(nil, newDashboardUC())

	out, err := uc.Chat(context.Background(), assistantTestUser, dto.ChatRequest{Message: "How is my shop doing?"})
	require.NoError(t, err)
	assert.Equal(t, "summary", out.Source)
	assert.Contains(t, out.Reply, "How is my shop doing?")
	assert.Contains(t, out.Reply, "All systems look good today. No alerts.")
}

func TestChat_ModelReplyWins(t *testing.T) {
	uc := assistant.NewUseCase(stubLLM{reply: "Stock more chai."}, newDashboardUC())

	out, err := uc.Chat(context.Background(), assistantTestUser, dto.ChatRequest{Message: "What should I stock?"})
	require.NoError(t, err)
	assert.Equal(t, "assistant", out.Source)
	assert.Equal(t, "Stock more chai.", out.Reply)
}

func TestChat_ModelFailureFallsBackToSummary(t *testing.T) {
	uc := assistant.NewUseCase(stubLLM{err: errors.New("model down")}, newDashboardUC())

	out, err := uc.Chat(context.Background(), assistantTestUser, dto.ChatRequest{Message: "Any advice?"})
	require.NoError(t, err, "a model failure must not error the chat")
	assert.Equal(t, "summary", out.Source)
	assert.Contains(t, out.Reply, "Any advice?")
}
