// Package assistant implements the business-assistant chat. The default reply is
// deterministic, composed from the user's live daily summary; when a language model
// is wired in, it answers instead, with the same summary as grounding context.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/insights"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/ports"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
)

// llmTimeout bounds each model call so external latency cannot pin server goroutines.
const llmTimeout = 10 * time.Second

// suggestedPrompts shown by the chat UI before the first message.
var suggestedPrompts = []string{
	"How can I increase my coffee sales?",
	"Analyze my inventory turnover",
	"Best practices for staff scheduling",
	"How to reduce dead stock?",
}

// UseCase chat orchestration. llm may be nil; the canned path then always runs.
type UseCase struct {
	llm       ports.AssistantService
	dashboard *insights.DashboardUseCase
}

// NewUseCase builds the use case.
func NewUseCase(llm ports.AssistantService, dashboard *insights.DashboardUseCase) *UseCase {
	return &UseCase{llm: llm, dashboard: dashboard}
}

// Prompts returns the suggested conversation starters.
func (uc *UseCase) Prompts() *dto.PromptsResponse {
	prompts := make([]string, len(suggestedPrompts))
	copy(prompts, suggestedPrompts)
	return &dto.PromptsResponse{Prompts: prompts}
}

// Chat answers one message. The daily summary is fetched fresh for every call and
// either grounds the model reply or becomes the reply itself. A model failure falls
// back to the deterministic reply rather than erroring the chat.
func (uc *UseCase) Chat(ctx context.Context, userID string, in dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, domain.ErrInvalidInput
	}

	lines, _ := uc.dashboard.DailySummary(ctx, userID)

	if uc.llm != nil {
		llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
		defer cancel()
		reply, err := uc.llm.Reply(llmCtx, message, lines)
		if err == nil {
			return &dto.ChatResponse{Reply: reply, Source: "assistant"}, nil
		}
		log.Warn().Err(err).Str("user_id", userID).Msg("assistant: model call failed, using summary reply")
	}

	return &dto.ChatResponse{Reply: summaryReply(message, lines), Source: "summary"}, nil
}

// summaryReply is the canned answer: it echoes the question and attaches the live
// summary so the chat stays useful without any model behind it.
func summaryReply(message string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I can tell you about %q from today's numbers:\n", message)
	for _, l := range lines {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("Ask me about inventory, payments or staff to dig deeper.")
	return b.String()
}
