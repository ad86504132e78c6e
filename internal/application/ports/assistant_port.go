package ports

import "context"

// AssistantService is the outbound port for the assistant's language model.
// Any adapter (Anthropic, Gemini, Ollama, mock) implements this contract; the
// application layer never sees a concrete client. The context must carry a timeout
// so external latency cannot pin server goroutines.
type AssistantService interface {
	// Reply answers a business question. businessContext carries the user's current
	// daily summary lines so the answer is grounded in their real data.
	Reply(ctx context.Context, question string, businessContext []string) (string, error)
}
