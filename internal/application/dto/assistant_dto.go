package dto

// ChatRequest body for POST /api/assistant/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse assistant reply.
type ChatResponse struct {
	Reply string `json:"reply"`
	// Source is "assistant" when the reply came from the LLM and "summary" when it
	// was composed locally from the daily summary.
	Source string `json:"source"`
}

// PromptsResponse response for GET /api/assistant/prompts.
type PromptsResponse struct {
	Prompts []string `json:"prompts"`
}
