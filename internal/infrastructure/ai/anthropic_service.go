// Package ai implements the assistant port against the Anthropic Messages API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/soham-0510/vyapar-sathi-final/internal/application/ports"
)

// Compile-time check that AnthropicService implements AssistantService.
var _ ports.AssistantService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	assistantSystemPrompt = `You are a business advisor for small Indian shop owners.
Answer questions about inventory, suppliers, staff and payments in plain language.
Keep replies short and practical: at most 4 sentences, no markdown, no bullet lists.
Amounts are in Indian rupees. If the question is outside running a shop, politely
steer the owner back to their business.`
)

// AnthropicService calls Claude over the REST Messages API.
// Plain net/http; the official SDK is not required.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService builds the adapter. model is typically
// "claude-3-5-haiku-20241022". An empty apiKey makes calls fail with a
// descriptive error instead of panicking.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Network timeout of 25s; the use case additionally imposes a
			// shorter context timeout.
			Timeout: 25 * time.Second,
		},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Reply sends the owner's question plus the current business snapshot to Claude
// and returns the assistant's answer as plain text.
func (s *AnthropicService) Reply(ctx context.Context, question string, businessContext []string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("ai: ANTHROPIC_API_KEY not configured")
	}

	var sb strings.Builder
	if len(businessContext) > 0 {
		sb.WriteString("Today's business snapshot:\n")
		for _, line := range businessContext {
			sb.WriteString("- ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Question: ")
	sb.WriteString(question)

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 512,
		System:    assistantSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: sb.String()},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: build HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("ai: timeout or cancellation: %w", ctx.Err())
		}
		return "", fmt.Errorf("ai: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("ai: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("ai: anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("ai: anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(rawBody, &parsed); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	for _, block := range parsed.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("ai: empty response from model")
}
