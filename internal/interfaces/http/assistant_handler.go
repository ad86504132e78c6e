package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/assistant"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
)

// AssistantHandler serves the business assistant (protected).
type AssistantHandler struct {
	uc *assistant.UseCase
}

// NewAssistantHandler builds the handler.
func NewAssistantHandler(uc *assistant.UseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Prompts godoc
// @Summary      Suggested questions for the assistant
// @Tags         assistant
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PromptsResponse
// @Router       /api/assistant/prompts [get]
func (h *AssistantHandler) Prompts(c *fiber.Ctx) error {
	return c.JSON(h.uc.Prompts())
}

// Chat godoc
// @Summary      Ask the assistant a question
// @Description  Falls back to a locally-composed summary reply when the LLM is unavailable.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistant/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id required"})
	}
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Chat(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
