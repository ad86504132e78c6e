package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/deadstock"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

// DeadStockHandler serves the dead-stock workbench (protected).
type DeadStockHandler struct {
	uc       *deadstock.UseCase
	userRepo repository.UserRepository
}

// NewDeadStockHandler builds the handler. The user repo resolves the business
// name printed on the PDF report.
func NewDeadStockHandler(uc *deadstock.UseCase, userRepo repository.UserRepository) *DeadStockHandler {
	return &DeadStockHandler{uc: uc, userRepo: userRepo}
}

// List godoc
// @Summary      List dead-stock items, oldest first
// @Tags         dead-stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeadStockListResponse
// @Router       /api/dead-stock [get]
func (h *DeadStockHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id required"})
	}
	out, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ApplyDiscount godoc
// @Summary      Apply a 20% discount to a dead-stock item
// @Tags         dead-stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  dto.DeadStockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dead-stock/{id}/discount [put]
func (h *DeadStockHandler) ApplyDiscount(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id required"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.ApplyDiscount(userID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item not found"})
	}
	return c.JSON(out)
}

// Bundle godoc
// @Summary      Price a dead-stock item for a bundle offer (15% off)
// @Tags         dead-stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  dto.DeadStockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dead-stock/{id}/bundle [put]
func (h *DeadStockHandler) Bundle(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id required"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.Bundle(userID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item not found"})
	}
	return c.JSON(out)
}

// Dispose godoc
// @Summary      Remove a dead-stock item from inventory
// @Tags         dead-stock
// @Security     Bearer
// @Param        id  path  string  true  "Item ID"
// @Success      204
// @Router       /api/dead-stock/{id} [delete]
func (h *DeadStockHandler) Dispose(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id required"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Dispose(userID, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Download the dead-stock report as PDF
// @Tags         dead-stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dead-stock/report [get]
func (h *DeadStockHandler) Report(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id required"})
	}
	businessName := GetEmail(c)
	if user, err := h.userRepo.GetByID(userID); err == nil && user != nil {
		businessName = user.BusinessName
	}
	pdfBytes, err := h.uc.Report(c.Context(), userID, businessName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("dead-stock-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
