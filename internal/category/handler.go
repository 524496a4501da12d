package category

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.getCategories)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	items, err := h.service.List()
	if err != nil {
		slog.Error("listing categories", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while retrieving categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message":    "Categories retrieved successfully",
		"categories": items,
	})
}
