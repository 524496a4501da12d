package popular

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service      *Service
	defaultCount int
}

func NewHandler(service *Service, defaultCount int) *Handler {
	return &Handler{service: service, defaultCount: defaultCount}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/popular", h.getPopular)
}

func (h *Handler) getPopular(c *fiber.Ctx) error {
	n := h.defaultCount
	if raw := c.Query("count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "count must be a positive integer"})
		}
		n = v
	}

	items, err := h.service.Top(n)
	if err != nil {
		slog.Error("ranking popular products", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while retrieving popular products",
			"error":   err.Error(),
		})
	}

	message := "Popular products retrieved successfully"
	if len(items) == 0 {
		message = "No popular products yet"
	}
	return c.JSON(fiber.Map{
		"message":  message,
		"products": items,
	})
}
