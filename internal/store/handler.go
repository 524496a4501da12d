package store

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/stores", h.getStores)
	app.Get("/api/v1/store/:storeId<[0-9]+>", h.getStore)
}

func (h *Handler) getStores(c *fiber.Ctx) error {
	items, err := h.service.List()
	if err != nil {
		slog.Error("listing stores", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while retrieving stores",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Stores retrieved successfully",
		"stores":  items,
	})
}

func (h *Handler) getStore(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("storeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid store id"})
	}

	s, err := h.service.GetByID(id)
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Store not found"})
	}
	if err != nil {
		slog.Error("fetching store", "storeId", id, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while retrieving the store",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Store retrieved successfully",
		"store":   s,
	})
}
