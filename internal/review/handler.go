package review

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/buildware/market-backend/internal/pagination"
)

type Handler struct {
	service      *Service
	defaultLimit int
}

// NewHandler builds the comments handler. defaultLimit is the
// per-endpoint comment page size used when the client omits ?limit.
func NewHandler(service *Service, defaultLimit int) *Handler {
	return &Handler{service: service, defaultLimit: defaultLimit}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/review/:reviewId<[0-9]+>/comments", h.getComments)
}

func (h *Handler) getComments(c *fiber.Ctx) error {
	reviewID, err := strconv.Atoi(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid review id"})
	}

	page, limit, err := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.defaultLimit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	pageResult, err := h.service.CommentsFor(reviewID, page, limit)
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Review not found"})
	}
	if err != nil {
		slog.Error("fetching comments", "reviewId", reviewID, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while retrieving comments",
			"error":   err.Error(),
		})
	}

	message := "Review and its comments"
	if len(pageResult.Comments) == 0 {
		message = "No comments found for this review"
	}
	return c.JSON(fiber.Map{
		"message":      message,
		"comments":     pageResult.Comments,
		"total":        pageResult.Total,
		"currentPage":  pageResult.CurrentPage,
		"maxPageCount": pageResult.MaxPageCount,
	})
}
