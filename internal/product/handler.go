package product

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/buildware/market-backend/internal/pagination"
)

// Limits carries the per-endpoint default page sizes, wired from
// configuration rather than hardcoded.
type Limits struct {
	Products int
	Reviews  int
	Comments int
}

type Handler struct {
	service *Service
	limits  Limits
}

func NewHandler(service *Service, limits Limits) *Handler {
	return &Handler{service: service, limits: limits}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/search", h.searchProducts)
	app.Get("/api/v1/products/category/:categoryId<[0-9]+>", h.getProductsByCategory)
	app.Get("/api/v1/products/store/:storeId<[0-9]+>", h.getProductsByStore)
	app.Get("/api/v1/product/:productId<[0-9]+>", h.getProductDetail)
}

// RegisterProtectedRoutes mounts the store-admin read routes. They sit
// behind the JWT middleware; the store identity comes from the token.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/products", h.getOwnProducts)
	app.Get("/api/v1/admin/search", h.searchOwnProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	page, limit, err := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.limits.Products)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	f, err := parsePriceFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.List(f, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(listBody(result))
}

func (h *Handler) getProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category id"})
	}
	page, limit, err := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.limits.Products)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	f, err := parsePriceFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.ByCategory(categoryID, f, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(listBody(result))
}

func (h *Handler) getProductsByStore(c *fiber.Ctx) error {
	storeID, err := strconv.Atoi(c.Params("storeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid store id"})
	}
	page, limit, err := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.limits.Products)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	f, err := parsePriceFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.ByStore(storeID, f, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(listBody(result))
}

func (h *Handler) searchProducts(c *fiber.Ctx) error {
	page, limit, err := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.limits.Products)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.Search(c.Query("s"), page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(listBody(result))
}

func (h *Handler) getProductDetail(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product id"})
	}

	reviewPage, reviewLimit, err := pagination.FromQuery(
		c.Query("pageReviews"), c.Query("limitReviews"), h.limits.Reviews)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	commentPage, commentLimit, err := pagination.FromQuery(
		c.Query("pageComments"), c.Query("limitComments"), h.limits.Comments)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	detail, err := h.service.Detail(productID, reviewPage, reviewLimit, commentPage, commentLimit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product retrieved successfully",
		"product": detail,
	})
}

func (h *Handler) getOwnProducts(c *fiber.Ctx) error {
	storeID, err := storeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	page, limit, err := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.limits.Products)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	f, err := parsePriceFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.ByStore(storeID, f, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(listBody(result))
}

func (h *Handler) searchOwnProducts(c *fiber.Ctx) error {
	storeID, err := storeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	page, limit, err := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.limits.Products)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.SearchInStore(storeID, c.Query("s"), page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(listBody(result))
}

// fail maps service errors onto the response taxonomy. Storage errors
// are logged in full; the client sees a short description.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product does not exist"})
	case errors.Is(err, ErrPageNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Page not found"})
	case errors.Is(err, ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
	case errors.Is(err, ErrStoreNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Store not found"})
	case errors.Is(err, ErrSearchTerm):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Search term is required"})
	default:
		slog.Error("product read failed", "path", c.Path(), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while retrieving products",
			"error":   err.Error(),
		})
	}
}

func listBody(result ListResult) fiber.Map {
	message := "Products retrieved successfully"
	if len(result.Products) == 0 {
		message = "No products found"
	}
	return fiber.Map{
		"message":      message,
		"products":     result.Products,
		"total":        result.Total,
		"currentPage":  result.CurrentPage,
		"maxPageCount": result.MaxPageCount,
	}
}

func parsePriceFilter(c *fiber.Ctx) (Filter, error) {
	var f Filter
	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return Filter{}, errors.New("minPrice must be a non-negative number")
		}
		f.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return Filter{}, errors.New("maxPrice must be a non-negative number")
		}
		f.MaxPrice = &v
	}
	return f, nil
}

// storeIDFromCtx reads the store_id claim placed by the JWT
// middleware. The verifier itself lives outside this core; only the
// verified identity is consumed here.
func storeIDFromCtx(c *fiber.Ctx) (int, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0, errors.New("missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("malformed claims")
	}
	raw, ok := claims["store_id"].(float64)
	if !ok {
		return 0, errors.New("missing store_id claim")
	}
	return int(raw), nil
}
