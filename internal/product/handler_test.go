package product

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/buildware/market-backend/internal/review"
)

func makeApp(repo Repository) *fiber.App {
	svc := NewService(repo,
		stubGuard{ids: map[int]bool{100: true}},
		stubGuard{ids: map[int]bool{3: true}},
		review.NewService(review.NewInMemoryRepository(nil, nil)),
	)
	h := NewHandler(svc, Limits{Products: 10, Reviews: 5, Comments: 5})
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	return app
}

func TestGetProducts_EmptyCatalogReturns200(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	req := httptest.NewRequest("GET", "/api/v1/products?page=5", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for empty catalog, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"maxPageCount":0`) {
		t.Fatalf("expected maxPageCount 0, got %s", string(body))
	}
}

func TestGetProducts_PageBeyondLastIs404(t *testing.T) {
	app := makeApp(NewInMemoryRepository(seedProducts(12, 25)))

	req := httptest.NewRequest("GET", "/api/v1/products?page=3&limit=10", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 past the last page, got %d", res.StatusCode)
	}
}

func TestGetProducts_BadPaginationParams(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	for _, target := range []string{
		"/api/v1/products?page=abc",
		"/api/v1/products?limit=0",
		"/api/v1/products?minPrice=cheap",
		"/api/v1/products?maxPrice=-5",
	} {
		req := httptest.NewRequest("GET", target, nil)
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, res.StatusCode)
		}
	}
}

func TestSearch_MissingTermIs400(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	req := httptest.NewRequest("GET", "/api/v1/products/search", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing search term, got %d", res.StatusCode)
	}
}

func TestSearch_MatchesByName(t *testing.T) {
	base := time.Now().UTC()
	app := makeApp(NewInMemoryRepository([]Product{
		{ID: 1, Name: "Work Boot", Price: 80, CreatedAt: base},
		{ID: 2, Name: "Rain Coat", Price: 60, CreatedAt: base.Add(time.Hour)},
	}))

	req := httptest.NewRequest("GET", "/api/v1/products/search?s=boot", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	str := string(body)
	if !strings.Contains(str, "Work Boot") {
		t.Fatalf("expected Work Boot in response: %s", str)
	}
	if strings.Contains(str, "Rain Coat") {
		t.Fatalf("Rain Coat leaked into search result: %s", str)
	}
}

func TestGetProductsByCategory_MissingCategoryIs404(t *testing.T) {
	app := makeApp(NewInMemoryRepository(seedProducts(3, 20)))

	req := httptest.NewRequest("GET", "/api/v1/products/category/999", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing category, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Category not found") {
		t.Fatalf("expected distinct category message, got %s", string(body))
	}
}

func TestGetProductDetail_NotFound(t *testing.T) {
	app := makeApp(NewInMemoryRepository(nil))

	req := httptest.NewRequest("GET", "/api/v1/product/77", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing product, got %d", res.StatusCode)
	}
}

func TestGetProductDetail_ReviewsRenderAsArray(t *testing.T) {
	app := makeApp(NewInMemoryRepository(seedProducts(1, 20)))

	req := httptest.NewRequest("GET", "/api/v1/product/1", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"reviews":[]`) {
		t.Fatalf("expected empty reviews array, got %s", string(body))
	}
}

func TestAdminRoutes_UseStoreClaim(t *testing.T) {
	repo := NewInMemoryRepository(seedProducts(4, 20))
	svc := NewService(repo,
		stubGuard{ids: map[int]bool{}},
		stubGuard{ids: map[int]bool{3: true}},
		review.NewService(review.NewInMemoryRepository(nil, nil)),
	)
	h := NewHandler(svc, Limits{Products: 10, Reviews: 5, Comments: 5})

	app := fiber.New()
	// stand-in for the JWT middleware: inject the verified claims
	app.Use(func(c *fiber.Ctx) error {
		if c.Get("X-Store-ID") != "" {
			claims := jwt.MapClaims{"store_id": 3.0}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)

	// no claims: unauthorized
	req := httptest.NewRequest("GET", "/api/v1/admin/products", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", res.StatusCode)
	}

	// with claims: own store's products only
	req2 := httptest.NewRequest("GET", "/api/v1/admin/products", nil)
	req2.Header.Set("X-Store-ID", "3")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with store claim, got %d", res2.StatusCode)
	}
	body, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(body), fmt.Sprintf(`"total":%d`, 4)) {
		t.Fatalf("expected all 4 store products, got %s", string(body))
	}
}
