package main

import (
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/buildware/market-backend/internal/category"
	"github.com/buildware/market-backend/internal/config"
	"github.com/buildware/market-backend/internal/popular"
	"github.com/buildware/market-backend/internal/product"
	"github.com/buildware/market-backend/internal/review"
	"github.com/buildware/market-backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(2)
	}
	initLogger(cfg)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	categoryService := category.NewService(category.NewPostgresRepository(db))
	storeService := store.NewService(store.NewPostgresRepository(db))
	reviewService := review.NewService(review.NewPostgresRepository(db))
	productService := product.NewService(
		product.NewPostgresRepository(db),
		categoryService,
		storeService,
		reviewService,
	)
	popularService := popular.NewService(popular.NewPostgresRepository(db))

	categoryHandler := category.NewHandler(categoryService)
	storeHandler := store.NewHandler(storeService)
	reviewHandler := review.NewHandler(reviewService, cfg.CommentPageLimit)
	popularHandler := popular.NewHandler(popularService, cfg.PopularCount)
	productHandler := product.NewHandler(productService, product.Limits{
		Products: cfg.ProductPageLimit,
		Reviews:  cfg.ReviewPageLimit,
		Comments: cfg.CommentPageLimit,
	})

	categoryHandler.RegisterPublicRoutes(app)
	storeHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	// popular sits under /api/v1/products, register it before the
	// product routes to avoid route param collision
	popularHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)

	// admin read routes require a verified store identity; token
	// issuance happens elsewhere
	app.Use("/api/v1/admin", jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	productHandler.RegisterProtectedRoutes(app)

	slog.Info("starting server", "addr", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func initLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	c.Locals("request_id", requestID)
	start := time.Now()
	err := c.Next()
	slog.Info("request",
		"id", requestID,
		"method", c.Method(),
		"path", c.OriginalURL(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)
	return err
}

func mustOpenDB(databaseURL string) *sql.DB {
	if databaseURL == "" {
		slog.Error("MARKET_DATABASE_URL is not set")
		os.Exit(2)
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		slog.Error("opening database", "err", err)
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		slog.Error("pinging database", "err", err)
		os.Exit(1)
	}
	return db
}
