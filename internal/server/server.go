package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventcatalog/config"
	"github.com/farellandr/eventcatalog/internal/handlers"
	"github.com/farellandr/eventcatalog/internal/logger"
	"github.com/farellandr/eventcatalog/internal/middleware"
	"github.com/farellandr/eventcatalog/internal/service"
	"github.com/farellandr/eventcatalog/internal/store"
)

// Start loads configuration, connects to the database and serves HTTP until
// ctx is cancelled.
func Start(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Setup(cfg.LogLevel)
	slog.SetDefault(log)

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database pool: %w", err)
	}
	defer sqlDB.Close()

	gin.SetMode(cfg.GinMode)
	r := NewRouter(store.NewGormStore(db), log, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with every route wired to services backed by s.
func NewRouter(s store.Store, log *slog.Logger, requestTimeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Timeout(requestTimeout),
	)

	setupRoutes(r, s)
	return r
}

func setupRoutes(r *gin.Engine, s store.Store) {
	categoryHandler := handlers.NewCategoryHandler(service.NewCategoryServiceImpl(s, s))
	subcategoryHandler := handlers.NewSubcategoryHandler(service.NewSubcategoryServiceImpl(s, s, s))
	eventHandler := handlers.NewEventHandler(service.NewEventServiceImpl(s, s, s, s))
	healthHandler := handlers.NewHealthHandler(s)

	r.GET("/health", healthHandler.Health)

	categories := r.Group("/categories")
	{
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("", categoryHandler.ListCategories)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}

	subcategories := r.Group("/subcategories")
	{
		subcategories.POST("", subcategoryHandler.CreateSubcategory)
		subcategories.GET("", subcategoryHandler.ListSubcategories)
		subcategories.GET("/category/:categoryId", subcategoryHandler.ListSubcategoriesByCategory)
		subcategories.DELETE("/:id", subcategoryHandler.DeleteSubcategory)
	}

	events := r.Group("/events")
	{
		events.POST("", eventHandler.CreateEvent)
		events.GET("", eventHandler.ListEvents)
		events.GET("/filter", eventHandler.FilterEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.PUT("/:id", eventHandler.UpdateEvent)
		events.DELETE("/:id", eventHandler.DeleteEvent)
	}
}
