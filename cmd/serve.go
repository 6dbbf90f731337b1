package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"movie-grid/core/config"
	"movie-grid/core/database"
	"movie-grid/core/loader"
	"movie-grid/core/logger"
	"movie-grid/core/middleware/auth"
	"movie-grid/core/middleware/rayid"
	"movie-grid/core/storage"
	"movie-grid/feature/catalog"
	"movie-grid/feature/grid"
	"movie-grid/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "movie-grid/docs/swagger"
)

// @title Movie Grid API
// @version 1.0
// @description API for driving the animated movie grid.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the movie grid server",
	Long: `Starts the HTTP server, the grid update loop and the catalog poller.
The catalog provider (simulated, database or storage) is chosen by CATALOG_PROVIDER.`,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Catalog sources, only the selected provider's backend is required
	src, err := connectSources(cfg, logg)
	if err != nil {
		return err
	}
	provider, err := catalog.NewProvider(cfg.Catalog, src)
	if err != nil {
		return fmt.Errorf("failed to create catalog provider: %w", err)
	}

	// 4. Grid stack
	cat := catalog.New(logger.Component(logg, "catalog"))
	svc, err := grid.NewService(cfg.Grid, cat, logg)
	if err != nil {
		return fmt.Errorf("failed to create grid: %w", err)
	}

	// 5. Initialize Fiber App
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	// RayID first so everything below is traceable
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger stays public
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	// 6. Load Features
	mgr := loader.NewManager()
	mgr.Register(grid.NewFeature(svc))
	mgr.Register(integrity.NewFeature(integrity.NewService(integrity.Options{
		Storage: src.Storage,
		Bucket:  cfg.Storage.Bucket,
		Object:  cfg.Catalog.Object,
		Region:  cfg.Storage.Region,
		DB:      src.DB,
		Table:   cfg.Catalog.Table,
		Grid:    svc,
	}, logger.Component(logg, "integrity"))))
	if err := mgr.LoadAll(app); err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}

	// 7. Run loop, poller and server until a signal arrives
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return svc.Run(gctx)
	})
	g.Go(func() error {
		return cat.Poll(gctx, provider, cfg.Catalog.PollInterval())
	})
	g.Go(func() error {
		logg.Info("Starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("provider", provider.Name()),
			zap.Int("rows", cfg.Grid.Rows),
			zap.Int("columns", cfg.Grid.Columns),
		)
		if err := app.Listen(cfg.Server.Address()); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Info("Shutting down server...")
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// connectSources opens the backend of the configured provider.
func connectSources(cfg *config.Config, logg *zap.Logger) (catalog.Sources, error) {
	src := catalog.Sources{Bucket: cfg.Storage.Bucket}

	switch cfg.Catalog.Provider {
	case catalog.ProviderDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return src, fmt.Errorf("failed to connect to database: %w", err)
		}
		logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
		src.DB = db
	case catalog.ProviderStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return src, fmt.Errorf("failed to create storage client: %w", err)
		}
		src.Storage = client
	}
	return src, nil
}
