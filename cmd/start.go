package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"yastm-generator/core/config"
	"yastm-generator/core/loader"
	"yastm-generator/core/logger"
	"yastm-generator/core/middleware/auth"
	"yastm-generator/core/middleware/rayid"

	"yastm-generator/feature/soulgem"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the generator HTTP server",
	Long:  `Starts the HTTP server exposing soul gem preview and generation.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the record database (optional, the feature stays disabled without it)
		var records soulgem.RecordStore
		if store, err := openRecords(context.Background(), cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			records = store
			logg = logg.With(zap.String("database", cfg.Database.Driver))
			logg.Info("Connected to record database")
		}

		// 4. Initialize Output Target
		fs := afero.NewOsFs()
		target, err := openTarget(cfg, fs)
		if err != nil {
			logg.Fatal("Failed to create output target", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(soulgem.NewFeature(cfg.Generator, records, fs, target, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
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

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
