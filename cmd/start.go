package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"equipment-tracker/core/config"
	"equipment-tracker/core/database"
	"equipment-tracker/core/gate"
	"equipment-tracker/core/loader"
	"equipment-tracker/core/logger"
	"equipment-tracker/core/middleware/auth"
	"equipment-tracker/core/middleware/rayid"
	"equipment-tracker/core/storage"
	"equipment-tracker/feature/tracker"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "equipment-tracker/docs/swagger"
)

// @title Equipment Tracker API
// @version 1.0
// @description API for tracking medical equipment loans and inventory levels.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the equipment tracker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to the record store. Unlike the receipt archive this
		// is not optional: every operation touches it.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to record store", zap.Error(err))
		}
		logg.Info("Connected to record store", zap.String("driver", cfg.Database.Driver))

		// 4. Receipt archive (optional)
		var archive *tracker.ReceiptArchive
		if cfg.Storage.Enabled {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			archive, err = tracker.NewReceiptArchive(cmd.Context(), store, cfg.Storage.Bucket, cfg.Storage.Prefix)
			if err != nil {
				logg.Fatal("Failed to initialize receipt archive", zap.Error(err))
			}
			logg.Info("Receipt archive enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Store gate
		g := gate.New(cfg.Gate, logg)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything.
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		mgr := loader.NewManager()

		feature, err := tracker.NewFeature(db, g, archive, logg)
		if err != nil {
			logg.Fatal("Failed to initialize tracker feature", zap.Error(err))
		}
		mgr.Register(feature)

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
