package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"srd-mirror/core/config"
	"srd-mirror/core/database"
	"srd-mirror/core/loader"
	"srd-mirror/core/logger"
	"srd-mirror/core/middleware/auth"
	"srd-mirror/core/middleware/rayid"
	"srd-mirror/core/remote"
	"srd-mirror/core/storage"
	"srd-mirror/core/syncer"

	"srd-mirror/feature/compendium"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "srd-mirror/docs/swagger"
)

// @title SRD Mirror API
// @version 1.0
// @description Trigger endpoints for mirroring SRD reference data into MySQL.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mirror server",
	Long:  `Starts the HTTP server exposing one sync trigger endpoint per resource.`,
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

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to mirror database", zap.Error(err))
		}
		logg.Info("Connected to mirror database", zap.String("name", cfg.Database.Name))

		// 4. Build the sync engine
		client := remote.NewClient(cfg.Remote)
		engine := syncer.NewEngine(db, client, logg, cfg.Sync)

		if cfg.Storage.Enabled {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			archiver, err := storage.NewArchiver(context.Background(), store, cfg.Storage.Bucket)
			if err != nil {
				logg.Fatal("Failed to initialize document archive", zap.Error(err))
			}
			engine.WithArchive(func(ctx context.Context, resource, index string, doc syncer.Document) error {
				return archiver.Archive(ctx, resource, index, doc)
			})
			logg.Info("Raw-document archive enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Register Features
		feature := compendium.NewFeature(engine, logg)
		mgr := loader.NewManager()
		mgr.Register(feature)

		// The DDL is applied out of band; warn early when tables are missing.
		if missing := database.MissingTables(db, feature.Service().Tables()); len(missing) > 0 {
			logg.Warn("Schema tables missing; apply schema/schema.sql before syncing",
				zap.Strings("tables", missing))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware: RayID first so everything is traceable.
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

		// Auth (Protect sync triggers)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
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
