package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"srd-mirror/core/config"
	"srd-mirror/core/database"
	"srd-mirror/core/logger"
	"srd-mirror/core/remote"
	"srd-mirror/core/syncer"

	"srd-mirror/feature/compendium"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs syncs headless, without starting the HTTP server. With no
// arguments it mirrors every resource in dependency order.
var syncCmd = &cobra.Command{
	Use:   "sync [resource...]",
	Short: "Mirror SRD resources into the database",
	Long: `Mirrors the named resources (or all of them) into the local database
and exits. Resources are synced sequentially in dependency order so child
rows never reference a parent that has not landed yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to mirror database: %w", err)
		}

		client := remote.NewClient(cfg.Remote)
		engine := syncer.NewEngine(db, client, logg, cfg.Sync)
		svc := compendium.NewFeature(engine, logg).Service()

		resources := args
		if len(resources) == 0 {
			resources = svc.Resources()
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		for _, resource := range resources {
			report, err := svc.Sync(ctx, resource)
			if err != nil {
				return fmt.Errorf("sync %s: %w", resource, err)
			}
			logg.Info("Resource synced",
				zap.String("resource", report.Resource),
				zap.Int("attempted", report.Attempted),
				zap.Int("synced", report.Synced),
			)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
