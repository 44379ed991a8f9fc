package cmd

import (
	"fmt"
	"os"

	"srd-mirror/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "srd-mirror",
	Short: "SRD Mirror Service",
	Long: `SRD Mirror pulls tabletop reference data (rules, races, classes,
spells, monsters, equipment) from the public SRD API and mirrors it into a
local MySQL database, upserting by natural key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format and debug level so CLI failures are readable with
		// ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
