package cmd

import (
	"fmt"
	"os"

	"yastm-generator/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "yastm-generator",
	Short: "YASTM soul gem configuration generator",
	Long: `Generates the YASTM configuration for every soul gem family in a load order.
Missing filled variants are synthesized into the output plugin, and the
configuration file is kept in sync with the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard logger in console format; the debug preset
		// gives ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
