package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd loads plugin records from a YAML document into the record database.
var importCmd = &cobra.Command{
	Use:   "import [file.yaml]",
	Short: "Import plugin records into the record database",
	Long: `Replaces the stored records of every plugin listed in the YAML document.

Example:
  import skyrim-soulgems.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	records, err := openRecords(ctx, cfg.Database)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	res, err := records.Import(ctx, f)
	if err != nil {
		return err
	}

	l.Info("Import finished",
		zap.String("file", args[0]),
		zap.Int("plugins", res.Plugins),
		zap.Int("soul_gems", res.SoulGems),
	)
	return nil
}
