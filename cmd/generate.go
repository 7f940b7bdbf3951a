package cmd

import (
	"context"
	"fmt"

	"yastm-generator/feature/soulgem"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the generate command
	dataFolder    string
	patchName     string
	loadOrderPath string
	dryRun        bool
)

// generateCmd runs the soul gem generator once.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the YASTM soul gem configuration",
	Long: `Classify every soul gem of the load order, synthesize missing filled variants
into the output plugin and write YASTM_<patch file>.toml.

Examples:
  # Generate and write the configuration into the data folder
  generate --data-folder "C:/Games/Skyrim/Data"

  # Print the configuration without saving anything
  generate --dry-run`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&dataFolder, "data-folder", "", "Game data folder (overrides GENERATOR_DATA_FOLDER)")
	generateCmd.Flags().StringVar(&patchName, "patch", "", "Output plugin name (overrides GENERATOR_PATCH)")
	generateCmd.Flags().StringVar(&loadOrderPath, "load-order", "", "Path of plugins.txt (overrides GENERATOR_LOAD_ORDER)")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the configuration without saving the patch or writing the file")

	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	if cmd.Flags().Changed("data-folder") {
		cfg.Generator.DataFolder = dataFolder
	}
	if cmd.Flags().Changed("patch") {
		cfg.Generator.Patch = patchName
	}
	if cmd.Flags().Changed("load-order") {
		cfg.Generator.LoadOrder = loadOrderPath
	}
	if err := cfg.Generator.Validate(); err != nil {
		return err
	}

	records, err := openRecords(ctx, cfg.Database)
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	target, err := openTarget(cfg, fs)
	if err != nil {
		return err
	}

	svc := soulgem.NewService(cfg.Generator, records, fs, target, l)
	out, err := svc.Generate(ctx, soulgem.Options{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("failed to generate configuration: %w", err)
	}

	printGenerateReport(l, out)

	if dryRun {
		fmt.Fprint(cmd.OutOrStdout(), string(out.Config))
		l.Info("Dry-run mode: No changes were made.")
	}
	return nil
}

// printGenerateReport logs the run summary and a sample of the changes.
func printGenerateReport(l *zap.Logger, out *soulgem.Outcome) {
	r := out.Report

	l.Info("Generation report",
		zap.String("file", out.File),
		zap.Int("groups", r.Groups),
		zap.Int("emitted", r.Emitted),
		zap.Int("skipped", r.Skipped),
		zap.Int("created", r.Created),
		zap.Int("relinked", r.Relinked),
	)

	maxShow := min(len(r.Actions), 5)
	for _, action := range r.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("form_key", action.FormKey),
			zap.String("group", action.Group),
			zap.String("level", action.Level),
			zap.Uint32("value", action.Value),
		)
	}
	if len(r.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(r.Actions)-maxShow))
	}
}
