package cmd

import (
	"fmt"
	"io"

	"yastm-generator/feature/soulgem"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// inspectCmd prints a summary of a generated configuration file.
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "View the soul gem groups of a YASTM configuration",
	Long:  `Parses a generated YASTM_<patch file>.toml and lists every group with its members.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(afero.NewOsFs(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(fs afero.Fs, w io.Writer, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	file, err := soulgem.ParseConfigFile(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n--- %s ---\n", path)
	fmt.Fprintf(w, "Groups:         %d\n", len(file.SoulGems))
	for _, entry := range file.SoulGems {
		fmt.Fprintln(w, "-----------------------------")
		fmt.Fprintf(w, "ID:             %s\n", entry.ID)
		fmt.Fprintf(w, "Capacity:       %d\n", entry.Capacity)
		fmt.Fprintf(w, "Reusable:       %v\n", entry.IsReusable)
		fmt.Fprintf(w, "Members:        %d\n", len(entry.Members))
		for _, m := range entry.Members {
			fmt.Fprintf(w, "- %s\n", m)
		}
	}
	fmt.Fprintln(w, "-----------------------------")
	return nil
}
