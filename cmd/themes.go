package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lumenui/lumen/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in theme presets",
	Long:  `List every built-in theme preset that can be set as theme.preset in the config file.`,
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(styles.Presets))
	for name := range styles.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		preset := styles.Presets[name]
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", name, preset.Description); err != nil {
			return err
		}
	}
	return nil
}
