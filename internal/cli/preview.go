package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navitone/themesync/internal/omarchy"
	"github.com/navitone/themesync/internal/syncer"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the palette the current theme would apply, without writing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		theme, err := omarchy.CurrentTheme(cfg.OmarchyDir)
		if err != nil {
			return err
		}

		result, err := syncer.Resolve(theme)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, result)
		}

		fmt.Printf("Theme:  %s\n", result.Theme)
		fmt.Printf("Source: %s\n\n", result.Source)
		fmt.Print(renderSwatches(result.Palette))
		return nil
	},
}
