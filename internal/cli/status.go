package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navitone/themesync/internal/destconfig"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the theme currently written to the destination config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		theme, err := destconfig.ReadTheme(cfg.Destination)
		if errors.Is(err, destconfig.ErrNoThemeSection) {
			if IsJSONOutput() {
				return WriteOutput(os.Stdout, nil)
			}
			fmt.Printf("No theme section in %s\n", cfg.Destination)
			return nil
		}
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, theme)
		}

		fmt.Printf("Theme:  %s\n", theme.Name)
		fmt.Printf("Source: %s\n", theme.Source)

		rows := make([][]string, 0, len(roleOrder))
		for _, role := range roleOrder {
			hex, ok := theme.Colors[role]
			if !ok {
				hex = "-"
			}
			rows = append(rows, []string{role, hex})
		}
		return writeTable(os.Stdout, []string{"ROLE", "COLOR"}, rows)
	},
}

// roleOrder is the fixed order roles appear in output.
var roleOrder = []string{
	"accent", "primary", "secondary", "success", "warning", "error",
	"background", "foreground",
}
