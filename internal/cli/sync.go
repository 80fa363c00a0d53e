package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navitone/themesync/internal/syncer"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Apply the current Omarchy theme to the destination config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync()
	},
}

func runSync() error {
	cfg := GetConfig()

	result, err := syncer.Run(syncer.Options{
		OmarchyRoot: cfg.OmarchyDir,
		Destination: cfg.Destination,
	})
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return WriteOutput(os.Stdout, result)
	}

	fmt.Printf("Theme applied: %s\n", result.Config.Name)
	fmt.Printf("  Source:      %s\n", result.Source)
	fmt.Printf("  Destination: %s\n", cfg.Destination)
	return nil
}
