package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/navitone/themesync/internal/logging"
	"github.com/navitone/themesync/internal/syncer"
	"github.com/navitone/themesync/internal/watch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-sync whenever the Omarchy theme changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger := logging.Component("cli")

		runOnce := func() {
			_, err := syncer.Run(syncer.Options{
				OmarchyRoot: cfg.OmarchyDir,
				Destination: cfg.Destination,
			})
			if err != nil {
				logger.Warn().Err(err).Msg("sync failed")
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Apply the current theme immediately, then follow changes.
		runOnce()
		return watch.Run(ctx, cfg.OmarchyDir, runOnce)
	},
}
