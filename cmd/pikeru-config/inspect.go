package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/pikeru-portal/internal/app"
	"github.com/five82/pikeru-portal/internal/config"
	"github.com/five82/pikeru-portal/internal/logging"
	"github.com/five82/pikeru-portal/internal/prefs"
)

var errNotTerminal = errors.New("inspect needs an interactive terminal; use show or paths instead")

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var reloadSeconds int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Open the live configuration inspector",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return errNotTerminal
			}
			// Validate the level even though the TUI owns the screen.
			if _, err := ctx.logger(cmd.ErrOrStderr()); err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Run(runCtx, app.Options{
				ConfigPath:  ctx.configPath(),
				PrefsPath:   prefs.DefaultPath(config.OSEnv),
				ReloadEvery: reloadSeconds,
				Resolve:     ctx.resolveOptions(logging.Discard()),
				Logger:      logging.Discard(),
			})
		},
	}

	cmd.Flags().IntVar(&reloadSeconds, "reload", 0, "Reload interval in seconds (default from prefs, else 2)")
	return cmd
}
