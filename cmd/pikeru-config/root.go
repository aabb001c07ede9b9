package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/five82/pikeru-portal/internal/config"
	"github.com/five82/pikeru-portal/internal/logging"
)

type commandContext struct {
	configFlag   string
	logLevel     string
	sysConfDir   string
	chooserPaths []string
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "pikeru-config",
		Short:         "Inspect the xdg-desktop-portal-pikeru configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (skips the XDG search)")
	flags.StringVar(&ctx.logLevel, "log-level", logging.DefaultLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&ctx.sysConfDir, "sysconfdir", "", "System configuration root (default "+config.SysConfDir+")")
	flags.StringSliceVar(&ctx.chooserPaths, "chooser", nil, "Chooser executable to probe; repeat to set the probe order")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newPathsCommand(ctx))
	rootCmd.AddCommand(newInitCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))

	return rootCmd
}

// configPath returns the --config value with a leading "~" expanded.
func (c *commandContext) configPath() string {
	path := strings.TrimSpace(c.configFlag)
	return config.ExpandHome(path, config.OSEnv(config.EnvHome))
}

// logger builds the leveled logger for one command.
func (c *commandContext) logger(w io.Writer) (*log.Logger, error) {
	return logging.New(w, c.logLevel)
}

// resolveOptions maps the persistent flags onto config.Options.
func (c *commandContext) resolveOptions(logger *log.Logger) config.Options {
	opts := config.Options{
		Env:        config.OSEnv,
		SysConfDir: strings.TrimSpace(c.sysConfDir),
		Logger:     logger,
	}
	if len(c.chooserPaths) > 0 {
		opts.ChooserPaths = c.chooserPaths
	}
	return opts
}

// resolve runs one resolution, logging to the command's stderr.
func (c *commandContext) resolve(cmd *cobra.Command) (config.Result, error) {
	logger, err := c.logger(cmd.ErrOrStderr())
	if err != nil {
		return config.Result{}, err
	}
	return config.Resolve(c.configPath(), c.resolveOptions(logger)), nil
}
