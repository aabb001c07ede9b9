package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/five82/pikeru-portal/internal/config"
)

const (
	formatText = "text"
	formatTOML = "toml"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration the portal would use",
		Long: "Resolve the configuration exactly as the portal does and print the\n" +
			"values in effect. Exits non-zero when the configuration is degraded\n" +
			"(unparsable file or no chooser command), after printing what resolved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != formatText && format != formatTOML {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatTOML)
			}

			res, err := ctx.resolve(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatTOML {
				if err := writeTOML(out, res); err != nil {
					return err
				}
			} else {
				writeSummary(out, res)
			}

			if res.Err != nil {
				return fmt.Errorf("configuration degraded: %w", res.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or toml")
	return cmd
}

func writeSummary(out io.Writer, res config.Result) {
	source := "none (defaults only)"
	if res.Path != "" {
		source = res.Path
	}
	fc := res.Config.FileChooser

	fmt.Fprintf(out, "Config file: %s\n", source)
	fmt.Fprintf(out, "cmd: %s\n", fc.Command)
	fmt.Fprintf(out, "default_dir: %s\n", fc.DefaultDirectory)

	if errors.Is(res.Err, config.ErrParse) {
		fmt.Fprintln(out, "Warning: config file could not be parsed; defaults are in effect")
	}
	if errors.Is(res.Err, config.ErrNoChooser) {
		fmt.Fprintln(out, "Warning: no file chooser command found; set cmd in [filechooser]")
	}
}

// writeTOML prints the resolved values as a TOML document, preceded by a
// comment naming the source file.
func writeTOML(out io.Writer, res config.Result) error {
	data, err := toml.Marshal(res.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if res.Path != "" {
		fmt.Fprintf(out, "# resolved from %s\n", res.Path)
	} else {
		fmt.Fprintln(out, "# resolved from defaults")
	}
	_, err = out.Write(data)
	return err
}
