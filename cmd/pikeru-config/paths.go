package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/pikeru-portal/internal/config"
)

const (
	kindConfig  = "config"
	kindChooser = "chooser"
)

func newPathsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List every config file and chooser path probed, in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := ctx.resolve(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := pathRows(res)
			if len(rows) == 0 {
				fmt.Fprintln(out, "No paths probed")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Kind", "Path", "Status"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				isTerminal(out),
			))
			return nil
		},
	}
}

func pathRows(res config.Result) [][]string {
	rows := make([][]string, 0, len(res.Search)+len(res.Chooser)+1)
	add := func(kind, path, status string) {
		rows = append(rows, []string{strconv.Itoa(len(rows) + 1), kind, path, status})
	}

	if res.Explicit {
		add(kindConfig, res.Path, "explicit")
	} else {
		for _, c := range res.Search {
			add(kindConfig, c.Path, candidateStatus(c, res.Path))
		}
	}

	command := ""
	if res.Config != nil {
		command = res.Config.FileChooser.Command
	}
	for _, c := range res.Chooser {
		add(kindChooser, c.Path, candidateStatus(c, command))
	}
	return rows
}

func candidateStatus(c config.Candidate, selected string) string {
	switch {
	case c.Found && c.Path == selected:
		return "selected"
	case c.Found:
		return "found"
	default:
		return "missing"
	}
}
