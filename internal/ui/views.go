package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/five82/pikeru-portal/internal/config"
	"github.com/five82/pikeru-portal/internal/preview"
	"github.com/five82/pikeru-portal/internal/state"
)

// maxPreviewLines bounds the File view.
const maxPreviewLines = 500

func (m Model) renderView(styles Styles) string {
	if !m.snapshot.HasResult {
		return styles.MutedText.Render("No resolution yet.")
	}
	res := m.snapshot.Result
	switch m.view {
	case ViewSearch:
		return renderSearch(styles, res, m.width)
	case ViewEntries:
		return renderEntries(styles, res)
	case ViewFile:
		return renderFile(styles, res.Path)
	default:
		return renderSummary(styles, m.snapshot)
	}
}

func renderSummary(styles Styles, snap state.Snapshot) string {
	var b strings.Builder
	res := snap.Result

	source := "defaults only"
	if res.Path != "" {
		source = res.Path
		if res.Explicit {
			source += " (explicit)"
		}
	}
	field := func(label, value string) {
		b.WriteString(styles.MutedText.Render(padRight(label, 14)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}
	setting := func(label, value, status string) {
		b.WriteString(styles.MutedText.Render(padRight(label, 14)))
		b.WriteString(styles.StatusStyle(status).Render(padRight(status, 8)))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}
	field("config file", source)

	var fc config.FileChooser
	if res.Config != nil {
		fc = res.Config.FileChooser
	}
	setting("cmd", orDash(fc.Command), valueSource(res.Entries, "cmd", "command"))
	setting("default_dir", orDash(fc.DefaultDirectory), valueSource(res.Entries, "default_dir", "default_directory"))
	field("loads", fmt.Sprintf("%d", snap.Loads))
	if !snap.ChangedAt.IsZero() {
		b.WriteString(styles.MutedText.Render(padRight("changed", 14)))
		b.WriteString(styles.InfoText.Render(snap.ChangedAt.Format("15:04:05")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if res.Err == nil {
		b.WriteString(styles.SuccessText.Render("Configuration resolved cleanly."))
		b.WriteString("\n")
		return b.String()
	}
	if errors.Is(res.Err, config.ErrParse) {
		b.WriteString(styles.Badge(statusError) + " " + styles.DangerText.Render("config file could not be parsed; defaults in effect"))
		b.WriteString("\n")
	}
	if errors.Is(res.Err, config.ErrNoChooser) {
		b.WriteString(styles.Badge(statusError) + " " + styles.DangerText.Render("no file chooser command available"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, line := range strings.Split(res.Err.Error(), "\n") {
		b.WriteString(styles.FaintText.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// valueSource reports whether the config file overrode a [filechooser] key.
func valueSource(entries []config.Entry, keys ...string) string {
	for _, e := range entries {
		if e.Handled && e.Value != "" && e.Section == config.SectionFileChooser && slices.Contains(keys, e.Key) {
			return statusFile
		}
	}
	return statusDefault
}

func renderSearch(styles Styles, res config.Result, width int) string {
	var b strings.Builder
	pathWidth := max(width-16, 20)

	b.WriteString(styles.AccentText.Bold(true).Render("Config files"))
	b.WriteString("\n")
	switch {
	case res.Explicit:
		b.WriteString("  " + styles.Badge(statusFile) + " " + truncateMiddle(res.Path, pathWidth) + "\n")
	case len(res.Search) == 0:
		b.WriteString(styles.MutedText.Render("  no search prefixes available") + "\n")
	default:
		writeCandidates(&b, styles, res.Search, res.Path, pathWidth)
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Chooser commands"))
	b.WriteString("\n")
	selected := ""
	if res.Config != nil {
		selected = res.Config.FileChooser.Command
	}
	if len(res.Chooser) == 0 {
		b.WriteString(styles.MutedText.Render("  no chooser paths configured") + "\n")
	} else {
		writeCandidates(&b, styles, res.Chooser, selected, pathWidth)
	}
	return b.String()
}

func writeCandidates(b *strings.Builder, styles Styles, candidates []config.Candidate, selected string, width int) {
	picked := false
	for _, c := range candidates {
		status := statusMissing
		switch {
		case c.Found && !picked && c.Path == selected:
			status = statusSelected
			picked = true
		case c.Found:
			status = statusFound
		}
		b.WriteString("  ")
		b.WriteString(styles.StatusStyle(status).Render(padRight(status, 8)))
		b.WriteString(" ")
		b.WriteString(truncateMiddle(c.Path, width))
		b.WriteString("\n")
	}
}

func renderEntries(styles Styles, res config.Result) string {
	if res.Path == "" {
		return styles.MutedText.Render("No config file; every value is a default.")
	}
	if len(res.Entries) == 0 {
		return styles.MutedText.Render("The config file set no keys.")
	}

	var b strings.Builder
	for _, e := range res.Entries {
		status := statusUnhandled
		if e.Handled {
			status = statusHandled
		}
		section := e.Section
		if section == "" {
			section = "(none)"
		}
		b.WriteString(styles.StatusStyle(status).Render(padRight(status, 8)))
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render("[" + section + "] "))
		b.WriteString(styles.AccentText.Render(e.Key))
		b.WriteString(" = ")
		b.WriteString(styles.Text.Render(e.Value))
		b.WriteString("\n")
	}
	return b.String()
}

func renderFile(styles Styles, path string) string {
	if path == "" {
		return styles.MutedText.Render("No config file in use.")
	}
	lines, more, err := preview.Head(path, maxPreviewLines)
	if err != nil {
		return styles.DangerText.Render(err.Error())
	}
	if len(lines) == 0 {
		return styles.MutedText.Render(path + " is empty or gone.")
	}

	var b strings.Builder
	b.WriteString(styles.FaintText.Render(path))
	b.WriteString("\n\n")
	gutter := len(fmt.Sprintf("%d", len(lines)))
	for i, line := range lines {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%*d ", gutter, i+1)))
		b.WriteString(highlightLine(styles, line))
		b.WriteString("\n")
	}
	if more {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("... truncated after %d lines", maxPreviewLines)))
		b.WriteString("\n")
	}
	return b.String()
}

func highlightLine(styles Styles, line string) string {
	switch preview.Classify(line) {
	case preview.KindComment:
		return styles.FaintText.Render(line)
	case preview.KindSection:
		return styles.WarningText.Render(line)
	case preview.KindKey:
		idx := strings.IndexAny(line, "=:")
		return styles.AccentText.Render(line[:idx]) + styles.Text.Render(line[idx:])
	case preview.KindOther:
		return styles.DangerText.Render(line)
	default:
		return line
	}
}
