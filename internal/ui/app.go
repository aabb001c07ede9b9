package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pikeru-portal/internal/prefs"
	"github.com/five82/pikeru-portal/internal/state"
)

// View identifies one inspector page.
type View int

const (
	ViewSummary View = iota
	ViewSearch
	ViewEntries
	ViewFile
	viewCount
)

func (v View) String() string {
	switch v {
	case ViewSummary:
		return "Summary"
	case ViewSearch:
		return "Search"
	case ViewEntries:
		return "Entries"
	case ViewFile:
		return "File"
	default:
		return "?"
	}
}

// Options configure the inspector UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	// Reload triggers an immediate resolution. Nil disables the key.
	Reload    func()
	PollTick  time.Duration
	ThemeName string
	// PrefsPath receives theme changes. Empty disables persistence.
	PrefsPath string
	Prefs     prefs.Prefs
}

// Model is the bubbletea model for the inspector.
type Model struct {
	ctx      context.Context
	store    *state.Store
	reload   func()
	pollTick time.Duration

	snapshot state.Snapshot
	view     View
	showHelp bool
	notice   string

	theme     Theme
	keys      keyMap
	prefsPath string
	prefs     prefs.Prefs

	viewport viewport.Model
	width    int
	height   int
}

type tickMsg time.Time

type snapshotMsg state.Snapshot

type reloadedMsg struct{}

// New builds a model from options.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tick := opts.PollTick
	if tick <= 0 {
		tick = time.Second
	}
	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		reload:    opts.Reload,
		pollTick:  tick,
		theme:     GetTheme(opts.ThemeName),
		keys:      DefaultKeyMap(),
		prefsPath: opts.PrefsPath,
		prefs:     opts.Prefs,
		viewport:  viewport.New(0, 0),
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.tickCmd(),
		m.fetchSnapshotCmd(),
	)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.pollTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchSnapshotCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return snapshotMsg(state.Snapshot{})
		}
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) reloadCmd() tea.Cmd {
	reload := m.reload
	return func() tea.Msg {
		reload()
		return reloadedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshContent()
		return m, nil

	case tickMsg:
		if err := m.ctx.Err(); err != nil {
			return m, tea.Quit
		}
		return m, tea.Batch(m.fetchSnapshotCmd(), m.tickCmd())

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.refreshContent()
		return m, nil

	case reloadedMsg:
		m.notice = "reloaded"
		return m, m.fetchSnapshotCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), msg.String() == "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			return m, nil
		}
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.Tab):
		m.setView((m.view + 1) % viewCount)
	case key.Matches(msg, m.keys.ShiftTab):
		m.setView((m.view + viewCount - 1) % viewCount)
	case key.Matches(msg, m.keys.ViewSummary):
		m.setView(ViewSummary)
	case key.Matches(msg, m.keys.ViewSearch):
		m.setView(ViewSearch)
	case key.Matches(msg, m.keys.ViewEntries):
		m.setView(ViewEntries)
	case key.Matches(msg, m.keys.ViewFile):
		m.setView(ViewFile)

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
	}
	return m, nil
}

func (m *Model) setView(v View) {
	if m.view == v {
		return
	}
	m.view = v
	m.refreshContent()
	m.viewport.GotoTop()
}

func (m *Model) cycleTheme() {
	next := NextTheme(m.theme.Name)
	m.theme = GetTheme(next)
	m.refreshContent()

	if m.prefsPath == "" {
		m.notice = "theme " + next
		return
	}
	m.prefs.Theme = next
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.notice = "theme " + next + " (not saved)"
		return
	}
	m.notice = "theme " + next + " saved"
}

// header and footer take one line each.
const chromeLines = 2

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chromeLines, 1)
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(m.renderView(m.theme.Styles()))
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// Run starts the inspector and blocks until the user quits.
func Run(opts Options) error {
	if opts.Store == nil {
		return errors.New("inspector store is nil")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("inspector: %w", err)
	}
	return nil
}
