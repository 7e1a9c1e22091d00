package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nek-tools/nekmon/internal/config"
	"github.com/nek-tools/nekmon/internal/export"
	"github.com/nek-tools/nekmon/internal/logging"
	"github.com/nek-tools/nekmon/internal/neklog"
	"github.com/nek-tools/nekmon/internal/prefs"
	"github.com/nek-tools/nekmon/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewCharts View = iota
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	PollTick  time.Duration
	Logger    *logging.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	logger    *logging.Logger
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Chart state
	axisModes []string

	// Log state
	logViewport viewport.Model
	logFollow   bool
	logLines    []string

	// Transient footer note (export results, errors)
	note      string
	noteErr   bool
	noteUntil time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	modes := opts.Prefs.AxisModes
	if len(modes) < prefs.ChartCount {
		padded := make([]string, prefs.ChartCount)
		copy(padded, modes)
		for i := len(modes); i < prefs.ChartCount; i++ {
			padded[i] = prefs.AxisStep
		}
		modes = padded
	}

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		config:      opts.Config,
		logger:      opts.Logger,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(opts.Prefs.Theme),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewCharts,
		axisModes:   modes,
		logFollow:   true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.resizeLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case logTailMsg:
		m.handleLogTail(msg)
		return m, nil

	case logTailErrMsg:
		// Raw log read failures show up in the snapshot already.
		return m, nil

	case exportDoneMsg:
		m.handleExportDone(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusbar())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLogs:
		return m.renderLogs()
	default:
		return m.renderCharts()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ViewCharts), key.Matches(msg, m.keys.Escape):
		m.currentView = ViewCharts
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		m.currentView = ViewLogs
		return m, m.refreshLogTail()

	case key.Matches(msg, m.keys.ToggleAxis):
		m.toggleAxis(int(msg.String()[0] - '1'))
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCharts()
	}

	if m.currentView == ViewLogs {
		return m.handleLogsKey(msg)
	}
	return m, nil
}

// toggleAxis flips the x-axis mode of chart idx and persists the choice.
func (m *Model) toggleAxis(idx int) {
	if idx < 0 || idx >= len(m.axisModes) {
		return
	}
	if m.axisModes[idx] == prefs.AxisTime {
		m.axisModes[idx] = prefs.AxisStep
	} else {
		m.axisModes[idx] = prefs.AxisTime
	}
	m.savePrefs()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, AxisModes: m.axisModes}
	if err := prefs.Save(m.prefsPath, p); err != nil && m.logger != nil {
		m.logger.Warn("save prefs failed", "err", err)
	}
}

// exportCharts renders the five charts to PNG files off the UI loop.
func (m Model) exportCharts() tea.Cmd {
	history := m.snapshot.History
	modes := append([]string(nil), m.axisModes...)
	dir := "."
	if m.config != nil {
		dir = m.config.ExportDir
	}
	return func() tea.Msg {
		paths, err := export.WritePNGs(history, modes, dir)
		return exportDoneMsg{paths: paths, err: err}
	}
}

func (m *Model) handleExportDone(msg exportDoneMsg) {
	if msg.err != nil {
		m.setNote("export failed: "+msg.err.Error(), true)
		if m.logger != nil {
			m.logger.Warn("chart export failed", "err", msg.err)
		}
		return
	}
	m.setNote("saved 5 charts", false)
	if m.logger != nil {
		m.logger.Info("charts exported", "count", len(msg.paths))
	}
}

func (m *Model) setNote(text string, isErr bool) {
	m.note = text
	m.noteErr = isErr
	m.noteUntil = time.Now().Add(4 * time.Second)
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLogs && m.logFollow {
		cmds = append(cmds, m.refreshLogTail())
	}
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type logTailMsg []string

type logTailErrMsg struct{ err error }

type exportDoneMsg struct {
	paths []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) refreshLogTail() tea.Cmd {
	if m.config == nil {
		return nil
	}
	path := m.config.LogPath
	limit := m.config.TailLines
	return func() tea.Msg {
		lines, err := neklog.Tail(path, limit)
		if err != nil {
			return logTailErrMsg{err: err}
		}
		return logTailMsg(lines)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		// A cancelled context is a normal shutdown, not a failure.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
