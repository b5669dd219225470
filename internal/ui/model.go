package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/atlas/internal/prefs"
	"github.com/five82/atlas/internal/state"
)

// focusArea identifies which widget receives keys.
type focusArea int

const (
	focusSearch focusArea = iota
	focusList
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Load      func(context.Context) error // fetches once and fills Store
	ThemeName string
	PrefsPath string
	LogPath   string
	ExportDir string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	load      func(context.Context) error
	prefsPath string
	logPath   string
	exportDir string
	logger    *slog.Logger
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea
	notice string

	// Data state
	snapshot state.Snapshot

	// List state
	search textinput.Model
	cursor int // index into snapshot.Filtered
	offset int // first visible row

	spinner spinner.Model

	// Overlays
	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search countries"
	search.CharLimit = 64
	search.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		store:       store,
		load:        opts.Load,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		exportDir:   opts.ExportDir,
		logger:      logger,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		focus:       focusSearch,
		snapshot:    store.Snapshot(),
		search:      search,
		spinner:     sp,
		logViewport: viewport.New(0, 0),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, textinput.Blink}
	if m.load != nil {
		cmds = append(cmds, loadCmd(m.ctx, m.load))
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
		m.ready = true
		m.resizeLogViewport()
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.refresh()
		m.cursor = 0
		m.offset = 0
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.notice = "Export failed: " + msg.err.Error()
			m.logger.Error("chart export failed", "error", msg.err)
		} else {
			m.notice = "Chart saved to " + msg.path
			m.logger.Info("chart exported", "path", msg.path)
		}
		return m, nil
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
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
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Quit):
			m.showLogs = false
			return m, nil
		}
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

// handleSearchKey edits the query. Every edit re-filters the list.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "esc", "enter", "down":
		m.setFocus(focusList)
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applyQuery(m.search.Value())
	}
	return m, cmd
}

// handleListKey handles navigation and global commands while the list has
// focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save prefs failed", "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		m.resizeLogViewport()
		return m, readLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.Export):
		if !m.snapshot.HasSelected {
			m.notice = "Select a country to export its chart"
			return m, nil
		}
		m.notice = ""
		return m, exportCmd(m.exportDir, m.snapshot.Selected, m.snapshot.Peers)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listRows())
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.snapshot.Filtered))
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.snapshot.Filtered))

	case key.Matches(msg, m.keys.Select):
		m.selectCursor()
	}
	return m, nil
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

// applyQuery filters the list and resets the cursor to the first match.
func (m *Model) applyQuery(query string) {
	m.store.SetQuery(query)
	m.refresh()
	m.cursor = 0
	m.offset = 0
}

// selectCursor makes the country under the cursor the current selection.
func (m *Model) selectCursor() {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Filtered) {
		return
	}
	name := m.snapshot.Filtered[m.cursor].DisplayName()
	if _, ok := m.store.Select(name); !ok {
		return
	}
	m.notice = ""
	m.refresh()
	m.logger.Debug("country selected", "name", name, "peers", len(m.snapshot.Peers))
}

func (m *Model) moveCursor(delta int) {
	n := len(m.snapshot.Filtered)
	if n == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	m.cursor = max(0, min(n-1, m.cursor+delta))
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	rows := m.listRows()
	if rows <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(0, m.offset)
}

// refresh pulls the latest snapshot from the store and keeps the cursor in
// range.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	if n := len(m.snapshot.Filtered); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	m.ensureCursorVisible()
}

// applyTheme restyles the bubbles widgets for the active theme.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.search.Cursor.Style = styles.AccentText
	m.spinner.Style = styles.AccentText
}

// Messages

type loadedMsg struct{ err error }

type logLinesMsg struct {
	lines []string
	err   error
}

type exportedMsg struct {
	path string
	err  error
}

// Commands

func loadCmd(ctx context.Context, load func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: load(ctx)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
