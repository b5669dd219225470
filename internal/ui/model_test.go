package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/atlas/internal/prefs"
	"github.com/five82/atlas/internal/present"
	"github.com/five82/atlas/internal/restcountries"
	"github.com/five82/atlas/internal/state"
)

func country(name, region, capital string, pop int64) restcountries.Country {
	return restcountries.Country{
		Name:       restcountries.CountryName{Common: name},
		Region:     region,
		Capital:    []string{capital},
		Population: pop,
	}
}

func sampleCountries() []restcountries.Country {
	return []restcountries.Country{
		country("Alpha", "Europe", "Alphaville", 1000),
		country("Zeta", "Europe", "Zed", 2500000),
	}
}

type fixture struct {
	store     *state.Store
	prefsPath string
	exportDir string
	logPath   string
}

func newModel(t *testing.T, countries []restcountries.Country, loadErr error) (Model, fixture) {
	t.Helper()
	dir := t.TempDir()
	fx := fixture{
		store:     &state.Store{},
		prefsPath: filepath.Join(dir, "prefs.toml"),
		exportDir: filepath.Join(dir, "charts"),
		logPath:   filepath.Join(dir, "atlas.log"),
	}
	m := New(Options{
		Store: fx.store,
		Load: func(context.Context) error {
			if loadErr != nil {
				fx.store.Fail(loadErr)
				return loadErr
			}
			fx.store.Load(countries)
			return nil
		},
		ThemeName: "Nightfox",
		PrefsPath: fx.prefsPath,
		LogPath:   fx.logPath,
		ExportDir: fx.exportDir,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, fx
}

// load runs the fetch command and feeds its result back into the model.
func load(t *testing.T, m Model) Model {
	t.Helper()
	msg := loadCmd(context.Background(), m.load)()
	return update(t, m, msg)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, k)
	}
	return m
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_LoadingBeforeFetchCompletes(t *testing.T) {
	m, _ := newModel(t, sampleCountries(), nil)

	view := m.View()
	if !strings.Contains(view, present.LoadingMessage) {
		t.Fatalf("view missing loading message:\n%s", view)
	}
	if strings.Contains(view, "Alpha") {
		t.Fatalf("view lists countries before the fetch completed")
	}
}

func TestView_ListsCountriesInOrder(t *testing.T) {
	m, _ := newModel(t, sampleCountries(), nil)
	m = load(t, m)

	view := m.View()
	alpha := strings.Index(view, "Alpha")
	zeta := strings.Index(view, "Zeta")
	if alpha < 0 || zeta < 0 {
		t.Fatalf("view missing countries:\n%s", view)
	}
	if alpha > zeta {
		t.Fatalf("Alpha rendered after Zeta")
	}
	if !strings.Contains(view, "Countries (2)") {
		t.Fatalf("view missing list title with count:\n%s", view)
	}
	if strings.Contains(view, present.LoadingMessage) {
		t.Fatalf("loading message still shown after fetch")
	}
}

func TestSearch_FiltersAsYouType(t *testing.T) {
	m, fx := newModel(t, sampleCountries(), nil)
	m = load(t, m)

	m = typeText(t, m, "ZE")
	if got := fx.store.Snapshot().Query; got != "ZE" {
		t.Fatalf("store query = %q, want ZE", got)
	}
	view := m.View()
	if strings.Contains(view, "Alpha") {
		t.Fatalf("Alpha still listed for query ZE")
	}
	if !strings.Contains(view, "Zeta") {
		t.Fatalf("Zeta missing for query ZE")
	}

	m = typeText(t, m, "zz")
	if !strings.Contains(m.View(), present.NoResults) {
		t.Fatalf("view missing no-results placeholder:\n%s", m.View())
	}
}

func TestView_FailureShowsErrorAndNoRows(t *testing.T) {
	m, fx := newModel(t, nil, errors.New("boom"))
	m = load(t, m)

	if !fx.store.Snapshot().Failed() {
		t.Fatalf("store phase = %v, want failed", fx.store.Snapshot().Phase)
	}
	view := m.View()
	if !strings.Contains(view, present.ErrorMessage) {
		t.Fatalf("view missing error message:\n%s", view)
	}
	if strings.Contains(view, "boom") {
		t.Fatalf("view leaked the underlying error")
	}
}

func TestSelect_ShowsDetailAndChart(t *testing.T) {
	m, fx := newModel(t, sampleCountries(), nil)
	m = load(t, m)

	m = press(t, m, keyTab, keyDown, keyEnter)

	snap := fx.store.Snapshot()
	if !snap.HasSelected || snap.Selected.DisplayName() != "Zeta" {
		t.Fatalf("selected = %q (%v), want Zeta", snap.Selected.DisplayName(), snap.HasSelected)
	}
	view := m.View()
	for _, want := range []string{"Capital", "Zed", "2,500,000", "Population · Europe"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSelect_SurvivesFilterChange(t *testing.T) {
	m, fx := newModel(t, sampleCountries(), nil)
	m = load(t, m)

	m = press(t, m, keyTab, keyEnter)
	m = press(t, m, runeKey('/'))
	m = typeText(t, m, "zeta")

	snap := fx.store.Snapshot()
	if !snap.HasSelected || snap.Selected.DisplayName() != "Alpha" {
		t.Fatalf("selection lost after filtering: %+v", snap.Selected)
	}
	if !strings.Contains(m.View(), "Alphaville") {
		t.Fatalf("detail pane no longer shows Alpha")
	}
}

func TestCursor_StaysInRange(t *testing.T) {
	m, _ := newModel(t, sampleCountries(), nil)
	m = load(t, m)
	m = press(t, m, keyTab)

	m = press(t, m, runeKey('G'))
	if m.cursor != 1 {
		t.Fatalf("cursor after G = %d, want 1", m.cursor)
	}
	m = press(t, m, runeKey('j'), runeKey('j'))
	if m.cursor != 1 {
		t.Fatalf("cursor moved past the end: %d", m.cursor)
	}
	m = press(t, m, runeKey('g'))
	if m.cursor != 0 {
		t.Fatalf("cursor after g = %d, want 0", m.cursor)
	}
	m = press(t, m, runeKey('k'))
	if m.cursor != 0 {
		t.Fatalf("cursor moved before the start: %d", m.cursor)
	}
}

func TestExport_WritesChartForSelection(t *testing.T) {
	m, fx := newModel(t, sampleCountries(), nil)
	m = load(t, m)
	m = press(t, m, keyTab, keyEnter)

	next, cmd := m.Update(runeKey('x'))
	if cmd == nil {
		t.Fatalf("export returned no command")
	}
	m = update(t, next.(Model), cmd())

	path := filepath.Join(fx.exportDir, "europe-population.html")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported chart missing: %v", err)
	}
	if !strings.Contains(m.notice, path) {
		t.Fatalf("notice = %q, want it to name %q", m.notice, path)
	}
}

func TestExport_RequiresSelection(t *testing.T) {
	m, _ := newModel(t, sampleCountries(), nil)
	m = load(t, m)
	m = press(t, m, keyTab)

	next, cmd := m.Update(runeKey('x'))
	if cmd != nil {
		t.Fatalf("export without a selection returned a command")
	}
	if next.(Model).notice == "" {
		t.Fatalf("expected a notice explaining why nothing was exported")
	}
}

func TestCycleTheme_SavesPrefs(t *testing.T) {
	m, fx := newModel(t, sampleCountries(), nil)
	m = press(t, m, keyTab, runeKey('T'))

	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(fx.prefsPath).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
}

func TestHelp_AnyKeyCloses(t *testing.T) {
	m, _ := newModel(t, sampleCountries(), nil)
	m = press(t, m, keyTab, runeKey('?'))
	if !m.showHelp {
		t.Fatalf("help not shown")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay missing title")
	}
	m = press(t, m, runeKey('j'))
	if m.showHelp {
		t.Fatalf("help still shown after key press")
	}
}

func TestLogs_OverlayShowsFormattedRecords(t *testing.T) {
	m, fx := newModel(t, sampleCountries(), nil)
	line := `{"time":"2025-10-08T21:01:05Z","level":"INFO","msg":"country fetch finished","count":2}` + "\n"
	if err := os.WriteFile(fx.logPath, []byte(line), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m = press(t, m, keyTab)
	next, cmd := m.Update(runeKey('L'))
	if cmd == nil {
		t.Fatalf("log key returned no command")
	}
	m = update(t, next.(Model), cmd())

	view := m.View()
	if !strings.Contains(view, "country fetch finished") || !strings.Contains(view, "count=2") {
		t.Fatalf("log overlay missing record:\n%s", view)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showLogs {
		t.Fatalf("log overlay still shown after esc")
	}
}

func TestScaledWidth(t *testing.T) {
	tests := []struct {
		value, max int64
		width      int
		want       int
	}{
		{value: 0, max: 10, width: 20, want: 0},
		{value: 10, max: 10, width: 20, want: 20},
		{value: 5, max: 10, width: 20, want: 10},
		{value: 1, max: 1000000, width: 20, want: 1},
		{value: 5, max: 0, width: 20, want: 0},
	}
	for _, tt := range tests {
		if got := scaledWidth(tt.value, tt.max, tt.width); got != tt.want {
			t.Fatalf("scaledWidth(%d, %d, %d) = %d, want %d", tt.value, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("missing"); got != names[0] {
		t.Fatalf("NextTheme(missing) = %q, want %q", got, names[0])
	}
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing) = %q, want Nightfox", got)
	}
}
