// Package ui provides the terminal frontend for Atlas.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds a copy of the latest
// state.Snapshot and never mutates it directly: every user action goes
// through state.Store (SetQuery, Select) and the model re-reads the snapshot
// afterwards. The one-shot country fetch runs as a tea.Cmd supplied by the
// caller through Options.Load; when it finishes the model receives a
// loadedMsg and refreshes.
//
// # Package Structure
//
//   - model.go: Model, Options, Init/Update/View and the key dispatch
//   - layout.go: pane sizing and the titled box frame
//   - header.go: status line and command bar
//   - list.go: search box and country rows
//   - detail.go: the selected country's record
//   - chart.go: region population bars
//   - logs.go: log overlay backed by logtail
//   - export.go: go-echarts HTML export of the current chart
//   - help.go, keys.go: key bindings and the help modal
//   - theme.go, style_helpers.go: lipgloss themes and background helpers
//
// # Layout
//
//	atlas  250 countries  loaded 14:02:11
//	j/k:Navigate  Enter:Show  /:Search ...
//	┌── Countries (250) ──┐┌────────── Details ──────────┐
//	│ / search            ││ 🇨🇭 Switzerland              │
//	│ ────────────────    ││ Capital     Bern            │
//	│   🇦🇫 Afghanistan · …││ ...                         │
//	│ • 🇨🇭 Switzerland · … │└─────────────────────────────┘
//	│                     │┌──── Population · Europe ────┐
//	│                     ││ Switzerland ███████░░ 8,654,622
//	└─────────────────────┘└─────────────────────────────┘
//
// # Focus
//
// The search box starts focused so typing filters immediately. Tab, Enter,
// Esc or Down move focus to the list, where the single-letter commands are
// active. Tab or / return to the search box.
//
// # States
//
// While the fetch is outstanding the list shows a spinner and the loading
// message. After a failure it shows the generic error message and no rows.
// A query that matches nothing shows the no-results placeholder.
//
// # Preferences
//
// The active theme is persisted to prefs.toml whenever it is cycled with T.
package ui
