// Package state owns Atlas application state.
//
// # Overview
//
// A single Store holds everything the frontends render: the full country list
// in name order, the subsequence matching the current search query, the
// selected country and the region peers charted for it. Frontends receive a
// *Store by reference instead of sharing package-level variables.
//
// # Lifecycle
//
//	PhaseLoading ──Load()──> PhaseReady
//	      │
//	      └──────Fail()────> PhaseFailed   (lists cleared, LastError set)
//
// The startup fetch happens exactly once. SetQuery and Select are called from
// user input afterwards; Select rebuilds the chart data on every call so a new
// chart always replaces the old one.
//
// # Pure Helpers
//
// FilterByName, RegionPeers and FindByName operate on plain slices. The web
// frontend calls them per request against a snapshot so concurrent requests
// with different queries never touch shared state.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock. The loader goroutine writes once; the
// TUI and web handlers read snapshots. Snapshot returns cloned slices, so a
// caller may modify what it gets back without affecting the Store.
//
// # Testing Considerations
//
// The zero Store is ready to use and starts in PhaseLoading.
package state
