package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/atlas/internal/restcountries"
)

// Phase tracks the lifecycle of the single startup fetch.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot represents the latest data available to the frontends.
type Snapshot struct {
	Phase       Phase
	All         []restcountries.Country
	Filtered    []restcountries.Country
	Query       string
	Selected    restcountries.Country
	HasSelected bool
	Peers       []restcountries.Country // chart data for the selection
	LoadedAt    time.Time
	LastError   error
}

// Loading reports whether the startup fetch is still in flight.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseLoading
}

// Failed reports whether the startup fetch failed.
func (s Snapshot) Failed() bool {
	return s.Phase == PhaseFailed
}

// Store owns the application state: the full list, the current filter
// result, the selection and its chart data. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Load installs the fetched collection and re-applies the current query.
// The countries are expected to be sorted already.
func (s *Store) Load(countries []restcountries.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Phase = PhaseReady
	s.snapshot.All = cloneCountries(countries)
	s.snapshot.Filtered = FilterByName(s.snapshot.All, s.snapshot.Query)
	s.snapshot.LastError = nil
	s.snapshot.LoadedAt = time.Now()
	s.clearSelection()
}

// Fail records a fetch failure. No country data survives a failure.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Phase = PhaseFailed
	s.snapshot.All = nil
	s.snapshot.Filtered = nil
	s.snapshot.LastError = err
	s.snapshot.LoadedAt = time.Now()
	s.clearSelection()
}

// SetQuery re-derives the filtered subsequence and returns it. The selection
// is kept even when the selected country no longer matches.
func (s *Store) SetQuery(query string) []restcountries.Country {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Query = query
	s.snapshot.Filtered = FilterByName(s.snapshot.All, query)
	return cloneCountries(s.snapshot.Filtered)
}

// Select makes the named country current and rebuilds the chart data,
// discarding the previous chart. It returns false when name is unknown.
func (s *Store) Select(name string) (restcountries.Country, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := FindByName(s.snapshot.All, name)
	if !ok {
		return restcountries.Country{}, false
	}
	s.snapshot.Selected = c
	s.snapshot.HasSelected = true
	s.snapshot.Peers = RegionPeers(s.snapshot.All, c, ChartLimit)
	return c, true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.All = cloneCountries(s.snapshot.All)
	snap.Filtered = cloneCountries(s.snapshot.Filtered)
	snap.Peers = cloneCountries(s.snapshot.Peers)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func (s *Store) clearSelection() {
	s.snapshot.Selected = restcountries.Country{}
	s.snapshot.HasSelected = false
	s.snapshot.Peers = nil
}
