// Package app is the composition root for Atlas.
//
// Run loads the config, opens the JSON log file, builds the REST Countries
// client and the shared state.Store, then starts one frontend:
//
//   - With a listen address (the -serve flag or listen in config.toml) it
//     fetches in the background and serves the web frontend until the
//     context is cancelled.
//   - Otherwise it runs the terminal UI, which triggers the fetch from its
//     Init command so the spinner is visible while the request is in flight.
//
// # Loading
//
// Load performs exactly one fetch per process. On success the sorted list
// goes into the store; on failure the store moves to the failed phase with
// no country data and the error is logged with its fetch stage. There is no
// retry and no periodic refresh.
//
//	┌──────────┐  FetchCountries  ┌───────────────┐
//	│  Load()  │ ───────────────▶ │ restcountries │
//	└────┬─────┘                  └───────────────┘
//	     │ Load / Fail
//	     ▼
//	┌──────────┐  Snapshot   ┌────────────┐
//	│  Store   │ ──────────▶ │ ui / web   │
//	└──────────┘             └────────────┘
package app
