// Package web serves Atlas to a browser using fiber.
//
// Routes:
//
//	GET /                       explorer page (?q= filters, ?country= selects)
//	GET /chart?country=NAME     go-echarts population chart for NAME's region
//	GET /healthz                load phase and country count
//	GET /api/countries?q=       matching rows as JSON
//	GET /api/countries/:name    detail record and chart data as JSON
//
// Handlers only read from state.Store. Filtering and selection are derived
// per request with the state package's pure helpers, so one visitor's
// search never changes what another sees. Until the fetch completes the
// API answers 503; after a failed fetch it answers 502 with the generic
// error message. Unknown country names are 404.
package web
