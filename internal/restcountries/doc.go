// Package restcountries provides an HTTP client for the REST Countries API.
//
// # Overview
//
// Atlas loads the whole country collection once at startup. This package owns
// that request, the wire types it decodes into, and the name ordering every
// frontend relies on.
//
// # Architecture
//
//   - client.go: HTTP client and the single collection request
//   - types.go: Country and its nested wire types plus display accessors
//   - sort.go: locale-aware, stable ordering by display name
//   - errors.go: FetchError, the only failure kind
//
// # Client Usage
//
//	client, err := restcountries.NewClient(cfg.APIURL, cfg.RequestTimeout())
//	if err != nil {
//		return err
//	}
//	countries, err := client.FetchCountries(ctx)
//	if err != nil {
//		// err is a *restcountries.FetchError
//	}
//
// # Field Projection
//
// Requests always carry
//
//	fields=name,region,capital,population,flags,languages,currencies
//
// regardless of the query configured in api_url. The API rejects /all requests
// without a projection, and the rest of Atlas only reads those fields.
//
// # Error Handling
//
// Transport failures, non-2xx responses and malformed JSON are all reported as
// *FetchError with a Stage of request, status or decode. Callers show a
// generic error state; there is no retry.
package restcountries
