package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/five82/atlas/internal/restcountries"
	"github.com/five82/atlas/internal/state"
)

// Load fetches the country collection once and records the outcome in the
// store. There is no retry; a failure leaves the store in the failed phase
// with no country data.
func Load(ctx context.Context, store *state.Store, fetcher restcountries.CountryFetcher, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	started := time.Now()
	logger.Info("country fetch started")

	countries, err := fetcher.FetchCountries(ctx)
	if err != nil {
		store.Fail(err)
		attrs := []any{"error", err, "elapsed", time.Since(started)}
		var fe *restcountries.FetchError
		if errors.As(err, &fe) {
			attrs = append(attrs, "stage", string(fe.Stage))
			if fe.StatusCode != 0 {
				attrs = append(attrs, "status", fe.StatusCode)
			}
		}
		logger.Error("country fetch failed", attrs...)
		return err
	}

	store.Load(countries)
	logger.Info("country fetch finished", "count", len(countries), "elapsed", time.Since(started))
	return nil
}

// StartLoader runs Load in the background and returns a channel that receives
// its result and is then closed.
func StartLoader(ctx context.Context, store *state.Store, fetcher restcountries.CountryFetcher, logger *slog.Logger) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- Load(ctx, store, fetcher, logger)
	}()
	return done
}
