package restcountries

import (
	"errors"
	"fmt"
)

// Stage names the step of a fetch that failed.
type Stage string

const (
	StageRequest Stage = "request"
	StageStatus  Stage = "status"
	StageDecode  Stage = "decode"
)

// FetchError is the single failure kind of the fetcher. It covers transport
// errors, non-success HTTP status and malformed payloads.
type FetchError struct {
	Stage      Stage
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch countries: %s failed", e.Stage)
	}
	return fmt.Sprintf("fetch countries: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is or wraps a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
