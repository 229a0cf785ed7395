package youtube

import (
	"errors"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNoChannel is reported when the account has no channel to fetch
	// comment threads for. It is a soft condition, not a failure.
	ErrNoChannel = errors.New("no channel found for this account")

	// ErrNoFetcher is reported for categories without a fetch call.
	ErrNoFetcher = errors.New("no fetcher for this category")
)

// IsNoChannel reports whether err is ErrNoChannel, wrapped or not.
func IsNoChannel(err error) bool {
	return errors.Is(err, ErrNoChannel)
}

// AsHTTPError extracts an API-level HTTP error, if that is what err is.
// Anything else is treated as an unexpected error by the callers.
func AsHTTPError(err error) (*googleapi.Error, bool) {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
