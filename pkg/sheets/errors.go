package sheets

import "errors"

var (
	// ErrMissingConfig is returned when a required configuration value is absent
	ErrMissingConfig = errors.New("sheets: missing configuration")

	// ErrNetworkError is returned when there's a network communication error
	ErrNetworkError = errors.New("sheets: network error")

	// ErrAPIError is returned when the Sheets API answers with a non-2xx status
	ErrAPIError = errors.New("sheets: api error")
)
