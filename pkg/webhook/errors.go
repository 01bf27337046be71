package webhook

import "errors"

var (
	// ErrMissingURL is returned when no webhook endpoint is configured
	ErrMissingURL = errors.New("webhook: missing endpoint URL")

	// ErrNetworkError is returned when there's a network communication error
	ErrNetworkError = errors.New("webhook: network error")

	// ErrDeliveryFailed is returned when the endpoint answers with a non-2xx status
	ErrDeliveryFailed = errors.New("webhook: delivery failed")
)
