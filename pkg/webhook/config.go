package webhook

import "time"

// Config represents the configuration for the workflow-automation webhook client
type Config struct {
	// URL is the webhook endpoint that receives finished submissions
	URL string

	// Token is an optional static bearer token; no header is sent when empty
	Token string

	// Timeout bounds a single delivery attempt; there are no retries
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrMissingURL
	}
	return nil
}
