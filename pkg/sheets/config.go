package sheets

// Config represents the configuration for the Google Sheets values client
type Config struct {
	// SheetID is the spreadsheet identifier from the sheet URL
	SheetID string

	// SheetName is the tab holding the store column
	SheetName string

	// APIKey is the Google API key with Sheets read access
	APIKey string

	// BaseURL is the Sheets API base URL (overridable for tests)
	BaseURL string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.SheetID == "" {
		return ErrMissingConfig
	}
	if c.SheetName == "" {
		return ErrMissingConfig
	}
	if c.APIKey == "" {
		return ErrMissingConfig
	}
	if c.BaseURL == "" {
		return ErrMissingConfig
	}
	return nil
}
