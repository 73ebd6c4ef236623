package cli

// Config stores CLI options for a single run.
type Config struct {
	ConfigPath string
	Types      []string
	// StringIsValueType overrides the project configuration when non-nil.
	StringIsValueType *bool
	Format            string
	Filename          string
	ShowVersion       bool
}

// OutputFilename returns the report path; empty means stdout.
func (c *Config) OutputFilename() string {
	return c.Filename
}

// ReportFormat returns the report format for the report layer.
func (c *Config) ReportFormat() string {
	return c.Format
}
