package config

// Default configuration values.
const (
	DefaultStyle     = "plain"
	DefaultVerbosity = "verbose"
	DefaultMaxWidth  = 120
	DefaultMaxDepth  = 99
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Report == nil {
		cfg.Report = &ReportConfig{}
	}
	if cfg.Report.Style == "" {
		cfg.Report.Style = DefaultStyle
	}
	if cfg.Report.Verbosity == "" {
		cfg.Report.Verbosity = DefaultVerbosity
	}
	if cfg.Report.MaxWidth == 0 {
		cfg.Report.MaxWidth = DefaultMaxWidth
	}

	if cfg.Compare == nil {
		cfg.Compare = &CompareConfig{}
	}
	if cfg.Compare.MaxDepth == 0 {
		cfg.Compare.MaxDepth = DefaultMaxDepth
	}
}
