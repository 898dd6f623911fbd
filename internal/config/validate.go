package config

import (
	"github.com/AndreyAkinshin/alike/internal/errors"
	"github.com/AndreyAkinshin/alike/pkg/report"
)

// Validate checks a configuration for invalid values. It expects
// defaults to have been applied.
func Validate(cfg *Config) error {
	if cfg.Report != nil {
		if _, err := report.ParseStyle(cfg.Report.Style); err != nil {
			return errors.Configf("report.style: %v", err)
		}
		if _, err := report.ParseVerbosity(cfg.Report.Verbosity); err != nil {
			return errors.Configf("report.verbosity: %v", err)
		}
		if cfg.Report.MaxWidth < 12 {
			return errors.Configf("report.max_width must be at least 12, got %d", cfg.Report.MaxWidth)
		}
	}

	if cfg.Compare != nil && cfg.Compare.MaxDepth < 1 {
		return errors.Configf("compare.max_depth must be at least 1, got %d", cfg.Compare.MaxDepth)
	}

	return nil
}
