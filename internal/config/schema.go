// Package config provides loading and validation for .alike/config.json.
package config

// Config represents the complete .alike/config.json configuration.
type Config struct {
	Report  *ReportConfig  `json:"report,omitempty"`
	Compare *CompareConfig `json:"compare,omitempty"`
}

// ReportConfig configures report rendering defaults.
type ReportConfig struct {
	// Style selects the output format: "plain", "ansi", "html", "json".
	Style string `json:"style,omitempty"`

	// Verbosity selects the detail level: "quiet", "verbose", "very",
	// "veryvery".
	Verbosity string `json:"verbosity,omitempty"`

	// Color forces color on or off for the live writer. Nil means
	// auto-detect.
	Color *bool `json:"color,omitempty"`

	// MaxWidth is the display column budget for truncated values.
	MaxWidth int `json:"max_width,omitempty"`
}

// CompareConfig configures comparison behavior.
type CompareConfig struct {
	// MaxDepth is the recursion budget for deep comparison.
	MaxDepth int `json:"max_depth,omitempty"`
}
