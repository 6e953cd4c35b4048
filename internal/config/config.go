// Package config provides configuration types and parsing for csvguard.
package config

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Defaults are the settings that can come from a config file or from
// CSVGUARD_* environment variables. Command-line flags override both.
type Defaults struct {
	// Root confines validated output paths to a directory; empty disables
	// confinement.
	Root string `mapstructure:"root"`

	// Permissions is the octal mode string applied to created files.
	Permissions string `mapstructure:"permissions"`
}

// LoadDefaults reads defaults from an optional YAML config file and the
// environment. An empty path skips the file entirely.
func LoadDefaults(path string) (*Defaults, error) {
	v := viper.New()
	v.SetEnvPrefix("CSVGUARD")
	v.AutomaticEnv()
	v.SetDefault("root", "")
	v.SetDefault("permissions", "0644")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &d, nil
}

// ParsePermissions converts an octal mode string such as "0644" or "600"
// to a file mode. Only permission bits are accepted.
func ParsePermissions(s string) (fs.FileMode, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0o")
	if s == "" {
		return 0, fmt.Errorf("permissions cannot be empty")
	}

	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permissions %q: %w", s, err)
	}
	if n == 0 || n > 0o777 {
		return 0, fmt.Errorf("invalid permissions %q: expected octal mode like 0644", s)
	}
	return fs.FileMode(n), nil
}

// ParseDelimiter converts a delimiter string to a rune.
// Valid values: "comma", "csv", "tab", "tsv", "auto".
// Returns 0 for auto-detection.
func ParseDelimiter(delimiterStr string) (rune, error) {
	switch strings.ToLower(delimiterStr) {
	case "comma", "csv":
		return ',', nil
	case "tab", "tsv":
		return '\t', nil
	case "auto":
		return 0, nil
	default:
		return 0, fmt.Errorf("invalid delimiter: %s (use 'comma', 'tab', or 'auto')", delimiterStr)
	}
}
