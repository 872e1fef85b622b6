// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TINYFS_"

// StructuredConfig is the top-level configuration of the tinyfs tools. It is
// populated by merging values from environment variables, command-line
// flags and an optional JSON file.
type StructuredConfig struct {
	// App holds logging settings.
	App App

	// Crypto holds the credential sources for encrypted containers.
	Crypto Crypto

	// Codec holds compression and defaults for newly created containers.
	Codec Codec

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: TINYFS_CONFIG, flags: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: TINYFS_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// LogFile receives log output when set; otherwise logs go to stderr.
	// Env: TINYFS_LOG_FILE
	LogFile string `env:"LOG_FILE" json:"log_file"`
}

// Crypto holds where keys and passwords come from.
type Crypto struct {
	// Password protects encrypted containers. It is only read from the
	// environment so it never shows up in shell history or config files.
	// Env: TINYFS_PASS
	Password string `env:"PASS" json:"-"`

	// KeyFile is a file holding a raw 32-byte AES key. It takes precedence
	// over Password.
	// Env: TINYFS_KEY_FILE
	KeyFile string `env:"KEY_FILE" json:"key_file"`
}

// Codec holds compression settings and the flags given to new containers.
type Codec struct {
	// CompressionLevel is the gzip level: -1 for the default or 1..9.
	// Zero means unset.
	// Env: TINYFS_COMPRESSION_LEVEL
	CompressionLevel int `env:"COMPRESSION_LEVEL" json:"compression_level"`

	// UTF8Names stores names of new containers as UTF-8.
	// Env: TINYFS_UTF8_NAMES
	UTF8Names bool `env:"UTF8_NAMES" json:"utf8_names"`

	// CaseInsensitive makes new containers compare names ignoring case.
	// Env: TINYFS_CASE_INSENSITIVE
	CaseInsensitive bool `env:"CASE_INSENSITIVE" json:"case_insensitive"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags bound by [RegisterFlags]
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
