package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates invalid logging settings (for example,
	// an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCodecConfigs indicates an unsupported compression level.
	ErrInvalidCodecConfigs = errors.New("invalid codec configuration")
)
