// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
// Setting both a key file and a password is allowed; the key file wins.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	if lvl := cfg.Codec.CompressionLevel; lvl != 0 && lvl != -1 && (lvl < 1 || lvl > 9) {
		return fmt.Errorf("%w: compression level %d", ErrInvalidCodecConfigs, lvl)
	}

	return nil
}
