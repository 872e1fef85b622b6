// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/tinyfs/internal/crypto"
)

// Client defines the lifecycle contract of a command line application.
type Client interface {
	// Run executes args (without the program name) and returns the process
	// exit code.
	Run(ctx context.Context, args []string) int
}

// Browser opens an interactive view of a container.
type Browser interface {
	Browse(ctx context.Context, path string, cred crypto.Credential) error
}

// Prompter reads a secret from the user.
type Prompter interface {
	ReadPassword(prompt string) (string, error)
}
