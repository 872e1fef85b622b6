// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing message strings shared by the CLI and
// the terminal browser.
//
// Msg* constants describe why an operation failed, keyed by error kind. The
// CLI prints them to stderr and the browser shows them in its error overlay,
// so both front ends use the same wording.
package app

const (
	// MsgInvalidFormat is shown when a container file is corrupt, truncated,
	// or not a container at all.
	MsgInvalidFormat = "invalid container format"

	// MsgAuthenticationFailed is shown when decryption fails: wrong password
	// or key, or the ciphertext was modified.
	MsgAuthenticationFailed = "wrong password or key, or the container was tampered with"

	// MsgCapacityExceeded is shown when a name, entry or table is larger than
	// the format allows.
	MsgCapacityExceeded = "container capacity exceeded"

	// MsgLastEntry is shown when removing the only remaining entry.
	MsgLastEntry = "cannot remove the last entry of a container"

	MsgDuplicateName = "an entry with this name already exists"

	MsgEntryNotFound = "entry not found"

	MsgContainerNotFound = "container not found"

	// MsgCredentialsRequired is shown when an encrypted container is opened
	// without TINYFS_PASS, a key file, or an interactive terminal.
	MsgCredentialsRequired = "container is encrypted: set TINYFS_PASS or --key-file"

	MsgInvalidState = "operation not allowed in the current state"

	// MsgUnsupportedPlatform is shown when AES-256-GCM cannot be initialized.
	MsgUnsupportedPlatform = "encryption is not supported on this platform"

	MsgInvalidUsage = "invalid usage"

	MsgInvalidConfig = "invalid configuration"

	// MsgOperationFailed is the fallback for errors of no known kind, such
	// as I/O failures.
	MsgOperationFailed = "operation failed"
)
