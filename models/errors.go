// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Error kinds shared by the codec layers. Every error returned by the
// compression, crypto and tinyfs packages wraps exactly one of these, so
// callers can classify failures with [errors.Is].
var (
	// ErrFormat is returned when a byte stream is not a TinyFS container or
	// its table is malformed: bad magic, truncated fields, reserved bits set,
	// duplicate names or lengths that disagree with the data present.
	ErrFormat = errors.New("invalid tinyfs format")

	// ErrAuthentication is returned when AEAD tag verification fails, which
	// means a wrong key or password, or tampered ciphertext.
	ErrAuthentication = errors.New("authentication failed")

	// ErrCapacity is returned when an entry count, name length or data
	// length exceeds the bounds of the format.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrDuplicateName is returned when two entries compare equal under the
	// active name comparison rule.
	ErrDuplicateName = errors.New("duplicate entry name")

	// ErrNotFound is returned when a lookup by name finds no entry.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidState is returned when an operation is not allowed in the
	// current state of the container.
	ErrInvalidState = errors.New("invalid state")

	// ErrUnsupportedPlatform is returned when the AES-GCM primitive fails its
	// capability probe on the running platform.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Derived errors. Each one wraps a kind above and adds a more specific
// diagnostic; it never changes how a caller should react.
var (
	// ErrCompressionWouldFit reports an uncompressed entry that is too long
	// but would fit once compressed.
	ErrCompressionWouldFit = fmt.Errorf("%w: data is too long but enabling compression would make it fit", ErrCapacity)

	// ErrCredentialsRequired is returned when an encrypted container is
	// loaded or saved without a key or password.
	ErrCredentialsRequired = fmt.Errorf("%w: container is encrypted but no key or password was supplied", ErrInvalidState)

	// ErrLastEntry is returned when deleting the only remaining entry.
	ErrLastEntry = fmt.Errorf("%w: cannot delete the last entry", ErrCapacity)

	// ErrTableFull is returned when adding an entry to a container that
	// already holds the maximum number of entries.
	ErrTableFull = fmt.Errorf("%w: entry table is full", ErrCapacity)
)
