// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tinyfs

import (
	"fmt"

	"github.com/MKhiriev/tinyfs/models"
)

// format errors
var (
	ErrBadMagic                   = fmt.Errorf("%w: bad magic number", models.ErrFormat)
	ErrTruncated                  = fmt.Errorf("%w: unexpected end of data", models.ErrFormat)
	ErrTrailingData               = fmt.Errorf("%w: unexpected data after the last entry", models.ErrFormat)
	ErrPayloadLength              = fmt.Errorf("%w: encrypted payload length out of range", models.ErrFormat)
	ErrReservedFlags              = fmt.Errorf("%w: reserved flag bits are set", models.ErrFormat)
	ErrEntryEncryptionUnsupported = fmt.Errorf("%w: per-entry encryption is not supported", models.ErrFormat)
	ErrNameEmpty                  = fmt.Errorf("%w: entry name cannot be empty", models.ErrFormat)
	ErrInvalidName                = fmt.Errorf("%w: entry name is not valid UTF-8", models.ErrFormat)
	ErrNonASCIIName               = fmt.Errorf("%w: entry name is not ASCII and UTF-8 names are disabled", models.ErrFormat)
)

// capacity errors
var (
	ErrTableFull   = models.ErrTableFull
	ErrNameTooLong = fmt.Errorf("%w: entry name can be at most %d bytes", models.ErrCapacity, MaxNameLen)
	ErrDataTooLong = fmt.Errorf("%w: entry data can be at most %d bytes", models.ErrCapacity, MaxDataLen)
	ErrRawTooLong  = fmt.Errorf("%w: uncompressed entry data can be at most %d bytes", models.ErrCapacity, MaxRawDataLen)
)

// state errors
var (
	ErrDataNotSet    = fmt.Errorf("%w: entry data is not set", models.ErrInvalidState)
	ErrEntryOwned    = fmt.Errorf("%w: entry already belongs to a container", models.ErrInvalidState)
	ErrCaseCollision = fmt.Errorf("%w: names would collide when compared case-insensitively", models.ErrInvalidState)
)
