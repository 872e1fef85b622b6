// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package compression

import "io"

// Compressor is the two-function contract the container codec relies on for
// per-entry payload compression. Implementations must be stateless and must
// map an empty input to an empty output in both directions.
type Compressor interface {
	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress. Corrupt input is reported as
	// models.ErrFormat.
	Decompress(data []byte) ([]byte, error)
}

// LimitedCompressor is a [Compressor] that can also work on streams while
// bounding its output. Both methods stop with [ErrLimitExceeded] as soon as
// the bytes written to dst would exceed limit, instead of producing the whole
// result first and checking its length afterwards.
type LimitedCompressor interface {
	Compressor

	// CompressLimit compresses everything read from src into dst and
	// returns the number of compressed bytes written.
	CompressLimit(dst io.Writer, src io.Reader, limit int) (int64, error)

	// DecompressLimit decompresses src into dst and returns the number of
	// decompressed bytes written.
	DecompressLimit(dst io.Writer, src io.Reader, limit int) (int64, error)
}
