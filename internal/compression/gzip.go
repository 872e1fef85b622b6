// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package compression implements the per-entry payload compression used by
// TinyFS containers.
//
// Entries are stored as standard gzip members produced by
// klauspost/compress, which keeps the on-disk data readable by any gzip
// implementation. Empty input is never wrapped in a gzip header: it
// compresses and decompresses to an empty slice.
package compression

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// MinDataSizeForCompression is the smallest input for which compression is
// even attempted by [Gain]. The gzip header, footer and block overhead add
// about 18 bytes, so anything shorter can only grow.
const MinDataSizeForCompression = 24

// DefaultLevel is the gzip level used by [Default].
const DefaultLevel = gzip.DefaultCompression

type gzipCompressor struct {
	level int
}

// NewGzipCompressor constructs a [LimitedCompressor] writing gzip members at
// the given level. Accepted levels are [gzip.DefaultCompression] (-1) and
// 1 through 9.
func NewGzipCompressor(level int) (LimitedCompressor, error) {
	if level != gzip.DefaultCompression && (level < gzip.BestSpeed || level > gzip.BestCompression) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return &gzipCompressor{level: level}, nil
}

// Default returns a gzip compressor at [DefaultLevel].
func Default() LimitedCompressor {
	return &gzipCompressor{level: DefaultLevel}
}

// Compress implements [Compressor].
func (g *gzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	gw, err := gzip.NewWriterLevel(&buf, g.level)
	if err != nil {
		return nil, fmt.Errorf("create gzip writer: %w", err)
	}
	if _, err = gw.Write(data); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err = gw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress implements [Compressor].
func (g *gzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer gr.Close()

	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	return out, nil
}

// CompressLimit implements [LimitedCompressor].
func (g *gzipCompressor) CompressLimit(dst io.Writer, src io.Reader, limit int) (int64, error) {
	br := bufio.NewReader(src)
	if empty, err := isEmpty(br); err != nil || empty {
		return 0, err
	}

	lw := &limitWriter{w: dst, remaining: int64(limit)}
	gw, err := gzip.NewWriterLevel(lw, g.level)
	if err != nil {
		return 0, fmt.Errorf("create gzip writer: %w", err)
	}
	if _, err = io.Copy(gw, br); err != nil {
		return lw.written, limitOr(err, "gzip write")
	}
	if err = gw.Close(); err != nil {
		return lw.written, limitOr(err, "gzip close")
	}
	return lw.written, nil
}

// DecompressLimit implements [LimitedCompressor].
func (g *gzipCompressor) DecompressLimit(dst io.Writer, src io.Reader, limit int) (int64, error) {
	br := bufio.NewReader(src)
	if empty, err := isEmpty(br); err != nil || empty {
		return 0, err
	}

	gr, err := gzip.NewReader(br)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer gr.Close()

	lw := &limitWriter{w: dst, remaining: int64(limit)}
	if _, err = io.Copy(lw, gr); err != nil {
		if errors.Is(err, ErrLimitExceeded) {
			return lw.written, err
		}
		return lw.written, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	return lw.written, nil
}

// Gain returns how many bytes compressing data with c would save, or zero if
// compression would not shrink it. Inputs shorter than
// [MinDataSizeForCompression] return zero without compressing.
func Gain(c Compressor, data []byte) (int, error) {
	if len(data) < MinDataSizeForCompression {
		return 0, nil
	}
	compressed, err := c.Compress(data)
	if err != nil {
		return 0, err
	}
	return max(0, len(data)-len(compressed)), nil
}

// CompressWithin compresses data and fails with [ErrLimitExceeded] if the
// result is longer than limit. A [LimitedCompressor] stops as soon as the
// limit is crossed; other compressors are checked after the fact.
func CompressWithin(c Compressor, data []byte, limit int) ([]byte, error) {
	if lc, ok := c.(LimitedCompressor); ok {
		var buf bytes.Buffer
		if _, err := lc.CompressLimit(&buf, bytes.NewReader(data), limit); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	compressed, err := c.Compress(data)
	if err != nil {
		return nil, err
	}
	if len(compressed) > limit {
		return nil, ErrLimitExceeded
	}
	return compressed, nil
}

// DecompressWithin decompresses data and fails with [ErrLimitExceeded] if the
// result would be longer than limit. A [LimitedCompressor] stops inflating as
// soon as the limit is crossed.
func DecompressWithin(c Compressor, data []byte, limit int) ([]byte, error) {
	if lc, ok := c.(LimitedCompressor); ok {
		buf := bytes.NewBuffer(make([]byte, 0, min(limit, 4*len(data))))
		if _, err := lc.DecompressLimit(buf, bytes.NewReader(data), limit); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	out, err := c.Decompress(data)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		return nil, ErrLimitExceeded
	}
	return out, nil
}

func isEmpty(br *bufio.Reader) (bool, error) {
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, fmt.Errorf("read input: %w", err)
	}
	return false, nil
}

func limitOr(err error, op string) error {
	if errors.Is(err, ErrLimitExceeded) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// limitWriter forwards writes to w until remaining is used up. A write that
// would cross the limit is rejected whole.
type limitWriter struct {
	w         io.Writer
	remaining int64
	written   int64
}

func (l *limitWriter) Write(p []byte) (int, error) {
	if int64(len(p)) > l.remaining {
		return 0, ErrLimitExceeded
	}
	n, err := l.w.Write(p)
	l.remaining -= int64(n)
	l.written += int64(n)
	return n, err
}
