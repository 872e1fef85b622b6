package tui

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	previewLines = 12
	previewBytes = 192
)

// preview renders data as text when it is printable UTF-8 and as a hex dump
// otherwise. Both forms are cut to maxLines lines.
func preview(data []byte, maxLines int) string {
	if len(data) == 0 {
		return "(empty)"
	}
	if isText(data) {
		return headLines(string(data), maxLines)
	}
	n := min(len(data), previewBytes)
	return headLines(strings.TrimRight(hex.Dump(data[:n]), "\n"), maxLines)
}

func isText(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	for _, r := range string(data) {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func headLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "\n…"
}
