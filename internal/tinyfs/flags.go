package tinyfs

import (
	"fmt"
	"strings"
)

// ContainerFlags is the flag byte of the container header.
type ContainerFlags uint8

const (
	// CaseInsensitive makes every name comparison fold case with an
	// uppercase mapping.
	CaseInsensitive ContainerFlags = 1 << iota
	// Encrypted marks a container whose table and data are sealed with
	// AES-256-GCM.
	Encrypted
	// UTF8Names stores names as UTF-8. Without it names must be ASCII.
	UTF8Names

	containerFlagsMask = CaseInsensitive | Encrypted | UTF8Names
)

// Has reports whether every bit of flag is set in f.
func (f ContainerFlags) Has(flag ContainerFlags) bool {
	return f&flag == flag
}

func (f ContainerFlags) with(flag ContainerFlags, on bool) ContainerFlags {
	if on {
		return f | flag
	}
	return f &^ flag
}

// Validate rejects reserved bits.
func (f ContainerFlags) Validate() error {
	if f&^containerFlagsMask != 0 {
		return fmt.Errorf("%w: container flags 0x%02x", ErrReservedFlags, uint8(f))
	}
	return nil
}

func (f ContainerFlags) String() string {
	return flagString(uint8(f), []string{"case-insensitive", "encrypted", "utf8"})
}

// EntryFlags is the flag byte of a table record.
type EntryFlags uint8

const (
	// EntryEncrypted is reserved for per-entry encryption. It is not
	// supported and is rejected wherever it appears.
	EntryEncrypted EntryFlags = 1 << iota
	// GZip marks an entry whose stored payload is a gzip member.
	GZip

	entryFlagsMask = EntryEncrypted | GZip
)

// Has reports whether every bit of flag is set in f.
func (f EntryFlags) Has(flag EntryFlags) bool {
	return f&flag == flag
}

// Validate rejects reserved bits and the per-entry encryption bit.
func (f EntryFlags) Validate() error {
	if f&^entryFlagsMask != 0 {
		return fmt.Errorf("%w: entry flags 0x%02x", ErrReservedFlags, uint8(f))
	}
	if f.Has(EntryEncrypted) {
		return ErrEntryEncryptionUnsupported
	}
	return nil
}

func (f EntryFlags) String() string {
	return flagString(uint8(f), []string{"encrypted", "gzip"})
}

func flagString(v uint8, names []string) string {
	if v == 0 {
		return "none"
	}
	var parts []string
	for i, name := range names {
		if v&(1<<i) != 0 {
			parts = append(parts, name)
			v &^= 1 << i
		}
	}
	if v != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", v))
	}
	return strings.Join(parts, "|")
}
