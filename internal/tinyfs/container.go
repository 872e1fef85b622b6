// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tinyfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/tinyfs/internal/compression"
	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/models"
)

const (
	// MaxEntries is the largest number of entries a container can hold.
	MaxEntries = 255
	// MaxNameLen is the longest entry name in bytes.
	MaxNameLen = 255
	// MaxDataLen is the longest stored payload of a single entry.
	MaxDataLen = 65535

	// MaxRawDataLen is the longest decompressed payload of a single entry.
	// Loading stops inflating a gzip block at this size.
	MaxRawDataLen = 16 << 20
)

// Container is an in-memory TinyFS container.
//
// A Container is not safe for concurrent use. Save works on a snapshot of
// the entries, which only keeps the written bytes consistent if another
// goroutine mutates entries mid-write; it does not make the type
// goroutine-safe.
type Container struct {
	flags   ContainerFlags
	entries []*Entry

	compressor compression.Compressor
	cipher     crypto.Cipher
}

// Option configures a Container.
type Option func(*Container)

// WithCompressor sets the compressor used for entries of the container.
func WithCompressor(c compression.Compressor) Option {
	return func(ct *Container) {
		ct.compressor = c
	}
}

// WithCipher sets the cipher used for encrypted containers. Without it the
// AES-256-GCM cipher is created on first use.
func WithCipher(c crypto.Cipher) Option {
	return func(ct *Container) {
		ct.cipher = c
	}
}

// New returns an empty container with all flags cleared.
func New(opts ...Option) *Container {
	c := &Container{}
	for _, opt := range opts {
		opt(c)
	}
	if c.compressor == nil {
		c.compressor = compression.Default()
	}
	return c
}

// Flags returns the container flags.
func (c *Container) Flags() ContainerFlags { return c.flags }

// Len returns the number of entries.
func (c *Container) Len() int { return len(c.entries) }

// Names returns the entry names in on-disk order.
func (c *Container) Names() []string {
	sorted := slices.Clone(c.entries)
	sortEntries(sorted)

	names := make([]string, len(sorted))
	for i, e := range sorted {
		names[i] = e.name
	}
	return names
}

// Entries returns the live entries in on-disk order.
func (c *Container) Entries() []*Entry {
	sorted := slices.Clone(c.entries)
	sortEntries(sorted)
	return sorted
}

// Has reports whether an entry with the given name exists.
func (c *Container) Has(name string) bool {
	return c.find(name) != nil
}

// Get returns the entry with the given name. The returned entry is live:
// its setters change the container.
func (c *Container) Get(name string) (*Entry, error) {
	e := c.find(name)
	if e == nil {
		return nil, fmt.Errorf("%w: %q", models.ErrNotFound, name)
	}
	return e, nil
}

// Set stores data under name, adding an entry or replacing the data of an
// existing one. Data longer than [MaxDataLen] is compressed automatically.
func (c *Container) Set(name string, data []byte) (*Entry, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrDataNotSet
	}
	force := len(data) > MaxDataLen

	if e := c.find(name); e != nil {
		data = cloneBytes(data)
		err := e.commit(func(cand *Entry) {
			cand.data = data
			if force {
				cand.flags |= GZip
			}
		})
		if err != nil {
			return nil, err
		}
		return e, nil
	}

	if len(c.entries) >= MaxEntries {
		return nil, ErrTableFull
	}
	var flags EntryFlags
	if force {
		flags = GZip
	}
	e, err := newEntry(name, data, flags, c.compressor)
	if err != nil {
		return nil, err
	}
	e.owner = c
	c.entries = append(c.entries, e)
	return e, nil
}

// SetEntry stores a prebuilt entry, keeping its flags. A new name inserts a
// copy of entry; an existing name receives a copy of its data and flags.
// Passing an entry that already belongs to a container is an error.
func (c *Container) SetEntry(entry *Entry) (*Entry, error) {
	if entry == nil {
		return nil, fmt.Errorf("%w: nil entry", models.ErrInvalidState)
	}
	if entry.owner != nil {
		return nil, ErrEntryOwned
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid entry: %w", err)
	}

	if e := c.find(entry.name); e != nil {
		data := cloneBytes(entry.data)
		err := e.commit(func(cand *Entry) {
			cand.data = data
			cand.flags = entry.flags
		})
		if err != nil {
			return nil, err
		}
		return e, nil
	}

	if len(c.entries) >= MaxEntries {
		return nil, ErrTableFull
	}
	e := entry.Clone()
	e.compressor = c.compressor
	e.packed = false
	if err := e.validate(); err != nil {
		return nil, err
	}
	e.owner = c
	c.entries = append(c.entries, e)
	return e, nil
}

// Delete removes and returns the entry with the given name. The last
// remaining entry cannot be deleted.
func (c *Container) Delete(name string) (*Entry, error) {
	idx := c.index(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", models.ErrNotFound, name)
	}
	if len(c.entries) == 1 {
		return nil, models.ErrLastEntry
	}

	e := c.entries[idx]
	c.entries = slices.Delete(c.entries, idx, idx+1)
	e.owner = nil
	return e, nil
}

// IsCaseInsensitive reports whether names are compared ignoring case.
func (c *Container) IsCaseInsensitive() bool { return c.flags.Has(CaseInsensitive) }

// IsEncrypted reports whether the next save encrypts the container.
func (c *Container) IsEncrypted() bool { return c.flags.Has(Encrypted) }

// UsesUTF8Names reports whether names are stored as UTF-8.
func (c *Container) UsesUTF8Names() bool { return c.flags.Has(UTF8Names) }

// SetCaseInsensitive switches the name comparison rule. Turning it on fails
// with [ErrCaseCollision] if two existing names differ only in case.
func (c *Container) SetCaseInsensitive(on bool) error {
	if on && !c.IsCaseInsensitive() {
		seen := make(map[string]string, len(c.entries))
		for _, e := range c.entries {
			key := foldName(e.name)
			if prev, ok := seen[key]; ok {
				return fmt.Errorf("%w: %q and %q", ErrCaseCollision, prev, e.name)
			}
			seen[key] = e.name
		}
	}
	c.flags = c.flags.with(CaseInsensitive, on)
	return nil
}

// SetEncrypted only marks the container. Encryption happens at the next
// save, which then requires a key or password.
func (c *Container) SetEncrypted(on bool) {
	c.flags = c.flags.with(Encrypted, on)
}

// SetUTF8Names selects how names are encoded on the next save.
func (c *Container) SetUTF8Names(on bool) {
	c.flags = c.flags.with(UTF8Names, on)
}

func (c *Container) find(name string) *Entry {
	if idx := c.index(name); idx >= 0 {
		return c.entries[idx]
	}
	return nil
}

func (c *Container) index(name string) int {
	ci := c.IsCaseInsensitive()
	return slices.IndexFunc(c.entries, func(e *Entry) bool {
		return namesEqual(e.name, name, ci)
	})
}

func namesEqual(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return foldName(a) == foldName(b)
	}
	return a == b
}

// foldName is a plain uppercase mapping, never locale aware.
func foldName(name string) string {
	return strings.ToUpper(name)
}

// sortEntries orders entries by uppercase name, then by exact name. The
// order is part of the file format.
func sortEntries(entries []*Entry) {
	slices.SortFunc(entries, func(a, b *Entry) int {
		if r := strings.Compare(foldName(a.name), foldName(b.name)); r != 0 {
			return r
		}
		return strings.Compare(a.name, b.name)
	})
}
