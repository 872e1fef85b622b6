package tinyfs

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/tinyfs/internal/compression"
	"github.com/MKhiriev/tinyfs/models"
)

// Entry is one named blob of a container.
//
// Every setter validates the entry as it would look after the change and
// only then commits it, so an Entry is never observed in an invalid state.
type Entry struct {
	name  string
	flags EntryFlags
	data  []byte

	// stored is data as written to disk (gzip member when GZip is set).
	// It is recomputed by validate whenever packed is false.
	stored []byte
	packed bool

	compressor compression.Compressor
	owner      *Container
}

// NewEntry creates an entry. If data is longer than [MaxDataLen] the entry is
// compressed automatically; it fails with [ErrDataTooLong] if even the
// compressed form does not fit.
func NewEntry(name string, data []byte) (*Entry, error) {
	var flags EntryFlags
	if len(data) > MaxDataLen {
		flags = GZip
	}
	return newEntry(name, data, flags, compression.Default())
}

// NewEntryWithFlags creates an entry with explicit flags. Unlike [NewEntry]
// it never turns compression on by itself.
func NewEntryWithFlags(name string, data []byte, flags EntryFlags) (*Entry, error) {
	return newEntry(name, data, flags, compression.Default())
}

func newEntry(name string, data []byte, flags EntryFlags, c compression.Compressor) (*Entry, error) {
	e := &Entry{
		name:       name,
		flags:      flags,
		data:       cloneBytes(data),
		compressor: c,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Name returns the entry name.
func (e *Entry) Name() string { return e.name }

// Flags returns the entry flags.
func (e *Entry) Flags() EntryFlags { return e.flags }

// Data returns a copy of the raw (decompressed) payload.
func (e *Entry) Data() []byte { return cloneBytes(e.data) }

// Size is the raw payload length.
func (e *Entry) Size() int { return len(e.data) }

// StoredSize is the payload length as written to disk.
func (e *Entry) StoredSize() int { return len(e.stored) }

// IsCompressed reports whether the payload is stored gzip-compressed.
func (e *Entry) IsCompressed() bool { return e.flags.Has(GZip) }

// SetName renames the entry. When the entry belongs to a container the new
// name must not collide with another entry under the container's comparison
// rule.
func (e *Entry) SetName(name string) error {
	if e.owner != nil {
		if other := e.owner.find(name); other != nil && other != e {
			return fmt.Errorf("%w: %q", models.ErrDuplicateName, name)
		}
	}
	return e.commit(func(c *Entry) { c.name = name })
}

// SetFlags replaces the entry flags.
func (e *Entry) SetFlags(flags EntryFlags) error {
	return e.commit(func(c *Entry) { c.flags = flags })
}

// SetData replaces the raw payload. The slice is copied.
func (e *Entry) SetData(data []byte) error {
	data = cloneBytes(data)
	return e.commit(func(c *Entry) { c.data = data })
}

// SetCompressed turns gzip storage on or off.
func (e *Entry) SetCompressed(on bool) error {
	flags := e.flags &^ GZip
	if on {
		flags |= GZip
	}
	return e.SetFlags(flags)
}

// IsCompressionRecommended reports whether gzip would make the stored form
// strictly smaller than the raw data.
func (e *Entry) IsCompressionRecommended() (bool, error) {
	gain, err := compression.Gain(e.comp(), e.data)
	if err != nil {
		return false, err
	}
	return gain > 0, nil
}

// Validate checks the entry against the format limits. Setters already do
// this; it is exported for entries built elsewhere and re-checked at save.
func (e *Entry) Validate() error {
	c := *e
	c.packed = false
	return c.validate()
}

// Clone returns an independent copy that belongs to no container.
func (e *Entry) Clone() *Entry {
	c := *e
	c.data = cloneBytes(e.data)
	if e.flags.Has(GZip) {
		c.stored = cloneBytes(e.stored)
	} else if e.packed {
		c.stored = c.data
	}
	c.owner = nil
	return &c
}

// commit applies mutate to a copy of e, validates the copy and replaces e
// with it on success.
func (e *Entry) commit(mutate func(*Entry)) error {
	candidate := *e
	mutate(&candidate)
	candidate.packed = false
	if err := candidate.validate(); err != nil {
		return err
	}
	*e = candidate
	return nil
}

func (e *Entry) validate() error {
	if err := validateName(e.name); err != nil {
		return err
	}
	if err := e.flags.Validate(); err != nil {
		return err
	}
	if e.data == nil {
		return ErrDataNotSet
	}
	if e.packed {
		return nil
	}
	if len(e.data) > MaxRawDataLen {
		return fmt.Errorf("%w: %q is %d bytes", ErrRawTooLong, e.name, len(e.data))
	}

	if e.flags.Has(GZip) {
		stored, err := compression.CompressWithin(e.comp(), e.data, MaxDataLen)
		if errors.Is(err, compression.ErrLimitExceeded) {
			return fmt.Errorf("%w: %q compresses to more than %d bytes", ErrDataTooLong, e.name, MaxDataLen)
		}
		if err != nil {
			return fmt.Errorf("compress %q: %w", e.name, err)
		}
		e.stored = stored
		e.packed = true
		return nil
	}

	if len(e.data) > MaxDataLen {
		if _, err := compression.CompressWithin(e.comp(), e.data, MaxDataLen); err == nil {
			return fmt.Errorf("%w: %q is %d bytes", models.ErrCompressionWouldFit, e.name, len(e.data))
		}
		return fmt.Errorf("%w: %q is %d bytes", ErrDataTooLong, e.name, len(e.data))
	}
	e.stored = e.data
	e.packed = true
	return nil
}

func (e *Entry) comp() compression.Compressor {
	if e.compressor == nil {
		return compression.Default()
	}
	return e.compressor
}

func validateName(name string) error {
	switch {
	case name == "":
		return ErrNameEmpty
	case len(name) > MaxNameLen:
		return fmt.Errorf("%w: got %d", ErrNameTooLong, len(name))
	case !utf8.ValidString(name):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
