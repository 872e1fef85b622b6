package tinyfs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/tinyfs/internal/compression"
	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/models"
)

const (
	// Magic is the container signature, "TINY" when read as bytes.
	Magic uint32 = 0x594E4954

	// HeaderSize is magic plus the flag byte.
	HeaderSize = 5

	recordSize = 1 + 2 + 1

	// MaxTableSize is the largest possible plaintext table and data section.
	MaxTableSize = 1 + MaxEntries*(recordSize+MaxNameLen+MaxDataLen)

	// MaxEncryptedPayload bounds the length prefix of an encrypted payload.
	MaxEncryptedPayload = MaxTableSize + crypto.MaxOverhead
)

// Save serializes the container and writes it to w in a single call. When
// the container is marked encrypted cred must carry a key or password;
// otherwise cred is ignored. Nothing is written if any check fails.
func (c *Container) Save(w io.Writer, cred crypto.Credential) error {
	buf, err := c.Bytes(cred)
	if err != nil {
		return err
	}
	if _, err = w.Write(buf); err != nil {
		return fmt.Errorf("write container: %w", err)
	}
	return nil
}

// Bytes returns the serialized container.
func (c *Container) Bytes(cred crypto.Credential) ([]byte, error) {
	encrypted := c.IsEncrypted()
	if encrypted {
		if err := usable(cred); err != nil {
			return nil, err
		}
	}

	snapshot := make([]*Entry, len(c.entries))
	for i, e := range c.entries {
		snapshot[i] = e.Clone()
	}
	if err := c.checkSnapshot(snapshot); err != nil {
		return nil, err
	}
	sortEntries(snapshot)

	body := encodeBody(snapshot)

	out := make([]byte, 0, HeaderSize+binary.MaxVarintLen64+len(body)+crypto.MaxOverhead)
	out = binary.LittleEndian.AppendUint32(out, Magic)
	out = append(out, byte(c.flags))

	if !encrypted {
		return append(out, body...), nil
	}

	cipher, err := c.getCipher()
	if err != nil {
		return nil, err
	}
	payload, err := cipher.Encrypt(body, cred)
	if err != nil {
		return nil, fmt.Errorf("encrypt container: %w", err)
	}
	out = binary.AppendUvarint(out, uint64(len(payload)))
	return append(out, payload...), nil
}

func (c *Container) checkSnapshot(snapshot []*Entry) error {
	if len(snapshot) > MaxEntries {
		return ErrTableFull
	}
	ci := c.IsCaseInsensitive()
	utf8Names := c.UsesUTF8Names()
	seen := make(map[string]string, len(snapshot))

	for _, e := range snapshot {
		if err := e.validate(); err != nil {
			return fmt.Errorf("entry %q: %w", e.name, err)
		}
		if !utf8Names && !isASCII(e.name) {
			return fmt.Errorf("%w: %q", ErrNonASCIIName, e.name)
		}
		key := e.name
		if ci {
			key = foldName(key)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q and %q", models.ErrDuplicateName, prev, e.name)
		}
		seen[key] = e.name
	}
	return nil
}

func encodeBody(entries []*Entry) []byte {
	size := 1
	for _, e := range entries {
		size += recordSize + len(e.name) + len(e.stored)
	}

	body := make([]byte, 0, size)
	body = append(body, byte(len(entries)))
	for _, e := range entries {
		body = append(body, byte(e.flags))
		body = binary.LittleEndian.AppendUint16(body, uint16(len(e.stored)))
		body = append(body, byte(len(e.name)))
		body = append(body, e.name...)
	}
	for _, e := range entries {
		body = append(body, e.stored...)
	}
	return body
}

// Load decodes a container from r. cred is required when the header says
// the container is encrypted and ignored otherwise. On any error no
// container is returned.
//
// r is read only as far as the container extends, so a container followed
// by other data in the same stream loads and leaves that data unread.
func Load(r io.Reader, cred crypto.Credential, opts ...Option) (*Container, error) {
	flags, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	c := New(opts...)
	c.flags = flags

	var body []byte
	if flags.Has(Encrypted) {
		if err = usable(cred); err != nil {
			return nil, err
		}
		body, err = c.readEncrypted(r, cred)
	} else {
		body, err = readPlainBody(r)
	}
	if err != nil {
		return nil, err
	}

	entries, err := c.decodeBody(body)
	if err != nil {
		return nil, err
	}
	c.entries = entries
	return c, nil
}

// LoadBytes decodes a container from a buffer. Unlike [Load] it fails with
// [ErrTrailingData] if data continues past the end of the container.
func LoadBytes(data []byte, cred crypto.Credential, opts ...Option) (*Container, error) {
	r := bytes.NewReader(data)
	c, err := Load(r, cred, opts...)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return c, nil
}

// ReadInfo reads only the container header. It tells a caller whether a
// key or password is needed before a full [Load].
func ReadInfo(r io.Reader) (ContainerFlags, error) {
	return readHeader(r)
}

// ReadInfoBytes is [ReadInfo] over a buffer.
func ReadInfoBytes(data []byte) (ContainerFlags, error) {
	return readHeader(bytes.NewReader(data))
}

func readHeader(r io.Reader) (ContainerFlags, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, truncated(err, "header")
	}
	if binary.LittleEndian.Uint32(hdr[:4]) != Magic {
		return 0, ErrBadMagic
	}
	flags := ContainerFlags(hdr[4])
	if err := flags.Validate(); err != nil {
		return 0, err
	}
	return flags, nil
}

func (c *Container) readEncrypted(r io.Reader, cred crypto.Credential) ([]byte, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	n, err := binary.ReadUvarint(br)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: payload length", ErrTruncated)
		}
		return nil, fmt.Errorf("%w: %v", ErrPayloadLength, err)
	}
	if n == 0 || n > MaxEncryptedPayload {
		return nil, fmt.Errorf("%w: %d", ErrPayloadLength, n)
	}

	payload := make([]byte, n)
	if _, err = io.ReadFull(r, payload); err != nil {
		return nil, truncated(err, "encrypted payload")
	}

	cipher, err := c.getCipher()
	if err != nil {
		return nil, err
	}
	body, err := cipher.Decrypt(payload, cred)
	if err != nil {
		return nil, fmt.Errorf("decrypt container: %w", err)
	}
	return body, nil
}

// readPlainBody reads the table of an unencrypted container and then exactly
// the data blocks it announces. The bytes are returned in wire order for
// decodeBody.
func readPlainBody(r io.Reader) ([]byte, error) {
	body := make([]byte, 1, 1+recordSize)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, truncated(err, "entry count")
	}
	count := int(body[0])

	dataLen := 0
	for i := 0; i < count; i++ {
		start := len(body)
		body = append(body, make([]byte, recordSize)...)
		if _, err := io.ReadFull(r, body[start:]); err != nil {
			return nil, truncated(err, fmt.Sprintf("table record %d", i))
		}
		dataLen += int(binary.LittleEndian.Uint16(body[start+1:]))
		nameLen := int(body[start+3])

		start = len(body)
		body = append(body, make([]byte, nameLen)...)
		if _, err := io.ReadFull(r, body[start:]); err != nil {
			return nil, truncated(err, fmt.Sprintf("name of table record %d", i))
		}
	}

	start := len(body)
	body = append(body, make([]byte, dataLen)...)
	if _, err := io.ReadFull(r, body[start:]); err != nil {
		return nil, truncated(err, "entry data")
	}
	return body, nil
}

type record struct {
	flags EntryFlags
	size  int
	name  string
}

func (c *Container) decodeBody(body []byte) ([]*Entry, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("%w: entry count", ErrTruncated)
	}
	count := int(body[0])
	pos := 1

	ci := c.IsCaseInsensitive()
	utf8Names := c.UsesUTF8Names()
	seen := make(map[string]struct{}, count)
	records := make([]record, 0, count)

	for i := 0; i < count; i++ {
		if len(body)-pos < recordSize {
			return nil, fmt.Errorf("%w: table record %d", ErrTruncated, i)
		}
		rec := record{
			flags: EntryFlags(body[pos]),
			size:  int(binary.LittleEndian.Uint16(body[pos+1:])),
		}
		nameLen := int(body[pos+3])
		pos += recordSize

		if err := rec.flags.Validate(); err != nil {
			return nil, fmt.Errorf("table record %d: %w", i, err)
		}
		if nameLen == 0 {
			return nil, fmt.Errorf("table record %d: %w", i, ErrNameEmpty)
		}
		if len(body)-pos < nameLen {
			return nil, fmt.Errorf("%w: name of table record %d", ErrTruncated, i)
		}
		raw := body[pos : pos+nameLen]
		pos += nameLen

		if err := checkNameBytes(raw, utf8Names); err != nil {
			return nil, fmt.Errorf("table record %d: %w", i, err)
		}
		rec.name = string(raw)

		key := rec.name
		if ci {
			key = foldName(key)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate entry name %q", models.ErrFormat, rec.name)
		}
		seen[key] = struct{}{}
		records = append(records, rec)
	}

	entries := make([]*Entry, 0, count)
	for _, rec := range records {
		if len(body)-pos < rec.size {
			return nil, fmt.Errorf("%w: data of %q", ErrTruncated, rec.name)
		}
		stored := cloneBytes(body[pos : pos+rec.size])
		pos += rec.size

		data := stored
		if rec.flags.Has(GZip) {
			var err error
			data, err = compression.DecompressWithin(c.compressor, stored, MaxRawDataLen)
			if errors.Is(err, compression.ErrLimitExceeded) {
				return nil, fmt.Errorf("%w: entry %q: %w", models.ErrFormat, rec.name, ErrRawTooLong)
			}
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w", rec.name, err)
			}
		}
		entries = append(entries, &Entry{
			name:       rec.name,
			flags:      rec.flags,
			data:       data,
			stored:     stored,
			packed:     true,
			compressor: c.compressor,
			owner:      c,
		})
	}

	if pos != len(body) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, len(body)-pos)
	}
	return entries, nil
}

func (c *Container) getCipher() (crypto.Cipher, error) {
	if c.cipher != nil {
		return c.cipher, nil
	}
	cipher, err := crypto.NewAESGCM()
	if err != nil {
		return nil, err
	}
	c.cipher = cipher
	return cipher, nil
}

func checkNameBytes(raw []byte, utf8Names bool) error {
	if utf8Names {
		if !utf8.Valid(raw) {
			return fmt.Errorf("%w: %q", ErrInvalidName, raw)
		}
		return nil
	}
	if !isASCII(string(raw)) {
		return fmt.Errorf("%w: %q", ErrNonASCIIName, raw)
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// usable rejects a missing credential with models.ErrCredentialsRequired and
// a malformed one with the error kind crypto assigns to it.
func usable(cred crypto.Credential) error {
	if cred.IsZero() {
		return models.ErrCredentialsRequired
	}
	if err := cred.Validate(); err != nil {
		return fmt.Errorf("credential: %w", err)
	}
	return nil
}

func truncated(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrTruncated, what)
	}
	return fmt.Errorf("read %s: %w", what, err)
}

// byteReader adapts an io.Reader for binary.ReadUvarint without buffering
// past the varint.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}
