package tinyfs

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tinyfs/models"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func compressible(n int) []byte {
	return bytes.Repeat([]byte("tinyfs compresses this line well. "), n/34+1)[:n]
}

func TestNewEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		data    []byte
		wantErr error
		gzip    bool
	}{
		{name: "small", entry: "a.txt", data: []byte("hello")},
		{name: "empty data", entry: "empty", data: []byte{}},
		{name: "at limit", entry: "max", data: randomBytes(t, MaxDataLen)},
		{name: "oversized compressible", entry: "big", data: compressible(70000), gzip: true},
		{name: "oversized random", entry: "noise", data: randomBytes(t, MaxDataLen+1), wantErr: models.ErrCapacity},
		{name: "nil data", entry: "nil", data: nil, wantErr: models.ErrInvalidState},
		{name: "empty name", entry: "", data: []byte("x"), wantErr: ErrNameEmpty},
		{name: "name too long", entry: strings.Repeat("n", MaxNameLen+1), data: []byte("x"), wantErr: models.ErrCapacity},
		{name: "name at limit", entry: strings.Repeat("n", MaxNameLen), data: []byte("x")},
		{name: "invalid utf8", entry: "bad\xff", data: []byte("x"), wantErr: ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry(tt.entry, tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.entry, e.Name())
			assert.Equal(t, tt.data, e.Data())
			assert.Equal(t, tt.gzip, e.IsCompressed())
			assert.LessOrEqual(t, e.StoredSize(), MaxDataLen)
		})
	}
}

func TestNewEntry_MultibyteNameLimit(t *testing.T) {
	// "é" is two bytes in UTF-8
	_, err := NewEntry(strings.Repeat("é", 128), []byte("x"))
	assert.ErrorIs(t, err, ErrNameTooLong)

	e, err := NewEntry(strings.Repeat("é", 127), []byte("x"))
	require.NoError(t, err)
	assert.Len(t, e.Name(), 254)
}

func TestNewEntryWithFlags(t *testing.T) {
	e, err := NewEntryWithFlags("a", compressible(1000), GZip)
	require.NoError(t, err)
	assert.True(t, e.IsCompressed())
	assert.Less(t, e.StoredSize(), e.Size())

	_, err = NewEntryWithFlags("a", []byte("x"), EntryEncrypted)
	assert.ErrorIs(t, err, ErrEntryEncryptionUnsupported)
	assert.ErrorIs(t, err, models.ErrFormat)

	_, err = NewEntryWithFlags("a", []byte("x"), EntryFlags(0x80))
	assert.ErrorIs(t, err, ErrReservedFlags)
}

func TestNewEntryWithFlags_OversizedUncompressed(t *testing.T) {
	_, err := NewEntryWithFlags("big", compressible(70000), 0)
	assert.ErrorIs(t, err, models.ErrCompressionWouldFit)
	assert.ErrorIs(t, err, models.ErrCapacity)

	_, err = NewEntryWithFlags("noise", randomBytes(t, 70000), 0)
	assert.ErrorIs(t, err, ErrDataTooLong)
	assert.NotErrorIs(t, err, models.ErrCompressionWouldFit)
}

// ── transactional setters ──

func TestEntry_SettersRollBack(t *testing.T) {
	e, err := NewEntry("keep", []byte("original"))
	require.NoError(t, err)

	assert.ErrorIs(t, e.SetName(""), ErrNameEmpty)
	assert.ErrorIs(t, e.SetName(strings.Repeat("x", 300)), models.ErrCapacity)
	assert.ErrorIs(t, e.SetFlags(EntryEncrypted), models.ErrFormat)
	assert.ErrorIs(t, e.SetData(randomBytes(t, 70000)), models.ErrCapacity)
	assert.ErrorIs(t, e.SetData(nil), ErrDataNotSet)

	assert.Equal(t, "keep", e.Name())
	assert.Equal(t, EntryFlags(0), e.Flags())
	assert.Equal(t, []byte("original"), e.Data())
	assert.Equal(t, len("original"), e.StoredSize())
	assert.NoError(t, e.Validate())
}

func TestEntry_SetCompressed(t *testing.T) {
	data := compressible(70000)
	e, err := NewEntry("big", data)
	require.NoError(t, err)
	require.True(t, e.IsCompressed())

	err = e.SetCompressed(false)
	assert.ErrorIs(t, err, models.ErrCompressionWouldFit)
	assert.True(t, e.IsCompressed())

	require.NoError(t, e.SetData([]byte("short now")))
	require.NoError(t, e.SetCompressed(false))
	assert.False(t, e.IsCompressed())
	assert.Equal(t, len("short now"), e.StoredSize())
}

func TestEntry_DataIsCopied(t *testing.T) {
	src := []byte("abc")
	e, err := NewEntry("a", src)
	require.NoError(t, err)

	src[0] = 'X'
	got := e.Data()
	got[1] = 'Y'

	assert.Equal(t, []byte("abc"), e.Data())
}

func TestEntry_Clone(t *testing.T) {
	e, err := NewEntryWithFlags("a", compressible(500), GZip)
	require.NoError(t, err)

	c := e.Clone()
	require.NoError(t, c.SetData([]byte("changed")))
	require.NoError(t, c.SetName("b"))

	assert.Equal(t, "a", e.Name())
	assert.Equal(t, compressible(500), e.Data())
	assert.True(t, c.IsCompressed())
}

func TestEntry_IsCompressionRecommended(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "below threshold", data: bytes.Repeat([]byte{'a'}, 23), want: false},
		{name: "repetitive", data: compressible(4096), want: true},
		{name: "random", data: randomBytes(t, 4096), want: false},
		{name: "empty", data: []byte{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry("x", tt.data)
			require.NoError(t, err)
			got, err := e.IsCompressionRecommended()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntryFlags_String(t *testing.T) {
	assert.Equal(t, "none", EntryFlags(0).String())
	assert.Equal(t, "gzip", GZip.String())
	assert.Equal(t, "encrypted|gzip|0x80", (EntryEncrypted | GZip | 0x80).String())
	assert.Equal(t, "case-insensitive|utf8", (CaseInsensitive | UTF8Names).String())
}
