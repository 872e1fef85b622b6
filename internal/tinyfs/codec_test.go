package tinyfs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tinyfs/internal/compression"
	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/models"
)

var none = crypto.Credential{}

func saved(t *testing.T, c *Container, cred crypto.Credential) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf, cred))
	return buf.Bytes()
}

func contents(t *testing.T, c *Container) map[string][]byte {
	t.Helper()
	out := make(map[string][]byte, c.Len())
	for _, name := range c.Names() {
		e, err := c.Get(name)
		require.NoError(t, err)
		out[name] = e.Data()
	}
	return out
}

// ── wire format ──

func TestSave_ExactBytes(t *testing.T) {
	c := New()
	_, err := c.Set("b", []byte("xyz"))
	require.NoError(t, err)
	_, err = c.Set("a", []byte{})
	require.NoError(t, err)

	want := []byte{
		0x54, 0x49, 0x4E, 0x59, // magic
		0x00,                   // flags
		0x02,                   // count
		0x00, 0x00, 0x00, 0x01, 'a',
		0x00, 0x03, 0x00, 0x01, 'b',
		'x', 'y', 'z',
	}
	assert.Equal(t, want, saved(t, c, none))
}

func TestSave_GZipRecord(t *testing.T) {
	c := New()
	e, err := c.Set("z", compressible(2000))
	require.NoError(t, err)
	require.NoError(t, e.SetCompressed(true))

	raw := saved(t, c, none)
	assert.Equal(t, byte(GZip), raw[6])
	stored := int(binary.LittleEndian.Uint16(raw[7:9]))
	assert.Equal(t, e.StoredSize(), stored)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[11:13], "data block is a gzip member")
	assert.Len(t, raw, 11+stored)
}

func TestSave_EncryptedLayout(t *testing.T) {
	c := New()
	c.SetEncrypted(true)
	_, err := c.Set("a", []byte("secret"))
	require.NoError(t, err)

	raw := saved(t, c, crypto.PasswordCredential("pw"))
	assert.Equal(t, byte(Encrypted), raw[4])

	n, read := binary.Uvarint(raw[5:])
	require.Positive(t, read)
	plainLen := 1 + recordSize + 1 + len("secret")
	assert.Equal(t, uint64(crypto.MaxOverhead+plainLen), n)
	assert.Len(t, raw, 5+read+int(n))
	assert.NotContains(t, string(raw), "secret")
}

func TestSave_EmptyContainer(t *testing.T) {
	raw := saved(t, New(), none)
	assert.Equal(t, []byte{0x54, 0x49, 0x4E, 0x59, 0x00, 0x00}, raw)

	c, err := LoadBytes(raw, none)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

// ── save failures ──

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestSave_EncryptedWithoutCredentials(t *testing.T) {
	c := New()
	c.SetEncrypted(true)
	_, err := c.Set("a", []byte("x"))
	require.NoError(t, err)

	w := &failingWriter{}
	err = c.Save(w, none)
	assert.ErrorIs(t, err, models.ErrCredentialsRequired)
	assert.ErrorIs(t, err, models.ErrInvalidState)
	assert.Zero(t, w.calls)
}

func TestSave_NonASCIINameWithoutUTF8(t *testing.T) {
	c := New()
	_, err := c.Set("café", []byte("x"))
	require.NoError(t, err)

	w := &failingWriter{}
	assert.ErrorIs(t, c.Save(w, none), ErrNonASCIIName)
	assert.Zero(t, w.calls)

	c.SetUTF8Names(true)
	loaded, err := LoadBytes(saved(t, c, none), none)
	require.NoError(t, err)
	assert.True(t, loaded.Has("café"))
}

func TestSave_DuplicateDetectedAtSave(t *testing.T) {
	c := New()
	_, err := c.Set("a", []byte("1"))
	require.NoError(t, err)
	_, err = c.Set("b", []byte("2"))
	require.NoError(t, err)

	// bypass the mutation checks to simulate a collision
	c.entries[1].name = "a"
	w := &failingWriter{}
	assert.ErrorIs(t, c.Save(w, none), models.ErrDuplicateName)
	assert.Zero(t, w.calls)
}

func TestSave_WriterError(t *testing.T) {
	c := New()
	_, err := c.Set("a", []byte("1"))
	require.NoError(t, err)

	w := &failingWriter{}
	err = c.Save(w, none)
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 1, w.calls)
}

// ── round trips ──

func TestRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, crypto.KeySize)
	tests := []struct {
		name      string
		flags     ContainerFlags
		cred      crypto.Credential
		compress  bool
		entryData map[string][]byte
	}{
		{name: "plain", entryData: map[string][]byte{"a": []byte("1"), "B": []byte("22"), "c": {}}},
		{name: "compressed", compress: true, entryData: map[string][]byte{"log": compressible(5000), "tiny": []byte("x")}},
		{name: "case-insensitive", flags: CaseInsensitive, entryData: map[string][]byte{"Mixed": []byte("m")}},
		{name: "utf8", flags: UTF8Names, entryData: map[string][]byte{"файл.txt": []byte("данные")}},
		{name: "key", flags: Encrypted, cred: crypto.KeyCredential(key), entryData: map[string][]byte{"k": []byte("v")}},
		{name: "password", flags: Encrypted | UTF8Names, cred: crypto.PasswordCredential("pw"), compress: true,
			entryData: map[string][]byte{"a": compressible(3000), "ü": randomBytes(t, 100)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			require.NoError(t, c.SetCaseInsensitive(tt.flags.Has(CaseInsensitive)))
			c.SetEncrypted(tt.flags.Has(Encrypted))
			c.SetUTF8Names(tt.flags.Has(UTF8Names))
			for name, data := range tt.entryData {
				e, err := c.Set(name, data)
				require.NoError(t, err)
				require.NoError(t, e.SetCompressed(tt.compress))
			}

			raw := saved(t, c, tt.cred)

			info, err := ReadInfoBytes(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.flags, info)

			loaded, err := LoadBytes(raw, tt.cred)
			require.NoError(t, err)
			assert.Equal(t, tt.flags, loaded.Flags())
			assert.Equal(t, contents(t, c), contents(t, loaded))
			for _, e := range loaded.Entries() {
				assert.Equal(t, tt.compress, e.IsCompressed())
			}

			// saving an unchanged unencrypted container is deterministic
			if !tt.flags.Has(Encrypted) {
				assert.Equal(t, raw, saved(t, loaded, tt.cred))
			}
		})
	}
}

func TestRoundTrip_SmallEntry(t *testing.T) {
	data := randomBytes(t, 128)
	c := New()
	_, err := c.Set("test", data)
	require.NoError(t, err)

	loaded, err := LoadBytes(saved(t, c, none), none)
	require.NoError(t, err)
	e, err := loaded.Get("test")
	require.NoError(t, err)
	assert.Equal(t, data, e.Data())
}

func TestSet_OversizedCompressesToFit(t *testing.T) {
	data := compressible(70000)
	c := New()
	e, err := c.Set("big", data)
	require.NoError(t, err)
	assert.True(t, e.IsCompressed())

	loaded, err := LoadBytes(saved(t, c, none), none)
	require.NoError(t, err)
	got, err := loaded.Get("big")
	require.NoError(t, err)
	assert.True(t, got.IsCompressed())
	assert.Equal(t, data, got.Data())
}

func TestLoad_WrongPassword(t *testing.T) {
	c := New()
	c.SetEncrypted(true)
	_, err := c.Set("secret.txt", []byte("top secret"))
	require.NoError(t, err)

	raw := saved(t, c, crypto.PasswordCredential("Password.1"))

	loaded, err := LoadBytes(raw, crypto.PasswordCredential("Password.1"))
	require.NoError(t, err)
	e, err := loaded.Get("secret.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("top secret"), e.Data())

	_, err = LoadBytes(raw, crypto.PasswordCredential("Password.2"))
	assert.ErrorIs(t, err, models.ErrAuthentication)

	_, err = LoadBytes(raw, none)
	assert.ErrorIs(t, err, models.ErrCredentialsRequired)
}

func TestSave_FullTable(t *testing.T) {
	if testing.Short() {
		t.Skip("writes about 16 MiB")
	}

	c := New()
	for i := 0; i < MaxEntries; i++ {
		name := fmt.Sprintf("%03d", i) + strings.Repeat("n", MaxNameLen-3)
		data := bytes.Repeat([]byte{byte(i)}, MaxDataLen)
		_, err := c.Set(name, data)
		require.NoError(t, err)
	}

	raw := saved(t, c, none)
	assert.Len(t, raw, HeaderSize+MaxTableSize)

	loaded, err := LoadBytes(raw, none)
	require.NoError(t, err)
	assert.Equal(t, MaxEntries, loaded.Len())
	assert.Equal(t, contents(t, c), contents(t, loaded))
}

// ── load failures ──

func header(flags byte) []byte {
	return []byte{0x54, 0x49, 0x4E, 0x59, flags}
}

func TestLoad_Malformed(t *testing.T) {
	valid := func(rest ...byte) []byte { return append(header(0), rest...) }

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty", data: nil, wantErr: ErrTruncated},
		{name: "short header", data: []byte{0x54, 0x49}, wantErr: ErrTruncated},
		{name: "bad magic", data: []byte{'T', 'I', 'N', 'X', 0, 0}, wantErr: ErrBadMagic},
		{name: "reserved container flag", data: append(header(0x08), 0), wantErr: ErrReservedFlags},
		{name: "missing count", data: valid(), wantErr: ErrTruncated},
		{name: "truncated record", data: valid(1, 0, 1), wantErr: ErrTruncated},
		{name: "truncated name", data: valid(1, 0, 0, 0, 3, 'a'), wantErr: ErrTruncated},
		{name: "truncated data", data: valid(1, 0, 5, 0, 1, 'a', 'x'), wantErr: ErrTruncated},
		{name: "empty name", data: valid(1, 0, 0, 0, 0), wantErr: ErrNameEmpty},
		{name: "entry encrypted bit", data: valid(1, 1, 0, 0, 1, 'a'), wantErr: ErrEntryEncryptionUnsupported},
		{name: "reserved entry bit", data: valid(1, 4, 0, 0, 1, 'a'), wantErr: ErrReservedFlags},
		{name: "duplicate", data: valid(2, 0, 0, 0, 1, 'a', 0, 0, 0, 1, 'a'), wantErr: models.ErrFormat},
		{name: "trailing bytes", data: valid(1, 0, 1, 0, 1, 'a', 'x', 'y'), wantErr: ErrTrailingData},
		{name: "non-ascii name", data: valid(1, 0, 0, 0, 1, 0xC3), wantErr: ErrNonASCIIName},
		{name: "invalid utf8 name", data: append(header(byte(UTF8Names)), 1, 0, 0, 0, 1, 0xC3), wantErr: ErrInvalidName},
		{name: "corrupt gzip", data: valid(1, 2, 3, 0, 1, 'a', 1, 2, 3), wantErr: models.ErrFormat},
		{name: "case-insensitive duplicate", data: append(header(byte(CaseInsensitive)), 2, 0, 0, 0, 1, 'a', 0, 0, 0, 1, 'A'), wantErr: models.ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadBytes(tt.data, none)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrFormat)
			assert.Nil(t, c)
		})
	}
}

func TestLoad_CaseSensitiveAllowsCaseVariants(t *testing.T) {
	data := append(header(0), 2, 0, 0, 0, 1, 'A', 0, 0, 0, 1, 'a')
	c, err := LoadBytes(data, none)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "a"}, c.Names())
}

func TestLoad_EncryptedPayloadLength(t *testing.T) {
	pw := crypto.PasswordCredential("pw")
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "zero", data: append(header(byte(Encrypted)), 0), wantErr: ErrPayloadLength},
		{name: "too large", data: binary.AppendUvarint(header(byte(Encrypted)), MaxEncryptedPayload+1), wantErr: ErrPayloadLength},
		{name: "missing length", data: header(byte(Encrypted)), wantErr: ErrTruncated},
		{name: "short payload", data: append(binary.AppendUvarint(header(byte(Encrypted)), 100), 1, 2, 3), wantErr: ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes(tt.data, pw)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrFormat)
		})
	}
}

func TestLoad_TamperedCiphertext(t *testing.T) {
	c := New()
	c.SetEncrypted(true)
	_, err := c.Set("a", []byte("payload"))
	require.NoError(t, err)

	key := crypto.KeyCredential(bytes.Repeat([]byte{1}, crypto.KeySize))
	raw := saved(t, c, key)
	raw[len(raw)-1] ^= 0xFF

	loaded, err := LoadBytes(raw, key)
	assert.ErrorIs(t, err, models.ErrAuthentication)
	assert.Nil(t, loaded)
}

func TestLoad_FromStream(t *testing.T) {
	c := New()
	c.SetEncrypted(true)
	_, err := c.Set("a", []byte("streamed"))
	require.NoError(t, err)
	raw := saved(t, c, crypto.PasswordCredential("pw"))

	// a reader that is not an io.ByteReader
	loaded, err := Load(onlyReader{bytes.NewReader(raw)}, crypto.PasswordCredential("pw"))
	require.NoError(t, err)
	assert.True(t, loaded.Has("a"))
}

func TestLoad_LeavesFollowingDataUnread(t *testing.T) {
	pw := crypto.PasswordCredential("pw")
	tests := []struct {
		name      string
		encrypted bool
		cred      crypto.Credential
	}{
		{name: "plain", cred: none},
		{name: "encrypted", encrypted: true, cred: pw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetEncrypted(tt.encrypted)
			_, err := c.Set("a", []byte("first"))
			require.NoError(t, err)
			_, err = c.Set("b", compressible(5000))
			require.NoError(t, err)
			raw := saved(t, c, tt.cred)

			rest := strings.NewReader("NEXT")
			loaded, err := Load(onlyReader{io.MultiReader(bytes.NewReader(raw), rest)}, tt.cred)
			require.NoError(t, err)
			assert.Equal(t, contents(t, c), contents(t, loaded))

			tail, err := io.ReadAll(rest)
			require.NoError(t, err)
			assert.Equal(t, "NEXT", string(tail))

			_, err = LoadBytes(append(raw, "NEXT"...), tt.cred)
			assert.ErrorIs(t, err, ErrTrailingData)
		})
	}
}

func TestLoad_GzipBombRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("inflates about 16 MiB")
	}

	stored, err := compression.Default().Compress(make([]byte, MaxRawDataLen+1))
	require.NoError(t, err)
	require.LessOrEqual(t, len(stored), MaxDataLen)

	data := append(header(0), 1, byte(GZip))
	data = binary.LittleEndian.AppendUint16(data, uint16(len(stored)))
	data = append(data, 1, 'z')
	data = append(data, stored...)

	c, err := LoadBytes(data, none)
	assert.ErrorIs(t, err, ErrRawTooLong)
	assert.ErrorIs(t, err, models.ErrFormat)
	assert.Nil(t, c)
}

func TestCredentialErrorsAreClassified(t *testing.T) {
	c := New()
	c.SetEncrypted(true)
	_, err := c.Set("a", []byte("x"))
	require.NoError(t, err)

	_, err = c.Bytes(crypto.PasswordCredential(""))
	assert.ErrorIs(t, err, crypto.ErrEmptyPassword)
	assert.ErrorIs(t, err, models.ErrCredentialsRequired)

	_, err = c.Bytes(crypto.KeyCredential([]byte("short")))
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	raw := saved(t, c, crypto.PasswordCredential("pw"))
	_, err = LoadBytes(raw, crypto.PasswordCredential(""))
	assert.ErrorIs(t, err, models.ErrCredentialsRequired)
	_, err = LoadBytes(raw, crypto.KeyCredential(make([]byte, 16)))
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

type onlyReader struct{ r io.Reader }

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

func TestReadInfo(t *testing.T) {
	flags, err := ReadInfo(bytes.NewReader(append(header(byte(Encrypted|CaseInsensitive)), 0xFF)))
	require.NoError(t, err)
	assert.True(t, flags.Has(Encrypted))
	assert.True(t, flags.Has(CaseInsensitive))
	assert.False(t, flags.Has(UTF8Names))

	_, err = ReadInfoBytes([]byte("NOPE!"))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestLoad_UsesInjectedCipher(t *testing.T) {
	c := New(WithCipher(xorCipher{}))
	c.SetEncrypted(true)
	_, err := c.Set("a", []byte("data"))
	require.NoError(t, err)

	raw := saved(t, c, crypto.PasswordCredential("pw"))
	loaded, err := LoadBytes(raw, crypto.PasswordCredential("pw"), WithCipher(xorCipher{}))
	require.NoError(t, err)
	assert.True(t, loaded.Has("a"))

	_, err = LoadBytes(raw, crypto.PasswordCredential("pw"))
	assert.ErrorIs(t, err, models.ErrFormat, "AES-GCM cannot open a buffer shorter than its overhead")
}

type xorCipher struct{}

func (xorCipher) Encrypt(p []byte, _ crypto.Credential) ([]byte, error) { return xor(p), nil }
func (xorCipher) Decrypt(p []byte, _ crypto.Credential) ([]byte, error) { return xor(p), nil }

func xor(p []byte) []byte {
	out := make([]byte, len(p))
	for i, b := range p {
		out[i] = b ^ 0x5A
	}
	return out
}
