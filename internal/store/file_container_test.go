package store

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/internal/logger"
	"github.com/MKhiriev/tinyfs/internal/tinyfs"
	"github.com/MKhiriev/tinyfs/models"
)

func newTestStorage(t *testing.T) (ContainerStorage, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewContainerFileStorage(fs, logger.Nop()), fs
}

func containerBytes(t *testing.T, flags tinyfs.ContainerFlags) []byte {
	t.Helper()
	c := tinyfs.New()
	require.NoError(t, c.SetCaseInsensitive(flags.Has(tinyfs.CaseInsensitive)))
	c.SetEncrypted(flags.Has(tinyfs.Encrypted))
	c.SetUTF8Names(flags.Has(tinyfs.UTF8Names))
	_, err := c.Set("a.txt", []byte("hello"))
	require.NoError(t, err)

	raw, err := c.Bytes(crypto.PasswordCredential("pw"))
	require.NoError(t, err)
	return raw
}

// ── Exists ──

func TestExists(t *testing.T) {
	s, fs := newTestStorage(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "/data/a.tfs")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, afero.WriteFile(fs, "/data/a.tfs", []byte("x"), 0o600))
	ok, err = s.Exists(ctx, "/data/a.tfs")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.Exists(ctx, "/data")
	assert.ErrorIs(t, err, ErrNotRegularFile)

	_, err = s.Exists(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

// ── Read ──

func TestRead(t *testing.T) {
	s, fs := newTestStorage(t)
	ctx := context.Background()
	raw := containerBytes(t, 0)
	require.NoError(t, afero.WriteFile(fs, "/a.tfs", raw, 0o600))

	rc, err := s.Read(ctx, "/a.tfs")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestRead_Missing(t *testing.T) {
	s, _ := newTestStorage(t)

	rc, err := s.Read(context.Background(), "/nope.tfs")
	assert.ErrorIs(t, err, ErrContainerNotExist)
	assert.Nil(t, rc)
}

func TestRead_CanceledContext(t *testing.T) {
	s, fs := newTestStorage(t)
	require.NoError(t, afero.WriteFile(fs, "/a.tfs", []byte("x"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Read(ctx, "/a.tfs")
	assert.ErrorIs(t, err, context.Canceled)
}

// ── ReadInfo ──

func TestReadInfo(t *testing.T) {
	s, fs := newTestStorage(t)
	raw := containerBytes(t, tinyfs.Encrypted|tinyfs.CaseInsensitive)
	require.NoError(t, afero.WriteFile(fs, "/secret.tfs", raw, 0o600))

	info, err := s.ReadInfo(context.Background(), "/secret.tfs")
	require.NoError(t, err)
	assert.Equal(t, models.ContainerInfo{
		Path:            "/secret.tfs",
		Size:            int64(len(raw)),
		CaseInsensitive: true,
		Encrypted:       true,
	}, info)
}

func TestReadInfo_NotAContainer(t *testing.T) {
	s, fs := newTestStorage(t)
	require.NoError(t, afero.WriteFile(fs, "/notes.txt", []byte("just some text"), 0o600))

	_, err := s.ReadInfo(context.Background(), "/notes.txt")
	assert.ErrorIs(t, err, models.ErrFormat)
}

// ── Write ──

func TestWrite_CreatesAndReplaces(t *testing.T) {
	s, fs := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "/dir/a.tfs", []byte("first")))
	got, err := afero.ReadFile(fs, "/dir/a.tfs")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)

	require.NoError(t, s.Write(ctx, "/dir/a.tfs", []byte("second")))
	got, err = afero.ReadFile(fs, "/dir/a.tfs")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	entries, err := afero.ReadDir(fs, "/dir")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWrite_KeepsPermissions(t *testing.T) {
	s, fs := newTestStorage(t)
	require.NoError(t, afero.WriteFile(fs, "/a.tfs", []byte("old"), 0o640))

	require.NoError(t, s.Write(context.Background(), "/a.tfs", []byte("new")))

	info, err := fs.Stat("/a.tfs")
	require.NoError(t, err)
	assert.Equal(t, "-rw-r-----", info.Mode().Perm().String())
}

func TestWrite_FailureLeavesOriginal(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/a.tfs", []byte("original"), 0o600))
	s := NewContainerFileStorage(afero.NewReadOnlyFs(base), logger.Nop())

	err := s.Write(context.Background(), "/a.tfs", []byte("replacement"))
	require.Error(t, err)

	got, err := afero.ReadFile(base, "/a.tfs")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestWrite_CanceledContext(t *testing.T) {
	s, fs := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Write(ctx, "/a.tfs", []byte("x")), context.Canceled)

	ok, err := afero.Exists(fs, "/a.tfs")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewStorages(t *testing.T) {
	st := NewStorages(afero.NewMemMapFs(), logger.Nop())
	require.NotNil(t, st.Containers)
}
