package tinyfs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tinyfs/models"
)

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, ContainerFlags(0), c.Flags())
	assert.Empty(t, c.Names())
}

func TestContainer_SetAndGet(t *testing.T) {
	c := New()

	e, err := c.Set("readme.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "readme.txt", e.Name())

	got, err := c.Get("readme.txt")
	require.NoError(t, err)
	assert.Same(t, e, got)
	assert.True(t, c.Has("readme.txt"))
	assert.False(t, c.Has("README.TXT"))

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestContainer_SetReplaces(t *testing.T) {
	c := New()
	first, err := c.Set("a", compressible(1000))
	require.NoError(t, err)
	require.NoError(t, first.SetCompressed(true))

	second, err := c.Set("a", []byte("new data"))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []byte("new data"), second.Data())
	assert.True(t, second.IsCompressed(), "replace keeps existing flags")
}

func TestContainer_SetForcesCompression(t *testing.T) {
	c := New()
	_, err := c.Set("small", []byte("x"))
	require.NoError(t, err)

	e, err := c.Set("small", compressible(70000))
	require.NoError(t, err)
	assert.True(t, e.IsCompressed())
}

func TestContainer_SetRejectsAndLeavesUnchanged(t *testing.T) {
	c := New()
	_, err := c.Set("a", []byte("one"))
	require.NoError(t, err)

	_, err = c.Set(strings.Repeat("x", 256), []byte("data"))
	assert.ErrorIs(t, err, models.ErrCapacity)

	_, err = c.Set("a", randomBytes(t, 70000))
	assert.ErrorIs(t, err, models.ErrCapacity)

	_, err = c.Set("b", nil)
	assert.ErrorIs(t, err, ErrDataNotSet)

	assert.Equal(t, []string{"a"}, c.Names())
	e, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), e.Data())
}

func TestContainer_TableFull(t *testing.T) {
	c := New()
	for i := 0; i < MaxEntries; i++ {
		_, err := c.Set(fmt.Sprintf("f%03d", i), []byte{byte(i)})
		require.NoError(t, err)
	}

	_, err := c.Set("one-more", []byte("x"))
	assert.ErrorIs(t, err, ErrTableFull)
	assert.ErrorIs(t, err, models.ErrCapacity)

	// replacing still works
	_, err = c.Set("f000", []byte("y"))
	assert.NoError(t, err)
	assert.Equal(t, MaxEntries, c.Len())
}

// ── SetEntry ──

func TestContainer_SetEntryInsertsCopy(t *testing.T) {
	c := New()
	src, err := NewEntryWithFlags("doc", compressible(200), GZip)
	require.NoError(t, err)

	stored, err := c.SetEntry(src)
	require.NoError(t, err)
	assert.NotSame(t, src, stored)
	assert.True(t, stored.IsCompressed())

	require.NoError(t, src.SetData([]byte("changed")))
	got, err := c.Get("doc")
	require.NoError(t, err)
	assert.Equal(t, compressible(200), got.Data())
}

func TestContainer_SetEntryReplacesDataAndFlags(t *testing.T) {
	c := New()
	live, err := c.Set("doc", []byte("old"))
	require.NoError(t, err)

	src, err := NewEntryWithFlags("doc", compressible(300), GZip)
	require.NoError(t, err)

	got, err := c.SetEntry(src)
	require.NoError(t, err)
	assert.Same(t, live, got)
	assert.Equal(t, compressible(300), live.Data())
	assert.Equal(t, GZip, live.Flags())
}

func TestContainer_SetEntryOwned(t *testing.T) {
	c := New()
	e, err := c.Set("a", []byte("x"))
	require.NoError(t, err)

	_, err = c.SetEntry(e)
	assert.ErrorIs(t, err, ErrEntryOwned)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	other := New()
	_, err = other.SetEntry(e)
	assert.ErrorIs(t, err, ErrEntryOwned)
}

// ── Delete ──

func TestContainer_Delete(t *testing.T) {
	c := New()
	_, err := c.Set("a", []byte("1"))
	require.NoError(t, err)
	_, err = c.Set("b", []byte("2"))
	require.NoError(t, err)

	removed, err := c.Delete("a")
	require.NoError(t, err)
	assert.Equal(t, "a", removed.Name())
	assert.Equal(t, []string{"b"}, c.Names())

	// a removed entry can be inserted elsewhere
	_, err = New().SetEntry(removed)
	assert.NoError(t, err)
}

func TestContainer_DeleteLastEntry(t *testing.T) {
	c := New()
	_, err := c.Set("only", []byte("1"))
	require.NoError(t, err)

	_, err = c.Delete("only")
	assert.ErrorIs(t, err, models.ErrLastEntry)
	assert.ErrorIs(t, err, models.ErrCapacity)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Has("only"))
}

func TestContainer_DeleteMissing(t *testing.T) {
	c := New()
	_, err := c.Set("only", []byte("1"))
	require.NoError(t, err)

	_, err = c.Delete("other")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// ── flags ──

func TestContainer_CaseInsensitiveLookup(t *testing.T) {
	c := New()
	require.NoError(t, c.SetCaseInsensitive(true))

	_, err := c.Set("Readme", []byte("1"))
	require.NoError(t, err)
	_, err = c.Set("README", []byte("2"))
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	e, err := c.Get("readme")
	require.NoError(t, err)
	assert.Equal(t, "Readme", e.Name())
	assert.Equal(t, []byte("2"), e.Data())
}

func TestContainer_CaseInsensitiveCollision(t *testing.T) {
	c := New()
	_, err := c.Set("a", []byte("1"))
	require.NoError(t, err)
	_, err = c.Set("A", []byte("2"))
	require.NoError(t, err)

	err = c.SetCaseInsensitive(true)
	assert.ErrorIs(t, err, ErrCaseCollision)
	assert.ErrorIs(t, err, models.ErrInvalidState)
	assert.False(t, c.IsCaseInsensitive())

	_, err = c.Delete("A")
	require.NoError(t, err)
	require.NoError(t, c.SetCaseInsensitive(true))
	assert.True(t, c.IsCaseInsensitive())

	require.NoError(t, c.SetCaseInsensitive(false))
	assert.False(t, c.IsCaseInsensitive())
}

func TestContainer_RenameCollision(t *testing.T) {
	c := New()
	require.NoError(t, c.SetCaseInsensitive(true))
	a, err := c.Set("a", []byte("1"))
	require.NoError(t, err)
	_, err = c.Set("b", []byte("2"))
	require.NoError(t, err)

	err = a.SetName("B")
	assert.ErrorIs(t, err, models.ErrDuplicateName)
	assert.Equal(t, "a", a.Name())

	require.NoError(t, a.SetName("A"))
	assert.True(t, c.Has("a"))
}

func TestContainer_FlagMarkers(t *testing.T) {
	c := New()
	c.SetEncrypted(true)
	c.SetUTF8Names(true)
	assert.Equal(t, Encrypted|UTF8Names, c.Flags())

	c.SetEncrypted(false)
	assert.True(t, c.UsesUTF8Names())
	assert.False(t, c.IsEncrypted())
}

func TestContainer_NamesSorted(t *testing.T) {
	c := New()
	for _, n := range []string{"b", "B", "a", "A", "_x", "Zeta"} {
		_, err := c.Set(n, []byte(n))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"A", "a", "B", "b", "Zeta", "_x"}, c.Names())
}
