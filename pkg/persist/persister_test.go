package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestPersister_SaveLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := NewManifestPersister()

	manifest := sampleManifest()
	manifest.Failures = []string{"z.json", "a.json"}
	manifest.Archives[0], manifest.Archives[1] = manifest.Archives[1], manifest.Archives[0]
	manifest.Sort()

	require.NoError(t, p.Save(dir, &manifest))
	assert.FileExists(t, filepath.Join(dir, "manifest.yaml"))

	loaded, err := p.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, manifest, *loaded)
	assert.Equal(t, "mdi.bin", loaded.Archives[0].File)
	assert.Equal(t, []string{"a.json", "z.json"}, loaded.Failures)
	assert.Equal(t, 9, loaded.TotalIcons())
}

func TestPersister_LoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewManifestPersister().Load(t.TempDir())

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersister_SaveInvalidDir(t *testing.T) {
	t.Parallel()

	p := NewPersister[Manifest]("m", NewJSONCodec())

	err := p.Save(filepath.Join(t.TempDir(), "missing", "dir"), &Manifest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create m")
}

func TestPersister_DecodeError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m.json"), []byte("not json{{{"), 0o600))

	_, err := NewPersister[Manifest]("m", NewJSONCodec()).Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode m")
}

func TestPersister_SaveEncodeErrorKeepsPrevious(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := NewPersister[map[string]any]("doc", NewJSONCodec())

	require.NoError(t, p.Save(dir, &map[string]any{"icons": 3}))

	err := p.Save(dir, &map[string]any{"bad": func() {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode doc")

	loaded, err := p.Load(dir)
	require.NoError(t, err)
	assert.InDelta(t, 3, (*loaded)["icons"], 0)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}
