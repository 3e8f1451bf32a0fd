package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullBundle = `{
  "prefix": "mdi",
  "info": {
    "name": "Material Design Icons",
    "total": 7000,
    "version": "7.4.47",
    "author": {"name": "Pictogrammers", "url": "https://example.com/author"},
    "license": {"title": "Apache 2.0", "spdx": "Apache-2.0"},
    "height": 24,
    "category": "General",
    "palette": false,
    "samples": ["account"]
  },
  "lastModified": 1718000000,
  "icons": {
    "account": {"body": "<path d=\"M12 4\"/>"},
    "wide": {"body": "<path d=\"M0 0\"/>", "width": 32.5, "height": null}
  },
  "aliases": {"user": {"parent": "account"}}
}`

func TestParseIconSet_Full(t *testing.T) {
	t.Parallel()

	set, err := ParseIconSet([]byte(fullBundle))
	require.NoError(t, err)

	assert.Equal(t, "mdi", set.Prefix)
	assert.Equal(t, "Material Design Icons", set.Info.Name)
	assert.Equal(t, uint32(7000), set.Info.Total)
	require.NotNil(t, set.Info.Version)
	assert.Equal(t, "7.4.47", *set.Info.Version)
	require.NotNil(t, set.Info.Author)
	assert.Equal(t, "Pictogrammers", set.Info.Author.Name)
	require.NotNil(t, set.Info.License)
	assert.Equal(t, "Apache-2.0", set.Info.License.SPDX)
	assert.Nil(t, set.Info.License.URL)
	assert.Equal(t, uint32(24), set.Info.HeightOrDefault())
	require.NotNil(t, set.LastModified)
	assert.Equal(t, uint64(1718000000), *set.LastModified)

	require.Len(t, set.Icons, 2)
	wide := set.Icons["wide"]
	require.NotNil(t, wide.Width)
	assert.InDelta(t, 32.5, *wide.Width, 0)
	assert.Nil(t, wide.Height)
}

func TestParseIconSet_MinimalDefaults(t *testing.T) {
	t.Parallel()

	set, err := ParseIconSet([]byte(`{"prefix":"x","info":{"name":"X","total":0},"icons":{}}`))
	require.NoError(t, err)

	assert.Nil(t, set.Info.Version)
	assert.Nil(t, set.Info.Author)
	assert.Nil(t, set.LastModified)
	assert.Equal(t, uint32(16), set.Info.HeightOrDefault())
	assert.False(t, set.Info.PaletteOrDefault())
	assert.NotNil(t, set.Icons)
	assert.Empty(t, set.Icons)
}

func TestParseIconSet_TotalNotCrossChecked(t *testing.T) {
	t.Parallel()

	set, err := ParseIconSet([]byte(`{"prefix":"x","info":{"name":"X","total":99},"icons":{"a":{"body":""}}}`))
	require.NoError(t, err)

	assert.True(t, set.TotalMismatch())
}

func TestParseIconSet_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not_json", data: `{"prefix":`},
		{name: "missing_prefix", data: `{"info":{"name":"X","total":1},"icons":{}}`},
		{name: "empty_prefix", data: `{"prefix":"","info":{"name":"X","total":1},"icons":{}}`},
		{name: "missing_info_name", data: `{"prefix":"x","info":{"total":1},"icons":{}}`},
		{name: "missing_total", data: `{"prefix":"x","info":{"name":"X"},"icons":{}}`},
		{name: "total_wrong_type", data: `{"prefix":"x","info":{"name":"X","total":"1"},"icons":{}}`},
		{name: "negative_total", data: `{"prefix":"x","info":{"name":"X","total":-1},"icons":{}}`},
		{name: "missing_icons", data: `{"prefix":"x","info":{"name":"X","total":1}}`},
		{name: "icons_wrong_type", data: `{"prefix":"x","info":{"name":"X","total":1},"icons":[]}`},
		{name: "icon_without_body", data: `{"prefix":"x","info":{"name":"X","total":1},"icons":{"a":{}}}`},
		{name: "palette_wrong_type", data: `{"prefix":"x","info":{"name":"X","total":1,"palette":"yes"},"icons":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, err := ParseIconSet([]byte(tt.data))
			require.ErrorIs(t, err, ErrMalformedSource)
			assert.Nil(t, set)
		})
	}
}

func TestLoadIconSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	good := filepath.Join(dir, "mdi.json")
	require.NoError(t, os.WriteFile(good, append([]byte("\ufeff"), fullBundle...), 0o600))

	set, err := LoadIconSet(good)
	require.NoError(t, err)
	assert.Equal(t, "mdi", set.Prefix)

	_, err = LoadIconSet(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, ErrUnreadableFile)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"prefix":1}`), 0o600))

	_, err = LoadIconSet(bad)
	require.ErrorIs(t, err, ErrMalformedSource)
	assert.Contains(t, err.Error(), "bad.json")
}
