package persist

import (
	"slices"
	"strings"

	"github.com/Sumatoshi-tech/iconpack/pkg/archive"
)

// ManifestBasename is the manifest file name without extension.
const ManifestBasename = "manifest"

// ManifestEntry describes one written archive.
type ManifestEntry struct {
	Kind         archive.Kind `yaml:"kind" json:"kind"`
	File         string       `yaml:"file" json:"file"`
	Bytes        int64        `yaml:"bytes" json:"bytes"`
	Icons        int          `yaml:"icons" json:"icons"`
	Prefix       string       `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Name         string       `yaml:"name,omitempty" json:"name,omitempty"`
	Total        uint32       `yaml:"total,omitempty" json:"total,omitempty"`
	LastModified *uint64      `yaml:"last_modified,omitempty" json:"last_modified,omitempty"`
}

// Manifest lists every archive of one build.
type Manifest struct {
	Version  string          `yaml:"version" json:"version"`
	Archives []ManifestEntry `yaml:"archives" json:"archives"`
	Failures []string        `yaml:"failures,omitempty" json:"failures,omitempty"`
}

// Add appends an entry.
func (m *Manifest) Add(entry ManifestEntry) {
	m.Archives = append(m.Archives, entry)
}

// Sort orders archives by file name so the manifest is stable across runs.
func (m *Manifest) Sort() {
	slices.SortFunc(m.Archives, func(a, b ManifestEntry) int {
		return strings.Compare(a.File, b.File)
	})
	slices.Sort(m.Failures)
}

// TotalIcons sums the icon counts of all archives.
func (m *Manifest) TotalIcons() int {
	total := 0
	for _, a := range m.Archives {
		total += a.Icons
	}

	return total
}

// NewManifestPersister stores manifests as YAML.
func NewManifestPersister() *Persister[Manifest] {
	return NewPersister[Manifest](ManifestBasename, NewYAMLCodec())
}
