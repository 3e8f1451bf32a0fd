package persist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Persister handles I/O for one document type using a DocumentCodec.
type Persister[T any] struct {
	basename string
	codec    DocumentCodec
}

// NewPersister creates a persister with the given basename and codec.
func NewPersister[T any](basename string, codec DocumentCodec) *Persister[T] {
	return &Persister[T]{
		basename: basename,
		codec:    codec,
	}
}

// Path returns the file the persister reads and writes inside dir.
func (p *Persister[T]) Path(dir string) string {
	return filepath.Join(dir, p.basename+p.codec.Extension())
}

// Save writes doc to dir. The file is replaced atomically, so a failed save
// keeps the previous document.
func (p *Persister[T]) Save(dir string, doc *T) error {
	var buf bytes.Buffer

	err := p.codec.Encode(&buf, doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.basename, err)
	}

	return writeFileAtomic(p.Path(dir), buf.Bytes())
}

// Load reads the document from dir.
func (p *Persister[T]) Load(dir string) (*T, error) {
	file, err := os.Open(p.Path(dir))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p.basename, err)
	}
	defer file.Close()

	var doc T

	err = p.codec.Decode(file, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.basename, err)
	}

	return &doc, nil
}
