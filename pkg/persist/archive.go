package persist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// Archive file extensions.
const (
	RawExtension = ".bin"
	LZ4Extension = ".bin.lz4"
)

// ErrUnknownArchiveExtension is returned when no codec matches a file name.
var ErrUnknownArchiveExtension = errors.New("unknown archive extension")

// ArchiveCodec frames archive bytes on disk.
type ArchiveCodec interface {
	Encode(w io.Writer, archive []byte) error
	Decode(r io.Reader) ([]byte, error)
	Extension() string
}

// RawCodec writes archive bytes unchanged.
type RawCodec struct{}

// Encode implements ArchiveCodec.Encode.
func (RawCodec) Encode(w io.Writer, archive []byte) error {
	_, err := w.Write(archive)
	if err != nil {
		return fmt.Errorf("raw encode: %w", err)
	}

	return nil
}

// Decode implements ArchiveCodec.Decode.
func (RawCodec) Decode(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("raw decode: %w", err)
	}

	return data, nil
}

// Extension implements ArchiveCodec.Extension.
func (RawCodec) Extension() string {
	return RawExtension
}

// LZ4Codec wraps archives in an LZ4 frame.
type LZ4Codec struct {
	// Level is the compression level. Zero means lz4.Fast.
	Level lz4.CompressionLevel
}

// NewLZ4Codec creates an LZ4 codec with the default level.
func NewLZ4Codec() *LZ4Codec {
	return &LZ4Codec{Level: lz4.Fast}
}

// Encode implements ArchiveCodec.Encode.
func (c *LZ4Codec) Encode(w io.Writer, archive []byte) error {
	zw := lz4.NewWriter(w)

	err := zw.Apply(lz4.CompressionLevelOption(c.Level))
	if err != nil {
		return fmt.Errorf("lz4 options: %w", err)
	}

	_, err = zw.Write(archive)
	if err != nil {
		return fmt.Errorf("lz4 encode: %w", err)
	}

	err = zw.Close()
	if err != nil {
		return fmt.Errorf("lz4 encode: %w", err)
	}

	return nil
}

// Decode implements ArchiveCodec.Decode.
func (c *LZ4Codec) Decode(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(lz4.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("lz4 decode: %w", err)
	}

	return data, nil
}

// Extension implements ArchiveCodec.Extension.
func (c *LZ4Codec) Extension() string {
	return LZ4Extension
}

// CodecFor returns the codec matching the compress flag.
func CodecFor(compress bool) ArchiveCodec {
	if compress {
		return NewLZ4Codec()
	}

	return RawCodec{}
}

// CodecForPath picks a codec from the file name suffix.
func CodecForPath(path string) (ArchiveCodec, error) {
	switch {
	case strings.HasSuffix(path, LZ4Extension):
		return NewLZ4Codec(), nil
	case strings.HasSuffix(path, RawExtension):
		return RawCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownArchiveExtension, filepath.Base(path))
	}
}

// WrittenArchive describes a file produced by WriteArchive.
type WrittenArchive struct {
	Path  string
	Bytes int64
}

// WriteArchive writes data to dir/basename+ext. The file is written to a
// temporary name first and renamed into place.
func WriteArchive(dir, basename string, codec ArchiveCodec, data []byte) (WrittenArchive, error) {
	var buf bytes.Buffer

	err := codec.Encode(&buf, data)
	if err != nil {
		return WrittenArchive{}, fmt.Errorf("encode archive %s: %w", basename, err)
	}

	path := filepath.Join(dir, basename+codec.Extension())

	err = writeFileAtomic(path, buf.Bytes())
	if err != nil {
		return WrittenArchive{}, err
	}

	return WrittenArchive{Path: path, Bytes: int64(buf.Len())}, nil
}

// ReadArchive reads and decodes an archive file, choosing the codec by suffix.
func ReadArchive(path string) ([]byte, error) {
	codec, err := CodecForPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	data, err := codec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode archive %s: %w", filepath.Base(path), err)
	}

	return data, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}

	if err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	err = os.Rename(tmpName, path)
	if err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}

	return nil
}
