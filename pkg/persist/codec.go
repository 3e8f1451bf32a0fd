// Package persist writes encoded archives and build metadata to disk.
//
// Archives go through an ArchiveCodec (raw or LZ4-framed). Structured
// documents such as the build manifest go through a DocumentCodec (YAML or
// JSON).
package persist

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File extensions for supported document codecs.
const (
	jsonExtension = ".json"
	yamlExtension = ".yaml"
)

// Default indentation for pretty-printed documents.
const (
	defaultIndent     = "  "
	defaultYAMLIndent = 2
)

// DocumentCodec defines how a structured document is serialized.
type DocumentCodec interface {
	// Encode writes the document to the writer.
	Encode(w io.Writer, doc any) error
	// Decode reads the document from the reader.
	Decode(r io.Reader, doc any) error
	// Extension returns the file extension for this codec (e.g., ".yaml").
	Extension() string
}

// JSONCodec implements DocumentCodec using JSON encoding with optional indentation.
type JSONCodec struct {
	// Indent specifies the indentation string. Empty string means compact JSON.
	Indent string
}

// NewJSONCodec creates a JSON codec with pretty-printing (2-space indent).
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: defaultIndent}
}

// Encode implements DocumentCodec.Encode.
func (c *JSONCodec) Encode(w io.Writer, doc any) error {
	encoder := json.NewEncoder(w)
	if c.Indent != "" {
		encoder.SetIndent("", c.Indent)
	}

	err := encoder.Encode(doc)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

// Decode implements DocumentCodec.Decode.
func (c *JSONCodec) Decode(r io.Reader, doc any) error {
	err := json.NewDecoder(r).Decode(doc)
	if err != nil {
		return fmt.Errorf("json decode: %w", err)
	}

	return nil
}

// Extension implements DocumentCodec.Extension.
func (c *JSONCodec) Extension() string {
	return jsonExtension
}

// YAMLCodec implements DocumentCodec using yaml.v3.
type YAMLCodec struct{}

// NewYAMLCodec creates a YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Encode implements DocumentCodec.Encode.
func (c *YAMLCodec) Encode(w io.Writer, doc any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(doc)
	if err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	return nil
}

// Decode implements DocumentCodec.Decode.
func (c *YAMLCodec) Decode(r io.Reader, doc any) error {
	err := yaml.NewDecoder(r).Decode(doc)
	if err != nil {
		return fmt.Errorf("yaml decode: %w", err)
	}

	return nil
}

// Extension implements DocumentCodec.Extension.
func (c *YAMLCodec) Extension() string {
	return yamlExtension
}
