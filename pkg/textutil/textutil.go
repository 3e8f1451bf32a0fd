// Package textutil provides byte-level helpers for vetting icon source files
// before they are handed to the parsers: binary detection and BOM trimming.
package textutil

import "bytes"

// BinarySniffLength is the maximum number of bytes scanned for null-byte
// detection. Matches the heuristic used by Git and most editors.
const BinarySniffLength = 8000

// utf8BOM is the UTF-8 encoded byte order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsBinary returns true if data contains a null byte within the first
// BinarySniffLength bytes. Empty data is not binary.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	sniff := data
	if len(sniff) > BinarySniffLength {
		sniff = sniff[:BinarySniffLength]
	}

	return bytes.IndexByte(sniff, 0) >= 0
}

// TrimBOM strips a leading UTF-8 byte order mark. JSON decoders reject it.
func TrimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}
