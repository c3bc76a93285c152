// Package reader retrieves PHP source text and normalizes it to UTF-8 before
// it reaches the analysis core.
package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrSourceUnavailable is returned when source cannot be read from a path.
var ErrSourceUnavailable = errors.New("source unavailable")

// FromFile reads and normalizes the source at path.
func FromFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, ErrSourceUnavailable)
	}
	return Normalize(content), nil
}

// FromStream reads and normalizes source from r. It never reports
// ErrSourceUnavailable, but blocks until r reaches EOF; a stream that never
// ends blocks forever.
func FromStream(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}
	return Normalize(content), nil
}

// Normalize converts content to UTF-8 on a best-effort basis. UTF-16 input is
// detected by its byte order mark and decoded; a UTF-8 byte order mark is
// stripped. Anything else is assumed to already be UTF-8 or ASCII and passes
// through untouched, without an error on ambiguous input.
func Normalize(content []byte) []byte {
	switch {
	case bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}):
		return content[3:]
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}), bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, content)
		if err != nil {
			return content
		}
		return decoded
	}
	return content
}
