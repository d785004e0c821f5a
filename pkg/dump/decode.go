// File: pkg/dump/decode.go
package dump

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// readFileBytes opens a file, reads it to the end and closes it before returning.
func readFileBytes(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	return data, nil
}

// decodeText returns the content as text, or a *DecodeError locating the
// first byte sequence that is not valid UTF-8.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &DecodeError{Offset: i, Byte: data[i]}
		}
		i += size
	}
	// utf8.Valid and DecodeRune agree on every input; unreachable in practice.
	return "", &DecodeError{Offset: len(data)}
}

// isBlank reports whether the text is empty or consists only of whitespace.
// The ASCII file, group, record and unit separators count as whitespace too.
func isBlank(text string) bool {
	return strings.TrimFunc(text, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
