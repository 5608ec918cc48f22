package grid

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load parses UTF-8 source text into a fresh Grid. Every line
// terminator (\n, \r\n, or a lone \r) ends a row; within a row, successive
// codepoints occupy successive columns starting at 0. Trailing
// whitespace is significant: a run of it forms Other cells, except for
// the space character itself, which is a no-op Control cell.
func Load(source string) *Grid {
	g := New()
	x, y := 0, 0
	for i := 0; i < len(source); {
		if source[i] == '\n' {
			y++
			x = 0
			i++
			continue
		}
		if source[i] == '\r' {
			if i+1 < len(source) && source[i+1] == '\n' {
				i++
			}
			y++
			x = 0
			i++
			continue
		}
		cp, size := utf8.DecodeRuneInString(source[i:])
		g.Put(x, y, cp)
		x++
		i += size
	}
	return g
}

// LoadFile reads path and parses it into a Grid. It sniffs a UTF-8 or
// UTF-16 byte-order mark, since a ><> script is plain UTF-8 text that
// may still arrive with a BOM from an editor; files without one are
// assumed to already be UTF-8.
func LoadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	source, err := decodeSource(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return Load(source), nil
}

func decodeSource(data []byte) (string, error) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return string(data[3:]), nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return decodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return decodeUTF16(data, unicode.BigEndian)
	case utf8.Valid(data):
		return string(data), nil
	default:
		return "", fmt.Errorf("source is not valid UTF-8")
	}
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16: %w", err)
	}
	return string(bytes.TrimPrefix(decoded, []byte("﻿"))), nil
}
