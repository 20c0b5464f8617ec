package encoding

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Lookup returns the encoding registered under an HTML/WHATWG label such as
// "windows-1252" or "latin1".
func Lookup(label string) (xenc.Encoding, error) {
	e, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}

	return e, nil
}

// NewUTF8Reader detects the encoding of a statement export and returns a
// reader that decodes it to UTF-8. The whole input is read before deciding,
// so a long ASCII head cannot hide legacy bytes further down.
//
// Detection order:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Valid UTF-8 is returned as-is (pure ASCII decodes the same either way)
//  3. the configured fallback, which is what bank exports use
//  4. chardet heuristics for the Latin-1 variants when no fallback is set
func NewUTF8Reader(r io.Reader, fallback xenc.Encoding) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return bytes.NewReader(data[len(bomUTF8):]), nil
	case bytes.HasPrefix(data, bomUTF16LE):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(bytes.NewReader(data), decoder), nil
	case bytes.HasPrefix(data, bomUTF16BE):
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(bytes.NewReader(data), decoder), nil
	}

	if utf8.Valid(data) {
		return bytes.NewReader(data), nil
	}

	return transform.NewReader(bytes.NewReader(data), detectLegacy(data, fallback).NewDecoder()), nil
}

// detectLegacy picks a single-byte charset for input that is not UTF-8.
// A configured fallback always wins, since chardet cannot tell the Latin-1
// variants apart reliably. Without one, chardet picks between them.
func detectLegacy(data []byte, fallback xenc.Encoding) xenc.Encoding {
	if fallback != nil {
		return fallback
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err == nil && result.Charset == "ISO-8859-15" {
		return charmap.ISO8859_15
	}

	return charmap.Windows1252
}
