package statement

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	xenc "golang.org/x/text/encoding"

	"github.com/MrJamesThe3rd/ledger/internal/encoding"
	"github.com/MrJamesThe3rd/ledger/internal/parse"
)

// HeaderMarker starts the line that precedes the first record.
const HeaderMarker = "Account:"

const fieldSep = ": "

// maxLineSize bounds a single statement line.
const maxLineSize = 1 << 20

// Segment splits a statement into raw records. Lines before the header are
// discarded. The input is decoded with Windows-1252 unless another charset
// is detected.
func Segment(r io.Reader) iter.Seq2[*RawRecord, error] {
	return segment(r, nil)
}

func segment(r io.Reader, fallback xenc.Encoding) iter.Seq2[*RawRecord, error] {
	return func(yield func(*RawRecord, error) bool) {
		utf8r, err := encoding.NewUTF8Reader(r, fallback)
		if err != nil {
			yield(nil, fmt.Errorf("detect encoding: %w", err))
			return
		}

		scanner := bufio.NewScanner(utf8r)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

		var (
			lineNum      int
			passedHeader bool
		)

		current := NewRawRecord()

		for scanner.Scan() {
			lineNum++
			line := encoding.CleanLine(scanner.Text())

			if !passedHeader {
				passedHeader = strings.HasPrefix(line, HeaderMarker)
				continue
			}

			if line == "" {
				if current.Len() > 0 {
					if !yield(current, nil) {
						return
					}

					current = NewRawRecord()
				}

				continue
			}

			key, value, ok := strings.Cut(line, fieldSep)
			if !ok {
				yield(nil, fmt.Errorf("line %d: %w", lineNum, &parse.FormatError{Value: line, Reason: "expected key: value"}))
				return
			}

			current.Set(key, value)
		}

		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("read statement: %w", err))
			return
		}

		if current.Len() > 0 {
			yield(current, nil)
		}
	}
}
