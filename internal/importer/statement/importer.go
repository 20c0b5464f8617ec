package statement

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	xenc "golang.org/x/text/encoding"

	"github.com/MrJamesThe3rd/ledger/internal/importer/lineproc"
	"github.com/MrJamesThe3rd/ledger/internal/parse"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

// Record keys.
const (
	KeyDate        = "Date"
	KeyAmount      = "Amount"
	KeyBalance     = "Balance"
	KeyDescription = "Description"
)

const (
	recordDateLayout = "02/01/2006"
	// Fee line items are not modelled yet.
	feeSuffix = "FEE"
)

var (
	ErrUnmatched    = errors.New("unmatched transaction")
	ErrMissingField = errors.New("missing field")
	// ErrConsumed is returned when an import sequence is ranged over twice.
	ErrConsumed = errors.New("statement sequence already consumed")
)

// UnmatchedError reports a description no processor recognises.
type UnmatchedError struct {
	Record      int
	Description string
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("record %d: unmatched transaction %q", e.Record, e.Description)
}

func (e *UnmatchedError) Is(target error) bool { return target == ErrUnmatched }

// Importer turns one bank's statement text into transactions using its
// processor set.
type Importer struct {
	name     string
	set      *lineproc.Set
	fallback xenc.Encoding
}

type Option func(*Importer)

// WithEncoding sets the charset used when detection is inconclusive.
func WithEncoding(e xenc.Encoding) Option {
	return func(i *Importer) {
		i.fallback = e
	}
}

func New(name string, set *lineproc.Set, opts ...Option) *Importer {
	i := &Importer{name: name, set: set}
	for _, opt := range opts {
		opt(i)
	}

	return i
}

func (i *Importer) Name() string {
	return i.name
}

func (i *Importer) Processors() []*lineproc.Processor {
	return i.set.Processors()
}

// Import returns the transactions in r, produced lazily. Party names are
// resolved through parties as records are reached, so the sequence can be
// ranged over only once. The first error ends the sequence.
func (i *Importer) Import(ctx context.Context, r io.Reader, parties lineproc.Resolver) iter.Seq2[*transaction.Transaction, error] {
	used := false

	return func(yield func(*transaction.Transaction, error) bool) {
		if used {
			yield(nil, ErrConsumed)
			return
		}

		used = true
		n := 0

		for rec, err := range segment(r, i.fallback) {
			if err != nil {
				yield(nil, err)
				return
			}

			n++

			tx, err := i.convert(ctx, n, rec, parties)
			if err != nil {
				yield(nil, err)
				return
			}

			if tx == nil {
				continue
			}

			if !yield(tx, nil) {
				return
			}
		}
	}
}

// convert builds the transaction for record n. It returns nil for records
// that are skipped.
func (i *Importer) convert(ctx context.Context, n int, rec *RawRecord, parties lineproc.Resolver) (*transaction.Transaction, error) {
	amountRaw, err := field(n, rec, KeyAmount)
	if err != nil {
		return nil, err
	}

	amount, err := parse.Currency(amountRaw)
	if err != nil {
		return nil, fmt.Errorf("record %d: %s: %w", n, KeyAmount, err)
	}

	if balance, ok := rec.Get(KeyBalance); ok {
		if _, err := parse.Currency(balance); err != nil {
			return nil, fmt.Errorf("record %d: %s: %w", n, KeyBalance, err)
		}
	}

	dateRaw, err := field(n, rec, KeyDate)
	if err != nil {
		return nil, err
	}

	cleared, err := parse.Date(dateRaw, recordDateLayout)
	if err != nil {
		return nil, fmt.Errorf("record %d: %s: %w", n, KeyDate, err)
	}

	desc, err := field(n, rec, KeyDescription)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(desc, feeSuffix) {
		return nil, nil
	}

	extra := lineproc.Fields{
		lineproc.KeyAmount:      amount,
		lineproc.KeyClearedDate: cleared,
	}

	out, _, ok, err := i.set.Match(ctx, desc, extra, parties)
	if err != nil {
		return nil, fmt.Errorf("record %d: %w", n, err)
	}

	if !ok {
		return nil, &UnmatchedError{Record: n, Description: desc}
	}

	date := out.Date
	if date.IsZero() {
		date = cleared
	}

	_, week := date.ISOWeek()

	tx := &transaction.Transaction{
		Header: transaction.Header{
			Amount:      amount,
			ClearedDate: cleared,
			Date:        date,
			Week:        week,
		},
		Details: out.Details,
	}

	if out.Party != nil {
		tx.Alias = out.Party.Alias
		if cp := out.Party.Counterparty; cp != nil {
			tx.Category = cp.AutoCategory
		}
	}

	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("record %d: %w", n, err)
	}

	return tx, nil
}

func field(n int, rec *RawRecord, key string) (string, error) {
	v, ok := rec.Get(key)
	if !ok {
		return "", fmt.Errorf("record %d: %w %q", n, ErrMissingField, key)
	}

	return v, nil
}
