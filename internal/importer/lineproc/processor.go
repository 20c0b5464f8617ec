package lineproc

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

// Resolver maps a party name from a description to its counterparty.
type Resolver interface {
	Resolve(ctx context.Context, name string) (counterparty.Resolution, error)
}

// Extracted is what a processor's cleaning step produces.
type Extracted struct {
	Details transaction.Details
	// Date is the transaction date printed in the description, if any.
	// The statement importer falls back to the cleared date when zero.
	Date  time.Time
	Party *counterparty.Resolution
}

// ExtractFunc turns coerced fields into a transaction variant, resolving
// party names through parties and filling variant defaults.
type ExtractFunc func(ctx context.Context, f Fields, parties Resolver) (Extracted, error)

// Processor recognises one description format.
type Processor struct {
	Name    string
	Kind    transaction.Kind
	Fields  []FieldSpec
	Extract ExtractFunc

	pattern *regexp.Regexp
}

// New compiles pattern so that only a match of the whole line counts. Every
// declared field must be a named group of the pattern.
func New(name string, kind transaction.Kind, pattern string, extract ExtractFunc, fields ...FieldSpec) (*Processor, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("processor %s: %w", name, err)
	}

	for _, f := range fields {
		if re.SubexpIndex(f.Group) < 0 {
			return nil, fmt.Errorf("processor %s: pattern has no group %q", name, f.Group)
		}
	}

	if extract == nil {
		return nil, fmt.Errorf("processor %s: missing extract func", name)
	}

	return &Processor{Name: name, Kind: kind, Fields: fields, Extract: extract, pattern: re}, nil
}

// MustNew is like New but panics on error. It is meant for static
// processor tables.
func MustNew(name string, kind transaction.Kind, pattern string, extract ExtractFunc, fields ...FieldSpec) *Processor {
	p, err := New(name, kind, pattern, extract, fields...)
	if err != nil {
		panic(err)
	}

	return p
}

func (p *Processor) Pattern() string {
	return p.pattern.String()
}

// fields reports whether line matches and, if so, returns extra merged with
// the coerced declared groups.
func (p *Processor) fields(line string, extra Fields) (Fields, bool, error) {
	m := p.pattern.FindStringSubmatchIndex(line)
	if m == nil {
		return nil, false, nil
	}

	f := make(Fields, len(extra)+len(p.Fields))
	for k, v := range extra {
		f[k] = v
	}

	for _, spec := range p.Fields {
		idx := p.pattern.SubexpIndex(spec.Group)
		if m[2*idx] < 0 {
			continue
		}

		v, err := spec.Coerce.apply(line[m[2*idx]:m[2*idx+1]])
		if err != nil {
			return nil, true, fmt.Errorf("processor %s, group %s: %w", p.Name, spec.Group, err)
		}

		f[spec.Group] = v
	}

	return f, true, nil
}

// Match tries the processor against line. It returns ok=false, and no
// error, when the line has a different shape.
func (p *Processor) Match(ctx context.Context, line string, extra Fields, parties Resolver) (Extracted, bool, error) {
	f, ok, err := p.fields(line, extra)
	if !ok || err != nil {
		return Extracted{}, ok, err
	}

	if err := f.mustHave(KeyAmount, KeyClearedDate); err != nil {
		return Extracted{}, true, fmt.Errorf("processor %s: %w", p.Name, err)
	}

	out, err := p.Extract(ctx, f, parties)
	if err != nil {
		return Extracted{}, true, fmt.Errorf("processor %s: %w", p.Name, err)
	}

	if out.Details == nil || out.Details.Kind() != p.Kind {
		return Extracted{}, true, fmt.Errorf("processor %s: extracted %v, want %s", p.Name, out.Details, p.Kind)
	}

	return out, true, nil
}
