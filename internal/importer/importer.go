package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	xenc "golang.org/x/text/encoding"

	"github.com/MrJamesThe3rd/ledger/internal/importer/lineproc"
	"github.com/MrJamesThe3rd/ledger/internal/importer/santander"
	"github.com/MrJamesThe3rd/ledger/internal/importer/statement"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

var ErrUnknownImporter = errors.New("unknown importer")

type Importer interface {
	Name() string
	Import(ctx context.Context, r io.Reader, parties lineproc.Resolver) iter.Seq2[*transaction.Transaction, error]
}

// Options are passed to every factory.
type Options struct {
	// Encoding is used when the input charset cannot be detected.
	Encoding xenc.Encoding
}

type Factory func(opts Options) Importer

type Entry struct {
	Module  string
	Name    string
	Factory Factory
}

// FullName returns the dotted name the entry is selected by.
func (e Entry) FullName() string {
	return e.Module + "." + e.Name
}

// Registry maps `<module>.<name>` to importer factories.
type Registry struct {
	entries []Entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry holding every built-in importer.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(santander.Module, santander.Name, func(opts Options) Importer {
		return santander.New(statement.WithEncoding(opts.Encoding))
	})

	return r
}

func (r *Registry) Register(module, name string, f Factory) {
	r.entries = append(r.entries, Entry{Module: module, Name: name, Factory: f})
}

// Lookup finds the importer registered under a dotted name.
func (r *Registry) Lookup(fullName string) (Entry, error) {
	module, name, ok := strings.Cut(fullName, ".")
	if !ok {
		return Entry{}, fmt.Errorf("%w %q: expected <module>.<name>", ErrUnknownImporter, fullName)
	}

	for _, e := range r.entries {
		if e.Module == module && e.Name == name {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w %q", ErrUnknownImporter, fullName)
}

// Module lists the importers registered under module.
func (r *Registry) Module(module string) []Entry {
	var out []Entry

	for _, e := range r.entries {
		if e.Module == module {
			out = append(out, e)
		}
	}

	return out
}
