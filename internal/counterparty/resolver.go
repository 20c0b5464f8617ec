package counterparty

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
)

//go:generate mockgen -source=resolver.go -destination=repository_mock.go -package=counterparty
type Repository interface {
	// FindAlias looks name up case-insensitively. It returns ErrNotFound when
	// no alias exists.
	FindAlias(ctx context.Context, name string) (*Alias, error)
	ListPatterns(ctx context.Context) ([]*Pattern, error)
	CreateCounterparty(ctx context.Context, name string) (*Counterparty, error)
	CreateAlias(ctx context.Context, name string, cp *Counterparty) (*Alias, error)
}

// Resolution is the outcome of resolving one alias.
type Resolution struct {
	Counterparty *Counterparty
	Alias        *Alias
	Created      bool
}

type compiledPattern struct {
	pattern *Pattern
	re      *regexp.Regexp
}

// Resolver maps free-text names to counterparties. A Resolver belongs to a
// single import run: patterns are loaded on first use and it is not safe for
// concurrent use.
type Resolver struct {
	repo     Repository
	patterns []compiledPattern
	loaded   bool
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve returns the counterparty owning name, creating the alias (and, when
// no pattern claims it, a self-named counterparty) on first sight.
func (r *Resolver) Resolve(ctx context.Context, name string) (Resolution, error) {
	alias, err := r.repo.FindAlias(ctx, name)
	if err == nil {
		return Resolution{Counterparty: alias.Counterparty, Alias: alias}, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return Resolution{}, fmt.Errorf("finding alias %q: %w", name, err)
	}

	cp, err := r.classify(ctx, name)
	if err != nil {
		return Resolution{}, err
	}

	if cp == nil {
		cp, err = r.repo.CreateCounterparty(ctx, name)
		if err != nil {
			return Resolution{}, fmt.Errorf("creating counterparty %q: %w", name, err)
		}
	}

	alias, err = r.repo.CreateAlias(ctx, name, cp)
	if err != nil {
		return Resolution{}, fmt.Errorf("creating alias %q: %w", name, err)
	}

	return Resolution{Counterparty: cp, Alias: alias, Created: true}, nil
}

// classify returns the counterparty whose patterns match name, or nil.
// Several patterns of the same counterparty matching is not ambiguous.
func (r *Resolver) classify(ctx context.Context, name string) (*Counterparty, error) {
	if err := r.loadPatterns(ctx); err != nil {
		return nil, err
	}

	var (
		found *Counterparty
		names []string
	)

	for _, p := range r.patterns {
		if !p.re.MatchString(name) {
			continue
		}

		if found == nil {
			found = p.pattern.Counterparty
			names = append(names, found.Name)

			continue
		}

		if slices.Contains(names, p.pattern.Counterparty.Name) {
			continue
		}

		names = append(names, p.pattern.Counterparty.Name)
	}

	if len(names) > 1 {
		return nil, &AmbiguousMatchError{Alias: name, Counterparties: names}
	}

	return found, nil
}

func (r *Resolver) loadPatterns(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	patterns, err := r.repo.ListPatterns(ctx)
	if err != nil {
		return fmt.Errorf("listing patterns: %w", err)
	}

	r.patterns = make([]compiledPattern, 0, len(patterns))

	for _, p := range patterns {
		re, err := Compile(p.Regex)
		if err != nil {
			return fmt.Errorf("pattern %d for %q: %w", p.ID, p.Counterparty.Name, err)
		}

		r.patterns = append(r.patterns, compiledPattern{pattern: p, re: re})
	}

	r.loaded = true

	return nil
}

// Compile compiles a stored pattern for case-insensitive, unanchored search.
func Compile(expr string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + expr)
}
