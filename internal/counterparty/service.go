package counterparty

import (
	"context"
	"fmt"
	"regexp"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=counterparty
type PatternRepository interface {
	ListAliases(ctx context.Context) ([]AliasUsage, error)
	BeginPatternUpdate(ctx context.Context) (PatternTx, error)
}

// PatternTx groups the writes of one pattern registration so a rejected
// pattern leaves aliases untouched.
type PatternTx interface {
	// GetOrCreateCounterparty matches name case-insensitively.
	GetOrCreateCounterparty(ctx context.Context, name string) (*Counterparty, error)
	ListAliases(ctx context.Context) ([]AliasUsage, error)
	ReassignAliases(ctx context.Context, aliases []string, cp *Counterparty) error
	CreatePattern(ctx context.Context, cp *Counterparty, regex string) (*Pattern, error)
	// DeleteOrphans removes counterparties left without aliases.
	DeleteOrphans(ctx context.Context) (int64, error)
	Commit() error
	Rollback() error
}

// AliasUsage is an alias together with the number of aliases its
// counterparty owns, itself included.
type AliasUsage struct {
	Alias               *Alias
	CounterpartyAliases int
}

type Service struct {
	repo PatternRepository
}

func NewService(repo PatternRepository) *Service {
	return &Service{repo: repo}
}

// Preview lists the existing aliases regex would claim.
func (s *Service) Preview(ctx context.Context, regex string) ([]AliasUsage, error) {
	re, err := Compile(regex)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern: %w", err)
	}

	usages, err := s.repo.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}

	return matchAliases(re, usages), nil
}

type PatternResult struct {
	Counterparty   *Counterparty
	Pattern        *Pattern
	Reassigned     []*Alias
	OrphansDeleted int64
}

// AddPattern registers regex for the named counterparty and moves every
// existing alias it matches onto that counterparty. Aliases whose current
// counterparty owns other aliases are never taken; the whole registration is
// rejected with ErrPatternConflict instead.
func (s *Service) AddPattern(ctx context.Context, name, regex string) (*PatternResult, error) {
	re, err := Compile(regex)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern: %w", err)
	}

	ptx, err := s.repo.BeginPatternUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin pattern update: %w", err)
	}
	defer ptx.Rollback()

	cp, err := ptx.GetOrCreateCounterparty(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get or create counterparty: %w", err)
	}

	usages, err := ptx.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}

	matched := matchAliases(re, usages)

	var (
		names      []string
		reassigned []*Alias
	)

	for _, u := range matched {
		if u.Alias.Counterparty.Name == cp.Name {
			continue
		}

		if u.CounterpartyAliases > 1 {
			return nil, fmt.Errorf("alias %q of %q: %w", u.Alias.Name, u.Alias.Counterparty.Name, ErrPatternConflict)
		}

		names = append(names, u.Alias.Name)
		reassigned = append(reassigned, &Alias{Name: u.Alias.Name, Counterparty: cp})
	}

	if len(names) > 0 {
		if err := ptx.ReassignAliases(ctx, names, cp); err != nil {
			return nil, fmt.Errorf("reassigning aliases: %w", err)
		}
	}

	pattern, err := ptx.CreatePattern(ctx, cp, regex)
	if err != nil {
		return nil, fmt.Errorf("creating pattern: %w", err)
	}

	orphans, err := ptx.DeleteOrphans(ctx)
	if err != nil {
		return nil, fmt.Errorf("deleting orphaned counterparties: %w", err)
	}

	if err := ptx.Commit(); err != nil {
		return nil, fmt.Errorf("commit pattern update: %w", err)
	}

	return &PatternResult{
		Counterparty:   cp,
		Pattern:        pattern,
		Reassigned:     reassigned,
		OrphansDeleted: orphans,
	}, nil
}

func matchAliases(re *regexp.Regexp, usages []AliasUsage) []AliasUsage {
	var matched []AliasUsage

	for _, u := range usages {
		if re.MatchString(u.Alias.Name) {
			matched = append(matched, u)
		}
	}

	return matched
}
