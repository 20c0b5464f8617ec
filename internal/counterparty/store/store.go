package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
	"github.com/MrJamesThe3rd/ledger/internal/database"
)

// Queries runs counterparty queries against a database or an open
// transaction.
type Queries struct {
	q database.Querier
}

func NewQueries(q database.Querier) *Queries {
	return &Queries{q: q}
}

type Store struct {
	*Queries
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{Queries: NewQueries(db), db: db}
}

func (q *Queries) FindAlias(ctx context.Context, name string) (*counterparty.Alias, error) {
	query := `
		SELECT a.alias, c.name, COALESCE(c.auto_category, '')
		FROM aliases a
		JOIN counterparties c ON c.name = a.counterparty
		WHERE LOWER(a.alias) = LOWER($1)
		ORDER BY a.alias
		LIMIT 2
	`

	rows, err := q.q.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("finding alias: %w", err)
	}
	defer rows.Close()

	var found []*counterparty.Alias

	for rows.Next() {
		a, err := scanAlias(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning alias: %w", err)
		}

		found = append(found, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alias rows: %w", err)
	}

	switch {
	case len(found) == 0:
		return nil, counterparty.ErrNotFound
	case len(found) > 1 && found[0].Counterparty.Name != found[1].Counterparty.Name:
		return nil, &counterparty.AmbiguousMatchError{
			Alias:          name,
			Counterparties: []string{found[0].Counterparty.Name, found[1].Counterparty.Name},
		}
	}

	return found[0], nil
}

func (q *Queries) ListPatterns(ctx context.Context) ([]*counterparty.Pattern, error) {
	query := `
		SELECT p.id, p.regex, c.name, COALESCE(c.auto_category, '')
		FROM patterns p
		JOIN counterparties c ON c.name = p.counterparty
		ORDER BY p.id ASC
	`

	rows, err := q.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing patterns: %w", err)
	}
	defer rows.Close()

	var patterns []*counterparty.Pattern

	for rows.Next() {
		p := &counterparty.Pattern{Counterparty: &counterparty.Counterparty{}}
		if err := rows.Scan(&p.ID, &p.Regex, &p.Counterparty.Name, &p.Counterparty.AutoCategory); err != nil {
			return nil, fmt.Errorf("scanning pattern: %w", err)
		}

		patterns = append(patterns, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pattern rows: %w", err)
	}

	return patterns, nil
}

// CreateCounterparty inserts a counterparty with no default category, or
// returns the existing one of the same name.
func (q *Queries) CreateCounterparty(ctx context.Context, name string) (*counterparty.Counterparty, error) {
	query := `
		INSERT INTO counterparties (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING name, COALESCE(auto_category, '')
	`

	var cp counterparty.Counterparty
	if err := q.q.QueryRowContext(ctx, query, name).Scan(&cp.Name, &cp.AutoCategory); err != nil {
		return nil, fmt.Errorf("creating counterparty: %w", err)
	}

	return &cp, nil
}

func (q *Queries) CreateAlias(ctx context.Context, name string, cp *counterparty.Counterparty) (*counterparty.Alias, error) {
	query := `INSERT INTO aliases (alias, counterparty) VALUES ($1, $2)`

	if _, err := q.q.ExecContext(ctx, query, name, cp.Name); err != nil {
		return nil, fmt.Errorf("creating alias: %w", err)
	}

	return &counterparty.Alias{Name: name, Counterparty: cp}, nil
}

func (q *Queries) GetOrCreateCounterparty(ctx context.Context, name string) (*counterparty.Counterparty, error) {
	query := `
		SELECT name, COALESCE(auto_category, '')
		FROM counterparties
		WHERE LOWER(name) = LOWER($1)
		ORDER BY name
		LIMIT 1
	`

	var cp counterparty.Counterparty

	err := q.q.QueryRowContext(ctx, query, name).Scan(&cp.Name, &cp.AutoCategory)
	if err == nil {
		return &cp, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("getting counterparty: %w", err)
	}

	return q.CreateCounterparty(ctx, name)
}

func (q *Queries) ListAliases(ctx context.Context) ([]counterparty.AliasUsage, error) {
	query := `
		SELECT a.alias, c.name, COALESCE(c.auto_category, ''),
			(SELECT COUNT(*) FROM aliases o WHERE o.counterparty = c.name)
		FROM aliases a
		JOIN counterparties c ON c.name = a.counterparty
		ORDER BY a.alias ASC
	`

	rows, err := q.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}
	defer rows.Close()

	var usages []counterparty.AliasUsage

	for rows.Next() {
		a := &counterparty.Alias{Counterparty: &counterparty.Counterparty{}}

		var count int
		if err := rows.Scan(&a.Name, &a.Counterparty.Name, &a.Counterparty.AutoCategory, &count); err != nil {
			return nil, fmt.Errorf("scanning alias: %w", err)
		}

		usages = append(usages, counterparty.AliasUsage{Alias: a, CounterpartyAliases: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alias rows: %w", err)
	}

	return usages, nil
}

func (q *Queries) ReassignAliases(ctx context.Context, aliases []string, cp *counterparty.Counterparty) error {
	query := `UPDATE aliases SET counterparty = $1 WHERE alias = ANY($2)`

	if _, err := q.q.ExecContext(ctx, query, cp.Name, aliases); err != nil {
		return fmt.Errorf("reassigning aliases: %w", err)
	}

	return nil
}

func (q *Queries) CreatePattern(ctx context.Context, cp *counterparty.Counterparty, regex string) (*counterparty.Pattern, error) {
	query := `
		INSERT INTO patterns (counterparty, regex)
		VALUES ($1, $2)
		ON CONFLICT (counterparty, regex) DO UPDATE SET regex = EXCLUDED.regex
		RETURNING id
	`

	p := &counterparty.Pattern{Counterparty: cp, Regex: regex}
	if err := q.q.QueryRowContext(ctx, query, cp.Name, regex).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("creating pattern: %w", err)
	}

	return p, nil
}

// DeleteOrphans removes counterparties that own neither aliases nor patterns.
func (q *Queries) DeleteOrphans(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM counterparties c
		WHERE NOT EXISTS (SELECT 1 FROM aliases a WHERE a.counterparty = c.name)
		AND NOT EXISTS (SELECT 1 FROM patterns p WHERE p.counterparty = c.name)
	`

	res, err := q.q.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("deleting orphans: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted orphans: %w", err)
	}

	return n, nil
}

type patternTx struct {
	*Queries
	tx *sql.Tx
}

func (s *Store) BeginPatternUpdate(ctx context.Context) (counterparty.PatternTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning pattern tx: %w", err)
	}

	return &patternTx{Queries: NewQueries(tx), tx: tx}, nil
}

func (ptx *patternTx) Commit() error   { return ptx.tx.Commit() }
func (ptx *patternTx) Rollback() error { return ptx.tx.Rollback() }

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAlias(s scanner) (*counterparty.Alias, error) {
	a := &counterparty.Alias{Counterparty: &counterparty.Counterparty{}}
	if err := s.Scan(&a.Name, &a.Counterparty.Name, &a.Counterparty.AutoCategory); err != nil {
		return nil, err
	}

	return a, nil
}
