package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"

	cpstore "github.com/MrJamesThe3rd/ledger/internal/counterparty/store"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// importLockKey is the advisory lock every import run takes, so alias and
// counterparty registration is serialized across concurrent runs.
var importLockKey = func() int64 {
	h := fnv.New64a()
	h.Write([]byte("statement-import"))

	return int64(h.Sum64())
}()

type importTx struct {
	*cpstore.Queries
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context) (transaction.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{Queries: cpstore.NewQueries(dbTx), tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	details, err := json.Marshal(tx.Details)
	if err != nil {
		return fmt.Errorf("encoding %s details: %w", tx.Kind(), err)
	}

	var alias sql.NullString
	if tx.Alias != nil {
		alias = sql.NullString{String: tx.Alias.Name, Valid: true}
	}

	var category sql.NullString
	if tx.Category != "" {
		category = sql.NullString{String: tx.Category, Valid: true}
	}

	query := `
		INSERT INTO transactions (kind, amount, cleared_date, date, week, category, counterparty_alias, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err = itx.tx.QueryRowContext(ctx, query,
		string(tx.Kind()),
		tx.Amount,
		tx.ClearedDate,
		tx.Date,
		tx.Week,
		category,
		alias,
		details,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}
