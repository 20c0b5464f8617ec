package transaction

import (
	"context"
	"fmt"
	"iter"

	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	BeginImport(ctx context.Context) (ImportTx, error)
}

// ImportTx is the unit of work of one statement import. Counterparty lookups
// and registrations go through it too, so a failed import leaves no aliases
// behind.
type ImportTx interface {
	counterparty.Repository
	CreateTransaction(ctx context.Context, tx *Transaction) error
	Commit() error
	Rollback() error
}

// Source produces the transactions of one import, resolving counterparties
// through parties. It is ranged over exactly once.
type Source func(ctx context.Context, parties counterparty.Repository) iter.Seq2[*Transaction, error]

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ImportOptions struct {
	// DryRun persists everything inside the unit of work and then rolls it
	// back instead of committing.
	DryRun  bool
	// Confirm, when set, is asked before committing. Declining rolls the
	// unit of work back like a dry run.
	Confirm func(imported []*Transaction) (bool, error)
}

type ImportResult struct {
	Imported  []*Transaction
	Committed bool
}

// Import drains src into a single unit of work. Any error from src or from
// persistence rolls back every transaction, alias and counterparty written
// during the run.
func (s *Service) Import(ctx context.Context, src Source, opts ImportOptions) (*ImportResult, error) {
	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	var imported []*Transaction

	for tx, err := range src(ctx, itx) {
		if err != nil {
			return nil, err
		}

		if err := itx.CreateTransaction(ctx, tx); err != nil {
			return nil, fmt.Errorf("create transaction: %w", err)
		}

		imported = append(imported, tx)
	}

	if opts.DryRun {
		return &ImportResult{Imported: imported}, nil
	}

	if opts.Confirm != nil {
		ok, err := opts.Confirm(imported)
		if err != nil {
			return nil, fmt.Errorf("confirm import: %w", err)
		}

		if !ok {
			return &ImportResult{Imported: imported}, nil
		}
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: imported, Committed: true}, nil
}
