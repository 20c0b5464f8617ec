package importer

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
)

type Service struct {
	registry *Registry
	txs      *transaction.Service
	opts     Options
	logger   *slog.Logger
}

func NewService(registry *Registry, txs *transaction.Service, opts Options, logger *slog.Logger) *Service {
	return &Service{
		registry: registry,
		txs:      txs,
		opts:     opts,
		logger:   logger,
	}
}

type Request struct {
	// Importer is the dotted `<module>.<name>` importer name.
	Importer string
	Input    io.Reader
	DryRun   bool
	// Confirm is asked before committing. See transaction.ImportOptions.
	Confirm  func(imported []*transaction.Transaction) (bool, error)
}

type Result struct {
	Importer       string
	Transactions   []*transaction.Transaction
	AliasesCreated int
	Committed      bool
}

// Run imports one statement. The importer is resolved before any input is
// read. The whole run is a single unit of work: any error leaves nothing
// behind, and a dry run is rolled back after every insert succeeded.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	entry, err := s.registry.Lookup(req.Importer)
	if err != nil {
		return nil, err
	}

	imp := entry.Factory(s.opts)
	tracker := &trackingResolver{logger: s.logger}

	src := func(ctx context.Context, parties counterparty.Repository) iter.Seq2[*transaction.Transaction, error] {
		tracker.resolver = counterparty.NewResolver(parties)
		return imp.Import(ctx, req.Input, tracker)
	}

	res, err := s.txs.Import(ctx, src, transaction.ImportOptions{
		DryRun:  req.DryRun,
		Confirm: req.Confirm,
	})
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", entry.FullName(), err)
	}

	s.logger.Info("statement imported",
		"importer", entry.FullName(),
		"transactions", len(res.Imported),
		"aliases_created", tracker.created,
		"committed", res.Committed,
	)

	return &Result{
		Importer:       entry.FullName(),
		Transactions:   res.Imported,
		AliasesCreated: tracker.created,
		Committed:      res.Committed,
	}, nil
}

// trackingResolver counts and logs the aliases created during a run.
type trackingResolver struct {
	resolver *counterparty.Resolver
	logger   *slog.Logger
	created  int
}

func (r *trackingResolver) Resolve(ctx context.Context, name string) (counterparty.Resolution, error) {
	res, err := r.resolver.Resolve(ctx, name)
	if err != nil {
		return res, err
	}

	if res.Created {
		r.created++
		r.logger.Debug("alias created", "alias", name, "counterparty", res.Counterparty.Name)
	}

	return res, nil
}
