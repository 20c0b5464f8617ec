package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledger/cmd/importstatement/internal/console"
	"github.com/MrJamesThe3rd/ledger/internal/config"
	"github.com/MrJamesThe3rd/ledger/internal/counterparty"
	cpStore "github.com/MrJamesThe3rd/ledger/internal/counterparty/store"
	"github.com/MrJamesThe3rd/ledger/internal/database"
	"github.com/MrJamesThe3rd/ledger/internal/encoding"
	"github.com/MrJamesThe3rd/ledger/internal/importer"
	"github.com/MrJamesThe3rd/ledger/internal/transaction"
	txStore "github.com/MrJamesThe3rd/ledger/internal/transaction/store"
)

const description = "Imports bank statements into the finance database."

var errUsage = errors.New("invalid arguments")

type options struct {
	dryRun       bool
	confirm      bool
	pattern      string
	counterparty string
	preview      bool
}

func main() {
	_ = godotenv.Load()

	var opts options

	flag.BoolVar(&opts.dryRun, "dry-run", false, "do not commit to the database, dry run only")
	flag.BoolVar(&opts.confirm, "confirm", false, "show the imported transactions and ask before committing")
	flag.StringVar(&opts.pattern, "pattern", "", "register a counterparty pattern instead of importing")
	flag.StringVar(&opts.counterparty, "counterparty", "", "counterparty that owns -pattern")
	flag.BoolVar(&opts.preview, "preview", false, "with -pattern, only list the aliases it matches")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.App.LogLevel}))
	slog.SetDefault(logger)

	out := console.New(os.Stdout)

	if err := run(context.Background(), cfg, logger, out, opts, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		}

		console.New(os.Stderr).Error(err)
		os.Exit(1)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "%s\n\n", description)
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s [-dry-run] [-confirm] <module>.<importer> <file>\n", os.Args[0])
	fmt.Fprintf(w, "  %s -pattern <regex> -counterparty <name> [-preview]\n\n", os.Args[0])
	flag.PrintDefaults()
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out *console.Printer, opts options, args []string) error {
	if opts.pattern != "" {
		return runPattern(ctx, cfg, out, opts)
	}

	if len(args) != 2 {
		return fmt.Errorf("%w: expected <module>.<importer> and <file>", errUsage)
	}

	name, path := args[0], args[1]
	registry := importer.DefaultRegistry()

	out.Title(os.Args[0], description)

	// Unknown importers fail before any input is read.
	entry, err := registry.Lookup(name)
	if err != nil {
		module, _, _ := strings.Cut(name, ".")
		out.Importers(module, registry.Module(module), "")

		return err
	}

	out.Importers(entry.Module, registry.Module(entry.Module), entry.FullName())

	enc, err := encoding.Lookup(cfg.Import.Encoding)
	if err != nil {
		return fmt.Errorf("IMPORT_ENCODING: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := importer.NewService(
		registry,
		transaction.NewService(txStore.New(db)),
		importer.Options{Encoding: enc},
		logger,
	)

	req := importer.Request{
		Importer: entry.FullName(),
		Input:    f,
		DryRun:   opts.dryRun,
	}

	if opts.confirm {
		req.Confirm = confirmImport(out)
	}

	out.Stage("Using importer", entry.FullName(), "...")

	res, err := svc.Run(ctx, req)
	if err != nil {
		return err
	}

	if !opts.confirm {
		out.Transactions(res.Transactions)
	}

	out.Summary(res, opts.dryRun)

	return nil
}

func runPattern(ctx context.Context, cfg *config.Config, out *console.Printer, opts options) error {
	if opts.counterparty == "" && !opts.preview {
		return fmt.Errorf("%w: -pattern needs -counterparty", errUsage)
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := counterparty.NewService(cpStore.New(db))

	out.Stage("Aliases matching", opts.pattern)

	usages, err := svc.Preview(ctx, opts.pattern)
	if err != nil {
		return err
	}

	out.Aliases(usages)

	if opts.preview {
		return nil
	}

	if opts.confirm {
		ok, err := ask(fmt.Sprintf("Assign these aliases to %q?", opts.counterparty))
		if err != nil || !ok {
			return err
		}
	}

	res, err := svc.AddPattern(ctx, opts.counterparty, opts.pattern)
	if err != nil {
		return err
	}

	out.PatternAdded(res)

	return nil
}

func openDB(cfg *config.Config) (*sql.DB, error) {
	db, err := database.New(cfg.ConnectionString(), database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func confirmImport(out *console.Printer) func([]*transaction.Transaction) (bool, error) {
	return func(imported []*transaction.Transaction) (bool, error) {
		out.Transactions(imported)
		return ask(fmt.Sprintf("Commit %d transactions?", len(imported)))
	}
}

func ask(title string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}

	return ok, nil
}
