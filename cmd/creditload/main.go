// Command creditload bulk-loads the customer and credit history CSV exports into PostgreSQL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/polkiloo/creditscore/internal/config"
	"github.com/polkiloo/creditscore/internal/logger"
	"github.com/polkiloo/creditscore/internal/storage/postgres"
	"github.com/polkiloo/creditscore/internal/usecase"
)

type options struct {
	databaseURI string
	customers   string
	records     string
	logLevel    string
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creditload: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(&config.Config{LogLevel: opts.logLevel})
	if err := load(ctx, opts, log); err != nil {
		log.Error("credit dataset load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseOptions(args []string, lookup func(string) (string, bool)) (options, error) {
	opts := options{
		customers: "customers.csv",
		records:   "credit_records.csv",
		logLevel:  "info",
	}
	if v, ok := lookup("DATABASE_URI"); ok {
		opts.databaseURI = v
	}

	fs := flag.NewFlagSet("creditload", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.databaseURI, "d", opts.databaseURI, "PostgreSQL DSN")
	fs.StringVar(&opts.customers, "customers", opts.customers, "Customers CSV file")
	fs.StringVar(&opts.records, "records", opts.records, "Credit records CSV file")
	fs.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("parse flags: %w", err)
	}

	if opts.databaseURI == "" {
		return options{}, errors.New("database URI must be provided")
	}
	return opts, nil
}

func load(ctx context.Context, opts options, log *slog.Logger) error {
	customers, err := os.Open(opts.customers)
	if err != nil {
		return err
	}
	defer customers.Close()

	records, err := os.Open(opts.records)
	if err != nil {
		return err
	}
	defer records.Close()

	storage, err := postgres.New(ctx, opts.databaseURI, log)
	if err != nil {
		return err
	}
	defer storage.Close()

	_, err = usecase.NewImportUseCase(storage.Importer(), log).Import(ctx, customers, records)
	return err
}
