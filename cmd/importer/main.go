// Command importer loads catalog words from an .xlsx or .csv file.
//
//	importer [-sheet NAME] [-migrations URL] FILE
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"oxvocab/internal/catalog"
	"oxvocab/internal/config"
	"oxvocab/internal/repository/postgres"

	"go.uber.org/zap"
)

func main() {
	sheet := flag.String("sheet", "", "worksheet to read (default: first sheet)")
	migrations := flag.String("migrations", "", "apply migrations from this source URL first, e.g. file://migrations")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: importer [-sheet NAME] [-migrations URL] FILE")
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, dbCfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *migrations != "" {
		if err := postgres.Migrate(db, *migrations, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	importer := catalog.NewImporter(postgres.NewWordRepo(db), logger)
	result, err := importer.ImportFile(ctx, flag.Arg(0), *sheet)
	if err != nil {
		logger.Fatal("Import failed", zap.String("file", flag.Arg(0)), zap.Error(err))
	}

	for _, msg := range result.Errors {
		logger.Warn("Row rejected", zap.String("error", msg))
	}

	fmt.Printf("processed: %d, created: %d, skipped: %d, errors: %d\n",
		result.Processed, result.Created, result.Skipped, len(result.Errors))
}
