// Package catalog loads the word list from spreadsheet exports.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"oxvocab/internal/domain"
	"oxvocab/internal/repository"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Column layout of an import file: word, word class, level
const (
	colWord = iota
	colWordClass
	colLevel
	columnCount
)

// Result holds the outcome of an import run
type Result struct {
	Processed int
	Created   int
	Skipped   int
	Errors    []string
}

// Importer inserts catalog rows into the word store
type Importer struct {
	words  repository.WordRepository
	logger *zap.Logger
}

// NewImporter creates a new importer
func NewImporter(words repository.WordRepository, logger *zap.Logger) *Importer {
	return &Importer{
		words:  words,
		logger: logger,
	}
}

// ImportFile imports a .csv file, or an Excel workbook for any other
// extension. sheet selects the worksheet and defaults to the first one.
func (i *Importer) ImportFile(ctx context.Context, path, sheet string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return i.ImportCSV(ctx, file)
	}
	return i.ImportXLSX(ctx, file, sheet)
}

// ImportXLSX imports rows from an Excel workbook
func (i *Importer) ImportXLSX(ctx context.Context, r io.Reader, sheet string) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return i.importRows(ctx, rows)
}

// ImportCSV imports rows from a comma separated file
func (i *Importer) ImportCSV(ctx context.Context, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return i.importRows(ctx, rows)
}

// importRows skips the header row and blank rows
func (i *Importer) importRows(ctx context.Context, rows [][]string) (*Result, error) {
	result := &Result{Errors: make([]string, 0)}

	for n, row := range rows {
		if n == 0 || isBlank(row) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Processed++

		created, err := i.importRow(ctx, row)
		switch {
		case err != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", n+1, err))
		case created:
			result.Created++
		default:
			result.Skipped++
		}
	}

	i.logger.Info("Catalog import finished",
		zap.Int("processed", result.Processed),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)),
	)

	return result, nil
}

func (i *Importer) importRow(ctx context.Context, row []string) (bool, error) {
	if len(row) < columnCount {
		return false, fmt.Errorf("expected %d columns, got %d", columnCount, len(row))
	}

	word := strings.TrimSpace(row[colWord])
	wordClass := strings.ToLower(strings.TrimSpace(row[colWordClass]))
	if word == "" {
		return false, fmt.Errorf("word cannot be empty")
	}
	if wordClass == "" {
		return false, fmt.Errorf("word class cannot be empty")
	}

	level, err := domain.ParseLevel(row[colLevel])
	if err != nil {
		return false, err
	}

	created, err := i.words.Insert(ctx, word, wordClass, level)
	if err != nil {
		return false, fmt.Errorf("insert %q: %w", word, err)
	}
	return created, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
