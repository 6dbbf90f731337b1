package checks

import (
	"context"
	"fmt"
	"slices"

	"movie-grid/core/database"
	"movie-grid/feature/catalog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TableReport describes the movies table.
type TableReport struct {
	Table          string   `json:"table"`
	Expected       []string `json:"expected"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"`
}

// ExpectedColumns returns the columns of the movie model.
func ExpectedColumns(db *gorm.DB) ([]string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&catalog.Movie{}); err != nil {
		return nil, fmt.Errorf("failed to parse movie model: %w", err)
	}
	return slices.Clone(stmt.Schema.DBNames), nil
}

// CheckTable compares table against the movie model. A table without columns
// is reported missing.
func CheckTable(db *gorm.DB, table string) (*TableReport, error) {
	if db == nil {
		return nil, ErrNotConfigured
	}

	expected, err := ExpectedColumns(db)
	if err != nil {
		return nil, err
	}

	actual, err := database.GetTableColumns(db, table)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(actual))
	for _, col := range actual {
		present[col.Field] = true
	}

	report := &TableReport{Table: table, Expected: expected, MissingColumns: []string{}, Status: StatusOK}
	for _, col := range expected {
		if !present[col] {
			report.MissingColumns = append(report.MissingColumns, col)
		}
	}

	switch {
	case len(actual) == 0:
		report.Status = StatusMissing
	case len(report.MissingColumns) > 0:
		report.Status = StatusInvalid
	}
	return report, nil
}

// FixTable creates the table or adds its missing columns.
func FixTable(ctx context.Context, db *gorm.DB, table string, logger *zap.Logger) error {
	if db == nil {
		return ErrNotConfigured
	}
	if err := catalog.NewDBProvider(db, table).Seed(ctx, nil); err != nil {
		logger.Error("Failed to migrate movies table", zap.String("table", table), zap.Error(err))
		return err
	}
	logger.Info("Migrated movies table", zap.String("table", table))
	return nil
}
