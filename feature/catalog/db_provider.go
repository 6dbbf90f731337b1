package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"movie-grid/core/database"
	"movie-grid/core/reconcile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Movie is a row of the movies table.
type Movie struct {
	ID    int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Title string `gorm:"column:title;size:255;not null"`
}

// DBProvider reads the whole movies table on every Load.
type DBProvider struct {
	db    *gorm.DB
	table string

	mu      sync.Mutex
	checked bool
}

// NewDBProvider creates a provider reading table.
func NewDBProvider(db *gorm.DB, table string) *DBProvider {
	return &DBProvider{db: db, table: table}
}

func (p *DBProvider) Name() string {
	return ProviderDatabase
}

// Load returns every movie ordered by id. The table layout is verified on the
// first successful load.
func (p *DBProvider) Load(ctx context.Context) ([]reconcile.Item, error) {
	db := p.db.WithContext(ctx)

	if err := p.checkSchema(db); err != nil {
		return nil, err
	}

	var rows []Movie
	if err := db.Table(p.table).Select("id", "title").Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.table, err)
	}

	items := make([]reconcile.Item, 0, len(rows))
	for _, row := range rows {
		item := reconcile.Item{ID: reconcile.ID(row.ID), Title: row.Title}
		if item.Title == "" {
			item.Title = strconv.Itoa(row.ID)
		}
		items = append(items, item)
	}
	return items, nil
}

func (p *DBProvider) checkSchema(db *gorm.DB) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.checked {
		return nil
	}
	if err := database.RequireColumns(db, p.table, "id", "title"); err != nil {
		return err
	}
	p.checked = true
	return nil
}

// Seed creates the table if needed and upserts items.
func (p *DBProvider) Seed(ctx context.Context, items []reconcile.Item) error {
	db := p.db.WithContext(ctx)
	if err := db.Table(p.table).AutoMigrate(&Movie{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", p.table, err)
	}
	if len(items) == 0 {
		return nil
	}

	rows := make([]Movie, 0, len(items))
	for _, item := range items {
		rows = append(rows, Movie{ID: int(item.ID), Title: item.Title})
	}

	err := db.Table(p.table).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoUpdates: clause.AssignmentColumns([]string{"title"})}).
		CreateInBatches(rows, 200).Error
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", p.table, err)
	}
	return nil
}
