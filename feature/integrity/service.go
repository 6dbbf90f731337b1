package integrity

import (
	"context"

	"movie-grid/core/storage"
	"movie-grid/feature/catalog"
	"movie-grid/feature/grid"
	"movie-grid/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options names the backends the checks inspect. Nil backends are skipped.
type Options struct {
	Storage storage.Client
	Bucket  string
	Object  string
	Region  string

	DB    *gorm.DB
	Table string

	Grid *grid.Service
}

// Service handles integrity checks.
type Service struct {
	opts   Options
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{opts: opts, logger: logger}
}

// CheckStorage inspects the catalog document.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.opts.Storage, s.opts.Bucket, s.opts.Object)
}

// FixStorage creates a missing bucket or catalog document.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.opts.Storage == nil {
		return checks.ErrNotConfigured
	}
	return checks.FixStorage(ctx, s.opts.Storage, s.opts.Bucket, s.opts.Object, s.opts.Region, s.logger)
}

// CheckDatabase inspects the movies table.
func (s *Service) CheckDatabase(ctx context.Context) (*checks.TableReport, error) {
	if s.opts.DB == nil {
		return nil, checks.ErrNotConfigured
	}
	return checks.CheckTable(s.opts.DB.WithContext(ctx), s.opts.Table)
}

// FixDatabase creates or migrates the movies table.
func (s *Service) FixDatabase(ctx context.Context) error {
	return checks.FixTable(ctx, s.opts.DB, s.opts.Table, s.logger)
}

func (s *Service) providers() (catalog.Provider, *catalog.StorageProvider) {
	var db catalog.Provider
	var store *catalog.StorageProvider
	if s.opts.DB != nil {
		db = catalog.NewDBProvider(s.opts.DB, s.opts.Table)
	}
	if s.opts.Storage != nil {
		store = catalog.NewStorageProvider(s.opts.Storage, s.opts.Bucket, s.opts.Object)
	}
	return db, store
}

// CheckDrift compares the movies table with the catalog document.
func (s *Service) CheckDrift(ctx context.Context) (*checks.DriftReport, error) {
	db, store := s.providers()
	if db == nil || store == nil {
		return nil, checks.ErrNotConfigured
	}
	return checks.CheckDrift(ctx, db, store)
}

// FixDrift overwrites the catalog document with the movies table.
func (s *Service) FixDrift(ctx context.Context) error {
	db, store := s.providers()
	if db == nil || store == nil {
		return checks.ErrNotConfigured
	}
	return checks.FixDrift(ctx, db, store, s.opts.Region, s.logger)
}

// CheckGrid inspects what the grid shows.
func (s *Service) CheckGrid() (*checks.GridReport, error) {
	if s.opts.Grid == nil {
		return nil, checks.ErrNotConfigured
	}
	return checks.CheckGrid(s.opts.Grid.State()), nil
}
