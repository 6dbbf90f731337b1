package checks

import (
	"context"
	"fmt"

	"movie-grid/core/reconcile"
	"movie-grid/feature/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TitleMismatch is a movie whose title differs between the stores.
type TitleMismatch struct {
	ID       reconcile.ID `json:"id"`
	Database string       `json:"database"`
	Storage  string       `json:"storage"`
}

// DriftReport compares the movies table with the catalog document.
type DriftReport struct {
	Total           int             `json:"total"`
	OnlyInDatabase  []reconcile.ID  `json:"only_in_database"`
	OnlyInStorage   []reconcile.ID  `json:"only_in_storage"`
	TitleMismatches []TitleMismatch `json:"title_mismatches"`
	Status          string          `json:"status"`
}

// CompareCatalogs reports every id not present in both collections and every
// title that differs.
func CompareCatalogs(dbItems, storageItems []reconcile.Item) *DriftReport {
	dbIndex := make(map[reconcile.ID]reconcile.Item, len(dbItems))
	for _, item := range dbItems {
		dbIndex[item.ID] = item
	}
	storageIndex := make(map[reconcile.ID]reconcile.Item, len(storageItems))
	for _, item := range storageItems {
		storageIndex[item.ID] = item
	}

	union := reconcile.NewIDSet()
	for id := range dbIndex {
		union.Add(id)
	}
	for id := range storageIndex {
		union.Add(id)
	}

	report := &DriftReport{
		Total:           union.Len(),
		OnlyInDatabase:  []reconcile.ID{},
		OnlyInStorage:   []reconcile.ID{},
		TitleMismatches: []TitleMismatch{},
		Status:          StatusOK,
	}
	for _, id := range union.Sorted() {
		dbItem, inDB := dbIndex[id]
		storageItem, inStorage := storageIndex[id]
		switch {
		case !inStorage:
			report.OnlyInDatabase = append(report.OnlyInDatabase, id)
		case !inDB:
			report.OnlyInStorage = append(report.OnlyInStorage, id)
		case dbItem.Title != storageItem.Title:
			report.TitleMismatches = append(report.TitleMismatches, TitleMismatch{ID: id, Database: dbItem.Title, Storage: storageItem.Title})
		}
	}

	if len(report.OnlyInDatabase)+len(report.OnlyInStorage)+len(report.TitleMismatches) > 0 {
		report.Status = StatusInvalid
	}
	return report
}

// LoadBoth loads both providers concurrently.
func LoadBoth(ctx context.Context, db, store catalog.Provider) (dbItems, storageItems []reconcile.Item, err error) {
	if db == nil || store == nil {
		return nil, nil, ErrNotConfigured
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := db.Load(gctx)
		if err != nil {
			return fmt.Errorf("failed to load database catalog: %w", err)
		}
		dbItems = items
		return nil
	})
	g.Go(func() error {
		items, err := store.Load(gctx)
		if err != nil {
			return fmt.Errorf("failed to load storage catalog: %w", err)
		}
		storageItems = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return dbItems, storageItems, nil
}

// CheckDrift compares the database catalog with the storage catalog.
func CheckDrift(ctx context.Context, db, store catalog.Provider) (*DriftReport, error) {
	dbItems, storageItems, err := LoadBoth(ctx, db, store)
	if err != nil {
		return nil, err
	}
	return CompareCatalogs(dbItems, storageItems), nil
}

// FixDrift publishes the database catalog as the storage document. The
// database is the source of truth.
func FixDrift(ctx context.Context, db catalog.Provider, store *catalog.StorageProvider, region string, logger *zap.Logger) error {
	if db == nil || store == nil {
		return ErrNotConfigured
	}
	items, err := db.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load database catalog: %w", err)
	}
	if err := store.Publish(ctx, items, region); err != nil {
		logger.Error("Failed to publish catalog", zap.Error(err))
		return err
	}
	logger.Info("Published database catalog to storage", zap.Int("movies", len(items)))
	return nil
}
