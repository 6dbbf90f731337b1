package cmd

import (
	"context"
	"fmt"

	"movie-grid/core/logger"
	"movie-grid/core/reconcile"
	"movie-grid/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the seed command
	seedTarget string
	seedCount  int
	seedFirst  int
)

// seedCmd fills the configured catalog backend with sample movies.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog backend with sample movies",
	Long: `Write sample movies to the database table or the storage document the
database and storage providers read.

Examples:
  # Seed the database configured by DATABASE_* with 25 movies
  seed --target database --count 25

  # Publish 40 movies starting at id 100 to the catalog bucket
  seed --target storage --count 40 --first 100`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedTarget, "target", catalog.ProviderDatabase, "Backend to seed (database, storage)")
	seedCmd.Flags().IntVar(&seedCount, "count", 25, "Number of movies")
	seedCmd.Flags().IntVar(&seedFirst, "first", 1, "Id of the first movie")

	RootCmd.AddCommand(seedCmd)
}

// sampleMovies returns count movies with consecutive ids from first.
func sampleMovies(first, count int) []reconcile.Item {
	items := make([]reconcile.Item, 0, count)
	for i := 0; i < count; i++ {
		id := reconcile.ID(first + i)
		items = append(items, reconcile.Item{ID: id, Title: fmt.Sprintf("Movie %03d", id)})
	}
	return items
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedCount < 1 {
		return fmt.Errorf("--count must be positive, got %d", seedCount)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// connectSources only opens the backend of the selected provider
	seedCfg := *cfg
	seedCfg.Catalog.Provider = seedTarget
	src, err := connectSources(&seedCfg, l)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	items := sampleMovies(seedFirst, seedCount)

	switch seedTarget {
	case catalog.ProviderDatabase:
		err = catalog.NewDBProvider(src.DB, cfg.Catalog.Table).Seed(ctx, items)
	case catalog.ProviderStorage:
		err = catalog.NewStorageProvider(src.Storage, src.Bucket, cfg.Catalog.Object).Publish(ctx, items, cfg.Storage.Region)
	default:
		return fmt.Errorf("cannot seed %q, use database or storage", seedTarget)
	}
	if err != nil {
		return err
	}

	l.Info("Catalog seeded",
		zap.String("target", seedTarget),
		zap.Int("count", len(items)),
		zap.Int("first", seedFirst),
	)
	return nil
}
