package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"movie-grid/core/database"
	"movie-grid/core/logger"
	"movie-grid/core/storage"
	"movie-grid/feature/integrity"
	"movie-grid/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the catalog backends",
	Long:  `Checks that the catalog bucket and document exist and that the movies table matches the movie model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

// driftCheckCmd represents the integrity drift command
var driftCheckCmd = &cobra.Command{
	Use:   "drift",
	Short: "Compare the movies table with the catalog document",
	Long:  `Lists movies present in only one of the stores and titles that differ. With --fix the document is rewritten from the table.`,
	RunE: runDriftCheck,
}

// storageCheckCmd represents the integrity storage command
var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the catalog document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// databaseCheckCmd represents the integrity database command
var databaseCheckCmd = &cobra.Command{
	Use:   "database",
	Short: "Check and fix the movies table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	integrityCmd.PersistentFlags().BoolVar(&fixFlag, "fix", false, "Create missing buckets, documents and tables")
	integrityCmd.AddCommand(storageCheckCmd)
	integrityCmd.AddCommand(databaseCheckCmd)
	integrityCmd.AddCommand(driftCheckCmd)
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrityChecks(cmd *cobra.Command, checkStorage, checkDatabase bool) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	opts := integrity.Options{
		Bucket: cfg.Storage.Bucket,
		Object: cfg.Catalog.Object,
		Region: cfg.Storage.Region,
		Table:  cfg.Catalog.Table,
	}
	if checkStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		opts.Storage = client
	}
	if checkDatabase {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Database unavailable, skipping table check", zap.Error(err))
		} else {
			opts.DB = db
		}
	}

	svc := integrity.NewService(opts, logg)
	report := map[string]any{}
	problems := 0

	if checkStorage {
		r, err := svc.CheckStorage(ctx)
		if err == nil && r.Status != checks.StatusOK && fixFlag {
			logg.Info("Fixing catalog document", zap.String("status", r.Status))
			if err = svc.FixStorage(ctx); err == nil {
				r, err = svc.CheckStorage(ctx)
			}
		}
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}
		if r.Status != checks.StatusOK {
			problems++
		}
		report["storage"] = r
	}

	if checkDatabase {
		r, err := svc.CheckDatabase(ctx)
		if err == nil && r.Status != checks.StatusOK && fixFlag {
			logg.Info("Fixing movies table", zap.String("status", r.Status))
			if err = svc.FixDatabase(ctx); err == nil {
				r, err = svc.CheckDatabase(ctx)
			}
		}
		switch {
		case errors.Is(err, checks.ErrNotConfigured):
			report["database"] = map[string]string{"status": checks.StatusSkipped}
		case err != nil:
			return fmt.Errorf("database check failed: %w", err)
		default:
			if r.Status != checks.StatusOK {
				problems++
			}
			report["database"] = r
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if problems > 0 {
		return fmt.Errorf("%d integrity problems found, rerun with --fix to repair", problems)
	}
	logg.Info("Integrity checks passed")
	return nil
}

func runDriftCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := integrity.NewService(integrity.Options{
		Storage: client,
		Bucket:  cfg.Storage.Bucket,
		Object:  cfg.Catalog.Object,
		Region:  cfg.Storage.Region,
		DB:      db,
		Table:   cfg.Catalog.Table,
	}, logg)

	r, err := svc.CheckDrift(ctx)
	if err == nil && r.Status != checks.StatusOK && fixFlag {
		logg.Info("Publishing movies table to storage",
			zap.Int("only_in_database", len(r.OnlyInDatabase)),
			zap.Int("only_in_storage", len(r.OnlyInStorage)),
		)
		if err = svc.FixDrift(ctx); err == nil {
			r, err = svc.CheckDrift(ctx)
		}
	}
	if err != nil {
		return fmt.Errorf("drift check failed: %w", err)
	}

	data, err := json.MarshalIndent(map[string]any{"drift": r}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if r.Status != checks.StatusOK {
		return fmt.Errorf("catalog drift found, rerun with --fix to publish the movies table")
	}
	return nil
}
