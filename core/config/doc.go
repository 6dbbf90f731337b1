// Package config provides configuration management for the movie grid service.
//
// It loads an optional .env file with godotenv and then uses Viper to read
// environment variables. Defaults come from the `default` struct tags of every
// section, registered by reflection so that AutomaticEnv can see each key.
//
// # Configuration Structure
//
// The Config struct is divided into sections:
//   - Server: HTTP port and API key
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials and bucket
//   - Database: MySQL or SQLite connection details
//   - Grid: grid dimensions and animation timing
//   - Catalog: which provider feeds the grid and how it is cached
//
// Nested keys map to upper-case environment variables with underscores, so
// grid.rows is read from GRID_ROWS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Grid.Rows)
package config
