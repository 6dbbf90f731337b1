// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the application
// configuration. The database is optional: the catalog falls back to other
// providers when no connection can be made.
//
// # Connect
//
// Connect picks the dialector from Config.Driver. MySQL connections carry
// connect, read and write timeouts in the DSN and are pinged before use.
// SQLite accepts a file path or ":memory:" and is mainly used in tests.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for either driver and RequireColumns
// checks that a table exposes the columns a reader depends on, so a misconfigured
// movie table is reported before the first query.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	err = database.RequireColumns(db, "movies", "id", "title")
package database
