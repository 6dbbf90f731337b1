// Package integrity provides health checks for the catalog backends and the grid.
//
// # Checks Provided
//
//   - Storage: the catalog bucket exists and holds the catalog document.
//   - Database: the movies table has every column of the movie model.
//   - Drift: the movies table and the catalog document list the same movies
//     with the same titles. The table is the source of truth when fixing.
//   - Grid: the row views show unique ids in ascending row-major order, within
//     capacity and matching the grid's active set.
//
// Checks whose backend is not configured report "skipped".
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Storage check (supports ?fix=true).
//   - GET /integrity/database : Table check (supports ?fix=true).
//   - GET /integrity/drift : Drift check (supports ?fix=true).
//   - GET /integrity/grid : Grid layout check.
package integrity
