package integrity

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-grid/core/database"
	"movie-grid/core/reconcile"
	"movie-grid/core/storage/mocks"
	"movie-grid/feature/catalog"
	"movie-grid/feature/grid"
	"movie-grid/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, opts Options) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := NewFeature(NewService(opts, zap.NewNop()))
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func getJSON(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleIntegrityCheck_SkipsUnconfigured(t *testing.T) {
	app := setupTestApp(t, Options{})

	status, body := getJSON(t, app, "/integrity")
	assert.Equal(t, 200, status)
	for _, name := range []string{"storage", "database", "drift", "grid"} {
		section, ok := body[name].(map[string]any)
		require.True(t, ok, name)
		assert.Equal(t, checks.StatusSkipped, section["status"], name)
	}

	status, _ = getJSON(t, app, "/integrity/storage")
	assert.Equal(t, 404, status)
}

func TestHandleStorageCheck(t *testing.T) {
	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
	m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}).Once()
	app := setupTestApp(t, Options{Storage: m, Bucket: "catalog", Object: "movies.json"})

	status, body := getJSON(t, app, "/integrity/storage")
	assert.Equal(t, 200, status)
	assert.Equal(t, checks.StatusMissing, body["status"])

	// With fix: checked, checked again by the fix, published, then checked once more.
	m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}).Twice()
	m.On("PutObject", mock.Anything, "catalog", "movies.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()
	m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(minio.ObjectInfo{ETag: "new"}, nil).Once()

	status, body = getJSON(t, app, "/integrity/storage?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, checks.StatusOK, body["status"])
	assert.Equal(t, "new", body["etag"])
	m.AssertExpectations(t)
}

func TestHandleDatabaseCheck_Fix(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	app := setupTestApp(t, Options{DB: db, Table: "movies"})

	_, body := getJSON(t, app, "/integrity/database")
	assert.Equal(t, checks.StatusMissing, body["status"])

	_, body = getJSON(t, app, "/integrity/database?fix=1")
	assert.Equal(t, checks.StatusOK, body["status"])
	assert.Equal(t, []any{"id", "title"}, body["expected"])
}

func TestHandleDriftCheck(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, catalog.NewDBProvider(db, "movies").Seed(context.Background(),
		[]reconcile.Item{{ID: 1, Title: "Alien"}, {ID: 2, Title: "Heat"}}))

	m := new(mocks.Client)
	m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(minio.ObjectInfo{ETag: "v1"}, nil)
	m.On("GetObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"movies":[{"id":1,"title":"Aliens"},{"id":3}]}`)), nil)
	app := setupTestApp(t, Options{Storage: m, Bucket: "catalog", Object: "movies.json", DB: db, Table: "movies"})

	status, body := getJSON(t, app, "/integrity/drift")
	assert.Equal(t, 200, status)
	assert.Equal(t, checks.StatusInvalid, body["status"])
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, []any{float64(2)}, body["only_in_database"])
	assert.Equal(t, []any{float64(3)}, body["only_in_storage"])
	require.Len(t, body["title_mismatches"], 1)
}

func TestHandleGridCheck(t *testing.T) {
	svc, err := grid.NewService(grid.Config{Rows: 2, Columns: 2}, catalog.New(nil), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go func() { _ = svc.Run(ctx) }()

	svc.AddItems(reconcile.ItemsFromIDs(4, 1, 3, 2, 5))
	require.NoError(t, svc.WaitIdle(ctx))

	app := setupTestApp(t, Options{Grid: svc})
	status, body := getJSON(t, app, "/integrity/grid")
	assert.Equal(t, 200, status)
	assert.Equal(t, checks.StatusOK, body["status"])
	assert.Equal(t, float64(4), body["displayed"])
}
