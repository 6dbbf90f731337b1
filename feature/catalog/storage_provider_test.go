package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"movie-grid/core/reconcile"
	"movie-grid/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

func TestStorageProvider_Load(t *testing.T) {
	m := new(mocks.Client)
	m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(minio.ObjectInfo{ETag: "v1"}, nil)
	m.On("GetObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(body(`{"movies":[{"id":3,"title":"Alien"},{"id":"1"},{"id":2,"title":""}]}`), nil).Once()

	p := NewStorageProvider(m, "catalog", "movies.json")
	items, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []reconcile.Item{{ID: 1, Title: "1"}, {ID: 2, Title: "2"}, {ID: 3, Title: "Alien"}}, items)

	// Same ETag: served without downloading again.
	items, err = p.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
	m.AssertNumberOfCalls(t, "GetObject", 1)
}

func TestStorageProvider_ChangedETagReloads(t *testing.T) {
	m := new(mocks.Client)
	m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(minio.ObjectInfo{ETag: "v1"}, nil).Once()
	m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(minio.ObjectInfo{ETag: "v2"}, nil).Once()
	m.On("GetObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(body(`{"movies":[{"id":1}]}`), nil).Once()
	m.On("GetObject", mock.Anything, "catalog", "movies.json", mock.Anything).
		Return(body(`{"movies":[{"id":1},{"id":2}]}`), nil).Once()

	p := NewStorageProvider(m, "catalog", "movies.json")
	_, err := p.Load(context.Background())
	require.NoError(t, err)
	items, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []reconcile.ID{1, 2}, reconcile.IDsOf(items))
}

func TestStorageProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *mocks.Client)
		wantErr string
	}{
		{
			name: "StatFails",
			setup: func(m *mocks.Client) {
				m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).
					Return(minio.ObjectInfo{}, errors.New("no such key"))
			},
			wantErr: "failed to stat catalog/movies.json",
		},
		{
			name: "BadJSON",
			setup: func(m *mocks.Client) {
				m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).Return(minio.ObjectInfo{}, nil)
				m.On("GetObject", mock.Anything, "catalog", "movies.json", mock.Anything).Return(body(`{"movies":`), nil)
			},
			wantErr: "failed to decode movies.json",
		},
		{
			name: "MissingID",
			setup: func(m *mocks.Client) {
				m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).Return(minio.ObjectInfo{}, nil)
				m.On("GetObject", mock.Anything, "catalog", "movies.json", mock.Anything).Return(body(`{"movies":[{"title":"x"}]}`), nil)
			},
			wantErr: "movie 0 has no id",
		},
		{
			name: "NonNumericID",
			setup: func(m *mocks.Client) {
				m.On("StatObject", mock.Anything, "catalog", "movies.json", mock.Anything).Return(minio.ObjectInfo{}, nil)
				m.On("GetObject", mock.Anything, "catalog", "movies.json", mock.Anything).Return(body(`{"movies":[{"id":"tt01"}]}`), nil)
			},
			wantErr: "non-numeric id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mocks.Client)
			tt.setup(m)
			_, err := NewStorageProvider(m, "catalog", "movies.json").Load(context.Background())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestStorageProvider_Publish(t *testing.T) {
	m := new(mocks.Client)
	m.On("BucketExists", mock.Anything, "catalog").Return(true, nil)

	var uploaded []byte
	m.On("PutObject", mock.Anything, "catalog", "movies.json", mock.Anything, mock.Anything,
		minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	p := NewStorageProvider(m, "catalog", "movies.json")
	err := p.Publish(context.Background(), []reconcile.Item{reconcile.NewItem(1), {ID: 2, Title: "Heat"}}, "")
	require.NoError(t, err)

	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(uploaded, &doc))
	assert.Equal(t, []map[string]any{
		{"id": float64(1)},
		{"id": float64(2), "title": "Heat"},
	}, doc["movies"])
}
