package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"movie-grid/core/reconcile"
	"movie-grid/core/storage"
	"movie-grid/core/utils"

	"github.com/minio/minio-go/v7"
)

type document struct {
	Movies []record `json:"movies"`
}

type record struct {
	ID    any `json:"id"`
	Title any `json:"title,omitempty"`
}

// StorageProvider reads the catalog document from object storage.
// An unchanged document (same ETag) is not downloaded again.
type StorageProvider struct {
	client storage.Client
	bucket string
	object string

	mu    sync.Mutex
	etag  string
	items []reconcile.Item
}

// NewStorageProvider creates a provider reading object from bucket.
func NewStorageProvider(client storage.Client, bucket, object string) *StorageProvider {
	return &StorageProvider{client: client, bucket: bucket, object: object}
}

func (p *StorageProvider) Name() string {
	return ProviderStorage
}

func (p *StorageProvider) Load(ctx context.Context) ([]reconcile.Item, error) {
	info, err := p.client.StatObject(ctx, p.bucket, p.object, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s/%s: %w", p.bucket, p.object, err)
	}

	p.mu.Lock()
	if info.ETag != "" && info.ETag == p.etag {
		items := slices.Clone(p.items)
		p.mu.Unlock()
		return items, nil
	}
	p.mu.Unlock()

	obj, err := p.client.GetObject(ctx, p.bucket, p.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", p.bucket, p.object, err)
	}
	defer obj.Close()

	dec := json.NewDecoder(obj)
	dec.UseNumber()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p.object, err)
	}

	items, err := doc.items()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog document %s: %w", p.object, err)
	}

	p.mu.Lock()
	p.etag = info.ETag
	p.items = items
	p.mu.Unlock()

	return slices.Clone(items), nil
}

func (d document) items() ([]reconcile.Item, error) {
	items := make([]reconcile.Item, 0, len(d.Movies))
	for i, rec := range d.Movies {
		if rec.ID == nil {
			return nil, fmt.Errorf("movie %d has no id", i)
		}
		id := utils.ToInt(rec.ID)
		if id == 0 && utils.ToString(rec.ID) != "0" {
			return nil, fmt.Errorf("movie %d has a non-numeric id %v", i, rec.ID)
		}

		item := reconcile.NewItem(reconcile.ID(id))
		if rec.Title != nil {
			if title := utils.ToString(rec.Title); title != "" {
				item.Title = title
			}
		}
		items = append(items, item)
	}
	return reconcile.SortItems(items), nil
}

// Publish writes items as the catalog document, creating the bucket if needed.
func (p *StorageProvider) Publish(ctx context.Context, items []reconcile.Item, region string) error {
	if err := storage.EnsureBucket(ctx, p.client, p.bucket, region); err != nil {
		return err
	}

	doc := document{Movies: make([]record, 0, len(items))}
	for _, item := range items {
		rec := record{ID: int(item.ID)}
		if item.Title != strconv.Itoa(int(item.ID)) {
			rec.Title = item.Title
		}
		doc.Movies = append(doc.Movies, rec)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	_, err = p.client.PutObject(ctx, p.bucket, p.object, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", p.bucket, p.object, err)
	}
	return nil
}
