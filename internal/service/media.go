package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"cmsapi/internal/kv"
	"cmsapi/internal/model"
	"cmsapi/internal/storage"
)

const mediaKeyPrefix = "media:"

// mediaURLExpiry bounds how long a returned download URL stays valid.
const mediaURLExpiry = 15 * time.Minute

// MediaItem is a media record together with a time-limited download URL.
type MediaItem struct {
	model.Media
	URL string `json:"url"`
}

// MediaPage is the media list response shape.
type MediaPage struct {
	Items  []model.Media `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// MediaService handles media binaries in object storage with metadata records
// in the key-value store. Unlike content indexing, the object store is a
// primary path here: its failures fail the operation.
type MediaService interface {
	// Upload streams the file to object storage and saves its metadata record;
	// the uploaded object is removed again if the record write fails.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Media, error)
	Get(ctx context.Context, id string) (*MediaItem, error)
	List(ctx context.Context, limit, offset int) (*MediaPage, error)
	Delete(ctx context.Context, id string) error
}

type mediaService struct {
	objects storage.ObjectStorage
	store   kv.Store
}

// NewMediaService constructs a MediaService.
func NewMediaService(objects storage.ObjectStorage, store kv.Store) MediaService {
	return &mediaService{objects: objects, store: store}
}

func mediaKey(id string) string {
	return mediaKeyPrefix + id
}

func (s *mediaService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Media, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	id := uuid.NewString()
	genName := id + filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("media", genName))

	objInfo, err := s.objects.Put(ctx, key, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	media := &model.Media{
		ID:          id,
		Filename:    genName,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	b, err := json.Marshal(media)
	if err != nil {
		return nil, fmt.Errorf("marshal media: %w", err)
	}
	if err := s.store.Put(ctx, mediaKey(id), b); err != nil {
		// Roll back the orphaned object.
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("record save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("record save failed: %w", err)
	}
	return media, nil
}

func (s *mediaService) Get(ctx context.Context, id string) (*MediaItem, error) {
	media, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.objects.PresignGet(ctx, media.StoragePath, mediaURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign url: %w", err)
	}
	return &MediaItem{Media: *media, URL: url}, nil
}

func (s *mediaService) get(ctx context.Context, id string) (*model.Media, error) {
	b, err := s.store.Get(ctx, mediaKey(id))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	var media model.Media
	if err := json.Unmarshal(b, &media); err != nil {
		return nil, fmt.Errorf("unmarshal media: %w", err)
	}
	return &media, nil
}

func (s *mediaService) List(ctx context.Context, limit, offset int) (*MediaPage, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = defaultListOffset
	}

	page, err := s.store.ListPrefix(ctx, mediaKeyPrefix, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}

	items := make([]model.Media, 0, len(page.Values))
	for _, v := range page.Values {
		var media model.Media
		if err := json.Unmarshal(v, &media); err != nil {
			return nil, fmt.Errorf("unmarshal media: %w", err)
		}
		items = append(items, media)
	}

	return &MediaPage{Items: items, Total: page.Total, Limit: limit, Offset: offset}, nil
}

func (s *mediaService) Delete(ctx context.Context, id string) error {
	media, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	// Object first: keeping the record on failure avoids losing the reference
	// to an object that still exists.
	if err := s.objects.Delete(ctx, media.StoragePath); err != nil {
		return fmt.Errorf("delete storage object: %w", err)
	}
	return s.store.Delete(ctx, mediaKey(id))
}
