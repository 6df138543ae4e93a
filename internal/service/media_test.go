package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cmsapi/internal/kv"
	kvMocks "cmsapi/internal/kv/mocks"
	"cmsapi/internal/model"
	"cmsapi/internal/storage"
	storeMocks "cmsapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("nil reader", func(t *testing.T) {
		svc := NewMediaService(new(storeMocks.MockObjectStorage), new(kvMocks.MockStore))

		_, err := svc.Upload(ctx, nil, "a.png", "image/png", 10)

		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("happy path", func(t *testing.T) {
		objects := new(storeMocks.MockObjectStorage)
		store := new(kvMocks.MockStore)
		svc := NewMediaService(objects, store)

		r := strings.NewReader("binary")
		objects.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "media/") && strings.HasSuffix(key, ".png")
		}), r, storage.PutOptions{
			Size:        6,
			ContentType: "image/png",
			Metadata:    map[string]string{"original-filename": "logo.png"},
		}).Return(storage.ObjectInfo{Key: "media/gen.png", Size: 6, ContentType: "image/png"}, nil)

		store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "media:")
		}), mock.Anything).Return(nil)

		media, err := svc.Upload(ctx, r, "logo.png", "image/png", 6)

		require.NoError(t, err)
		assert.NotEmpty(t, media.ID)
		assert.Equal(t, "media/gen.png", media.StoragePath)
		assert.Equal(t, int64(6), media.Size)
	})

	t.Run("record save failure rolls back the object", func(t *testing.T) {
		objects := new(storeMocks.MockObjectStorage)
		store := new(kvMocks.MockStore)
		svc := NewMediaService(objects, store)

		r := strings.NewReader("binary")
		objects.On("Put", ctx, mock.Anything, r, mock.Anything).
			Return(storage.ObjectInfo{Key: "media/gen.png"}, nil)
		store.On("Put", ctx, mock.Anything, mock.Anything).Return(errors.New("kv down"))
		objects.On("Delete", ctx, mock.Anything).Return(nil).Once()

		_, err := svc.Upload(ctx, r, "logo.png", "image/png", 6)

		assert.ErrorContains(t, err, "record save failed")
		objects.AssertExpectations(t)
	})
}

func TestMediaService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		objects := new(storeMocks.MockObjectStorage)
		store := new(kvMocks.MockStore)
		svc := NewMediaService(objects, store)

		store.On("Get", ctx, "media:missing").Return(nil, kv.ErrKeyNotFound)

		_, err := svc.Get(ctx, "missing")

		assert.ErrorIs(t, err, ErrMediaNotFound)
	})

	t.Run("returns record with presigned url", func(t *testing.T) {
		objects := new(storeMocks.MockObjectStorage)
		store := new(kvMocks.MockStore)
		svc := NewMediaService(objects, store)

		rec, _ := json.Marshal(&model.Media{ID: "abc", StoragePath: "media/abc.png"})
		store.On("Get", ctx, "media:abc").Return(rec, nil)
		objects.On("PresignGet", ctx, "media/abc.png", mediaURLExpiry).
			Return("https://example.com/signed", nil)

		item, err := svc.Get(ctx, "abc")

		require.NoError(t, err)
		assert.Equal(t, "abc", item.ID)
		assert.Equal(t, "https://example.com/signed", item.URL)
	})
}

func TestMediaService_Delete(t *testing.T) {
	ctx := context.Background()

	rec, _ := json.Marshal(&model.Media{ID: "abc", StoragePath: "media/abc.png"})

	t.Run("removes object then record", func(t *testing.T) {
		objects := new(storeMocks.MockObjectStorage)
		store := new(kvMocks.MockStore)
		svc := NewMediaService(objects, store)

		store.On("Get", ctx, "media:abc").Return(rec, nil)
		objects.On("Delete", ctx, "media/abc.png").Return(nil)
		store.On("Delete", ctx, "media:abc").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "abc"))
	})

	t.Run("object delete failure keeps the record", func(t *testing.T) {
		objects := new(storeMocks.MockObjectStorage)
		store := new(kvMocks.MockStore)
		svc := NewMediaService(objects, store)

		store.On("Get", ctx, "media:abc").Return(rec, nil)
		objects.On("Delete", ctx, "media/abc.png").Return(errors.New("storage down"))

		err := svc.Delete(ctx, "abc")

		assert.ErrorContains(t, err, "delete storage object")
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
