package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
)

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	auth := &storage.AuthData{
		Owner:        "alice",
		AccessToken:  "encrypted-access-token",
		RefreshToken: "encrypted-refresh-token",
		TokenType:    "Bearer",
		Salt:         "salt",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}

	// Проверяем что GetAuth до сохранения выдаст ErrAuthNotFound
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	err = store.SaveAuth(ctx, auth)
	require.NoError(t, err)

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	// Повторное сохранение перезаписывает данные
	auth.AccessToken = "rotated"
	require.NoError(t, store.SaveAuth(ctx, auth))
	got, err = store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.AccessToken)

	err = store.DeleteAuth(ctx)
	require.NoError(t, err)

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Повторное удаление возвращает ErrAuthNotFound
	err = store.DeleteAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_GetAuth_Corrupted(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Put(authKey, []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.GetAuth(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_Auth_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketAuth)
	})
	require.NoError(t, err)

	assert.Error(t, store.SaveAuth(ctx, &storage.AuthData{Owner: "alice"}))
	_, err = store.GetAuth(ctx)
	assert.Error(t, err)
	assert.Error(t, store.DeleteAuth(ctx))
}
