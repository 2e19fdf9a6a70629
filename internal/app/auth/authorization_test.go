package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/cache"
)

type fakeRoleStore struct {
	roles map[uuid.UUID]map[models.Role]bool
	calls int
	err   error
}

func newFakeRoleStore() *fakeRoleStore {
	return &fakeRoleStore{roles: map[uuid.UUID]map[models.Role]bool{}}
}

func (f *fakeRoleStore) HasRole(_ context.Context, userID uuid.UUID, role models.Role) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.roles[userID][role], nil
}

func (f *fakeRoleStore) GrantRole(_ context.Context, userID uuid.UUID, role models.Role) error {
	if f.roles[userID] == nil {
		f.roles[userID] = map[models.Role]bool{}
	}
	f.roles[userID][role] = true
	return nil
}

func newRedisCache(t *testing.T) cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisCache(client, "test")
}

func TestIsAdminCachesAnswer(t *testing.T) {
	ctx := context.Background()
	store := newFakeRoleStore()
	svc := NewAuthorizationService(store, newRedisCache(t), time.Minute)
	user := uuid.New()

	for i := 0; i < 3; i++ {
		isAdmin, err := svc.IsAdmin(ctx, user)
		require.NoError(t, err)
		assert.False(t, isAdmin)
	}
	assert.Equal(t, 1, store.calls)
}

func TestGrantAdminInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	store := newFakeRoleStore()
	svc := NewAuthorizationService(store, newRedisCache(t), time.Minute)
	user := uuid.New()

	isAdmin, err := svc.IsAdmin(ctx, user)
	require.NoError(t, err)
	require.False(t, isAdmin)

	require.NoError(t, svc.GrantAdmin(ctx, user))

	isAdmin, err = svc.IsAdmin(ctx, user)
	require.NoError(t, err)
	assert.True(t, isAdmin)
	require.NoError(t, svc.ValidateAdmin(ctx, user))
}

func TestValidateAdmin(t *testing.T) {
	ctx := context.Background()
	store := newFakeRoleStore()
	svc := NewAuthorizationService(store, nil, time.Minute)

	err := svc.ValidateAdmin(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	store.err = errors.New("db down")
	_, err = svc.IsAdmin(ctx, uuid.New())
	assert.EqualError(t, err, "db down")
}
