package session

import (
	"context"
	"testing"
	"time"

	xerrors "dealboard-gateway/internal/pkg/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, nil, time.Hour, zap.NewNop())
}

func TestSaveThenGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Save(ctx, &Session{
		Token:  "abc",
		UserID: "42",
		Name:   "Jamie",
		Role:   "manager",
	}, time.Time{})
	require.NoError(t, err)

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "42", got.UserID)
	assert.Equal(t, "manager", got.Role)
	assert.Equal(t, "abc", got.Token)
	assert.Empty(t, got.OrgID)
}

func TestGetUnknownToken(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
}

func TestSetActiveOrganizationAtomicReadBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{Token: "abc", UserID: "1"}, time.Time{}))
	require.NoError(t, store.SetActiveOrganization(ctx, "abc", "7", "ADMIN"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "7", got.OrgID)
	assert.Equal(t, "ADMIN", got.Role)
}

func TestSetActiveOrganizationWithoutSession(t *testing.T) {
	store := newTestStore(t)

	err := store.SetActiveOrganization(context.Background(), "ghost", "7", "ADMIN")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{Token: "abc", UserID: "1", Role: "USER"}, time.Time{}))

	require.NoError(t, store.Clear(ctx, "abc", EndReasonLogout))
	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)

	// A second clear leaves the same empty state.
	require.NoError(t, store.Clear(ctx, "abc", EndReasonLogout))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)

	require.NoError(t, store.Clear(ctx, "", EndReasonLogout))
}

func TestSaveHonorsTokenExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(client, nil, 24*time.Hour, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{Token: "abc", UserID: "1"}, time.Now().Add(time.Minute)))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
}
