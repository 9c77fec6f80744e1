package org

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	xerrors "dealboard-gateway/internal/pkg/errors"
	"dealboard-gateway/internal/pkg/session"
	"dealboard-gateway/internal/upstream"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFixture(t *testing.T, orgsPayload string) (*OrgService, *session.Store) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orgs/my" {
			w.Write([]byte(orgsPayload))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewStore(client, nil, time.Hour, zap.NewNop())
	up := upstream.NewClient(srv.URL, store, time.Second, zap.NewNop())

	return NewOrgService(up, store, zap.NewNop()), store
}

func TestSelectActiveWritesIDAndRoleTogether(t *testing.T) {
	svc, store := newFixture(t, `[
		{"id":"1","name":"Acme","role":"admin"},
		{"organization":{"id":"7","name":"Beta"},"role":"manager"}
	]`)
	ctx := context.Background()

	sess := &session.Session{Token: "abc", UserID: "1", Role: "admin", OrgID: "1"}
	require.NoError(t, store.Save(ctx, sess, time.Time{}))

	m, err := svc.SelectActive(session.NewContext(ctx, sess), sess, "7")
	require.NoError(t, err)
	assert.Equal(t, "Beta", m.OrganizationName)
	assert.Equal(t, "manager", m.Role)
	assert.True(t, m.Active)

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "7", got.OrgID)
	assert.Equal(t, "manager", got.Role)
}

func TestSelectActiveUnknownOrg(t *testing.T) {
	svc, store := newFixture(t, `[{"id":"1","name":"Acme","role":"admin"}]`)
	ctx := context.Background()

	sess := &session.Session{Token: "abc", UserID: "1"}
	require.NoError(t, store.Save(ctx, sess, time.Time{}))

	_, err := svc.SelectActive(ctx, sess, "999")
	assert.ErrorIs(t, err, xerrors.ErrMembershipNotFound)

	// Failed switch must not touch the stored pair.
	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, got.OrgID)
}

func TestSelectActiveWithoutSession(t *testing.T) {
	svc, _ := newFixture(t, `[]`)

	_, err := svc.SelectActive(context.Background(), nil, "1")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
}

func TestMembershipsMarksActive(t *testing.T) {
	svc, _ := newFixture(t, `[
		{"id":"1","name":"Acme","role":"ADMIN"},
		{"id":"2","name":"Beta","role":"USER"}
	]`)

	got := svc.Memberships(context.Background(), "2")
	require.Len(t, got, 2)
	assert.False(t, got[0].Active)
	assert.True(t, got[1].Active)
}

func TestMembershipsDegradesToEmptyOnUpstreamFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewStore(client, nil, time.Hour, zap.NewNop())
	up := upstream.NewClient("http://127.0.0.1:1", store, 200*time.Millisecond, zap.NewNop())
	svc := NewOrgService(up, store, zap.NewNop())

	got := svc.Memberships(context.Background(), "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
