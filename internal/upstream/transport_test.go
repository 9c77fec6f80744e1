package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	xerrors "dealboard-gateway/internal/pkg/errors"
	"dealboard-gateway/internal/pkg/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return session.NewStore(client, nil, time.Hour, zap.NewNop())
}

func sessionCtx(s *session.Session) context.Context {
	return session.NewContext(context.Background(), s)
}

func TestIdentityHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := newTestStore(t)
	client := NewClient(srv.URL, store, time.Second, zap.NewNop())

	ctx := sessionCtx(&session.Session{Token: "abc", UserID: "9", Role: "manager", OrgID: "7"})
	_, err := client.Deals(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", got.Get("Authorization"))
	assert.Equal(t, "MANAGER", got.Get(HeaderRole))
	assert.Equal(t, "9", got.Get(HeaderUserID))
	assert.Equal(t, "7", got.Get(HeaderOrgID))
}

func TestOrgHeaderOmittedForMyOrgs(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := newTestStore(t)
	client := NewClient(srv.URL, store, time.Second, zap.NewNop())

	ctx := sessionCtx(&session.Session{Token: "abc", UserID: "9", Role: "manager", OrgID: "7"})
	_, err := client.MyOrganizations(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", got.Get("Authorization"))
	assert.Empty(t, got.Get(HeaderOrgID), "listing my orgs must not be org-scoped")
}

func TestNoHeadersWithoutSession(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newTestStore(t), time.Second, zap.NewNop())
	_, err := client.Tasks(context.Background())
	require.NoError(t, err)

	assert.Empty(t, got.Get("Authorization"))
	assert.Empty(t, got.Get(HeaderRole))
}

func TestRejectionClearsSession(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		store := newTestStore(t)
		ctx := context.Background()
		require.NoError(t, store.Save(ctx, &session.Session{Token: "abc", UserID: "1", Role: "USER"}, time.Time{}))

		client := NewClient(srv.URL, store, time.Second, zap.NewNop())
		_, err := client.Customers(session.NewContext(ctx, &session.Session{Token: "abc", UserID: "1", Role: "USER"}))
		assert.ErrorIs(t, err, xerrors.ErrUpstreamRejected, "status %d", status)

		_, err = store.Get(ctx, "abc")
		assert.ErrorIs(t, err, xerrors.ErrSessionExpired, "status %d should clear the session", status)

		srv.Close()
	}
}

func TestTransportFailureSurfacedOnce(t *testing.T) {
	store := newTestStore(t)
	client := NewClient("http://127.0.0.1:1", store, 200*time.Millisecond, zap.NewNop())

	_, err := client.Deals(context.Background())
	assert.ErrorIs(t, err, xerrors.ErrUpstreamUnavailable)
}
