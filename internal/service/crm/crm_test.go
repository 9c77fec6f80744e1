package crm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealboard-gateway/internal/domain/deal"
	xerrors "dealboard-gateway/internal/pkg/errors"
	"dealboard-gateway/internal/pkg/session"
	"dealboard-gateway/internal/upstream"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, handler http.Handler) *CRMService {
	t.Helper()

	var up *upstream.Client
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewStore(client, nil, time.Hour, zap.NewNop())

	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		up = upstream.NewClient(srv.URL, store, time.Second, zap.NewNop())
	} else {
		up = upstream.NewClient("http://127.0.0.1:1", store, 200*time.Millisecond, zap.NewNop())
	}

	return NewCRMService(up, zap.NewNop())
}

func TestReadsDegradeToEmptyState(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	assert.Empty(t, svc.Customers(ctx))
	assert.NotNil(t, svc.Customers(ctx))
	assert.Empty(t, svc.Deals(ctx))
	assert.Empty(t, svc.Tasks(ctx))
	assert.Equal(t, 0, svc.DashboardSummary(ctx).TotalCustomers)
	assert.Empty(t, svc.Profile(ctx).Email)
}

func TestWritesSurfaceErrors(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, nil)
	assert.ErrorIs(t, err, xerrors.ErrUpstreamUnavailable)
}

func TestDealLists(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/deals", r.URL.Path)
		w.Write([]byte(`[{"id":"1","title":"Big one","value":5000,"stage":"Proposal"}]`))
	}))

	got := svc.Deals(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "Big one", got[0].Title)
	assert.Equal(t, "Proposal", got[0].Stage)
}

func TestCreateDealDefaultsAndValidatesStage(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"1","title":"t","stage":"Lead"}`))
	}))
	ctx := context.Background()

	created, err := svc.CreateDeal(ctx, &deal.CreateDealRequest{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, "Lead", created.Stage)

	_, err = svc.CreateDeal(ctx, &deal.CreateDealRequest{Title: "t", Stage: "Daydream"})
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestMoveDealStageValidates(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/deals/1/stage", r.URL.Path)
		w.Write([]byte(`{"id":"1","title":"t","stage":"Won"}`))
	}))
	ctx := context.Background()

	moved, err := svc.MoveDealStage(ctx, "1", "Won")
	require.NoError(t, err)
	assert.Equal(t, "Won", moved.Stage)

	_, err = svc.MoveDealStage(ctx, "1", "nope")
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}
