package monitoring

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hearthhq/hearth/internal/domain/recipe"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/test/testutils"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPMiddleware(t *testing.T) {
	m := NewMetricsCollector(zap.NewNop())

	r := chi.NewRouter()
	r.Use(m.HTTPMiddleware)
	r.Get("/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	for _, id := range []string{"a", "b", "missing"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recipes/"+id, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/recipes/{id}", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/recipes/{id}", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.errorsTotal.WithLabelValues("http", "client_error")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.httpInFlight))
}

func TestPublishCountsEvents(t *testing.T) {
	m := NewMetricsCollector(zap.NewNop())
	now := time.Now()

	m.Publish(
		recipe.RecipeSavedEvent{Created: true, SavedAt: now},
		recipe.RecipeSavedEvent{Created: true, SavedAt: now},
		recipe.RecipeDeletedEvent{DeletedAt: now},
	)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.domainEventsTotal.WithLabelValues("recipe.created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.domainEventsTotal.WithLabelValues("recipe.deleted")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetricsCollector(zap.NewNop())
	m.RecordError("recipes", "storage")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `hearth_errors_total{error_type="storage",service="recipes"} 1`))
	assert.Contains(t, body, "go_goroutines")
}

func TestInstrumentedCache(t *testing.T) {
	ctx := context.Background()
	m := NewMetricsCollector(zap.NewNop())
	next := new(testutils.MockCacheRepository)
	cache := NewInstrumentedCache(next, m)

	next.On("Get", ctx, "hit").Return([]byte("1"), nil)
	next.On("Get", ctx, "miss").Return(nil, outbound.ErrCacheMiss)
	next.On("Get", ctx, "broken").Return(nil, stderrors.New("conn reset"))
	next.On("Set", ctx, "k", []byte("v"), time.Minute).Return(nil)
	next.On("Delete", ctx, []string{"k"}).Return(stderrors.New("conn reset"))
	next.On("Ping", ctx).Return(nil)

	_, _ = cache.Get(ctx, "hit")
	_, err := cache.Get(ctx, "miss")
	assert.ErrorIs(t, err, outbound.ErrCacheMiss)
	_, _ = cache.Get(ctx, "broken")
	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Error(t, cache.Delete(ctx, "k"))
	assert.NoError(t, cache.Ping(ctx))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheOperations.WithLabelValues("get", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheOperations.WithLabelValues("get", "miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheOperations.WithLabelValues("get", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheOperations.WithLabelValues("set", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheOperations.WithLabelValues("delete", "error")))
	next.AssertExpectations(t)
}
