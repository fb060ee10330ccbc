package cache_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"compliance-cms/internal/cache"
	"compliance-cms/internal/cache/mocks"
	"compliance-cms/internal/metrics"
)

func TestInstrument(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockCache(ctrl)
	m := metrics.New("test")
	ctx := context.Background()

	gomock.InOrder(
		inner.EXPECT().Get(ctx, cache.NavCacheKey, gomock.Any()).Return(false, nil),
		inner.EXPECT().Get(ctx, cache.NavCacheKey, gomock.Any()).Return(true, nil),
		inner.EXPECT().Get(ctx, "user:1", gomock.Any()).Return(true, nil),
	)
	inner.EXPECT().Delete(ctx, "user:1").Return(nil)

	c := cache.Instrument(inner, m.CacheLookups)
	var dest map[string]interface{}
	_, _ = c.Get(ctx, cache.NavCacheKey, &dest)
	_, _ = c.Get(ctx, cache.NavCacheKey, &dest)
	_, _ = c.Get(ctx, "user:1", &dest)
	assert.NoError(t, c.Delete(ctx, "user:1"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("pages", "miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("pages", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("user", "hit")))
}
