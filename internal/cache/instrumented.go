package cache

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// instrumentedCache counts reads of the wrapped cache.
type instrumentedCache struct {
	Cache
	lookups *prometheus.CounterVec
}

// Instrument wraps c so every Get is counted in lookups as a hit, miss or
// error, grouped by the key prefix before the first colon.
func Instrument(c Cache, lookups *prometheus.CounterVec) Cache {
	return &instrumentedCache{Cache: c, lookups: lookups}
}

func (c *instrumentedCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	found, err := c.Cache.Get(ctx, key, dest)
	res := "miss"
	switch {
	case err != nil:
		res = "error"
	case found:
		res = "hit"
	}
	c.lookups.WithLabelValues(keyGroup(key), res).Inc()
	return found, err
}

func keyGroup(key string) string {
	group, _, _ := strings.Cut(key, ":")
	return group
}
