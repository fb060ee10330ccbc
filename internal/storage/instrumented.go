package storage

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"compliance-cms/internal/models"
)

// instrumentedHost counts calls to the wrapped image host.
type instrumentedHost struct {
	next ImageHost
	ops  *prometheus.CounterVec
}

// Instrument wraps host so every call is counted in ops by operation and result.
func Instrument(host ImageHost, ops *prometheus.CounterVec) ImageHost {
	return &instrumentedHost{next: host, ops: ops}
}

func (h *instrumentedHost) Upload(ctx context.Context, folder string, file *models.Upload) (models.Asset, error) {
	asset, err := h.next.Upload(ctx, folder, file)
	h.ops.WithLabelValues("upload", result(err)).Inc()
	return asset, err
}

func (h *instrumentedHost) Release(ctx context.Context, publicID string) error {
	err := h.next.Release(ctx, publicID)
	h.ops.WithLabelValues("release", result(err)).Inc()
	return err
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
