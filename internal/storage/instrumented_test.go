package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"compliance-cms/internal/metrics"
	"compliance-cms/internal/models"
	"compliance-cms/internal/storage"
	"compliance-cms/internal/storage/mocks"
)

func TestInstrument(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockImageHost(ctrl)
	m := metrics.New("test")
	ctx := context.Background()
	file := &models.Upload{Ext: ".jpg", Data: []byte{1}}

	host.EXPECT().Upload(ctx, "blogs", file).Return(models.Asset{URL: "u", PublicID: "blogs/a.jpg"}, nil)
	host.EXPECT().Release(ctx, "blogs/a.jpg").Return(errors.New("boom"))

	wrapped := storage.Instrument(host, m.ImageHostOps)

	asset, err := wrapped.Upload(ctx, "blogs", file)
	require.NoError(t, err)
	assert.Equal(t, "blogs/a.jpg", asset.PublicID)
	assert.Error(t, wrapped.Release(ctx, "blogs/a.jpg"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ImageHostOps.WithLabelValues("upload", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ImageHostOps.WithLabelValues("release", "error")))
}
