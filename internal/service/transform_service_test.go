package service_test

import (
	"Trendline/internal/model"
	"Trendline/internal/pkg/logger"
	"Trendline/internal/pkg/staging"
	"Trendline/internal/service"
	"Trendline/internal/transform"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformLatest_NoInput(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "error")
	svc := service.NewTransformService(transform.NewTransformer(log),
		staging.New(t.TempDir(), "raw"), staging.New(t.TempDir(), "transformed"), log)

	_, _, err := svc.TransformLatest(context.Background())
	require.Error(t, err)
	assert.True(t, service.IsUserFacing(err))
}

func TestTransformLatest_ReadsStagedBatch(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "error")
	raw := staging.New(t.TempDir(), "raw")
	transformed := staging.New(t.TempDir(), "transformed")
	_, err := staging.Write(raw, []model.RawRecord{rawRecord("a"), rawRecord("b")})
	require.NoError(t, err)

	svc := service.NewTransformService(transform.NewTransformer(log), raw, transformed, log)
	res, entry, err := svc.TransformLatest(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, 2, entry.Records)

	staged, _, err := staging.ReadLatest[model.TransformedRecord](transformed)
	require.NoError(t, err)
	require.Len(t, staged, 2)
	assert.Equal(t, 3.0, staged[0].DurationMinutes)
	assert.Equal(t, 15.0, staged[0].EngagementRate)
}
