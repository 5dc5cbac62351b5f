package service_test

import (
	"Trendline/internal/model"
	"Trendline/internal/pkg/logger"
	"Trendline/internal/repository"
	"Trendline/internal/service"
	"Trendline/internal/testutil"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EmptyStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewReportService(repository.NewReportRepo(db), logger.NewWithWriter(io.Discard, "error"))

	var buf bytes.Buffer
	require.NoError(t, svc.Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Total Unique Videos: 0")
	assert.Contains(t, buf.String(), "TOP PERFORMING CHANNELS")
}

func TestRender_Sections(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	log := logger.NewWithWriter(io.Discard, "error")
	load := service.NewLoadService(repository.NewVideoRepo(db), repository.NewTrendingRepo(db), repository.NewReportRepo(db), log)

	long := record("long", "2024-01-02", 1234567)
	long.Title = strings.Repeat("x", 70)
	long.DurationMinutes = 25
	_, err := load.Load(ctx, []model.TransformedRecord{
		record("short", "2024-01-02", 100),
		long,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	svc := service.NewReportService(repository.NewReportRepo(db), log)
	require.NoError(t, svc.Render(ctx, &buf))
	out := buf.String()

	assert.Contains(t, out, "Total Unique Videos: 2")
	assert.Contains(t, out, "Max Views: 1,234,567")
	assert.Contains(t, out, " 1. "+strings.Repeat("x", 60)+"...")
	assert.Contains(t, out, "Music")
	assert.Contains(t, out, "0-5 min")
	assert.Contains(t, out, "20+ min")
	assert.Contains(t, out, "Channel short")
}
