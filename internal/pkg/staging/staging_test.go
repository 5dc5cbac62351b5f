package staging_test

import (
	"Trendline/internal/model"
	"Trendline/internal/pkg/staging"
	"Trendline/internal/pkg/util"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestWithoutManifest(t *testing.T) {
	_, err := staging.New(t.TempDir(), "raw").Latest()
	assert.ErrorIs(t, err, staging.ErrNoStagedInput)
}

func TestWriteAndReadRawRecords(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	st := staging.New(dir, "raw").WithClock(func() time.Time { return ts })

	records := []model.RawRecord{
		{
			VideoID:      "abc",
			Title:        "Hello, world",
			Tags:         util.PtrString("a,b"),
			ViewCount:    util.PtrInt64(100),
			LikeCount:    util.PtrInt64(10),
			CommentCount: util.PtrInt64(0),
			RegionCode:   "US",
			TrendingDate: "2024-01-02",
		},
		{VideoID: "def", RegionCode: "US"},
	}

	entry, err := staging.Write(st, records)
	require.NoError(t, err)
	assert.Equal(t, "youtube_raw_20240102_093000.csv", entry.File)
	assert.Equal(t, 2, entry.Records)
	assert.Positive(t, entry.Size)
	assert.FileExists(t, filepath.Join(dir, "manifest.json"))

	got, latest, err := staging.ReadLatest[model.RawRecord](st)
	require.NoError(t, err)
	assert.Equal(t, entry.File, latest.File)
	require.Len(t, got, 2)
	assert.Equal(t, "Hello, world", got[0].Title)
	require.NotNil(t, got[0].CommentCount)
	assert.EqualValues(t, 0, *got[0].CommentCount)
	assert.Nil(t, got[1].ViewCount)
	assert.Nil(t, got[1].Tags)
}

func TestLatestUsesManifestNotFileName(t *testing.T) {
	dir := t.TempDir()
	clock := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	st := staging.New(dir, "transformed").WithClock(func() time.Time { return clock })

	first, err := staging.Write(st, []model.TransformedRecord{{VideoID: "one"}})
	require.NoError(t, err)

	second, err := staging.Write(st, []model.TransformedRecord{{VideoID: "two"}})
	require.NoError(t, err)
	assert.NotEqual(t, first.File, second.File)

	// 文件名字典序更大但未登记的文件不会被选中
	require.NoError(t, os.WriteFile(filepath.Join(dir, "youtube_transformed_99991231_000000.csv"), []byte("video_id\nzzz\n"), 0o644))

	got, latest, err := staging.ReadLatest[model.TransformedRecord](st)
	require.NoError(t, err)
	assert.Equal(t, second.File, latest.File)
	require.Len(t, got, 1)
	assert.Equal(t, "two", got[0].VideoID)
}

func TestTransformedTimestampsRoundTrip(t *testing.T) {
	st := staging.New(t.TempDir(), "transformed")
	published := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	_, err := staging.Write(st, []model.TransformedRecord{{
		VideoID:      "abc",
		PublishedAt:  model.NewCSVTime(published),
		TrendingDate: model.NewCSVTime(published.Add(24 * time.Hour)),
		DaysToTrend:  1,
	}})
	require.NoError(t, err)

	got, _, err := staging.ReadLatest[model.TransformedRecord](st)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, published.Equal(got[0].PublishedAt.Time))
	assert.True(t, got[0].ExtractedAt.IsZero())
	assert.Equal(t, 1, got[0].DaysToTrend)
}
