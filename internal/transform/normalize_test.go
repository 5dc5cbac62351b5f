package transform_test

import (
	"testing"
	"time"

	"Trendline/internal/model"
	"Trendline/internal/pkg/util"
	"Trendline/internal/transform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Hello  World! 1 live", transform.CleanText("Hello 🌍 World! #1 (live)"))
	assert.Equal(t, "日本語 Music, vol.2 - ok?", transform.CleanText(" 日本語 Music, vol.2 - ok? "))
	assert.Equal(t, "", transform.CleanText(""))
	assert.Equal(t, "", transform.CleanText("🔥🔥"))
}

func TestNormalizeTimestamp(t *testing.T) {
	got, err := transform.NormalizeTimestamp("2024-03-01T10:15:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC), got)

	got, err = transform.NormalizeTimestamp("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = transform.NormalizeTimestamp("2024-03-01T10:15:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 4, 45, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())

	_, err = transform.NormalizeTimestamp("")
	assert.Error(t, err)
	_, err = transform.NormalizeTimestamp("2024-13-45")
	assert.Error(t, err)
}

func record(id, date string, views int64) model.TransformedRecord {
	d, _ := time.Parse(time.DateOnly, date)
	return model.TransformedRecord{VideoID: id, TrendingDate: model.NewCSVTime(d), ViewCount: views}
}

func TestDeduplicateKeepsLast(t *testing.T) {
	in := []model.TransformedRecord{
		record("a", "2024-01-01", 1),
		record("b", "2024-01-01", 2),
		record("a", "2024-01-01", 3),
		record("a", "2024-01-02", 4),
	}

	out, removed := transform.Deduplicate(in)
	assert.Equal(t, 1, removed)
	require.Len(t, out, 3)
	assert.Equal(t, int64(2), out[0].ViewCount)
	assert.Equal(t, int64(3), out[1].ViewCount)
	assert.Equal(t, int64(4), out[2].ViewCount)
}

func TestDeduplicateIdempotent(t *testing.T) {
	in := []model.TransformedRecord{
		record("a", "2024-01-01", 1),
		record("a", "2024-01-01", 2),
		record("b", "2024-01-01", 3),
		record("b", "2024-01-01", 4),
		record("c", "2024-01-03", 5),
	}

	once, removed := transform.Deduplicate(in)
	assert.Equal(t, 2, removed)

	twice, removed := transform.Deduplicate(once)
	assert.Equal(t, 0, removed)
	assert.Equal(t, once, twice)
}

func TestFillMissing(t *testing.T) {
	var rec model.TransformedRecord
	transform.FillMissing(&rec, &model.RawRecord{ViewCount: util.PtrInt64(10)})
	assert.Equal(t, int64(10), rec.ViewCount)
	assert.Equal(t, int64(0), rec.LikeCount)
	assert.Equal(t, int64(0), rec.CommentCount)
	assert.Equal(t, "", rec.Tags)

	transform.FillMissing(&rec, &model.RawRecord{Tags: util.PtrString("a,b")})
	assert.Equal(t, "a,b", rec.Tags)
}
