package youtube_test

import (
	"Trendline/internal/config"
	"Trendline/internal/pkg/logger"
	"Trendline/internal/pkg/youtube"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trendingBody = `{
  "items": [
    {
      "id": "abc123",
      "snippet": {
        "title": "Live at Wembley!",
        "channelId": "UC1",
        "channelTitle": "Band",
        "categoryId": "10",
        "publishedAt": "2024-01-01T10:00:00Z",
        "tags": ["music", "live"]
      },
      "statistics": {"viewCount": "1000", "likeCount": "100", "commentCount": "5"},
      "contentDetails": {"duration": "PT4M30S"}
    },
    {
      "id": "hidden",
      "snippet": {
        "title": "No stats",
        "channelId": "UC2",
        "channelTitle": "Quiet",
        "categoryId": "24",
        "publishedAt": "2024-01-01T11:00:00Z"
      },
      "statistics": {"viewCount": "50"},
      "contentDetails": {"duration": "PT1H"}
    }
  ]
}`

func newClient(url, key string) *youtube.Client {
	cfg := config.YouTubeConfig{APIKey: key, BaseURL: url, Timeout: 5 * time.Second}
	fixed := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	return youtube.NewClient(cfg, logger.NewWithWriter(io.Discard, "error")).
		WithClock(func() time.Time { return fixed })
}

func TestFetchTrending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "mostPopular", q.Get("chart"))
		assert.Equal(t, "GB", q.Get("regionCode"))
		assert.Equal(t, "10", q.Get("maxResults"))
		assert.Equal(t, "secret", q.Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, trendingBody)
	}))
	defer srv.Close()

	records, err := newClient(srv.URL, "secret").FetchTrending(context.Background(), "GB", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "abc123", first.VideoID)
	assert.Equal(t, "Band", first.ChannelName)
	assert.Equal(t, "PT4M30S", first.Duration)
	require.NotNil(t, first.Tags)
	assert.Equal(t, "music,live", *first.Tags)
	require.NotNil(t, first.CommentCount)
	assert.EqualValues(t, 5, *first.CommentCount)
	assert.Equal(t, "GB", first.RegionCode)
	assert.Equal(t, "2024-01-02", first.TrendingDate)
	assert.Equal(t, "2024-01-02 09:30:00", first.ExtractedAt)

	second := records[1]
	assert.Nil(t, second.Tags)
	assert.Nil(t, second.LikeCount)
	assert.Nil(t, second.CommentCount)
	require.NotNil(t, second.ViewCount)
	assert.EqualValues(t, 50, *second.ViewCount)
}

func TestFetchTrendingMissingKeyMakesNoRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "").FetchTrending(context.Background(), "US", 50)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	assert.Zero(t, calls.Load())
}

func TestFetchTrendingErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"quota exceeded"}}`)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "secret").FetchTrending(context.Background(), "US", 50)
	require.ErrorIs(t, err, youtube.ErrBadResponse)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Music", youtube.CategoryName("10"))
	assert.Equal(t, "General", youtube.CategoryName("999"))
	assert.Equal(t, "General", youtube.CategoryName("x"))
}
