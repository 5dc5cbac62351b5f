package youtube

import (
	"Trendline/internal/config"
	"Trendline/internal/model"
	"Trendline/internal/pkg/consts"
	"Trendline/internal/pkg/util"
	"context"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ErrBadResponse API 返回了非 200 状态码
var ErrBadResponse = errors.New("youtube api returned an error status")

// Client YouTube Data API v3 客户端
type Client struct {
	cfg        config.YouTubeConfig
	httpClient *resty.Client
	log        *log.Logger
	now        func() time.Time
}

func NewClient(cfg config.YouTubeConfig, logger *log.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		log:        logger,
		now:        time.Now,
	}
}

// WithClock 替换时间来源，trending_date 与 extracted_at 均由它生成
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// FetchTrending 拉取指定地区的热门视频，缺少 API Key 时不发起任何请求
func (c *Client) FetchTrending(ctx context.Context, region string, maxResults int) ([]model.RawRecord, error) {
	if c.cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}
	if region == "" {
		region = consts.DefaultRegion
	}
	if maxResults <= 0 {
		maxResults = consts.DefaultMaxResults
	}

	c.log.InfoContext(ctx, "fetching trending videos", "region", region, "max_results", maxResults)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet,statistics,contentDetails",
			"chart":      "mostPopular",
			"regionCode": region,
			"maxResults": strconv.Itoa(maxResults),
			"key":        c.cfg.APIKey,
		}).
		Get("/videos")
	if err != nil {
		return nil, errors.Wrap(err, "request trending videos")
	}

	var body videoListResponse
	if resp.StatusCode() != 200 {
		_ = json.Unmarshal(resp.Body(), &body)
		if body.Error != nil && body.Error.Message != "" {
			return nil, errors.Wrapf(ErrBadResponse, "status %d: %s", resp.StatusCode(), body.Error.Message)
		}
		return nil, errors.Wrapf(ErrBadResponse, "status %d", resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, errors.Wrap(err, "decode trending response")
	}

	now := c.now()
	records := make([]model.RawRecord, 0, len(body.Items))
	for _, item := range body.Items {
		records = append(records, toRawRecord(item, region, now))
	}
	return records, nil
}

func toRawRecord(item videoItem, region string, now time.Time) model.RawRecord {
	rec := model.RawRecord{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		ChannelID:    item.Snippet.ChannelID,
		ChannelName:  item.Snippet.ChannelTitle,
		CategoryID:   item.Snippet.CategoryID,
		PublishedAt:  item.Snippet.PublishedAt,
		Duration:     item.ContentDetails.Duration,
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
		RegionCode:   region,
		TrendingDate: now.Format(time.DateOnly),
		ExtractedAt:  now.Format(time.DateTime),
	}
	if item.Snippet.Tags != nil {
		rec.Tags = util.PtrString(strings.Join(item.Snippet.Tags, ","))
	}
	return rec
}

// parseCount 统计字段可能被频道隐藏，缺失或无法解析时返回 nil
func parseCount(v *string) *int64 {
	if v == nil {
		return nil
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return nil
	}
	return util.PtrInt64(n)
}

// CategoryName 按分类 ID 查找名称，未知分类返回 General
func CategoryName(categoryID string) string {
	id, err := strconv.Atoi(categoryID)
	if err != nil {
		return consts.UnknownCategory
	}
	if name, ok := consts.Categories[id]; ok {
		return name
	}
	return consts.UnknownCategory
}
