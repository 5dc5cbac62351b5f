package service

import (
	"Trendline/internal/model"
	"Trendline/internal/pkg/staging"
	"Trendline/internal/pkg/youtube"
	"context"
	log "log/slog"
	"sort"
)

// TrendingFetcher 热门视频数据源
type TrendingFetcher interface {
	FetchTrending(ctx context.Context, region string, maxResults int) ([]model.RawRecord, error)
}

type ExtractService interface {
	// Extract 拉取热门视频并写入 raw 暂存目录
	Extract(ctx context.Context, region string, maxResults int) ([]model.RawRecord, *staging.Entry, error)
}

type extractServiceImpl struct {
	fetcher TrendingFetcher
	raw     *staging.Stage
	log     *log.Logger
}

func NewExtractService(fetcher TrendingFetcher, raw *staging.Stage, logger *log.Logger) ExtractService {
	return &extractServiceImpl{
		fetcher: fetcher,
		raw:     raw,
		log:     logger,
	}
}

func (s *extractServiceImpl) Extract(ctx context.Context, region string, maxResults int) ([]model.RawRecord, *staging.Entry, error) {
	records, err := s.fetcher.FetchTrending(ctx, region, maxResults)
	if err != nil {
		return nil, nil, err
	}
	s.log.InfoContext(ctx, "extracted trending videos", "count", len(records), "region", region)
	for i := 0; i < len(records) && i < 3; i++ {
		s.log.DebugContext(ctx, "sample video",
			"title", records[i].Title,
			"channel", records[i].ChannelName,
			"category", youtube.CategoryName(records[i].CategoryID))
	}
	for _, c := range CategoryBreakdown(records) {
		s.log.InfoContext(ctx, "extracted by category", "category", c.Name, "count", c.Count)
	}

	entry, err := staging.Write(s.raw, records)
	if err != nil {
		return nil, nil, err
	}
	s.log.InfoContext(ctx, "raw data saved",
		"file", entry.File,
		"size_bytes", entry.Size)
	return records, entry, nil
}

// CategoryCount 某一分类下抓取到的视频数
type CategoryCount struct {
	Name  string
	Count int
}

// CategoryBreakdown 按分类名统计，数量降序，数量相同按名称升序
func CategoryBreakdown(records []model.RawRecord) []CategoryCount {
	counts := make(map[string]int)
	for i := range records {
		counts[youtube.CategoryName(records[i].CategoryID)]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
