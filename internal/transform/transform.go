package transform

import (
	"context"
	log "log/slog"
	"sort"

	"Trendline/internal/model"
)

// Result 一次批量转换的产出
type Result struct {
	Records           []model.TransformedRecord
	InputCount        int
	DuplicatesRemoved int
	Rejected          int
}

// Transformer 按固定顺序对一批原始记录做清洗、派生与去重，不做任何 I/O
type Transformer struct {
	log *log.Logger
}

func NewTransformer(logger *log.Logger) *Transformer {
	return &Transformer{log: logger}
}

type pending struct {
	rec model.TransformedRecord
	raw *model.RawRecord
}

// Transform 依次执行: 文本清洗 -> 时长解析 -> 指标计算 -> 时间归一化 -> 上榜天数 -> 去重 -> 缺失值填充
func (t *Transformer) Transform(ctx context.Context, batch []model.RawRecord) Result {
	res := Result{InputCount: len(batch)}

	items := make([]pending, 0, len(batch))
	for i := range batch {
		raw := &batch[i]
		items = append(items, pending{
			raw: raw,
			rec: model.TransformedRecord{
				VideoID:    raw.VideoID,
				ChannelID:  raw.ChannelID,
				CategoryID: raw.CategoryID,
				Duration:   raw.Duration,
				RegionCode: raw.RegionCode,
			},
		})
	}

	t.log.InfoContext(ctx, "cleaning text fields")
	for i := range items {
		items[i].rec.Title = CleanText(items[i].raw.Title)
		items[i].rec.ChannelName = CleanText(items[i].raw.ChannelName)
	}

	t.log.InfoContext(ctx, "parsing video durations")
	for i := range items {
		items[i].rec.DurationMinutes = ParseDuration(items[i].raw.Duration)
	}

	t.log.InfoContext(ctx, "calculating engagement metrics")
	for i := range items {
		raw := items[i].raw
		rates := CalculateRates(deref(raw.ViewCount), deref(raw.LikeCount), deref(raw.CommentCount))
		items[i].rec.EngagementRate = rates.Engagement
		items[i].rec.LikeRate = rates.Like
		items[i].rec.CommentRate = rates.Comment
	}

	t.log.InfoContext(ctx, "converting date formats")
	valid := items[:0]
	for _, it := range items {
		if err := normalizeTimestamps(&it.rec, it.raw); err != nil {
			res.Rejected++
			t.log.WarnContext(ctx, "reject record with invalid timestamp", "video_id", it.raw.VideoID, "err", err)
			continue
		}
		it.rec.DaysToTrend = DaysToTrend(it.rec.PublishedAt.Time, it.rec.TrendingDate.Time)
		valid = append(valid, it)
	}
	items = valid

	t.log.InfoContext(ctx, "removing duplicates")
	items, res.DuplicatesRemoved = dedupLast(items, func(it *pending) string {
		return it.rec.ObservationKey()
	})
	t.log.InfoContext(ctx, "duplicate records removed", "count", res.DuplicatesRemoved)

	res.Records = make([]model.TransformedRecord, 0, len(items))
	for _, it := range items {
		rec := it.rec
		FillMissing(&rec, it.raw)
		res.Records = append(res.Records, rec)
	}

	return res
}

func normalizeTimestamps(rec *model.TransformedRecord, raw *model.RawRecord) error {
	published, err := NormalizeTimestamp(raw.PublishedAt)
	if err != nil {
		return err
	}
	trending, err := NormalizeTimestamp(raw.TrendingDate)
	if err != nil {
		return err
	}
	rec.PublishedAt = model.NewCSVTime(published)
	rec.TrendingDate = model.NewCSVTime(trending)

	// 抓取时间只用于记录，缺失时保留零值
	if extracted, err := NormalizeTimestamp(raw.ExtractedAt); err == nil {
		rec.ExtractedAt = model.NewCSVTime(extracted)
	}
	return nil
}

// TopByEngagement 返回互动率最高的 n 条记录，不修改入参
func TopByEngagement(records []model.TransformedRecord, n int) []model.TransformedRecord {
	sorted := make([]model.TransformedRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EngagementRate > sorted[j].EngagementRate
	})
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
