package model

import "time"

// TransformedRecord 清洗并补充派生指标后的记录，创建后不再修改
type TransformedRecord struct {
	VideoID         string  `csv:"video_id"`
	Title           string  `csv:"title"`
	ChannelID       string  `csv:"channel_id"`
	ChannelName     string  `csv:"channel_name"`
	CategoryID      string  `csv:"category_id"`
	PublishedAt     CSVTime `csv:"published_at"`
	Duration        string  `csv:"duration"`
	DurationMinutes float64 `csv:"duration_minutes"`
	Tags            string  `csv:"tags"`
	ViewCount       int64   `csv:"view_count"`
	LikeCount       int64   `csv:"like_count"`
	CommentCount    int64   `csv:"comment_count"`
	EngagementRate  float64 `csv:"engagement_rate"`
	LikeRate        float64 `csv:"like_rate"`
	CommentRate     float64 `csv:"comment_rate"`
	DaysToTrend     int     `csv:"days_to_trend"`
	RegionCode      string  `csv:"region_code"`
	TrendingDate    CSVTime `csv:"trending_date"`
	ExtractedAt     CSVTime `csv:"extracted_at"`
}

// ObservationKey 返回 (video_id, trending_date) 自然键
func (r *TransformedRecord) ObservationKey() string {
	return r.VideoID + "|" + r.TrendingDate.Format(time.DateOnly)
}
