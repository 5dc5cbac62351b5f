package model

// RawRecord 一次抓取得到的原始条目，抓取后不再修改
type RawRecord struct {
	VideoID      string  `csv:"video_id" json:"video_id"`
	Title        string  `csv:"title" json:"title"`
	ChannelID    string  `csv:"channel_id" json:"channel_id"`
	ChannelName  string  `csv:"channel_name" json:"channel_name"`
	CategoryID   string  `csv:"category_id" json:"category_id"`
	PublishedAt  string  `csv:"published_at" json:"published_at"`
	Duration     string  `csv:"duration" json:"duration"`
	Tags         *string `csv:"tags,omitempty" json:"tags"`
	ViewCount    *int64  `csv:"view_count,omitempty" json:"view_count"`
	LikeCount    *int64  `csv:"like_count,omitempty" json:"like_count"`
	CommentCount *int64  `csv:"comment_count,omitempty" json:"comment_count"`
	RegionCode   string  `csv:"region_code" json:"region_code"`
	TrendingDate string  `csv:"trending_date" json:"trending_date"`
	ExtractedAt  string  `csv:"extracted_at" json:"extracted_at"`
}
