package model

import "time"

type TrendingObservation struct {
	ID             uint64    `gorm:"primaryKey"`
	VideoID        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_video_trending_date" json:"video_id"`
	TrendingDate   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_video_trending_date" json:"trending_date"`
	RegionCode     string    `gorm:"type:varchar(2);not null" json:"region_code"`
	ViewCount      int64     `gorm:"not null;default:0" json:"view_count"`
	LikeCount      int64     `gorm:"not null;default:0" json:"like_count"`
	CommentCount   int64     `gorm:"not null;default:0" json:"comment_count"`
	EngagementRate float64   `json:"engagement_rate"`
	LikeRate       float64   `json:"like_rate"`
	CommentRate    float64   `json:"comment_rate"`
	DaysToTrend    int       `json:"days_to_trend"`
	ExtractedAt    *time.Time `json:"extracted_at"`

	// 关联关系
	Video *Video `json:"-"`
}

func (TrendingObservation) TableName() string {
	return "trending_data"
}
