package model

import "time"

type Video struct {
	VideoID         string    `gorm:"primaryKey;type:varchar(32)" json:"video_id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	ChannelID       string    `gorm:"type:varchar(64);not null" json:"channel_id"`
	ChannelName     string    `gorm:"type:varchar(255);not null" json:"channel_name"`
	CategoryID      int       `gorm:"index:idx_category_id" json:"category_id"`
	PublishedAt     time.Time `gorm:"not null" json:"published_at"`
	DurationMinutes float64   `json:"duration_minutes"`
	Tags            string    `gorm:"type:text" json:"tags"`
}

func (Video) TableName() string {
	return "videos"
}
