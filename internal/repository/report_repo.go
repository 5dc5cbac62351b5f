package repository

import (
	"Trendline/internal/model"
	"context"

	"gorm.io/gorm"
)

// ReportRepo 报表使用的只读聚合查询
type ReportRepo interface {
	Summary(ctx context.Context) (*model.SummaryStats, error)
	TopByViews(ctx context.Context, limit int) ([]*model.TopVideo, error)
	CategoryPerformance(ctx context.Context, limit int) ([]*model.CategoryPerformance, error)
	DurationBuckets(ctx context.Context) ([]*model.DurationBucket, error)
	ChannelPerformance(ctx context.Context, limit int) ([]*model.ChannelPerformance, error)
}

type reportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepoImpl{db: db}
}

func (r *reportRepoImpl) Summary(ctx context.Context) (*model.SummaryStats, error) {
	var stats model.SummaryStats
	err := r.db.WithContext(ctx).
		Table("trending_data").
		Select(`COUNT(DISTINCT video_id) AS total_videos,
			COUNT(*) AS total_records,
			COALESCE(AVG(view_count), 0) AS avg_views,
			COALESCE(MAX(view_count), 0) AS max_views,
			COALESCE(AVG(engagement_rate), 0) AS avg_engagement`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepoImpl) TopByViews(ctx context.Context, limit int) ([]*model.TopVideo, error) {
	videos := make([]*model.TopVideo, 0, limit)
	err := r.db.WithContext(ctx).
		Table("videos v").
		Select("v.title, v.channel_name, t.view_count, t.engagement_rate").
		Joins("JOIN trending_data t ON v.video_id = t.video_id").
		Order("t.view_count DESC").
		Limit(limit).
		Scan(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *reportRepoImpl) CategoryPerformance(ctx context.Context, limit int) ([]*model.CategoryPerformance, error) {
	rows := make([]*model.CategoryPerformance, 0, limit)
	err := r.db.WithContext(ctx).
		Table("categories c").
		Select(`c.category_name,
			COUNT(DISTINCT v.video_id) AS video_count,
			AVG(t.view_count) AS avg_views,
			AVG(t.engagement_rate) AS avg_engagement`).
		Joins("JOIN videos v ON c.category_id = v.category_id").
		Joins("JOIN trending_data t ON v.video_id = t.video_id").
		Group("c.category_name").
		Order("avg_engagement DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepoImpl) DurationBuckets(ctx context.Context) ([]*model.DurationBucket, error) {
	rows := make([]*model.DurationBucket, 0, 4)
	err := r.db.WithContext(ctx).
		Table("videos v").
		Select(`CASE
				WHEN v.duration_minutes < 5 THEN '0-5 min'
				WHEN v.duration_minutes < 10 THEN '5-10 min'
				WHEN v.duration_minutes < 20 THEN '10-20 min'
				ELSE '20+ min'
			END AS bucket,
			COUNT(*) AS videos,
			AVG(t.engagement_rate) AS avg_engagement`).
		Joins("JOIN trending_data t ON v.video_id = t.video_id").
		Group("bucket").
		Order("avg_engagement DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepoImpl) ChannelPerformance(ctx context.Context, limit int) ([]*model.ChannelPerformance, error) {
	rows := make([]*model.ChannelPerformance, 0, limit)
	err := r.db.WithContext(ctx).
		Table("videos v").
		Select(`v.channel_name,
			COUNT(DISTINCT v.video_id) AS videos,
			AVG(t.view_count) AS avg_views,
			AVG(t.engagement_rate) AS avg_engagement`).
		Joins("JOIN trending_data t ON v.video_id = t.video_id").
		Group("v.channel_name").
		Order("avg_engagement DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
