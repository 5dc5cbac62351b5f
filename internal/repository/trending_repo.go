package repository

import (
	"Trendline/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrendingRepo interface {
	// SaveOrReplace 采用 Upsert 逻辑。如果 video_id + trending_date 已存在，则覆盖各项数值
	SaveOrReplace(ctx context.Context, obs *model.TrendingObservation) error
	GetByVideo(ctx context.Context, videoID string) ([]*model.TrendingObservation, error)
	CountObservations(ctx context.Context) (int64, error)
}

type trendingRepoImpl struct {
	db *gorm.DB
}

func NewTrendingRepo(db *gorm.DB) TrendingRepo {
	return &trendingRepoImpl{db: db}
}

func (r *trendingRepoImpl) SaveOrReplace(ctx context.Context, obs *model.TrendingObservation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "video_id"}, {Name: "trending_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"region_code",
			"view_count",
			"like_count",
			"comment_count",
			"engagement_rate",
			"like_rate",
			"comment_rate",
			"days_to_trend",
			"extracted_at",
		}),
	}).Create(obs).Error
}

func (r *trendingRepoImpl) GetByVideo(ctx context.Context, videoID string) ([]*model.TrendingObservation, error) {
	observations := make([]*model.TrendingObservation, 0)
	result := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("trending_date ASC").
		Find(&observations)
	if result.Error != nil {
		return nil, result.Error
	}
	return observations, nil
}

func (r *trendingRepoImpl) CountObservations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TrendingObservation{}).Count(&count).Error
	return count, err
}
