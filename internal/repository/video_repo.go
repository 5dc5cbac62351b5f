package repository

import (
	"Trendline/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepo interface {
	// InsertIfAbsent 视频已存在时不做任何修改，返回是否新插入
	InsertIfAbsent(ctx context.Context, video *model.Video) (bool, error)
	GetVideo(ctx context.Context, videoID string) (*model.Video, error)
	CountVideos(ctx context.Context) (int64, error)
}

type videoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &videoRepoImpl{db: db}
}

func (r *videoRepoImpl) InsertIfAbsent(ctx context.Context, video *model.Video) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(video)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *videoRepoImpl) GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	var video model.Video
	result := r.db.WithContext(ctx).Where("video_id = ?", videoID).Limit(1).Find(&video)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &video, nil
}

func (r *videoRepoImpl) CountVideos(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Video{}).Count(&count).Error
	return count, err
}
