package database

import (
	"Trendline/internal/model"
	"Trendline/internal/pkg/consts"
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate 建表并写入分类字典，可重复执行
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.Category{}, &model.Video{}, &model.TrendingObservation{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return SeedCategories(ctx, db)
}

// SeedCategories 写入已知分类，已存在的分类保持不变
func SeedCategories(ctx context.Context, db *gorm.DB) error {
	ids := make([]int, 0, len(consts.Categories))
	for id := range consts.Categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	categories := make([]model.Category, 0, len(ids))
	for _, id := range ids {
		categories = append(categories, model.Category{CategoryID: id, CategoryName: consts.Categories[id]})
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&categories).Error
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}
