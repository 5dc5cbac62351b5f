package database_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"Trendline/internal/config"
	"Trendline/internal/model"
	"Trendline/internal/pkg/database"
	"Trendline/internal/pkg/logger"
	"Trendline/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateSeedsCategoriesIdempotently(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, database.Migrate(context.Background(), db))

	var count int64
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.EqualValues(t, 13, count)

	var music model.Category
	require.NoError(t, db.First(&music, 10).Error)
	assert.Equal(t, "Music", music.CategoryName)
}

func TestMigrateForeignKeyPointsAtVideos(t *testing.T) {
	db := testutil.NewTestDB(t)

	var videosDDL, trendingDDL string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "videos").Scan(&videosDDL).Error)
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "trending_data").Scan(&trendingDDL).Error)

	assert.NotContains(t, videosDDL, "REFERENCES")
	assert.Regexp(t, "FOREIGN KEY \\(`?video_id`?\\) REFERENCES `?videos`?", trendingDDL)
}

func TestOpenExistingMissingSQLite(t *testing.T) {
	cfg := &config.DBConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "missing.db")}
	_, err := database.OpenExisting(cfg, logger.NewWithWriter(io.Discard, "error"))
	assert.ErrorIs(t, err, database.ErrDataSourceAbsent)
}

func TestNewGormDBCreatesSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yt.db")
	cfg := &config.DBConfig{Driver: "sqlite", SQLitePath: path}
	l := logger.NewWithWriter(io.Discard, "error")

	db, err := database.NewGormDB(cfg, l)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db))
	require.NoError(t, database.Close(db))

	db, err = database.OpenExisting(cfg, l)
	require.NoError(t, err)
	defer database.Close(db)
	assert.True(t, db.Migrator().HasTable(&model.TrendingObservation{}))
}
