package database

import (
	"Trendline/internal/config"
	"Trendline/internal/pkg/logger"
	"errors"
	"fmt"
	log "log/slog"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ErrDataSourceAbsent SQLite 文件不存在
var ErrDataSourceAbsent = errors.New("database not found")

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
func NewGormDB(cfg *config.DBConfig, l *log.Logger) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      logger.NewGormLogger(l),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	if cfg.Driver == "mysql" {
		sqlDB.SetMaxIdleConns(cfg.MaxIdle)
		sqlDB.SetMaxOpenConns(cfg.MaxOpen)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)
	} else {
		// 单写者
		sqlDB.SetMaxOpenConns(1)
	}

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	l.Info("Database connection established successfully.", "driver", cfg.Driver)
	return db, nil
}

// OpenExisting 只读场景使用：SQLite 文件不存在时返回 ErrDataSourceAbsent，而不是新建空库
func OpenExisting(cfg *config.DBConfig, l *log.Logger) (*gorm.DB, error) {
	if cfg.Driver != "mysql" {
		if _, err := os.Stat(cfg.SQLitePath); err != nil {
			if os.IsNotExist(err) {
				return nil, ErrDataSourceAbsent
			}
			return nil, err
		}
	}
	db, err := NewGormDB(cfg, l)
	if err != nil && cfg.Driver == "mysql" && !errors.Is(err, config.ErrMissingDBPassword) {
		return nil, fmt.Errorf("%w: %v", ErrDataSourceAbsent, err)
	}
	return db, err
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
