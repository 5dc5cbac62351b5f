package service

import (
	"Trendline/internal/pkg/database"
	"Trendline/internal/pkg/staging"
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNoStagedInput    = staging.ErrNoStagedInput
	ErrDataSourceAbsent = database.ErrDataSourceAbsent
	ErrStoreUnavailable = errors.New("存储不可用")
)

// IsUserFacing 这些错误只提示用户，进程以 0 退出
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrNoStagedInput) || errors.Is(err, ErrDataSourceAbsent)
}

// isStoreFailure 连接级错误会中止整个批次，其余错误只影响单行
func isStoreFailure(err error) bool {
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, gorm.ErrInvalidDB) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
