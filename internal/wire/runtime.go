package wire

import (
	"Trendline/internal/config"
	"Trendline/internal/pkg/consts"
	"Trendline/internal/pkg/logger"
	"Trendline/internal/service"
	"context"
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"os"

	"github.com/spf13/pflag"
)

// Runtime 每个命令共享的配置、日志与 trace 上下文
type Runtime struct {
	Cfg    *config.Config
	Log    *log.Logger
	Ctx    context.Context
	closer io.Closer
}

// NewFlagSet 定义所有命令通用的参数
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "path to config file (default ./configs/config.yaml)")
	flags.String("region", consts.DefaultRegion, "ISO 3166-1 alpha-2 region code")
	flags.Int("max-results", consts.DefaultMaxResults, "number of trending videos to fetch (1-50)")
	flags.String("db-driver", "sqlite", "database driver: sqlite or mysql")
	flags.String("sqlite-path", "youtube_analytics.db", "SQLite database file")
	flags.String("raw-dir", "data/raw", "raw staging directory")
	flags.String("out-dir", "data/transformed", "transformed staging directory")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	return flags
}

// Init 解析参数、加载配置并创建日志实例
func Init(flags *pflag.FlagSet, args []string) (*Runtime, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	configPath, _ := flags.GetString("config")

	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		return nil, err
	}
	l, closer, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Cfg:    cfg,
		Log:    l,
		Ctx:    logger.WithTraceID(context.Background(), "run"),
		closer: closer,
	}, nil
}

func (r *Runtime) Close() {
	_ = r.closer.Close()
}

// ExitCode 缺少输入或数据源时提示用户并以 0 退出，其他错误以 1 退出
func (r *Runtime) ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case service.IsUserFacing(err):
		r.Log.WarnContext(r.Ctx, "nothing to do", "reason", err)
		fmt.Fprintln(os.Stderr, userMessage(err))
		return 0
	default:
		r.Log.ErrorContext(r.Ctx, "command failed", "err", err)
		return 1
	}
}

func userMessage(err error) string {
	if errors.Is(err, service.ErrDataSourceAbsent) {
		return "Database not found. Run the pipeline first!"
	}
	return "No staged input found. Run the previous stage first!"
}
