package logger

import (
	"Trendline/internal/config"
	"fmt"
	"io"
	log "log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New 构建日志实例：stdout 输出 JSON，配置了 log.dir 时同时写入按天滚动的文件。
// 返回的 io.Closer 负责关闭日志文件。
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}
	hStdout := log.NewJSONHandler(os.Stdout, opts)

	if cfg.Dir == "" {
		return log.New(&ContextHandler{hStdout}), nopCloser{}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	name := filepath.Join(cfg.Dir, fmt.Sprintf("etl_%s.log", time.Now().Format("20060102")))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	finalHandler := NewTeeHandler(hStdout, log.NewJSONHandler(file, opts))
	return log.New(&ContextHandler{finalHandler}), file, nil
}

// NewWithWriter 输出到指定 writer，主要用于测试
func NewWithWriter(w io.Writer, level string) *log.Logger {
	return log.New(&ContextHandler{log.NewJSONHandler(w, &log.HandlerOptions{Level: ParseLevel(level)})})
}

func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
