package job

import (
	"Trendline/internal/config"
	"Trendline/internal/pkg/logger"
	"Trendline/internal/service"
	"context"
	log "log/slog"
)

// PipelineJob 定时执行一次完整的 ETL
type PipelineJob struct {
	ctx         context.Context
	pipelineSvc service.PipelineService
	cfg         config.PipelineConfig
	log         *log.Logger
}

func NewPipelineJob(ctx context.Context, pipelineSvc service.PipelineService, cfg config.PipelineConfig, logger *log.Logger) *PipelineJob {
	return &PipelineJob{
		ctx:         ctx,
		pipelineSvc: pipelineSvc,
		cfg:         cfg,
		log:         logger,
	}
}

func (s *PipelineJob) Run() {
	if s.ctx.Err() != nil {
		return
	}
	ctx := logger.WithTraceID(s.ctx, "job-etl")

	if err := s.pipelineSvc.Run(ctx, s.cfg.Region, s.cfg.MaxResults); err != nil {
		s.log.ErrorContext(ctx, "scheduled etl run failed", "err", err)
	}
}
