package service

import (
	"Trendline/internal/pkg/metrics"
	"context"
	"fmt"
	log "log/slog"
	"time"
)

type PipelineService interface {
	// Run 顺序执行 Extract -> Transform -> Load，总会输出一行最终结果日志
	Run(ctx context.Context, region string, maxResults int) error
}

type pipelineServiceImpl struct {
	extractSvc   ExtractService
	transformSvc TransformService
	loadSvc      LoadService
	recorder     *metrics.Recorder
	log          *log.Logger
}

func NewPipelineService(
	extractSvc ExtractService,
	transformSvc TransformService,
	loadSvc LoadService,
	recorder *metrics.Recorder,
	logger *log.Logger,
) PipelineService {
	return &pipelineServiceImpl{
		extractSvc:   extractSvc,
		transformSvc: transformSvc,
		loadSvc:      loadSvc,
		recorder:     recorder,
		log:          logger,
	}
}

func (s *pipelineServiceImpl) Run(ctx context.Context, region string, maxResults int) (err error) {
	s.log.InfoContext(ctx, "starting etl pipeline", "region", region, "max_results", maxResults)

	defer func() {
		s.recorder.Finish(err)
		if pushErr := s.recorder.Push(ctx); pushErr != nil {
			s.log.WarnContext(ctx, "push metrics failed", "err", pushErr)
		}
		if err != nil {
			s.log.ErrorContext(ctx, "etl pipeline failed", "err", err)
			return
		}
		s.log.InfoContext(ctx, "etl pipeline completed successfully")
	}()

	start := time.Now()
	s.log.InfoContext(ctx, "phase 1: extracting data from youtube api")
	raw, _, err := s.extractSvc.Extract(ctx, region, maxResults)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	s.recorder.ObservePhase("extract", start)
	s.recorder.RecordsExtracted.Add(float64(len(raw)))

	start = time.Now()
	s.log.InfoContext(ctx, "phase 2: transforming data")
	res, _, err := s.transformSvc.TransformRecords(ctx, raw)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	s.recorder.ObservePhase("transform", start)
	s.recorder.RecordsTransformed.Add(float64(len(res.Records)))
	s.recorder.DuplicatesRemoved.Add(float64(res.DuplicatesRemoved))
	s.recorder.RecordsRejected.Add(float64(res.Rejected))

	start = time.Now()
	s.log.InfoContext(ctx, "phase 3: loading data to database")
	report, err := s.loadSvc.Load(ctx, res.Records)
	if report != nil {
		s.recorder.VideosInserted.Add(float64(report.VideosNew))
		s.recorder.ObservationsWritten.Add(float64(report.ObservationsWritten))
		s.recorder.RowsFailed.Add(float64(report.VideosFailed + report.ObservationsFailed))
	}
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	s.recorder.ObservePhase("load", start)
	return nil
}
