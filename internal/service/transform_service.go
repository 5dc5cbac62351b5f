package service

import (
	"Trendline/internal/model"
	"Trendline/internal/pkg/staging"
	"Trendline/internal/transform"
	"context"
	log "log/slog"
)

type TransformService interface {
	// TransformLatest 读取最新的 raw 批次，转换后写入 transformed 暂存目录
	TransformLatest(ctx context.Context) (*transform.Result, *staging.Entry, error)
	// TransformRecords 转换内存中的批次并写入 transformed 暂存目录
	TransformRecords(ctx context.Context, raw []model.RawRecord) (*transform.Result, *staging.Entry, error)
}

type transformServiceImpl struct {
	transformer *transform.Transformer
	raw         *staging.Stage
	transformed *staging.Stage
	log         *log.Logger
}

func NewTransformService(
	transformer *transform.Transformer,
	raw *staging.Stage,
	transformed *staging.Stage,
	logger *log.Logger,
) TransformService {
	return &transformServiceImpl{
		transformer: transformer,
		raw:         raw,
		transformed: transformed,
		log:         logger,
	}
}

func (s *transformServiceImpl) TransformLatest(ctx context.Context) (*transform.Result, *staging.Entry, error) {
	records, entry, err := staging.ReadLatest[model.RawRecord](s.raw)
	if err != nil {
		return nil, nil, err
	}
	s.log.InfoContext(ctx, "reading raw data", "file", entry.File, "records", len(records))
	return s.TransformRecords(ctx, records)
}

func (s *transformServiceImpl) TransformRecords(ctx context.Context, raw []model.RawRecord) (*transform.Result, *staging.Entry, error) {
	res := s.transformer.Transform(ctx, raw)

	entry, err := staging.Write(s.transformed, res.Records)
	if err != nil {
		return nil, nil, err
	}

	s.log.InfoContext(ctx, "transformation complete",
		"input_records", res.InputCount,
		"output_records", len(res.Records),
		"duplicates_removed", res.DuplicatesRemoved,
		"rejected", res.Rejected,
		"file", entry.File)
	for i, rec := range transform.TopByEngagement(res.Records, 5) {
		s.log.InfoContext(ctx, "top engagement",
			"rank", i+1,
			"title", rec.Title,
			"views", rec.ViewCount,
			"engagement_rate", rec.EngagementRate)
	}
	return &res, entry, nil
}
