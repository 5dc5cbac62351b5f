package wire

import (
	"Trendline/internal/config"
	"Trendline/internal/pkg/consts"
	"Trendline/internal/pkg/metrics"
	"Trendline/internal/pkg/staging"
	"Trendline/internal/pkg/youtube"
	"Trendline/internal/repository"
	"Trendline/internal/service"
	"Trendline/internal/transform"
	log "log/slog"

	"gorm.io/gorm"
)

// ApplicationContainer 封装了各阶段命令运行所需的组件
type ApplicationContainer struct {
	DB           *gorm.DB
	Recorder     *metrics.Recorder
	ExtractSvc   service.ExtractService
	TransformSvc service.TransformService
	LoadSvc      service.LoadService
	ReportSvc    service.ReportService
	PipelineSvc  service.PipelineService
}

// BuildStaging 只组装不需要数据库的阶段 (extract / transform)
func BuildStaging(cfg *config.Config, logger *log.Logger) *ApplicationContainer {
	raw := staging.New(cfg.Pipeline.RawDir, consts.StageRaw)
	transformed := staging.New(cfg.Pipeline.TransformedDir, consts.StageTransformed)

	return &ApplicationContainer{
		ExtractSvc:   service.NewExtractService(youtube.NewClient(cfg.YouTube, logger), raw, logger),
		TransformSvc: service.NewTransformService(transform.NewTransformer(logger), raw, transformed, logger),
	}
}

func BuildApplication(db *gorm.DB, cfg *config.Config, logger *log.Logger) *ApplicationContainer {
	app := BuildStaging(cfg, logger)

	videoRepo := repository.NewVideoRepo(db)
	trendingRepo := repository.NewTrendingRepo(db)
	reportRepo := repository.NewReportRepo(db)

	app.DB = db
	app.Recorder = metrics.New(cfg.Metrics)
	app.LoadSvc = service.NewLoadService(videoRepo, trendingRepo, reportRepo, logger)
	app.ReportSvc = service.NewReportService(reportRepo, logger)
	app.PipelineSvc = service.NewPipelineService(app.ExtractSvc, app.TransformSvc, app.LoadSvc, app.Recorder, logger)
	return app
}
