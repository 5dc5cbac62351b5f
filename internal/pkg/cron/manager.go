package cron

import (
	"Trendline/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine      *cron.Cron
	spec        string
	pipelineJob *job.PipelineJob
	log         *log.Logger
}

// NewCronManager 上一次运行未结束时跳过本次触发，保证同一时间只有一个写入者
func NewCronManager(spec string, pipelineJob *job.PipelineJob, logger *log.Logger) *Manager {
	cronLogger := cron.PrintfLogger(log.NewLogLogger(logger.Handler(), log.LevelInfo))
	return &Manager{
		engine: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		spec:        spec,
		pipelineJob: pipelineJob,
		log:         logger,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.spec, s.pipelineJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	s.log.Info("cron engine started", "spec", s.spec)
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	s.log.Info("cron engine stopping")
	<-s.engine.Stop().Done()
}
