package metrics

import (
	"Trendline/internal/config"
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Recorder 一次批处理运行的指标，运行结束后推送到 Pushgateway
type Recorder struct {
	cfg      config.MetricsConfig
	registry *prometheus.Registry

	RecordsExtracted    prometheus.Counter
	RecordsTransformed  prometheus.Counter
	DuplicatesRemoved   prometheus.Counter
	RecordsRejected     prometheus.Counter
	VideosInserted      prometheus.Counter
	ObservationsWritten prometheus.Counter
	RowsFailed          prometheus.Counter
	PhaseDuration       *prometheus.HistogramVec
	RunsTotal           *prometheus.CounterVec
	LastSuccess         prometheus.Gauge
}

func New(cfg config.MetricsConfig) *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		cfg:      cfg,
		registry: reg,
		RecordsExtracted: f.NewCounter(prometheus.CounterOpts{
			Name: "etl_records_extracted_total",
			Help: "Total number of trending records fetched from the API",
		}),
		RecordsTransformed: f.NewCounter(prometheus.CounterOpts{
			Name: "etl_records_transformed_total",
			Help: "Total number of records emitted by the transform phase",
		}),
		DuplicatesRemoved: f.NewCounter(prometheus.CounterOpts{
			Name: "etl_duplicates_removed_total",
			Help: "Total number of duplicate observations dropped",
		}),
		RecordsRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "etl_records_rejected_total",
			Help: "Total number of records rejected for invalid timestamps",
		}),
		VideosInserted: f.NewCounter(prometheus.CounterOpts{
			Name: "etl_videos_inserted_total",
			Help: "Total number of new videos stored",
		}),
		ObservationsWritten: f.NewCounter(prometheus.CounterOpts{
			Name: "etl_observations_written_total",
			Help: "Total number of trending observations inserted or replaced",
		}),
		RowsFailed: f.NewCounter(prometheus.CounterOpts{
			Name: "etl_rows_failed_total",
			Help: "Total number of rows skipped after a per-row store error",
		}),
		PhaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "etl_phase_duration_seconds",
			Help:    "Duration of each pipeline phase in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"phase"}),
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "etl_runs_total",
			Help: "Total number of pipeline runs by outcome",
		}, []string{"status"}),
		LastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Name: "etl_last_success_timestamp_seconds",
			Help: "Unix time of the last successful pipeline run",
		}),
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObservePhase 记录阶段耗时
func (r *Recorder) ObservePhase(phase string, start time.Time) {
	r.PhaseDuration.WithLabelValues(phase).Observe(time.Since(start).Seconds())
}

// Finish 记录运行结果
func (r *Recorder) Finish(err error) {
	if err != nil {
		r.RunsTotal.WithLabelValues("failure").Inc()
		return
	}
	r.RunsTotal.WithLabelValues("success").Inc()
	r.LastSuccess.SetToCurrentTime()
}

// Push 未配置 Pushgateway 时直接返回
func (r *Recorder) Push(ctx context.Context) error {
	if r.cfg.Pushgateway == "" {
		return nil
	}
	return push.New(r.cfg.Pushgateway, r.cfg.Job).
		Gatherer(r.registry).
		PushContext(ctx)
}
