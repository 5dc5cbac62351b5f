package service

import (
	"Trendline/internal/model"
	"Trendline/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

// LoadReport 一次装载的计数与装载后的校验结果
type LoadReport struct {
	VideosNew           int
	VideosExisting      int
	VideosFailed        int
	ObservationsWritten int
	ObservationsFailed  int
	TotalVideos         int64
	TotalObservations   int64
	TopVideos           []*model.TopVideo
}

type LoadService interface {
	// Load 先写视频再写观测；单行失败跳过，连接级失败中止
	Load(ctx context.Context, records []model.TransformedRecord) (*LoadReport, error)
}

type loadServiceImpl struct {
	videoRepo    repository.VideoRepo
	trendingRepo repository.TrendingRepo
	reportRepo   repository.ReportRepo
	log          *log.Logger
}

func NewLoadService(
	videoRepo repository.VideoRepo,
	trendingRepo repository.TrendingRepo,
	reportRepo repository.ReportRepo,
	logger *log.Logger,
) LoadService {
	return &loadServiceImpl{
		videoRepo:    videoRepo,
		trendingRepo: trendingRepo,
		reportRepo:   reportRepo,
		log:          logger,
	}
}

var recordConverters = []copier.TypeConverter{
	{
		SrcType: model.CSVTime{},
		DstType: time.Time{},
		Fn: func(src interface{}) (interface{}, error) {
			return src.(model.CSVTime).UTC(), nil
		},
	},
	{
		SrcType: model.CSVTime{},
		DstType: (*time.Time)(nil),
		Fn: func(src interface{}) (interface{}, error) {
			t := src.(model.CSVTime)
			if t.IsZero() {
				return (*time.Time)(nil), nil
			}
			utc := t.UTC()
			return &utc, nil
		},
	},
	{
		SrcType: model.CSVTime{},
		DstType: copier.String,
		Fn: func(src interface{}) (interface{}, error) {
			return src.(model.CSVTime).UTC().Format(time.DateOnly), nil
		},
	},
	{
		SrcType: copier.String,
		DstType: 0,
		Fn: func(src interface{}) (interface{}, error) {
			s := src.(string)
			if s == "" {
				return 0, nil
			}
			return strconv.Atoi(s)
		},
	},
}

func toVideo(rec *model.TransformedRecord) (*model.Video, error) {
	video := &model.Video{}
	if err := copier.CopyWithOption(video, rec, copier.Option{Converters: recordConverters}); err != nil {
		return nil, fmt.Errorf("map video %s: %w", rec.VideoID, err)
	}
	return video, nil
}

func toObservation(rec *model.TransformedRecord) (*model.TrendingObservation, error) {
	obs := &model.TrendingObservation{}
	if err := copier.CopyWithOption(obs, rec, copier.Option{Converters: recordConverters}); err != nil {
		return nil, fmt.Errorf("map observation %s: %w", rec.ObservationKey(), err)
	}
	return obs, nil
}

func (s *loadServiceImpl) Load(ctx context.Context, records []model.TransformedRecord) (*LoadReport, error) {
	report := &LoadReport{}

	// 同一视频以首次出现的记录为准
	seen := make(map[string]struct{}, len(records))
	failedVideos := make(map[string]struct{})
	for i := range records {
		rec := &records[i]
		if _, ok := seen[rec.VideoID]; ok {
			continue
		}
		seen[rec.VideoID] = struct{}{}

		video, err := toVideo(rec)
		if err != nil {
			report.VideosFailed++
			failedVideos[rec.VideoID] = struct{}{}
			s.log.WarnContext(ctx, "skip video", "video_id", rec.VideoID, "err", err)
			continue
		}
		inserted, err := s.videoRepo.InsertIfAbsent(ctx, video)
		if err != nil {
			if isStoreFailure(err) {
				return report, fmt.Errorf("%w: insert video %s: %w", ErrStoreUnavailable, rec.VideoID, err)
			}
			report.VideosFailed++
			failedVideos[rec.VideoID] = struct{}{}
			s.log.WarnContext(ctx, "skip video", "video_id", rec.VideoID, "err", err)
			continue
		}
		if inserted {
			report.VideosNew++
		} else {
			report.VideosExisting++
		}
	}
	s.log.InfoContext(ctx, "videos loaded",
		"new", report.VideosNew,
		"existing", report.VideosExisting,
		"failed", report.VideosFailed)

	for i := range records {
		rec := &records[i]
		if _, ok := failedVideos[rec.VideoID]; ok {
			report.ObservationsFailed++
			continue
		}

		obs, err := toObservation(rec)
		if err != nil {
			report.ObservationsFailed++
			s.log.WarnContext(ctx, "skip observation", "key", rec.ObservationKey(), "err", err)
			continue
		}
		if err := s.trendingRepo.SaveOrReplace(ctx, obs); err != nil {
			if isStoreFailure(err) {
				return report, fmt.Errorf("%w: save observation %s: %w", ErrStoreUnavailable, rec.ObservationKey(), err)
			}
			report.ObservationsFailed++
			s.log.WarnContext(ctx, "skip observation", "key", rec.ObservationKey(), "err", err)
			continue
		}
		report.ObservationsWritten++
	}
	s.log.InfoContext(ctx, "trending records loaded",
		"written", report.ObservationsWritten,
		"failed", report.ObservationsFailed)

	s.verify(ctx, report)
	return report, nil
}

// verify 装载后核对总量并列出播放量前五，失败只记录日志
func (s *loadServiceImpl) verify(ctx context.Context, report *LoadReport) {
	var err error
	if report.TotalVideos, err = s.videoRepo.CountVideos(ctx); err != nil {
		s.log.WarnContext(ctx, "verify videos count failed", "err", err)
		return
	}
	if report.TotalObservations, err = s.trendingRepo.CountObservations(ctx); err != nil {
		s.log.WarnContext(ctx, "verify trending count failed", "err", err)
		return
	}
	if report.TopVideos, err = s.reportRepo.TopByViews(ctx, 5); err != nil {
		s.log.WarnContext(ctx, "verify top videos failed", "err", err)
		return
	}

	s.log.InfoContext(ctx, "load verified",
		"total_videos", report.TotalVideos,
		"total_trending_records", report.TotalObservations)
	for i, v := range report.TopVideos {
		s.log.InfoContext(ctx, "top video",
			"rank", i+1,
			"title", v.Title,
			"views", v.ViewCount,
			"engagement_rate", v.EngagementRate)
	}
}
