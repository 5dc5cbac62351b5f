package service

import (
	"Trendline/internal/pkg/util"
	"Trendline/internal/repository"
	"context"
	"io"
	log "log/slog"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const reportWidth = 80

type ReportService interface {
	// Render 只读查询并输出固定宽度的文本报表
	Render(ctx context.Context, w io.Writer) error
}

type reportServiceImpl struct {
	reportRepo repository.ReportRepo
	log        *log.Logger
}

func NewReportService(reportRepo repository.ReportRepo, logger *log.Logger) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
		log:        logger,
	}
}

// reportWriter 记录第一次写入错误，后续写入直接跳过
type reportWriter struct {
	p   *message.Printer
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = r.p.Fprintf(r.w, format, args...)
}

func (r *reportWriter) section(title string) {
	r.printf("\n%s\n%s\n%s\n", strings.Repeat("=", reportWidth), title, strings.Repeat("=", reportWidth))
}

func (r *reportWriter) rule() {
	r.printf("%s\n", strings.Repeat("-", reportWidth))
}

func (s *reportServiceImpl) Render(ctx context.Context, w io.Writer) error {
	out := &reportWriter{p: message.NewPrinter(language.English), w: w}

	stats, err := s.reportRepo.Summary(ctx)
	if err != nil {
		return err
	}
	top, err := s.reportRepo.TopByViews(ctx, 10)
	if err != nil {
		return err
	}
	categories, err := s.reportRepo.CategoryPerformance(ctx, 8)
	if err != nil {
		return err
	}
	buckets, err := s.reportRepo.DurationBuckets(ctx)
	if err != nil {
		return err
	}
	channels, err := s.reportRepo.ChannelPerformance(ctx, 10)
	if err != nil {
		return err
	}

	banner := "YOUTUBE TRENDING ANALYTICS REPORT"
	pad := (reportWidth - len(banner)) / 2
	out.printf("%s\n%s%s\n%s\n", strings.Repeat("=", reportWidth), strings.Repeat(" ", pad), banner, strings.Repeat("=", reportWidth))

	out.section("SUMMARY STATISTICS")
	out.printf("Total Unique Videos: %d\n", stats.TotalVideos)
	out.printf("Total Records: %d\n", stats.TotalRecords)
	out.printf("Average Views: %.0f\n", stats.AvgViews)
	out.printf("Max Views: %d\n", stats.MaxViews)
	out.printf("Average Engagement Rate: %.2f%%\n", stats.AvgEngagement)

	out.section("TOP 10 MOST VIEWED VIDEOS")
	for i, v := range top {
		out.printf("%2d. %s\n", i+1, util.Truncate(v.Title, 60, "..."))
		out.printf("    Channel: %s | Views: %d | Engagement: %.2f%%\n", v.ChannelName, v.ViewCount, v.EngagementRate)
	}

	out.section("CATEGORY PERFORMANCE")
	out.printf("%-25s %-10s %-15s %-12s\n", "Category", "Videos", "Avg Views", "Engagement")
	out.rule()
	for _, c := range categories {
		out.printf("%-25s %-10d %12.0f   %10.2f%%\n", c.CategoryName, c.VideoCount, c.AvgViews, c.AvgEngagement)
	}

	out.section("DURATION VS ENGAGEMENT")
	out.printf("%-15s %-10s %-15s\n", "Duration", "Videos", "Avg Engagement")
	out.rule()
	for _, b := range buckets {
		out.printf("%-15s %-10d %12.2f%%\n", b.Bucket, b.Videos, b.AvgEngagement)
	}

	out.section("TOP PERFORMING CHANNELS")
	out.printf("%-30s %-10s %-15s %-12s\n", "Channel", "Videos", "Avg Views", "Engagement")
	out.rule()
	for _, c := range channels {
		out.printf("%-30s %-10d %12.0f   %10.2f%%\n", util.Truncate(c.ChannelName, 28, ""), c.Videos, c.AvgViews, c.AvgEngagement)
	}

	if out.err != nil {
		return out.err
	}
	s.log.InfoContext(ctx, "report rendered",
		"videos", stats.TotalVideos,
		"records", stats.TotalRecords)
	return nil
}
