package main

import (
	"Trendline/internal/job"
	"Trendline/internal/pkg/cron"
	"Trendline/internal/pkg/database"
	"Trendline/internal/wire"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := wire.NewFlagSet("pipeline")
	flags.Bool("schedule", false, "keep running and trigger the pipeline on the cron spec")
	flags.String("cron", "@daily", "cron spec used with --schedule")

	rt, err := wire.Init(flags, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize:", err)
		return 1
	}
	defer rt.Close()

	// 配置错误在访问网络和数据库之前暴露
	if _, err = rt.Cfg.RequireAPIKey(); err != nil {
		return rt.ExitCode(err)
	}

	// 数据库连接
	db, err := database.NewGormDB(&rt.Cfg.DB, rt.Log)
	if err != nil {
		return rt.ExitCode(err)
	}
	defer func() { _ = database.Close(db) }()

	if err = database.Migrate(rt.Ctx, db); err != nil {
		return rt.ExitCode(err)
	}

	// 依赖注入
	app := wire.BuildApplication(db, rt.Cfg, rt.Log)

	schedule, _ := flags.GetBool("schedule")
	if !schedule {
		ctx, stop := signal.NotifyContext(rt.Ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return rt.ExitCode(app.PipelineSvc.Run(ctx, rt.Cfg.Pipeline.Region, rt.Cfg.Pipeline.MaxResults))
	}
	return rt.ExitCode(runScheduled(rt, app))
}

func runScheduled(rt *wire.Runtime, app *wire.ApplicationContainer) error {
	ctx, cancel := context.WithCancel(rt.Ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	pipelineJob := job.NewPipelineJob(ctx, app.PipelineSvc, rt.Cfg.Pipeline, rt.Log)
	mgr := cron.NewCronManager(rt.Cfg.Cron.Spec, pipelineJob, rt.Log)
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register cron job: %w", err)
	}
	mgr.Start()

	g.Go(func() error {
		<-ctx.Done()
		mgr.Stop()
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			rt.Log.InfoContext(ctx, "received signal, shutting down", "signal", sig.String())
			cancel()
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	rt.Log.InfoContext(rt.Ctx, "scheduler exited")
	return nil
}
