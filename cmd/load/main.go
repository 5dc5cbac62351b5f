package main

import (
	"Trendline/internal/model"
	"Trendline/internal/pkg/consts"
	"Trendline/internal/pkg/database"
	"Trendline/internal/pkg/staging"
	"Trendline/internal/wire"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rt, err := wire.Init(wire.NewFlagSet("load"), args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize:", err)
		return 1
	}
	defer rt.Close()

	records, entry, err := staging.ReadLatest[model.TransformedRecord](
		staging.New(rt.Cfg.Pipeline.TransformedDir, consts.StageTransformed))
	if err != nil {
		return rt.ExitCode(err)
	}
	rt.Log.InfoContext(rt.Ctx, "reading transformed data", "file", entry.File, "records", len(records))

	// 数据库连接
	db, err := database.NewGormDB(&rt.Cfg.DB, rt.Log)
	if err != nil {
		return rt.ExitCode(err)
	}
	defer func() { _ = database.Close(db) }()

	if err = database.Migrate(rt.Ctx, db); err != nil {
		return rt.ExitCode(err)
	}

	app := wire.BuildApplication(db, rt.Cfg, rt.Log)
	_, err = app.LoadSvc.Load(rt.Ctx, records)
	return rt.ExitCode(err)
}
