package main

import (
	"Trendline/internal/pkg/database"
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
	rt, err := wire.Init(wire.NewFlagSet("report"), args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize:", err)
		return 1
	}
	defer rt.Close()

	// 数据源不存在时只提示，不新建空库
	db, err := database.OpenExisting(&rt.Cfg.DB, rt.Log)
	if err != nil {
		return rt.ExitCode(err)
	}
	defer func() { _ = database.Close(db) }()

	// 分类查询前确保表结构与分类已就绪
	if err = database.Migrate(rt.Ctx, db); err != nil {
		return rt.ExitCode(err)
	}

	app := wire.BuildApplication(db, rt.Cfg, rt.Log)
	return rt.ExitCode(app.ReportSvc.Render(rt.Ctx, os.Stdout))
}
