package main

import (
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
	rt, err := wire.Init(wire.NewFlagSet("extract"), args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize:", err)
		return 1
	}
	defer rt.Close()

	// 缺少 API Key 时在任何网络请求之前退出
	if _, err = rt.Cfg.RequireAPIKey(); err != nil {
		return rt.ExitCode(err)
	}

	app := wire.BuildStaging(rt.Cfg, rt.Log)
	_, _, err = app.ExtractSvc.Extract(rt.Ctx, rt.Cfg.Pipeline.Region, rt.Cfg.Pipeline.MaxResults)
	return rt.ExitCode(err)
}
