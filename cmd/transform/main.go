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
	rt, err := wire.Init(wire.NewFlagSet("transform"), args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize:", err)
		return 1
	}
	defer rt.Close()

	app := wire.BuildStaging(rt.Cfg, rt.Log)
	_, _, err = app.TransformSvc.TransformLatest(rt.Ctx)
	return rt.ExitCode(err)
}
