// Copyright (c) 2026, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package linksim_main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/simonlingoogle/go-simplelogger"

	"github.com/openthread/ot-linksim/cli"
	"github.com/openthread/ot-linksim/logger"
	"github.com/openthread/ot-linksim/progctx"
	"github.com/openthread/ot-linksim/simulation"
)

type MainArgs struct {
	ConfigFile  string
	LogLevel    string
	Title       string
	ExportFiles string
	Batch       bool
	HistoryFile string
}

func parseArgs(fs *flag.FlagSet, argv []string) (*MainArgs, error) {
	args := &MainArgs{}
	fs.StringVar(&args.ConfigFile, "config", "", "load model and sweep settings from a YAML config file")
	fs.StringVar(&args.LogLevel, "log", "warn", "set logging level: trace, debug, info, note, warn, error, off.")
	fs.StringVar(&args.Title, "title", "", "set the simulation title (default \""+simulation.DefaultTitle+"\")")
	fs.StringVar(&args.ExportFiles, "export", "", "comma separated list of files to export the sweep to (.yaml, .json, .csv, .pb)")
	fs.BoolVar(&args.Batch, "batch", false, "compute and export the sweep, then exit without starting the console")
	fs.StringVar(&args.HistoryFile, "history", "", "keep the console command history in this file")
	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return args, nil
}

// buildConfig layers defaults, the config file and the command line flags.
func buildConfig(args *MainArgs) (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if args.ConfigFile != "" {
		cfgFile, err := simulation.ReadYamlConfig(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfgFile.Apply(cfg)
	}
	if args.Title != "" {
		cfg.Title = args.Title
	}
	for _, fn := range strings.Split(args.ExportFiles, ",") {
		if fn = strings.TrimSpace(fn); fn != "" {
			cfg.ExportFiles = append(cfg.ExportFiles, fn)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Main(ctx *progctx.ProgCtx, cliOptions *cli.CliOptions) {
	args, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		simplelogger.Fatalf("%v", err)
	}

	level, err := logger.ParseLevelString(args.LogLevel)
	if err != nil {
		simplelogger.Fatalf("%v", err)
	}
	logger.SetLevel(level)
	simplelogger.SetLevel(simplelogger.ParseLevel(simpleLevelString(level)))
	defer logger.Sync()

	cfg, err := buildConfig(args)
	simplelogger.FatalIfError(err)
	sim, err := simulation.NewSimulation(cfg)
	simplelogger.FatalIfError(err)

	if args.Batch {
		simplelogger.FatalIfError(runBatch(sim))
		fmt.Println("Simulation complete")
		return
	}

	handleSignals(ctx)

	if len(cfg.ExportFiles) > 0 {
		if err = sim.ExportAll(); err != nil {
			logger.Errorf("%v", err)
		}
	}

	console := cli.NewCliInstance()
	if cliOptions == nil {
		cliOptions = cli.DefaultCliOptions()
	}
	if args.HistoryFile != "" {
		cliOptions.HistoryFile = args.HistoryFile
	}
	ctx.Defer(func() {
		go console.Stop()
	})
	logger.SetStdoutCallback(console)

	rt := cli.NewCmdRunner(ctx, sim)
	err = console.Run(rt, cliOptions)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	ctx.Cancel(errors.Wrapf(err, "console exit"))

	logger.Debugf("waiting for linksim to stop gracefully ...")
	ctx.Wait()
}

// runBatch computes the sweep once and writes all configured exports.
func runBatch(sim *simulation.Simulation) error {
	a, err := sim.Run()
	if err != nil {
		return err
	}
	summary, err := a.Summary()
	if err != nil {
		return err
	}
	for _, s := range summary.Sinr {
		logger.Infof("sinr %g dB: best mcs %d (%.2f Mbps), target mcs %d",
			s.SinrDb, s.BestMcs, s.BestMcsTputMbps, s.TargetMcs)
	}
	return sim.ExportAll()
}

// simpleLevelString maps a log level to the nearest level name known to simplelogger.
func simpleLevelString(level logger.Level) string {
	switch {
	case level >= logger.DebugLevel:
		return "debug"
	case level >= logger.NoteLevel:
		return "info"
	case level == logger.WarnLevel:
		return "warn"
	default:
		return "error"
	}
}

func handleSignals(ctx *progctx.ProgCtx) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)

	ctx.WaitAdd("handleSignals", 1)
	go func() {
		defer logger.Debugf("handleSignals exit.")
		defer ctx.WaitDone("handleSignals")
		defer signal.Stop(c)

		for {
			select {
			case sig := <-c:
				logger.Infof("signal received: %v", sig)
				ctx.Cancel(nil)
			case <-ctx.Done():
				return
			}
		}
	}()
}
