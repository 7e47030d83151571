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

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/openthread/ot-linksim/linkmodel"
	"github.com/openthread/ot-linksim/logger"
	"github.com/openthread/ot-linksim/progctx"
	"github.com/openthread/ot-linksim/simulation"
)

const (
	Prompt = "> "
)

type CommandContext struct {
	*Command
	rt     *CmdRunner
	err    error
	output io.Writer
}

func (cc *CommandContext) outputf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cc.output, format, args...)
}

func (cc *CommandContext) errorf(format string, args ...interface{}) {
	cc.error(errors.Errorf(format, args...))
}

func (cc *CommandContext) error(err error) {
	if err != nil {
		if cc.err != nil { // if previous error, print it now and keep the last.
			cc.outputf("Error: %s\n", cc.err)
		}
		cc.err = err
	}
}

// Err returns the last error that occurred during command execution.
func (cc *CommandContext) Err() error {
	return cc.err
}

// outputItemAsYaml writes the item as single-line YAML.
func (cc *CommandContext) outputItemAsYaml(item interface{}) {
	var itemYaml yaml.Node
	err := itemYaml.Encode(item)
	logger.PanicIfError(err)

	itemYaml.Style = yaml.FlowStyle
	data, err := yaml.Marshal(&itemYaml)
	logger.PanicIfError(err)

	_, err = cc.output.Write(data)
	logger.PanicIfError(err)
}

func (cc *CommandContext) outputYaml(item interface{}) {
	data, err := yaml.Marshal(item)
	logger.PanicIfError(err)

	_, err = cc.output.Write(data)
	logger.PanicIfError(err)
}

type CmdRunner struct {
	sim  *simulation.Simulation
	ctx  *progctx.ProgCtx
	help Help
}

func NewCmdRunner(ctx *progctx.ProgCtx, sim *simulation.Simulation) *CmdRunner {
	return &CmdRunner{
		ctx:  ctx,
		sim:  sim,
		help: newHelp(),
	}
}

// HandleCommand parses and executes one command line, writing the results to output.
func (rt *CmdRunner) HandleCommand(cmdline string, output io.Writer) error {
	if rt.ctx.Err() == nil {
		cmd := Command{}
		if err := parseBytes([]byte(cmdline), &cmd); err != nil {
			if _, err := fmt.Fprintf(output, "Error: %v\n", err); err != nil {
				return err
			}
		} else {
			rt.execute(&cmd, output)
		}
	}
	return rt.ctx.Err()
}

func (rt *CmdRunner) GetPrompt() string {
	return Prompt
}

func (rt *CmdRunner) execute(cmd *Command, output io.Writer) {
	cc := &CommandContext{
		Command: cmd,
		rt:      rt,
		output:  output,
	}

	defer func() {
		if cc.Err() != nil {
			cc.outputf("Error: %v\n", cc.Err())
		} else {
			cc.outputf("Done\n")
		}
	}()

	defer func() {
		rerr := recover()
		if rerr != nil {
			if err, ok := rerr.(error); ok {
				cc.err = errors.Wrapf(err, "panic")
			} else {
				cc.err = errors.Errorf("panic: %v", rerr)
			}
		}
	}()

	if cmd.Bler != nil {
		rt.executeBler(cc, cmd.Bler)
	} else if cmd.Rate != nil {
		rt.executeRate(cc, cmd.Rate)
	} else if cmd.Tput != nil {
		rt.executeTput(cc, cmd.Tput)
	} else if cmd.Eval != nil {
		rt.executeEval(cc, cmd.Eval)
	} else if cmd.Best != nil {
		rt.executeBest(cc, cmd.Best)
	} else if cmd.Required != nil {
		rt.executeRequired(cc, cmd.Required)
	} else if cmd.Params != nil {
		rt.executeParams(cc, cmd.Params)
	} else if cmd.Range != nil {
		rt.executeRange(cc, cmd.Range)
	} else if cmd.Target != nil {
		rt.executeTarget(cc, cmd.Target)
	} else if cmd.Sinr != nil {
		rt.executeSinr(cc, cmd.Sinr)
	} else if cmd.Run != nil {
		rt.executeRun(cc)
	} else if cmd.Summary != nil {
		rt.executeSummary(cc)
	} else if cmd.Export != nil {
		rt.executeExport(cc, cmd.Export)
	} else if cmd.LogLevel != nil {
		rt.executeLogLevel(cc, cmd.LogLevel)
	} else if cmd.Help != nil {
		rt.executeHelp(cc, cmd.Help)
	} else if cmd.Exit != nil {
		rt.executeExit(cc)
	} else {
		logger.Panicf("unimplemented command: %#v", cmd)
	}
}

func (rt *CmdRunner) executeBler(cc *CommandContext, cmd *BlerCmd) {
	model := rt.sim.Model()
	if cmd.Steepness != nil {
		params := model.Params()
		params.Steepness = cmd.Steepness.Float()
		var err error
		if model, err = linkmodel.NewModel(model.Name(), params); err != nil {
			cc.error(err)
			return
		}
	}
	lq, err := model.Evaluate(cmd.Sinr.Float(), cmd.Mcs.Float())
	if err != nil {
		cc.error(err)
		return
	}
	cc.outputf("%s\n", formatFloat(lq.Bler))
}

func (rt *CmdRunner) executeRate(cc *CommandContext, cmd *RateCmd) {
	mcs := cmd.Mcs.Float()
	if cmd.Amp != nil {
		cc.outputf("%s\n", formatFloat(linkmodel.PeakRate(mcs, cmd.Amp.Float())))
	} else {
		cc.outputf("%s\n", formatFloat(rt.sim.Model().PeakRate(mcs)))
	}
}

func (rt *CmdRunner) executeTput(cc *CommandContext, cmd *TputCmd) {
	lq, err := rt.sim.Model().Evaluate(cmd.Sinr.Float(), cmd.Mcs.Float())
	if err != nil {
		cc.error(err)
		return
	}
	cc.outputf("%s\n", formatFloat(lq.ThroughputMbps))
}

func (rt *CmdRunner) executeEval(cc *CommandContext, cmd *EvalCmd) {
	lq, err := rt.sim.Model().Evaluate(cmd.Sinr.Float(), cmd.Mcs.Float())
	if err != nil {
		cc.error(err)
		return
	}
	cc.outputItemAsYaml(lq)
}

func (rt *CmdRunner) executeBest(cc *CommandContext, cmd *BestCmd) {
	model := rt.sim.Model()
	sinr := cmd.Sinr.Float()
	if cmd.Target == nil {
		lq, err := model.BestMcs(sinr)
		if err != nil {
			cc.error(err)
			return
		}
		cc.outputItemAsYaml(lq)
		return
	}

	target := cmd.Target.Float()
	lq, ok, err := model.HighestMcsForTarget(sinr, target)
	if err != nil {
		cc.error(err)
		return
	}
	if !ok {
		cc.errorf("no MCS meets target BLER %g at SINR %g dB", target, sinr)
		return
	}
	cc.outputItemAsYaml(lq)
}

func (rt *CmdRunner) executeRequired(cc *CommandContext, cmd *RequiredCmd) {
	target := rt.sim.Config().Ranges.TargetBler
	if cmd.Target != nil {
		target = cmd.Target.Float()
	}
	sinr, err := rt.sim.Model().RequiredSinr(cmd.Mcs.Float(), target)
	if err != nil {
		cc.error(err)
		return
	}
	cc.outputf("%.4f\n", sinr)
}

func (rt *CmdRunner) executeSinr(cc *CommandContext, cmd *SinrCmd) {
	intf := make([]float64, 0, len(cmd.Interference))
	for i := range cmd.Interference {
		intf = append(intf, cmd.Interference[i].Float())
	}
	sinr, err := linkmodel.SinrFromPowers(cmd.Signal.Float(), cmd.Noise.Float(), intf...)
	if err != nil {
		cc.error(err)
		return
	}
	cc.outputf("%.4f\n", sinr)
}

func (rt *CmdRunner) executeParams(cc *CommandContext, cmd *ParamsCmd) {
	params := rt.sim.Model().Params()
	if cmd.Steepness != nil || cmd.Amp != nil {
		if cmd.Steepness != nil {
			params.Steepness = cmd.Steepness.Float()
		}
		if cmd.Amp != nil {
			params.AmplificationFactor = cmd.Amp.Float()
		}
		if err := rt.sim.SetParams(params); err != nil {
			cc.error(err)
			return
		}
	}
	cc.outputItemAsYaml(params)
}

func (rt *CmdRunner) executeRange(cc *CommandContext, cmd *RangeCmd) {
	if cmd.Min != nil {
		r := rt.sim.Config().Ranges
		points := r.SinrPoints
		if cmd.Points != nil {
			points = *cmd.Points
		}
		if err := rt.sim.SetSinrRange(cmd.Min.Float(), cmd.Max.Float(), points); err != nil {
			cc.error(err)
			return
		}
	}
	r := rt.sim.Config().Ranges
	cc.outputf("sinr [%s, %s] dB, %d points; mcs [%d, %d]\n",
		formatFloat(r.SinrMinDb), formatFloat(r.SinrMaxDb), r.SinrPoints, r.McsMin, r.McsMax)
}

func (rt *CmdRunner) executeTarget(cc *CommandContext, cmd *TargetCmd) {
	if cmd.Bler != nil {
		if err := rt.sim.SetTargetBler(cmd.Bler.Float()); err != nil {
			cc.error(err)
			return
		}
	}
	cc.outputf("%s\n", formatFloat(rt.sim.Config().Ranges.TargetBler))
}

func (rt *CmdRunner) executeRun(cc *CommandContext) {
	if _, err := rt.sim.Run(); err != nil {
		cc.error(err)
		return
	}
	rt.executeSummary(cc)
}

func (rt *CmdRunner) executeSummary(cc *CommandContext) {
	a := rt.sim.Analysis()
	if a == nil {
		var err error
		if a, err = rt.sim.Run(); err != nil {
			cc.error(err)
			return
		}
	}
	summary, err := a.Summary()
	if err != nil {
		cc.error(err)
		return
	}
	cc.outputYaml(summary)
}

func (rt *CmdRunner) executeExport(cc *CommandContext, cmd *ExportCmd) {
	fn := unquote(cmd.Filename)
	if err := rt.sim.Export(fn); err != nil {
		cc.error(err)
		return
	}
	cc.outputf("exported to %s\n", fn)
}

func (rt *CmdRunner) executeLogLevel(cc *CommandContext, cmd *LogLevelCmd) {
	if cmd.Level == "" {
		cc.outputf("%v\n", logger.GetLevelString(logger.GetLevel()))
		return
	}
	level, err := logger.ParseLevelString(cmd.Level)
	if err != nil {
		cc.error(err)
		return
	}
	logger.SetLevel(level)
}

func (rt *CmdRunner) executeHelp(cc *CommandContext, cmd *HelpCmd) {
	if len(cmd.HelpTopic) > 0 {
		cc.outputf("%s", rt.help.outputCommandHelp(cmd.HelpTopic))
	} else {
		cc.outputf("%s", rt.help.outputGeneralHelp())
	}
}

func (rt *CmdRunner) executeExit(cc *CommandContext) {
	rt.ctx.Cancel("exit")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// unquote removes the quotes of a string token, if still present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "\"") {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}
