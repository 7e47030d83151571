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
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/openthread/ot-linksim/logger"
)

type CliHandler interface {
	HandleCommand(cmd string, output io.Writer) error
	GetPrompt() string
}

type CliOptions struct {
	EchoInput   bool
	HistoryFile string
	Stdin       *os.File
	Stdout      *os.File
}

func DefaultCliOptions() *CliOptions {
	return &CliOptions{
		EchoInput: false,
		Stdin:     nil,
		Stdout:    nil,
	}
}

// CliInstance is an interactive console that reads command lines and passes them to a CliHandler.
type CliInstance struct {
	Started          chan struct{}
	Options          *CliOptions
	readlineInstance *readline.Instance
	waitCliClosed    chan struct{}
}

func NewCliInstance() *CliInstance {
	return &CliInstance{
		Started:       make(chan struct{}),
		waitCliClosed: make(chan struct{}),
	}
}

func (cli *CliInstance) RestorePrompt() {
	if cli.readlineInstance != nil {
		cli.readlineInstance.Refresh()
	}
}

func getCliOptions(options *CliOptions) *CliOptions {
	if options == nil {
		options = DefaultCliOptions()
	}
	if options.Stdin == nil {
		options.Stdin = os.Stdin
	}
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}
	return options
}

// newCompleter builds tab-completion for the command keywords of the console.
func newCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("best"),
		readline.PcItem("bler"),
		readline.PcItem("eval"),
		readline.PcItem("exit"),
		readline.PcItem("export"),
		readline.PcItem("help"),
		readline.PcItem("log",
			readline.PcItem("trace"),
			readline.PcItem("debug"),
			readline.PcItem("info"),
			readline.PcItem("note"),
			readline.PcItem("warn"),
			readline.PcItem("error"),
			readline.PcItem("off"),
		),
		readline.PcItem("params",
			readline.PcItem("steepness"),
			readline.PcItem("amp"),
		),
		readline.PcItem("range"),
		readline.PcItem("rate"),
		readline.PcItem("required"),
		readline.PcItem("run"),
		readline.PcItem("sinr",
			readline.PcItem("intf"),
		),
		readline.PcItem("summary"),
		readline.PcItem("target"),
		readline.PcItem("tput"),
	)
}

// Stop makes a running console return.
func (cli *CliInstance) Stop() {
	<-cli.Started
	// readlineInstance.Close() can block here; send ETX (Ctrl-C) and close stdin so Run() returns.
	_, _ = cli.Options.Stdin.WriteString("\003\n")
	_ = cli.Options.Stdin.Close()
	logger.Tracef("Waiting for CLI to stop ...")
	<-cli.waitCliClosed
	logger.Tracef("CLI wait-for-stop done.")
}

// Run reads and handles command lines until the input ends, the user interrupts, or the
// handler returns an error.
func (cli *CliInstance) Run(handler CliHandler, options *CliOptions) error {
	defer logger.Debugf("CLI exit.")
	defer close(cli.waitCliClosed)

	options = getCliOptions(options)
	cli.Options = options

	stdin := options.Stdin
	if readline.IsTerminal(int(stdin.Fd())) {
		stdinState, err := readline.GetState(int(stdin.Fd()))
		if err != nil {
			close(cli.Started)
			return errors.Wrap(err, "stdin")
		}
		defer func() {
			_ = readline.Restore(int(stdin.Fd()), stdinState)
		}()
	}

	stdout := options.Stdout
	if readline.IsTerminal(int(stdout.Fd())) {
		stdoutState, err := readline.GetState(int(stdout.Fd()))
		if err != nil {
			close(cli.Started)
			return errors.Wrap(err, "stdout")
		}
		defer func() {
			_ = readline.Restore(int(stdout.Fd()), stdoutState)
		}()
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          handler.GetPrompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryFile:     options.HistoryFile,
		AutoComplete:    newCompleter(),
		Stdin:           stdin,
		Stdout:          stdout,

		HistorySearchFold: true,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			switch r {
			// block CtrlZ feature
			case readline.CharCtrlZ:
				return r, false
			}
			return r, true
		},
	})
	if err != nil {
		close(cli.Started)
		return err
	}

	defer func() {
		_ = l.Close()
	}()
	cli.readlineInstance = l
	close(cli.Started)

	for {
		l.SetPrompt(handler.GetPrompt())
		line, err := l.Readline()

		if len(line) > 0 && line[0] == readline.CharInterrupt {
			return nil
		} else if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue // Ctrl-C in midline edit only cancels the present cmd line.
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if options.EchoInput {
			if _, err := stdout.WriteString(line + "\n"); err != nil {
				return err
			}
		}

		cmd := strings.TrimSpace(line)
		if len(cmd) == 0 || strings.HasPrefix(cmd, "#") {
			continue
		}

		if err = handler.HandleCommand(cmd, l.Stdout()); err != nil {
			_ = stdout.Sync()
			return err
		}
		_ = stdout.Sync()
	}
}

// OnStdout is the handler called when new Stdout/Stderr output occurred.
func (cli *CliInstance) OnStdout() {
	cli.RestorePrompt()
}
