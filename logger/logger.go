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

// Package logger is the leveled logger of the link simulator, built on zap. Log lines go to
// stderr by default; when stdout is a terminal the CLI prompt is restored after each line.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int8

const (
	TraceLevel   Level = 6
	DebugLevel   Level = 5
	InfoLevel    Level = 4
	NoteLevel    Level = 3
	WarnLevel    Level = 2
	ErrorLevel   Level = 1
	PanicLevel   Level = 0
	FatalLevel   Level = -1
	OffLevel     Level = -2
	MinLevel           = OffLevel
	DefaultLevel       = WarnLevel
)

// StdoutCallback is notified after the logger wrote to the console.
type StdoutCallback interface {
	OnStdout()
}

var (
	cfg             zap.Config
	zaplogger       *zap.Logger
	currentLevel    = DefaultLevel
	isLogToTerminal bool
	cbStdout        StdoutCallback
	lock            sync.Mutex
	zapLevels       = []zapcore.Level{zapcore.FatalLevel + 1, zapcore.FatalLevel, zapcore.PanicLevel,
		zapcore.ErrorLevel, zapcore.WarnLevel, zapcore.InfoLevel, zapcore.InfoLevel, zapcore.DebugLevel,
		zapcore.DebugLevel}
)

func init() {
	if o, err := os.Stdout.Stat(); err == nil && (o.Mode()&os.ModeCharDevice) == os.ModeCharDevice {
		isLogToTerminal = true
	}

	cfgJson := []byte(`{
	"level": "debug",
	"outputPaths": ["stderr"],
	"errorOutputPaths": ["stderr"],
	"encoding": "console",
	"encoderConfig": {
		"messageKey": "message",
		"levelKey": "level",
		"levelEncoder": "lowercase"
	}
}`)
	if err := json.Unmarshal(cfgJson, &cfg); err != nil {
		panic(err)
	}
	rebuildLoggerFromCfg()
}

// SetLevel sets the log level
func SetLevel(lv Level) {
	lock.Lock()
	defer lock.Unlock()
	currentLevel = lv
}

// GetLevel gets the current log level
func GetLevel() Level {
	lock.Lock()
	defer lock.Unlock()
	return currentLevel
}

func SetStdoutCallback(cb StdoutCallback) {
	lock.Lock()
	defer lock.Unlock()
	cbStdout = cb
}

// SetOutput sets the output paths, e.g. logger.SetOutput([]string{"stderr", "linksim.log"})
func SetOutput(outputs []string) {
	lock.Lock()
	defer lock.Unlock()
	cfg.OutputPaths = outputs
	rebuildLoggerFromCfg()
}

// Sync flushes buffered log entries.
func Sync() {
	lock.Lock()
	defer lock.Unlock()
	_ = zaplogger.Sync()
}

func rebuildLoggerFromCfg() {
	newLogger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	if zaplogger != nil {
		_ = zaplogger.Sync()
	}
	zaplogger = newLogger
}

func getMessage(template string, fmtArgs []interface{}) string {
	if len(fmtArgs) == 0 {
		return template
	}
	if template != "" {
		return fmt.Sprintf(template, fmtArgs...)
	}
	if len(fmtArgs) == 1 {
		if str, ok := fmtArgs[0].(string); ok {
			return str
		}
	}
	return fmt.Sprint(fmtArgs...)
}

// Logf outputs a formatted log message at the given level.
func Logf(level Level, format string, args []interface{}) {
	lock.Lock()
	// panic and fatal entries are never filtered, as they end the flow of control.
	if (level > currentLevel && level > PanicLevel) || level <= OffLevel {
		lock.Unlock()
		return
	}
	if isLogToTerminal {
		_, _ = fmt.Fprint(os.Stdout, "\033[2K\r") // clear the CLI prompt line
	}
	timeStr := time.Now().Format("2006-01-02 15:04:05.000") + " - "
	zl, cb := zaplogger, cbStdout
	lock.Unlock()

	// zap may panic or exit here for the panic and fatal levels.
	zl.Log(zapLevels[level-MinLevel], timeStr+getMessage(format, args))
	if isLogToTerminal && cb != nil {
		cb.OnStdout()
	}
}

// Println prints a message for the user at the console, to stdout.
func Println(msg string) {
	lock.Lock()
	cb := cbStdout
	lock.Unlock()

	if isLogToTerminal {
		_, _ = fmt.Fprint(os.Stdout, "\033[2K\r")
	}
	_, _ = fmt.Fprint(os.Stdout, msg+"\n")
	if isLogToTerminal && cb != nil {
		cb.OnStdout()
	}
}

func Tracef(format string, args ...interface{}) {
	Logf(TraceLevel, format, args)
}

func Debugf(format string, args ...interface{}) {
	Logf(DebugLevel, format, args)
}

func Infof(format string, args ...interface{}) {
	Logf(InfoLevel, format, args)
}

func Notef(format string, args ...interface{}) {
	Logf(NoteLevel, format, args)
}

func Warnf(format string, args ...interface{}) {
	Logf(WarnLevel, format, args)
}

func Errorf(format string, args ...interface{}) {
	Logf(ErrorLevel, format, args)
}

func Panicf(format string, args ...interface{}) {
	Logf(PanicLevel, format, args)
}

func Fatalf(format string, args ...interface{}) {
	Logf(FatalLevel, format, args)
}

// TraceError logs the stack and the error
func TraceError(format string, args ...interface{}) {
	Logf(ErrorLevel, "", []interface{}{string(debug.Stack())})
	Errorf(format, args...)
}

func PanicIfError(err error, args ...interface{}) {
	if err == nil {
		return
	}
	if len(args) == 0 {
		args = []interface{}{err}
	}
	Logf(PanicLevel, "", args)
}

func FatalIfError(err error, args ...interface{}) {
	if err == nil {
		return
	}
	if len(args) == 0 {
		args = []interface{}{err}
	}
	Logf(FatalLevel, "", args)
}

type assertLogger struct{}

func (t assertLogger) Errorf(format string, args ...interface{}) {
	Panicf(format, args...)
}

func AssertTrue(value bool, msgAndArgs ...interface{}) bool {
	return assert.True(assertLogger{}, value, msgAndArgs...)
}

func AssertNotNil(object interface{}, msgAndArgs ...interface{}) bool {
	return assert.NotNil(assertLogger{}, object, msgAndArgs...)
}
