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
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openthread/ot-linksim/logger"
	"github.com/openthread/ot-linksim/simulation"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("linksim", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs(newFlagSet(), nil)
	require.Nil(t, err)
	assert.Equal(t, "warn", args.LogLevel)
	assert.False(t, args.Batch)
	assert.Equal(t, "", args.ConfigFile)

	args, err = parseArgs(newFlagSet(), []string{"-batch", "-log", "debug", "-title", "t1", "-export", "a.yaml,b.csv"})
	require.Nil(t, err)
	assert.True(t, args.Batch)
	assert.Equal(t, "debug", args.LogLevel)
	assert.Equal(t, "t1", args.Title)
	assert.Equal(t, "a.yaml,b.csv", args.ExportFiles)

	_, err = parseArgs(newFlagSet(), []string{"extra"})
	assert.NotNil(t, err)
}

func TestSimpleLevelString(t *testing.T) {
	assert.Equal(t, "debug", simpleLevelString(logger.TraceLevel))
	assert.Equal(t, "debug", simpleLevelString(logger.DebugLevel))
	assert.Equal(t, "info", simpleLevelString(logger.NoteLevel))
	assert.Equal(t, "warn", simpleLevelString(logger.WarnLevel))
	assert.Equal(t, "error", simpleLevelString(logger.OffLevel))
}

func TestBuildConfig(t *testing.T) {
	cfg, err := buildConfig(&MainArgs{})
	require.Nil(t, err)
	assert.Equal(t, simulation.DefaultConfig(), cfg)

	cfg, err = buildConfig(&MainArgs{Title: "x", ExportFiles: " a.yaml, ,b.csv"})
	require.Nil(t, err)
	assert.Equal(t, "x", cfg.Title)
	assert.Equal(t, []string{"a.yaml", "b.csv"}, cfg.ExportFiles)

	_, err = buildConfig(&MainArgs{ExportFiles: "a.txt"})
	assert.NotNil(t, err)

	dir := t.TempDir()
	fn := filepath.Join(dir, "linksim.yaml")
	require.Nil(t, os.WriteFile(fn, []byte("title: from-file\nmodel:\n  steepness: 1.5\nsweep:\n  sinr-points: 50\n"), 0o644))
	cfg, err = buildConfig(&MainArgs{ConfigFile: fn, Title: "from-flag"})
	require.Nil(t, err)
	assert.Equal(t, "from-flag", cfg.Title)
	assert.Equal(t, 1.5, cfg.Params.Steepness)
	assert.Equal(t, 50, cfg.Ranges.SinrPoints)

	_, err = buildConfig(&MainArgs{ConfigFile: filepath.Join(dir, "missing.yaml")})
	assert.NotNil(t, err)
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	cfg := simulation.DefaultConfig()
	cfg.ExportFiles = []string{filepath.Join(dir, "out.json")}
	sim, err := simulation.NewSimulation(cfg)
	require.Nil(t, err)

	require.Nil(t, runBatch(sim))
	assert.NotNil(t, sim.Analysis())
	_, err = os.Stat(cfg.ExportFiles[0])
	assert.Nil(t, err)
}
