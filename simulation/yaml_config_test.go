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

package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/openthread/ot-linksim/linkmodel"
	. "github.com/openthread/ot-linksim/types"
)

var testYamlArray = `
[2, 10, 18, 26]
`

var testYamlFile = `
title: LTE_PHY_Sim_Day1
model:
    steepness: 1.0
sweep:
    sinr-min: -5
    sinr-max: 30
    sinr-points: 71
    sample-mcs: [0, 29]
    target-bler: 0.01
export: [waterfall.yaml, waterfall.csv]
`

func TestYamlArrayUnmarshall(t *testing.T) {
	var mcs []McsIndex
	err := yaml.Unmarshal([]byte(testYamlArray), &mcs)
	assert.Nil(t, err)
	assert.Equal(t, DefaultSampleMcs, mcs)
}

func TestYamlConfigUnmarshall(t *testing.T) {
	cfgFile, err := ParseYamlConfig([]byte(testYamlFile))
	require.Nil(t, err)
	assert.Equal(t, "LTE_PHY_Sim_Day1", *cfgFile.Title)
	assert.Equal(t, 1.0, *cfgFile.Model.Steepness)
	assert.Nil(t, cfgFile.Model.Amplification)
	assert.Equal(t, 71, *cfgFile.Sweep.SinrPoints)
	assert.Nil(t, cfgFile.Sweep.McsMin)
	assert.Equal(t, 2, len(cfgFile.Export))
}

func TestYamlConfigApply(t *testing.T) {
	cfgFile, err := ParseYamlConfig([]byte(testYamlFile))
	require.Nil(t, err)

	cfg := DefaultConfig()
	cfgFile.Apply(cfg)
	assert.Nil(t, cfg.Validate())
	assert.Equal(t, "LTE_PHY_Sim_Day1", cfg.Title)
	assert.Equal(t, 1.0, cfg.Params.Steepness)
	assert.Equal(t, 2.5, cfg.Params.AmplificationFactor)
	assert.Equal(t, -5.0, cfg.Ranges.SinrMinDb)
	assert.Equal(t, 30.0, cfg.Ranges.SinrMaxDb)
	assert.Equal(t, 71, cfg.Ranges.SinrPoints)
	assert.Equal(t, MinMcsIndex, cfg.Ranges.McsMin)
	assert.Equal(t, MaxMcsIndex, cfg.Ranges.McsMax)
	assert.Equal(t, []McsIndex{0, 29}, cfg.Ranges.SampleMcs)
	assert.Equal(t, DefaultSampleSinr, cfg.Ranges.SampleSinr)
	assert.Equal(t, 0.01, cfg.Ranges.TargetBler)
	assert.Equal(t, []string{"waterfall.yaml", "waterfall.csv"}, cfg.ExportFiles)
}

func TestYamlConfigErrors(t *testing.T) {
	_, err := ParseYamlConfig([]byte("model:\n    slope: 3\n"))
	assert.NotNil(t, err)

	_, err = ParseYamlConfig([]byte("sweep: [1, 2]\n"))
	assert.NotNil(t, err)

	_, err = ReadYamlConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.NotNil(t, err)

	// parses, but the target BLER can not be reached by the model
	cfgFile, err := ParseYamlConfig([]byte("sweep:\n    target-bler: 1e-25\n"))
	require.Nil(t, err)
	cfg := DefaultConfig()
	cfgFile.Apply(cfg)
	assert.True(t, errors.Is(cfg.Validate(), linkmodel.ErrInvalidTarget))
	_, err = NewSimulation(cfg)
	assert.NotNil(t, err)
}

func TestReadYamlConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "linksim.yaml")
	require.Nil(t, os.WriteFile(fn, []byte(testYamlFile), 0644))

	cfgFile, err := ReadYamlConfig(fn)
	require.Nil(t, err)
	assert.Equal(t, "LTE_PHY_Sim_Day1", *cfgFile.Title)
}
