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
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	. "github.com/openthread/ot-linksim/types"
)

// YamlModelConfig is the 'model' section of a config file. Omitted entries keep their default.
type YamlModelConfig struct {
	Steepness     *float64 `yaml:"steepness"`
	Amplification *float64 `yaml:"amplification"`
}

// YamlSweepConfig is the 'sweep' section of a config file.
type YamlSweepConfig struct {
	SinrMin    *DbValue   `yaml:"sinr-min"`
	SinrMax    *DbValue   `yaml:"sinr-max"`
	SinrPoints *int       `yaml:"sinr-points"`
	McsMin     *McsIndex  `yaml:"mcs-min"`
	McsMax     *McsIndex  `yaml:"mcs-max"`
	SampleMcs  []McsIndex `yaml:"sample-mcs,flow"`
	SampleSinr []DbValue  `yaml:"sample-sinr,flow"`
	TargetBler *float64   `yaml:"target-bler"`
}

type YamlConfigFile struct {
	Title  *string         `yaml:"title"`
	Model  YamlModelConfig `yaml:"model"`
	Sweep  YamlSweepConfig `yaml:"sweep"`
	Export []string        `yaml:"export,flow"`
}

// ParseYamlConfig parses config file contents. Unknown keys are an error.
func ParseYamlConfig(data []byte) (*YamlConfigFile, error) {
	cfgFile := &YamlConfigFile{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfgFile); err != nil {
		return nil, err
	}
	return cfgFile, nil
}

// ReadYamlConfig reads and parses a config file.
func ReadYamlConfig(fn string) (*YamlConfigFile, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file %s", fn)
	}
	cfgFile, err := ParseYamlConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse config file %s", fn)
	}
	return cfgFile, nil
}

// Apply overrides the entries of cfg that are present in the config file.
func (y *YamlConfigFile) Apply(cfg *Config) {
	if y.Title != nil {
		cfg.Title = *y.Title
	}
	if y.Model.Steepness != nil {
		cfg.Params.Steepness = *y.Model.Steepness
	}
	if y.Model.Amplification != nil {
		cfg.Params.AmplificationFactor = *y.Model.Amplification
	}

	sw := y.Sweep
	r := &cfg.Ranges
	if sw.SinrMin != nil {
		r.SinrMinDb = *sw.SinrMin
	}
	if sw.SinrMax != nil {
		r.SinrMaxDb = *sw.SinrMax
	}
	if sw.SinrPoints != nil {
		r.SinrPoints = *sw.SinrPoints
	}
	if sw.McsMin != nil {
		r.McsMin = *sw.McsMin
	}
	if sw.McsMax != nil {
		r.McsMax = *sw.McsMax
	}
	if sw.SampleMcs != nil {
		r.SampleMcs = append([]McsIndex(nil), sw.SampleMcs...)
	}
	if sw.SampleSinr != nil {
		r.SampleSinr = append([]DbValue(nil), sw.SampleSinr...)
	}
	if sw.TargetBler != nil {
		r.TargetBler = *sw.TargetBler
	}

	if y.Export != nil {
		cfg.ExportFiles = append([]string(nil), y.Export...)
	}
}
