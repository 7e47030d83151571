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
	"github.com/openthread/ot-linksim/analysis"
	"github.com/openthread/ot-linksim/linkmodel"
	"github.com/openthread/ot-linksim/report"
	. "github.com/openthread/ot-linksim/types"
)

const (
	DefaultTitle = "LTE_PHY_Sim"
)

type Config struct {
	Title       string                // name of the model, used as title of exported charts
	Params      linkmodel.ModelParams // link model parameters
	Ranges      analysis.Ranges       // sample points of the analysis
	ExportFiles []string              // files written by ExportAll
}

func DefaultConfig() *Config {
	return &Config{
		Title:       DefaultTitle,
		Params:      linkmodel.DefaultModelParams(),
		Ranges:      analysis.DefaultRanges(),
		ExportFiles: []string{},
	}
}

// Copy returns a deep copy of the configuration.
func (cfg *Config) Copy() *Config {
	c := *cfg
	c.Ranges.SampleMcs = append([]McsIndex(nil), cfg.Ranges.SampleMcs...)
	c.Ranges.SampleSinr = append([]DbValue(nil), cfg.Ranges.SampleSinr...)
	c.ExportFiles = append([]string(nil), cfg.ExportFiles...)
	return &c
}

// Validate checks the model parameters, the analysis ranges and the export file formats.
func (cfg *Config) Validate() error {
	if err := cfg.Params.Validate(); err != nil {
		return err
	}
	if err := cfg.Ranges.Validate(); err != nil {
		return err
	}
	for _, fn := range cfg.ExportFiles {
		if _, err := report.FormatFromFilename(fn); err != nil {
			return err
		}
	}
	return nil
}
