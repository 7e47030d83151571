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

// Package simulation holds a link simulation session: the configured link model, the
// analysis ranges and the most recently computed analysis.
package simulation

import (
	"github.com/pkg/errors"

	"github.com/openthread/ot-linksim/analysis"
	"github.com/openthread/ot-linksim/linkmodel"
	"github.com/openthread/ot-linksim/logger"
	"github.com/openthread/ot-linksim/report"
	. "github.com/openthread/ot-linksim/types"
)

// Simulation is not safe for concurrent use; it is driven from a single CLI goroutine.
type Simulation struct {
	cfg      *Config
	model    *linkmodel.Model
	analysis *analysis.Analysis
}

// NewSimulation creates a simulation from a copy of cfg, or from DefaultConfig if cfg is nil.
// Later changes through the setters do not affect cfg.
func NewSimulation(cfg *Config) (*Simulation, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg = cfg.Copy()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid simulation config")
	}
	model, err := linkmodel.NewModel(cfg.Title, cfg.Params)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:   cfg,
		model: model,
	}, nil
}

func (s *Simulation) Model() *linkmodel.Model {
	return s.model
}

// Config returns a copy of the current configuration.
func (s *Simulation) Config() Config {
	return *s.cfg.Copy()
}

// Analysis returns the last computed analysis, or nil if none is current.
func (s *Simulation) Analysis() *analysis.Analysis {
	return s.analysis
}

// Run computes the analysis for the current model and ranges.
func (s *Simulation) Run() (*analysis.Analysis, error) {
	a, err := analysis.Compute(s.model, s.cfg.Ranges)
	if err != nil {
		return nil, err
	}
	s.analysis = a
	logger.Infof("simulation '%s' complete", s.cfg.Title)
	return a, nil
}

// SetParams replaces the model parameters. The current analysis becomes outdated.
func (s *Simulation) SetParams(params linkmodel.ModelParams) error {
	model, err := linkmodel.NewModel(s.cfg.Title, params)
	if err != nil {
		return err
	}
	s.model = model
	s.cfg.Params = params
	s.analysis = nil
	logger.Debugf("model params set: steepness=%v amplification=%v", params.Steepness, params.AmplificationFactor)
	return nil
}

// SetSinrRange sets the SINR sweep. The current analysis becomes outdated.
func (s *Simulation) SetSinrRange(minDb DbValue, maxDb DbValue, points int) error {
	r := s.cfg.Ranges
	r.SinrMinDb = minDb
	r.SinrMaxDb = maxDb
	r.SinrPoints = points
	return s.setRanges(r)
}

// SetTargetBler sets the BLER operating point. The current analysis becomes outdated.
func (s *Simulation) SetTargetBler(target float64) error {
	r := s.cfg.Ranges
	r.TargetBler = target
	return s.setRanges(r)
}

func (s *Simulation) setRanges(r analysis.Ranges) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.cfg.Ranges = r
	s.analysis = nil
	return nil
}

// Export writes the analysis to file fn, computing it first if not current.
func (s *Simulation) Export(fn string) error {
	if s.analysis == nil {
		if _, err := s.Run(); err != nil {
			return err
		}
	}
	return report.WriteFile(fn, s.analysis)
}

// ExportAll writes the analysis to all configured export files.
func (s *Simulation) ExportAll() error {
	for _, fn := range s.cfg.ExportFiles {
		if err := s.Export(fn); err != nil {
			return err
		}
	}
	return nil
}
