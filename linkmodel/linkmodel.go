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

// Package linkmodel maps signal quality (SINR) and MCS index to a block error rate and a
// throughput estimate, and provides simple link adaptation on top of that mapping.
package linkmodel

import (
	"fmt"

	"github.com/pkg/errors"

	. "github.com/openthread/ot-linksim/types"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidParams = errors.New("invalid model parameters")
	ErrInvalidTarget = errors.New("invalid target BLER")
)

// LinkQuality is the evaluated state of a link at one (SINR, MCS) point.
type LinkQuality struct {
	SinrDb         DbValue `yaml:"sinr"`
	Mcs            float64 `yaml:"mcs"`
	Bler           float64 `yaml:"bler"`
	PeakRateMbps   Mbps    `yaml:"peak-rate"`
	ThroughputMbps Mbps    `yaml:"throughput"`
}

func (lq LinkQuality) String() string {
	return fmt.Sprintf("sinr=%.2fdB mcs=%g bler=%.6f peak=%.2fMbps tput=%.2fMbps",
		lq.SinrDb, lq.Mcs, lq.Bler, lq.PeakRateMbps, lq.ThroughputMbps)
}

// Model is a link quality model with explicit parameters. It holds no other state and
// is safe for concurrent use.
type Model struct {
	name   string
	params ModelParams
}

// NewModel creates a model with the given name and parameters.
func NewModel(name string, params ModelParams) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Model{
		name:   name,
		params: params,
	}, nil
}

// NewDefaultModel creates a model with DefaultModelParams.
func NewDefaultModel(name string) *Model {
	return &Model{
		name:   name,
		params: DefaultModelParams(),
	}
}

func (m *Model) Name() string {
	return m.name
}

func (m *Model) Params() ModelParams {
	return m.params
}

// ErrorProbability returns the BLER at the given SINR and MCS, using the model steepness.
func (m *Model) ErrorProbability(sinrDb DbValue, mcs float64) float64 {
	return ErrorProbability(sinrDb, mcs, m.params.Steepness)
}

// PeakRate returns the error-free rate of the MCS, using the model amplification factor.
func (m *Model) PeakRate(mcs float64) Mbps {
	return PeakRate(mcs, m.params.AmplificationFactor)
}

// Throughput returns the expected delivered rate of the MCS at the given SINR.
func (m *Model) Throughput(mcs float64, sinrDb DbValue) Mbps {
	return throughput(mcs, sinrDb, m.params)
}

// Evaluate computes all link quality figures for one point. Non-finite inputs are
// rejected with ErrInvalidInput instead of being propagated as NaN.
func (m *Model) Evaluate(sinrDb DbValue, mcs float64) (LinkQuality, error) {
	if !isFinite(sinrDb) {
		return LinkQuality{}, errors.Wrapf(ErrInvalidInput, "sinr must be finite, got %v", sinrDb)
	}
	if !isFinite(mcs) {
		return LinkQuality{}, errors.Wrapf(ErrInvalidInput, "mcs must be finite, got %v", mcs)
	}
	return m.evaluate(sinrDb, mcs), nil
}

func (m *Model) evaluate(sinrDb DbValue, mcs float64) LinkQuality {
	bler := m.ErrorProbability(sinrDb, mcs)
	peak := m.PeakRate(mcs)
	return LinkQuality{
		SinrDb:         sinrDb,
		Mcs:            mcs,
		Bler:           bler,
		PeakRateMbps:   peak,
		ThroughputMbps: peak * (1.0 - bler),
	}
}
