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

package linkmodel

import (
	"math"

	"github.com/pkg/errors"
)

// default model parameters. These are not calibrated against measured BLER curves.
const (
	DefaultSteepness           float64 = 0.75 // slope of the BLER waterfall, per dB
	DefaultAmplificationFactor float64 = 2.5  // Mbps of peak rate per MCS index step
)

// ModelParams stores the parameters of the link quality model.
type ModelParams struct {
	Steepness           float64 `yaml:"steepness"`     // sharpness of the BLER transition around SINR == MCS
	AmplificationFactor float64 `yaml:"amplification"` // linear scale from MCS index to peak rate (Mbps)
}

// DefaultModelParams gets a new set of parameters with default values, as a basis to configure further.
func DefaultModelParams() ModelParams {
	return ModelParams{
		Steepness:           DefaultSteepness,
		AmplificationFactor: DefaultAmplificationFactor,
	}
}

// Validate checks that the parameters give a bounded, monotone model.
func (p ModelParams) Validate() error {
	if !isFinite(p.Steepness) || p.Steepness <= 0 {
		return errors.Wrapf(ErrInvalidParams, "steepness must be a positive number, got %v", p.Steepness)
	}
	if !isFinite(p.AmplificationFactor) || p.AmplificationFactor < 0 {
		return errors.Wrapf(ErrInvalidParams, "amplification factor must be non-negative, got %v", p.AmplificationFactor)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
