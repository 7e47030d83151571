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

package analysis

import (
	"github.com/pkg/errors"

	"github.com/openthread/ot-linksim/linkmodel"

	. "github.com/openthread/ot-linksim/types"
)

// Ranges defines the sample points of an analysis.
type Ranges struct {
	SinrMinDb  DbValue    // lowest SINR of the sweep
	SinrMaxDb  DbValue    // highest SINR of the sweep
	SinrPoints int        // number of evenly spaced SINR samples, including both ends
	McsMin     McsIndex   // lowest MCS row of the heatmap
	McsMax     McsIndex   // highest MCS row of the heatmap
	SampleMcs  []McsIndex // MCS values that get a BLER and throughput curve over SINR
	SampleSinr []DbValue  // SINR values that get a BLER curve over MCS
	TargetBler float64    // operating point, drawn as a reference line
}

func DefaultRanges() Ranges {
	return Ranges{
		SinrMinDb:  DefaultSinrMinDb,
		SinrMaxDb:  DefaultSinrMaxDb,
		SinrPoints: DefaultSinrPoints,
		McsMin:     MinMcsIndex,
		McsMax:     MaxMcsIndex,
		SampleMcs:  append([]McsIndex(nil), DefaultSampleMcs...),
		SampleSinr: append([]DbValue(nil), DefaultSampleSinr...),
		TargetBler: DefaultTargetBler,
	}
}

// Validate checks that the ranges describe a non-empty sweep within the MCS table, and
// that RequiredSinr can reach the target BLER.
func (r *Ranges) Validate() error {
	if !isFinite(r.SinrMinDb) || !isFinite(r.SinrMaxDb) || r.SinrMinDb >= r.SinrMaxDb {
		return errors.Errorf("invalid SINR range [%v, %v]", r.SinrMinDb, r.SinrMaxDb)
	}
	if r.SinrPoints < 2 {
		return errors.Errorf("SINR sweep needs at least 2 points, got %d", r.SinrPoints)
	}
	if !IsValidMcs(r.McsMin) || !IsValidMcs(r.McsMax) || r.McsMin > r.McsMax {
		return errors.Errorf("invalid MCS range [%d, %d], must be within [%d, %d]",
			r.McsMin, r.McsMax, MinMcsIndex, MaxMcsIndex)
	}
	for _, mcs := range r.SampleMcs {
		if !IsValidMcs(mcs) {
			return errors.Errorf("sample MCS %d is outside [%d, %d]", mcs, MinMcsIndex, MaxMcsIndex)
		}
	}
	for _, sinr := range r.SampleSinr {
		if !isFinite(sinr) {
			return errors.Errorf("sample SINR %v is not finite", sinr)
		}
	}
	return linkmodel.CheckTargetBler(r.TargetBler)
}

// McsIndices returns the MCS rows of the heatmap, lowest first.
func (r *Ranges) McsIndices() []McsIndex {
	res := make([]McsIndex, 0, r.McsMax-r.McsMin+1)
	for mcs := r.McsMin; mcs <= r.McsMax; mcs++ {
		res = append(res, mcs)
	}
	return res
}
