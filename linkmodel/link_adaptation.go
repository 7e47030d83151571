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
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	. "github.com/openthread/ot-linksim/types"
)

func checkTargetBler(targetBler float64) error {
	if !isFinite(targetBler) || targetBler <= 0 || targetBler >= 1 {
		return errors.Wrapf(ErrInvalidTarget, "target BLER must be in (0,1), got %v", targetBler)
	}
	return nil
}

// CheckTargetBler returns an ErrInvalidTarget error unless targetBler is in (0,1) and can
// be reached on the clipped BLER curve, so that RequiredSinr accepts it for every MCS.
func CheckTargetBler(targetBler float64) error {
	if err := checkTargetBler(targetBler); err != nil {
		return err
	}
	if _, ok := blerExponent(targetBler); !ok {
		return errors.Wrapf(ErrInvalidTarget, "target BLER %g is outside the range of the model", targetBler)
	}
	return nil
}

// RequiredSinr returns the SINR (dB) at which the MCS reaches the target BLER.
func (m *Model) RequiredSinr(mcs float64, targetBler float64) (DbValue, error) {
	if err := CheckTargetBler(targetBler); err != nil {
		return 0, err
	}
	if !isFinite(mcs) {
		return 0, errors.Wrapf(ErrInvalidInput, "mcs must be finite, got %v", mcs)
	}
	sinr, _ := sinrForBler(targetBler, mcs, m.params.Steepness)
	return sinr, nil
}

// BestMcs selects the MCS from the MCS table with the highest expected throughput at the
// given SINR. On equal throughput the lowest MCS is selected.
func (m *Model) BestMcs(sinrDb DbValue) (LinkQuality, error) {
	if !isFinite(sinrDb) {
		return LinkQuality{}, errors.Wrapf(ErrInvalidInput, "sinr must be finite, got %v", sinrDb)
	}
	tput := make([]float64, NumMcsIndex)
	for i := range tput {
		tput[i] = m.Throughput(float64(MinMcsIndex+i), sinrDb)
	}
	best := floats.MaxIdx(tput)
	return m.evaluate(sinrDb, float64(MinMcsIndex+best)), nil
}

// HighestMcsForTarget selects the highest MCS whose BLER at the given SINR does not exceed
// the target BLER. It returns false if even the lowest MCS exceeds the target.
func (m *Model) HighestMcsForTarget(sinrDb DbValue, targetBler float64) (LinkQuality, bool, error) {
	if err := checkTargetBler(targetBler); err != nil {
		return LinkQuality{}, false, err
	}
	if !isFinite(sinrDb) {
		return LinkQuality{}, false, errors.Wrapf(ErrInvalidInput, "sinr must be finite, got %v", sinrDb)
	}
	for mcs := MaxMcsIndex; mcs >= MinMcsIndex; mcs-- {
		lq := m.evaluate(sinrDb, float64(mcs))
		if lq.Bler <= targetBler {
			return lq, true, nil
		}
	}
	return LinkQuality{}, false, nil
}
