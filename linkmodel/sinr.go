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

	. "github.com/openthread/ot-linksim/types"
)

// addPowersDbm returns the power in dBm of two added, uncorrelated, signals with powers p1 and p2 (dBm).
func addPowersDbm(p1 DbValue, p2 DbValue) DbValue {
	if p1 > p2+15.0 { // the weaker signal adds less than 0.14 dB
		return p1
	}
	if p2 > p1+15.0 {
		return p2
	}
	return 10.0 * math.Log10(math.Pow(10, p1/10.0)+math.Pow(10, p2/10.0))
}

// SinrFromPowers computes the SINR in dB of a received signal, given the noise floor and the
// powers of any interfering signals, all in dBm.
func SinrFromPowers(signalDbm DbValue, noiseDbm DbValue, interferenceDbm ...DbValue) (DbValue, error) {
	if !isFinite(signalDbm) || !isFinite(noiseDbm) {
		return 0, errors.Wrapf(ErrInvalidInput, "signal %v dBm, noise %v dBm", signalDbm, noiseDbm)
	}
	total := noiseDbm
	for _, p := range interferenceDbm {
		if !isFinite(p) {
			return 0, errors.Wrapf(ErrInvalidInput, "interference %v dBm", p)
		}
		total = addPowersDbm(total, p)
	}
	return signalDbm - total, nil
}
