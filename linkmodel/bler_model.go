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

	. "github.com/openthread/ot-linksim/types"
)

// the logistic exponent is clipped to this range, so that math.Exp never overflows.
const (
	minExponent = -50.0
	maxExponent = 50.0
)

// ErrorProbability computes the block error rate (BLER) for a given SINR and MCS index.
// The BLER follows a logistic waterfall curve centered at sinrDb == mcs:
//
//	bler = 1 / (1 + e^(steepness * (sinrDb - mcs)))
//
// The result is in [0, 1], non-increasing in sinrDb and non-decreasing in mcs. No input
// validation is done; see Model.Evaluate for the checked variant.
func ErrorProbability(sinrDb DbValue, mcs float64, steepness float64) float64 {
	exponent := clipExponent(steepness * (sinrDb - mcs))
	return 1.0 / (1.0 + math.Exp(exponent))
}

// clipExponent clips the logistic exponent to [minExponent, maxExponent].
func clipExponent(x float64) float64 {
	if x > maxExponent {
		return maxExponent
	} else if x < minExponent {
		return minExponent
	}
	return x
}

// blerExponent returns the logistic exponent at which the curve equals targetBler. It
// returns false when that exponent lies beyond the clipped part of the curve, i.e. the
// target BLER can never be reached.
func blerExponent(targetBler float64) (float64, bool) {
	exponent := math.Log((1.0 - targetBler) / targetBler)
	if exponent > maxExponent || exponent < minExponent {
		return 0, false
	}
	return exponent, true
}

// sinrForBler is the inverse of ErrorProbability in sinrDb.
func sinrForBler(targetBler float64, mcs float64, steepness float64) (DbValue, bool) {
	exponent, ok := blerExponent(targetBler)
	if !ok {
		return 0, false
	}
	return mcs + exponent/steepness, true
}
