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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAddPowersDbm(t *testing.T) {
	assert.InDelta(t, -90+10*math.Log10(2), addPowersDbm(-90, -90), 1e-9)
	assert.Equal(t, -50.0, addPowersDbm(-50, -90))
	assert.Equal(t, -50.0, addPowersDbm(-90, -50))
	assert.InDelta(t, -79.586, addPowersDbm(-80, -90), 1e-3)
}

func TestSinrFromPowers(t *testing.T) {
	sinr, err := SinrFromPowers(-70, -100)
	assert.Nil(t, err)
	assert.Equal(t, 30.0, sinr)

	// equal noise and interference raise the floor by 3 dB
	sinr, err = SinrFromPowers(-70, -100, -100)
	assert.Nil(t, err)
	assert.InDelta(t, 30-10*math.Log10(2), sinr, 1e-9)

	// a dominant interferer determines the SINR
	sinr, err = SinrFromPowers(-70, -110, -75)
	assert.Nil(t, err)
	assert.Equal(t, 5.0, sinr)

	_, err = SinrFromPowers(math.NaN(), -100)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = SinrFromPowers(-70, -100, math.Inf(1))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
