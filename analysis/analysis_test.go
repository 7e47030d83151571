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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openthread/ot-linksim/linkmodel"
	. "github.com/openthread/ot-linksim/types"
)

func TestLinspace(t *testing.T) {
	v := linspace(-10, 35, 200)
	assert.Equal(t, 200, len(v))
	assert.Equal(t, -10.0, v[0])
	assert.InDelta(t, 35.0, v[199], 1e-12)
	assert.InDelta(t, 45.0/199.0, v[1]-v[0], 1e-12)

	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, linspace(0, 1, 3), 1e-15)
}

func TestRangesValidate(t *testing.T) {
	r := DefaultRanges()
	assert.Nil(t, r.Validate())
	assert.Equal(t, 30, len(r.McsIndices()))

	bad := []func(r *Ranges){
		func(r *Ranges) { r.SinrMinDb = r.SinrMaxDb },
		func(r *Ranges) { r.SinrPoints = 1 },
		func(r *Ranges) { r.McsMin = -1 },
		func(r *Ranges) { r.McsMax = 30 },
		func(r *Ranges) { r.McsMin, r.McsMax = 10, 5 },
		func(r *Ranges) { r.SampleMcs = []McsIndex{2, 31} },
		func(r *Ranges) { r.TargetBler = 0 },
		func(r *Ranges) { r.TargetBler = 1 },
		func(r *Ranges) { r.TargetBler = 1e-25 },
	}
	for i, mod := range bad {
		r := DefaultRanges()
		mod(&r)
		assert.NotNil(t, r.Validate(), "case %d", i)
	}

	// a target below the clipped BLER curve would fail every summary
	r = DefaultRanges()
	r.TargetBler = 1e-25
	assert.True(t, errors.Is(r.Validate(), linkmodel.ErrInvalidTarget))

	r.TargetBler = 1e-21
	require.Nil(t, r.Validate())
	a, err := Compute(linkmodel.NewDefaultModel("test"), r)
	require.Nil(t, err)
	_, err = a.Summary()
	assert.Nil(t, err)

	// DefaultRanges returns independent slices
	r1 := DefaultRanges()
	r1.SampleMcs[0] = 7
	assert.Equal(t, DefaultSampleMcs[0], DefaultRanges().SampleMcs[0])
}

func TestCompute(t *testing.T) {
	model := linkmodel.NewDefaultModel("LTE_PHY_Sim_Day1")
	a, err := Compute(model, DefaultRanges())
	require.Nil(t, err)

	assert.Equal(t, "LTE_PHY_Sim_Day1", a.Title)
	assert.Equal(t, 200, len(a.SinrDb))
	assert.Equal(t, 30, len(a.Mcs))
	rows, cols := a.Bler.Dims()
	assert.Equal(t, 30, rows)
	assert.Equal(t, 200, cols)

	for i, mcs := range a.Mcs {
		for j, sinr := range a.SinrDb {
			assert.Equal(t, linkmodel.ErrorProbability(sinr, float64(mcs), linkmodel.DefaultSteepness), a.BlerAt(i, j))
		}
	}

	require.Equal(t, 4, len(a.BlerVsSinr))
	require.Equal(t, 4, len(a.ThroughputVsSinr))
	require.Equal(t, 4, len(a.BlerVsMcs))
	assert.Equal(t, "MCS 10", a.BlerVsSinr[1].Label)
	assert.Equal(t, "SINR -2 dB", a.BlerVsMcs[0].Label)

	// BLER curve of MCS 10 is row 10 of the heatmap
	for j := range a.SinrDb {
		assert.Equal(t, a.BlerAt(10, j), a.BlerVsSinr[1].Y[j])
		assert.LessOrEqual(t, a.ThroughputVsSinr[1].Y[j], 25.0)
	}
	for i, mcs := range a.Mcs {
		assert.Equal(t, float64(mcs), a.BlerVsMcs[2].X[i])
		assert.Equal(t, linkmodel.ErrorProbability(15, float64(mcs), linkmodel.DefaultSteepness), a.BlerVsMcs[2].Y[i])
	}
}

func TestComputeInvalidRanges(t *testing.T) {
	r := DefaultRanges()
	r.SinrPoints = 0
	_, err := Compute(linkmodel.NewDefaultModel("x"), r)
	assert.NotNil(t, err)
}

func TestSummary(t *testing.T) {
	a, err := Compute(linkmodel.NewDefaultModel("summary"), DefaultRanges())
	require.Nil(t, err)

	s, err := a.Summary()
	require.Nil(t, err)
	assert.Equal(t, "summary", s.Title)
	assert.Equal(t, DefaultTargetBler, s.TargetBler)

	require.Equal(t, 4, len(s.Mcs))
	assert.Equal(t, 10, s.Mcs[1].Mcs)
	assert.Equal(t, 25.0, s.Mcs[1].PeakRateMbps)
	assert.InDelta(t, 12.9296, s.Mcs[1].RequiredSinrDb, 1e-4)
	assert.InDelta(t, 25.0, s.Mcs[1].MaxThroughputMbps, 1e-4)

	require.Equal(t, 4, len(s.Sinr))
	expectBest := []int{1, 4, 12, 21}
	expectTarget := []int{-1, 2, 12, 22}
	for i, ss := range s.Sinr {
		assert.Equal(t, DefaultSampleSinr[i], ss.SinrDb)
		assert.Equal(t, expectBest[i], ss.BestMcs, "sinr %v", ss.SinrDb)
		assert.Equal(t, expectTarget[i], ss.TargetMcs, "sinr %v", ss.SinrDb)
	}
	assert.InDelta(t, 27.1395, s.Sinr[2].BestMcsTputMbps, 1e-4)
}
