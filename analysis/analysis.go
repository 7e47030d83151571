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

// Package analysis computes the data sets behind the link quality charts: the BLER
// waterfall heatmap, BLER curves over SINR and over MCS, and throughput curves over SINR.
// Rendering of the charts is left to an external consumer of the exported data.
package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/openthread/ot-linksim/linkmodel"
	"github.com/openthread/ot-linksim/logger"
	. "github.com/openthread/ot-linksim/types"
)

// Curve is a single named line of a chart.
type Curve struct {
	Label string
	X     []float64
	Y     []float64
}

// Analysis holds the computed chart data. It is not modified after Compute returns.
type Analysis struct {
	Title  string
	Params linkmodel.ModelParams
	Ranges Ranges

	SinrDb []DbValue  // heatmap columns
	Mcs    []McsIndex // heatmap rows
	Bler   *mat.Dense // BLER heatmap, rows = Mcs, columns = SinrDb

	BlerVsSinr       []Curve // one per Ranges.SampleMcs
	BlerVsMcs        []Curve // one per Ranges.SampleSinr
	ThroughputVsSinr []Curve // one per Ranges.SampleMcs
}

// Compute evaluates the model over the given ranges.
func Compute(model *linkmodel.Model, r Ranges) (*Analysis, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	a := &Analysis{
		Title:  model.Name(),
		Params: model.Params(),
		Ranges: r,
		SinrDb: linspace(r.SinrMinDb, r.SinrMaxDb, r.SinrPoints),
		Mcs:    r.McsIndices(),
	}

	a.Bler = mat.NewDense(len(a.Mcs), len(a.SinrDb), nil)
	for i, mcs := range a.Mcs {
		for j, sinr := range a.SinrDb {
			a.Bler.Set(i, j, model.ErrorProbability(sinr, float64(mcs)))
		}
	}

	for _, mcs := range r.SampleMcs {
		bler := make([]float64, len(a.SinrDb))
		tput := make([]float64, len(a.SinrDb))
		for j, sinr := range a.SinrDb {
			lq, err := model.Evaluate(sinr, float64(mcs))
			if err != nil {
				return nil, err
			}
			bler[j] = lq.Bler
			tput[j] = lq.ThroughputMbps
		}
		label := fmt.Sprintf("MCS %d", mcs)
		a.BlerVsSinr = append(a.BlerVsSinr, Curve{Label: label, X: a.SinrDb, Y: bler})
		a.ThroughputVsSinr = append(a.ThroughputVsSinr, Curve{Label: label, X: a.SinrDb, Y: tput})
	}

	mcsAxis := make([]float64, len(a.Mcs))
	for i, mcs := range a.Mcs {
		mcsAxis[i] = float64(mcs)
	}
	for _, sinr := range r.SampleSinr {
		bler := make([]float64, len(a.Mcs))
		for i, mcs := range a.Mcs {
			bler[i] = model.ErrorProbability(sinr, float64(mcs))
		}
		a.BlerVsMcs = append(a.BlerVsMcs, Curve{Label: fmt.Sprintf("SINR %g dB", sinr), X: mcsAxis, Y: bler})
	}

	logger.Debugf("analysis '%s' computed: %d MCS x %d SINR points", a.Title, len(a.Mcs), len(a.SinrDb))
	return a, nil
}

// BlerAt returns the heatmap BLER for MCS row i and SINR column j.
func (a *Analysis) BlerAt(i, j int) float64 {
	return a.Bler.At(i, j)
}

// linspace returns n evenly spaced values over [lo, hi], both ends included.
func linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
