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

package report

import (
	"gonum.org/v1/gonum/mat"

	"github.com/openthread/ot-linksim/analysis"
	. "github.com/openthread/ot-linksim/types"
)

// YamlCurve is the exported form of analysis.Curve.
type YamlCurve struct {
	Label string    `yaml:"label"`
	X     []float64 `yaml:"x,flow"`
	Y     []float64 `yaml:"y,flow"`
}

type YamlParams struct {
	Steepness     float64 `yaml:"steepness"`
	Amplification float64 `yaml:"amplification"`
}

// Document is the exported form of an analysis. All chart data is included, so that an
// external tool can draw the charts without access to the model.
type Document struct {
	Title            string      `yaml:"title"`
	Params           YamlParams  `yaml:"params"`
	TargetBler       float64     `yaml:"target-bler"`
	SinrDb           []DbValue   `yaml:"sinr-db,flow"`
	Mcs              []McsIndex  `yaml:"mcs,flow"`
	Bler             [][]float64 `yaml:"bler"`
	BlerVsSinr       []YamlCurve `yaml:"bler-vs-sinr"`
	BlerVsMcs        []YamlCurve `yaml:"bler-vs-mcs"`
	ThroughputVsSinr []YamlCurve `yaml:"throughput-vs-sinr"`
}

// NewDocument converts an analysis to its exported form.
func NewDocument(a *analysis.Analysis) *Document {
	return &Document{
		Title: a.Title,
		Params: YamlParams{
			Steepness:     a.Params.Steepness,
			Amplification: a.Params.AmplificationFactor,
		},
		TargetBler:       a.Ranges.TargetBler,
		SinrDb:           a.SinrDb,
		Mcs:              a.Mcs,
		Bler:             denseRows(a.Bler),
		BlerVsSinr:       exportCurves(a.BlerVsSinr),
		BlerVsMcs:        exportCurves(a.BlerVsMcs),
		ThroughputVsSinr: exportCurves(a.ThroughputVsSinr),
	}
}

func denseRows(m *mat.Dense) [][]float64 {
	rows, _ := m.Dims()
	res := make([][]float64, rows)
	for i := range res {
		res[i] = mat.Row(nil, i, m)
	}
	return res
}

func exportCurves(curves []analysis.Curve) []YamlCurve {
	res := make([]YamlCurve, 0, len(curves))
	for _, c := range curves {
		res = append(res, YamlCurve{Label: c.Label, X: c.X, Y: c.Y})
	}
	return res
}

// asMap returns the document as a tree of maps and slices, the form accepted by structpb.
func (d *Document) asMap() map[string]interface{} {
	bler := make([]interface{}, len(d.Bler))
	for i, row := range d.Bler {
		bler[i] = floatList(row)
	}
	mcs := make([]interface{}, len(d.Mcs))
	for i, v := range d.Mcs {
		mcs[i] = float64(v)
	}
	return map[string]interface{}{
		"title": d.Title,
		"params": map[string]interface{}{
			"steepness":     d.Params.Steepness,
			"amplification": d.Params.Amplification,
		},
		"target-bler":        d.TargetBler,
		"sinr-db":            floatList(d.SinrDb),
		"mcs":                mcs,
		"bler":               bler,
		"bler-vs-sinr":       curveList(d.BlerVsSinr),
		"bler-vs-mcs":        curveList(d.BlerVsMcs),
		"throughput-vs-sinr": curveList(d.ThroughputVsSinr),
	}
}

func floatList(v []float64) []interface{} {
	res := make([]interface{}, len(v))
	for i, f := range v {
		res[i] = f
	}
	return res
}

func curveList(curves []YamlCurve) []interface{} {
	res := make([]interface{}, len(curves))
	for i, c := range curves {
		res[i] = map[string]interface{}{
			"label": c.Label,
			"x":     floatList(c.X),
			"y":     floatList(c.Y),
		}
	}
	return res
}
