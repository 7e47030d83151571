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
	"gonum.org/v1/gonum/floats"

	"github.com/openthread/ot-linksim/linkmodel"
	. "github.com/openthread/ot-linksim/types"
)

// McsSummary summarizes the curves of one sample MCS.
type McsSummary struct {
	Mcs               McsIndex `yaml:"mcs"`
	PeakRateMbps      Mbps     `yaml:"peak-rate"`
	RequiredSinrDb    DbValue  `yaml:"required-sinr"` // SINR where BLER equals the target BLER
	MaxThroughputMbps Mbps     `yaml:"max-throughput"`
}

// SinrSummary holds the link adaptation choices at one sample SINR.
type SinrSummary struct {
	SinrDb          DbValue `yaml:"sinr"`
	BestMcs         int     `yaml:"best-mcs"`   // highest expected throughput
	TargetMcs       int     `yaml:"target-mcs"` // highest MCS meeting the target BLER, -1 if none
	BestMcsTputMbps Mbps    `yaml:"best-tput"`
}

type Summary struct {
	Title      string        `yaml:"title"`
	TargetBler float64       `yaml:"target-bler"`
	Mcs        []McsSummary  `yaml:"mcs"`
	Sinr       []SinrSummary `yaml:"sinr"`
}

// Summary computes key figures of the analysis.
func (a *Analysis) Summary() (*Summary, error) {
	model, err := linkmodel.NewModel(a.Title, a.Params)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Title:      a.Title,
		TargetBler: a.Ranges.TargetBler,
	}
	for i, mcs := range a.Ranges.SampleMcs {
		reqSinr, err := model.RequiredSinr(float64(mcs), a.Ranges.TargetBler)
		if err != nil {
			return nil, err
		}
		s.Mcs = append(s.Mcs, McsSummary{
			Mcs:               mcs,
			PeakRateMbps:      model.PeakRate(float64(mcs)),
			RequiredSinrDb:    reqSinr,
			MaxThroughputMbps: floats.Max(a.ThroughputVsSinr[i].Y),
		})
	}

	for _, sinr := range a.Ranges.SampleSinr {
		best, err := model.BestMcs(sinr)
		if err != nil {
			return nil, err
		}
		ss := SinrSummary{
			SinrDb:          sinr,
			BestMcs:         int(best.Mcs),
			TargetMcs:       -1,
			BestMcsTputMbps: best.ThroughputMbps,
		}
		lq, ok, err := model.HighestMcsForTarget(sinr, a.Ranges.TargetBler)
		if err != nil {
			return nil, err
		}
		if ok {
			ss.TargetMcs = int(lq.Mcs)
		}
		s.Sinr = append(s.Sinr, ss)
	}
	return s, nil
}
