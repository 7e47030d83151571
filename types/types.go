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

package types

import (
	"github.com/simonlingoogle/go-simplelogger"
)

// DbValue is a value in dB (or dBm).
type DbValue = float64

// McsIndex is an integer modulation and coding scheme (MCS) selector.
type McsIndex = int

// Mbps is a data rate in Mbit/s.
type Mbps = float64

const (
	MinMcsIndex McsIndex = 0
	MaxMcsIndex McsIndex = 29
	NumMcsIndex          = MaxMcsIndex - MinMcsIndex + 1
)

// default SINR sweep as used for the waterfall charts.
const (
	DefaultSinrMinDb   DbValue = -10.0
	DefaultSinrMaxDb   DbValue = 35.0
	DefaultSinrPoints          = 200
	DefaultTargetBler          = 0.1 // the usual 10% BLER operating point for link adaptation
)

var (
	DefaultSampleMcs  = []McsIndex{2, 10, 18, 26}
	DefaultSampleSinr = []DbValue{-2, 5, 15, 25}
)

// IsValidMcs returns true if mcs is within the MCS table.
func IsValidMcs(mcs McsIndex) bool {
	return mcs >= MinMcsIndex && mcs <= MaxMcsIndex
}

type ExportFormat int

const (
	ExportYaml ExportFormat = iota
	ExportJson
	ExportCsv
	ExportProto
)

func (f ExportFormat) String() string {
	switch f {
	case ExportYaml:
		return "yaml"
	case ExportJson:
		return "json"
	case ExportCsv:
		return "csv"
	case ExportProto:
		return "pb"
	default:
		simplelogger.Panicf("invalid export format: %d", int(f))
		return "invalid"
	}
}

// ParseExportFormat parses a format name; ok is false if unknown.
func ParseExportFormat(s string) (ExportFormat, bool) {
	switch s {
	case "yaml", "yml":
		return ExportYaml, true
	case "json":
		return ExportJson, true
	case "csv":
		return ExportCsv, true
	case "pb", "proto":
		return ExportProto, true
	default:
		return ExportYaml, false
	}
}
