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
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/openthread/ot-linksim/analysis"
	"github.com/openthread/ot-linksim/linkmodel"
	. "github.com/openthread/ot-linksim/types"
)

func testAnalysis(t *testing.T) *analysis.Analysis {
	r := analysis.DefaultRanges()
	r.SinrMinDb = 0
	r.SinrMaxDb = 4
	r.SinrPoints = 5
	r.McsMin = 0
	r.McsMax = 2
	r.SampleMcs = []McsIndex{1}
	r.SampleSinr = []DbValue{0}

	a, err := analysis.Compute(linkmodel.NewDefaultModel("report-test"), r)
	require.Nil(t, err)
	return a
}

func TestFormatFromFilename(t *testing.T) {
	cases := map[string]ExportFormat{
		"out.yaml":       ExportYaml,
		"out.YML":        ExportYaml,
		"dir/a.b.json":   ExportJson,
		"waterfall.csv":  ExportCsv,
		"/tmp/result.pb": ExportProto,
	}
	for fn, expected := range cases {
		format, err := FormatFromFilename(fn)
		assert.Nil(t, err, fn)
		assert.Equal(t, expected, format, fn)
	}

	_, err := FormatFromFilename("chart.png")
	assert.NotNil(t, err)
	_, err = FormatFromFilename("noext")
	assert.NotNil(t, err)
}

func TestWriteYaml(t *testing.T) {
	a := testAnalysis(t)
	var buf bytes.Buffer
	require.Nil(t, Write(&buf, a, ExportYaml))

	doc := Document{}
	require.Nil(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "report-test", doc.Title)
	assert.Equal(t, linkmodel.DefaultSteepness, doc.Params.Steepness)
	assert.Equal(t, linkmodel.DefaultAmplificationFactor, doc.Params.Amplification)
	assert.Equal(t, DefaultTargetBler, doc.TargetBler)
	assert.Equal(t, []McsIndex{0, 1, 2}, doc.Mcs)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, doc.SinrDb)
	require.Equal(t, 3, len(doc.Bler))
	assert.Equal(t, a.BlerAt(1, 2), doc.Bler[1][2])
	assert.Equal(t, 0.5, doc.Bler[1][1])
	require.Equal(t, 1, len(doc.ThroughputVsSinr))
	assert.Equal(t, "MCS 1", doc.ThroughputVsSinr[0].Label)
	assert.Equal(t, 1.25, doc.ThroughputVsSinr[0].Y[1])
}

func TestWriteJson(t *testing.T) {
	a := testAnalysis(t)
	var buf bytes.Buffer
	require.Nil(t, Write(&buf, a, ExportJson))

	st := &structpb.Struct{}
	require.Nil(t, protojson.Unmarshal(buf.Bytes(), st))
	assert.Equal(t, "report-test", st.Fields["title"].GetStringValue())
	assert.Equal(t, 5, len(st.Fields["sinr-db"].GetListValue().GetValues()))
	bler := st.Fields["bler"].GetListValue().GetValues()
	require.Equal(t, 3, len(bler))
	assert.Equal(t, 0.5, bler[1].GetListValue().GetValues()[1].GetNumberValue())
}

func TestWriteProto(t *testing.T) {
	a := testAnalysis(t)
	var buf bytes.Buffer
	require.Nil(t, Write(&buf, a, ExportProto))

	st, err := ReadProto(buf.Bytes())
	require.Nil(t, err)
	assert.Equal(t, "report-test", st.Fields["title"].GetStringValue())
	params := st.Fields["params"].GetStructValue()
	assert.Equal(t, 2.5, params.Fields["amplification"].GetNumberValue())
	curves := st.Fields["bler-vs-mcs"].GetListValue().GetValues()
	require.Equal(t, 1, len(curves))
	assert.Equal(t, "SINR 0 dB", curves[0].GetStructValue().Fields["label"].GetStringValue())

	_, err = ReadProto([]byte{0xff, 0xff, 0xff})
	assert.NotNil(t, err)
}

func TestWriteCsv(t *testing.T) {
	a := testAnalysis(t)
	var buf bytes.Buffer
	require.Nil(t, Write(&buf, a, ExportCsv))

	records, err := csv.NewReader(&buf).ReadAll()
	require.Nil(t, err)
	require.Equal(t, 1+3*5, len(records))
	assert.Equal(t, csvHeader, records[0])

	// MCS 2 at SINR 2 dB is on the logistic midpoint
	row := records[1+2*5+2]
	assert.Equal(t, []string{"2", "2", "0.5", "2.5"}, row)

	for _, rec := range records[1:] {
		bler, err := strconv.ParseFloat(rec[2], 64)
		assert.Nil(t, err)
		assert.True(t, bler >= 0 && bler <= 1)
	}
}

func TestWriteFile(t *testing.T) {
	a := testAnalysis(t)
	dir := t.TempDir()

	for _, name := range []string{"a.yaml", "a.json", "a.csv", "a.pb"} {
		fn := filepath.Join(dir, name)
		assert.Nil(t, WriteFile(fn, a))
		info, err := os.Stat(fn)
		assert.Nil(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.NotNil(t, WriteFile(filepath.Join(dir, "a.png"), a))
	assert.NotNil(t, WriteFile(filepath.Join(dir, "missing", "a.yaml"), a))
}
