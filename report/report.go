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

// Package report writes analysis results to files, as input for external charting tools.
package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/openthread/ot-linksim/analysis"
	"github.com/openthread/ot-linksim/linkmodel"
	"github.com/openthread/ot-linksim/logger"
	. "github.com/openthread/ot-linksim/types"
)

var csvHeader = []string{"mcs", "sinr_db", "bler", "throughput_mbps"}

// FormatFromFilename determines the export format from the file extension.
func FormatFromFilename(fn string) (ExportFormat, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fn)), ".")
	format, ok := ParseExportFormat(ext)
	if !ok {
		return format, errors.Errorf("unknown export format for file '%s' (use .yaml, .json, .csv or .pb)", fn)
	}
	return format, nil
}

// WriteFile writes the analysis to file fn, in the format given by its extension.
func WriteFile(fn string, a *analysis.Analysis) error {
	format, err := FormatFromFilename(fn)
	if err != nil {
		return err
	}

	f, err := os.Create(fn)
	if err != nil {
		return errors.Wrapf(err, "could not create export file %s", fn)
	}
	if err = Write(f, a, format); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "could not write export file %s", fn)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "could not close export file %s", fn)
	}
	logger.Infof("exported analysis '%s' to %s (%s)", a.Title, fn, format)
	return nil
}

// Write writes the analysis to w in the given format.
func Write(w io.Writer, a *analysis.Analysis, format ExportFormat) error {
	switch format {
	case ExportYaml:
		return writeYaml(w, NewDocument(a))
	case ExportJson:
		return writeJson(w, NewDocument(a))
	case ExportCsv:
		return writeCsv(w, a)
	case ExportProto:
		return writeProto(w, NewDocument(a))
	default:
		return errors.Errorf("unsupported export format: %d", int(format))
	}
}

func writeYaml(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// ToStruct converts the document to a protobuf Struct.
func (d *Document) ToStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(d.asMap())
}

func writeJson(w io.Writer, doc *Document) error {
	st, err := doc.ToStruct()
	if err != nil {
		return err
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeProto(w io.Writer, doc *Document) error {
	st, err := doc.ToStruct()
	if err != nil {
		return err
	}
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(st)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// writeCsv writes the heatmap in long form, one row per (MCS, SINR) point.
func writeCsv(w io.Writer, a *analysis.Analysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, mcs := range a.Mcs {
		peak := linkmodel.PeakRate(float64(mcs), a.Params.AmplificationFactor)
		for j, sinr := range a.SinrDb {
			bler := a.BlerAt(i, j)
			rec := []string{
				strconv.Itoa(mcs),
				formatFloat(sinr),
				formatFloat(bler),
				formatFloat(peak * (1.0 - bler)),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadProto decodes a document previously written in the pb format.
func ReadProto(data []byte) (*structpb.Struct, error) {
	st := &structpb.Struct{}
	if err := proto.Unmarshal(data, st); err != nil {
		return nil, errors.Wrap(err, "invalid pb report")
	}
	return st, nil
}
