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

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevelString(t *testing.T) {
	for _, lv := range []Level{TraceLevel, DebugLevel, InfoLevel, NoteLevel, WarnLevel, ErrorLevel, OffLevel} {
		parsed, err := ParseLevelString(GetLevelString(lv))
		assert.Nil(t, err)
		assert.Equal(t, lv, parsed)
	}

	lv, err := ParseLevelString("D")
	assert.Nil(t, err)
	assert.Equal(t, DebugLevel, lv)

	lv, err = ParseLevelString("default")
	assert.Nil(t, err)
	assert.Equal(t, DefaultLevel, lv)

	_, err = ParseLevelString("loud")
	assert.NotNil(t, err)
	assert.Equal(t, "unknown", GetLevelString(Level(42)))
}

func TestLogToFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "linksim.log")
	prevLevel := GetLevel()
	defer func() {
		SetLevel(prevLevel)
		SetOutput([]string{"stderr"})
	}()

	SetOutput([]string{fn})
	SetLevel(InfoLevel)
	Infof("computed %d points", 42)
	Debugf("not logged at info level")
	Sync()

	data, err := os.ReadFile(fn)
	assert.Nil(t, err)
	assert.Contains(t, string(data), "computed 42 points")
	assert.NotContains(t, string(data), "not logged")
}

func TestAssertTrue(t *testing.T) {
	assert.True(t, AssertTrue(true))
	assert.Panics(t, func() {
		AssertTrue(false, "must panic")
	})
}
