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

package cli

import (
	"reflect"
	"strconv"

	"github.com/alecthomas/participle"
	"github.com/pkg/errors"

	"github.com/openthread/ot-linksim/logger"
)

// noinspection GoStructTag
type Command struct {
	Best     *BestCmd     `  @@` //nolint
	Bler     *BlerCmd     `| @@` //nolint
	Eval     *EvalCmd     `| @@` //nolint
	Exit     *ExitCmd     `| @@` //nolint
	Export   *ExportCmd   `| @@` //nolint
	Help     *HelpCmd     `| @@` //nolint
	LogLevel *LogLevelCmd `| @@` //nolint
	Params   *ParamsCmd   `| @@` //nolint
	Range    *RangeCmd    `| @@` //nolint
	Rate     *RateCmd     `| @@` //nolint
	Required *RequiredCmd `| @@` //nolint
	Run      *RunCmd      `| @@` //nolint
	Sinr     *SinrCmd     `| @@` //nolint
	Summary  *SummaryCmd  `| @@` //nolint
	Target   *TargetCmd   `| @@` //nolint
	Tput     *TputCmd     `| @@` //nolint
}

// Number is a signed integer or floating point number.
// noinspection GoStructTag
type Number struct {
	Val string `@( ["-"] (Int|Float) )` //nolint
}

// Float returns the value of the number. Numbers of a parsed Command have been checked by
// parseBytes, so Float only fails for a Number that was not produced by the parser.
func (n *Number) Float() float64 {
	v, err := n.parse()
	logger.PanicIfError(err)
	return v
}

func (n *Number) parse() (float64, error) {
	v, err := strconv.ParseFloat(n.Val, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.Errorf("number %s is out of range", n.Val)
		}
		return 0, errors.Wrapf(err, "invalid number %s", n.Val)
	}
	return v, nil
}

// noinspection GoStructTag
type BlerCmd struct {
	Cmd       struct{} `"bler"`             //nolint
	Sinr      Number   `@@`                 //nolint
	Mcs       Number   `@@`                 //nolint
	Steepness *Number  `[ "steepness" @@ ]` //nolint
}

// noinspection GoStructTag
type RateCmd struct {
	Cmd struct{} `"rate"`       //nolint
	Mcs Number   `@@`           //nolint
	Amp *Number  `[ "amp" @@ ]` //nolint
}

// noinspection GoStructTag
type TputCmd struct {
	Cmd  struct{} `"tput"` //nolint
	Mcs  Number   `@@`     //nolint
	Sinr Number   `@@`     //nolint
}

// noinspection GoStructTag
type EvalCmd struct {
	Cmd  struct{} `"eval"` //nolint
	Sinr Number   `@@`     //nolint
	Mcs  Number   `@@`     //nolint
}

// noinspection GoStructTag
type BestCmd struct {
	Cmd    struct{} `"best"`          //nolint
	Sinr   Number   `@@`              //nolint
	Target *Number  `[ "target" @@ ]` //nolint
}

// noinspection GoStructTag
type RequiredCmd struct {
	Cmd    struct{} `"required"`      //nolint
	Mcs    Number   `@@`              //nolint
	Target *Number  `[ "target" @@ ]` //nolint
}

// noinspection GoStructTag
type ParamsCmd struct {
	Cmd       struct{} `"params"`         //nolint
	Steepness *Number  `( "steepness" @@` //nolint
	Amp       *Number  `| "amp" @@ )*`    //nolint
}

// noinspection GoStructTag
type RangeCmd struct {
	Cmd    struct{} `"range"`               //nolint
	Min    *Number  `[ @@`                  //nolint
	Max    *Number  `  @@`                  //nolint
	Points *int     `  [ "points" @Int ] ]` //nolint
}

// noinspection GoStructTag
type TargetCmd struct {
	Cmd  struct{} `"target"` //nolint
	Bler *Number  `[ @@ ]`   //nolint
}

// noinspection GoStructTag
type SinrCmd struct {
	Cmd          struct{} `"sinr"`         //nolint
	Signal       Number   `@@`             //nolint
	Noise        Number   `@@`             //nolint
	Interference []Number `[ "intf" @@+ ]` //nolint
}

// noinspection GoStructTag
type RunCmd struct {
	Cmd struct{} `"run"` //nolint
}

// noinspection GoStructTag
type SummaryCmd struct {
	Cmd struct{} `"summary"` //nolint
}

// noinspection GoStructTag
type ExportCmd struct {
	Cmd      struct{} `"export"` //nolint
	Filename string   `@String`  //nolint
}

// noinspection GoStructTag
type LogLevelCmd struct {
	Cmd   struct{} `"log"`                                                                             //nolint
	Level string   `[@( "trace"|"debug"|"info"|"note"|"warn"|"error"|"off"|"T"|"D"|"I"|"N"|"W"|"E" )]` //nolint
}

// noinspection GoStructTag
type HelpCmd struct {
	Cmd       struct{} `"help"`       //nolint
	HelpTopic string   `[ (@Ident) ]` //nolint
}

// noinspection GoStructTag
type ExitCmd struct {
	Cmd struct{} `"exit"` //nolint
}

var (
	commandParser = participle.MustBuild(&Command{})
)

func parseBytes(b []byte, cmd *Command) error {
	if err := commandParser.ParseBytes(b, cmd); err != nil {
		return err
	}
	return checkNumbers(reflect.ValueOf(cmd))
}

var numberType = reflect.TypeOf(Number{})

// checkNumbers returns an error for the first Number in v that does not fit a float64.
// The lexer accepts number tokens of any magnitude, such as 1e400.
func checkNumbers(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return checkNumbers(v.Elem())
	case reflect.Struct:
		if v.Type() == numberType {
			n := v.Interface().(Number)
			_, err := n.parse()
			return err
		}
		for i := 0; i < v.NumField(); i++ {
			if err := checkNumbers(v.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := checkNumbers(v.Index(i)); err != nil {
				return err
			}
		}
	}
	return nil
}
