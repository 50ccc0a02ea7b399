// Package tuning loads the performance knob that shapes how the bignum
// package multiplies: the Karatsuba base-case threshold, which is the
// only tunable value (Barrett reduction has none). It follows the app
// package's map[string]any + mapstructure decode pattern: the TOML
// document is decoded generically first, then the recognized "tuning_"
// table is pulled out and strictly decoded into a typed Tuning.
package tuning

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"io"

	"github.com/bantling/bignum/funcs"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
)

var (
	errTuningMustBeTableMsg = "tuning: the tuning_ key must be a table"
)

// Tuning holds the algorithm thresholds the bignum package consults.
type Tuning struct {
	// KaratsubaThreshold is the operand byte width at or below which
	// Multiply uses the schoolbook single-limb primitive instead of
	// recursing. The primitive covers one 64-byte limb, so values above
	// 64 behave the same as 64.
	KaratsubaThreshold int `mapstructure:"karatsuba_threshold"`
}

// defaultTuning mirrors the values karatsuba and biglimb already use when
// no configuration is loaded.
var defaultTuning = Tuning{
	KaratsubaThreshold: 64,
}

// Default returns the built-in Tuning, independent of any configuration
// file.
func Default() Tuning {
	return defaultTuning
}

// Load decodes a TOML document into a Tuning, starting from Default and
// overriding only the fields present under the top level tuning_ table.
// Unrecognized keys in tuning_ are rejected; unrecognized top level keys
// are ignored, the same latitude app.Load gives unrecognized tables.
func Load(src io.Reader) Tuning {
	var (
		result      = defaultTuning
		configMap   = map[string]any{}
		tomlDecoder = toml.NewDecoder(src)
	)

	funcs.Must(tomlDecoder.Decode(&configMap))

	v, haveTuning := configMap["tuning_"]
	if !haveTuning {
		return result
	}

	table, isTable := v.(map[string]any)
	if !isTable {
		panic(fmt.Errorf(errTuningMustBeTableMsg))
	}

	var (
		msdc      = mapstructure.DecoderConfig{ErrorUnused: true, Result: &result}
		msDecoder = funcs.MustValue(mapstructure.NewDecoder(&msdc))
	)
	funcs.Must(msDecoder.Decode(table))

	return result
}
