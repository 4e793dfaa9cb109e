// SPDX-License-Identifier: MIT
// Package: permav/basis
//
// parse.go — delimiter agnostic textual bases.

package basis

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/permav/perm"
)

// Parse reads a basis from text. Every maximal run of decimal digits is one
// pattern, standardized from its digits; anything else separates runs:
//
//	"012_2103"     → {012, 2103}
//	"123, 321"     → {012, 210}   (one-based input standardizes the same)
//	"1324 / 4231"  → {0213, 3120}
//
// Blank text yields Empty().
func Parse(s string) (*Basis, error) {
	runs := strings.FieldsFunc(s, func(r rune) bool {
		return r >= unicode.MaxASCII || !unicode.IsDigit(r)
	})
	patts := make([]*perm.Perm, len(runs))
	for i, run := range runs {
		digits := make([]byte, len(run))
		copy(digits, run)
		patts[i] = perm.Standardize(digits)
	}

	return New(patts...)
}

// MustParse is Parse for literals; it panics on error.
func MustParse(s string) *Basis {
	return Must(Parse(s))
}
