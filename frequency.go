// Copyright 2016 David Stainton
//
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package xorcrack

import (
	"math"
)

// FrequencyTable maps the letters A through Z to their expected
// percentage frequency, indexed by letter - 'A'.
type FrequencyTable [26]float64

// EnglishFrequencies holds letter frequencies of English text.
var EnglishFrequencies = FrequencyTable{
	8.34,  // A
	1.54,  // B
	2.73,  // C
	4.14,  // D
	12.60, // E
	2.03,  // F
	1.92,  // G
	6.11,  // H
	6.71,  // I
	0.23,  // J
	0.87,  // K
	4.24,  // L
	2.53,  // M
	6.80,  // N
	7.70,  // O
	1.66,  // P
	0.09,  // Q
	5.68,  // R
	6.11,  // S
	9.37,  // T
	2.85,  // U
	1.06,  // V
	2.34,  // W
	0.20,  // X
	2.04,  // Y
	0.06,  // Z
}

func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// Expected returns the expected percentage for an ASCII letter of
// either case, and false for anything else.
func (t *FrequencyTable) Expected(c byte) (float64, bool) {
	if !isLetter(c) {
		return 0, false
	}
	return t[(c&^0x20)-'A'], true
}

// Score measures how far the letter distribution of text is from the
// table. Lower is more English-like. Only letters that occur are
// compared; upper and lower case forms are counted separately but
// share the same expected value. Text without letters scores 0.
func (t *FrequencyTable) Score(text []byte) float64 {
	var counts [256]int
	total := 0
	for _, c := range text {
		if isLetter(c) {
			counts[c]++
			total++
		}
	}
	if total == 0 {
		return 0
	}

	score := 0.0
	for c := 0; c < len(counts); c++ {
		if counts[c] == 0 {
			continue
		}
		expected, _ := t.Expected(byte(c))
		observed := float64(counts[c]) / float64(total) * 100
		score += math.Abs(observed - expected)
	}
	return score
}

// Score scores text against EnglishFrequencies.
func Score(text []byte) float64 {
	return EnglishFrequencies.Score(text)
}
