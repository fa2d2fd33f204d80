// Copyright 2016 David Stainton
//
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package xorcrack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const scoreDelta = 1e-9

func TestFrequencyTableExpected(t *testing.T) {
	e, ok := EnglishFrequencies.Expected('E')
	assert.True(t, ok)
	assert.Equal(t, 12.60, e)

	lower, ok := EnglishFrequencies.Expected('z')
	assert.True(t, ok)
	assert.Equal(t, 0.06, lower)

	for _, c := range []byte{'@', '[', '`', '{', ' ', '0', 0x00, 0xc1} {
		_, ok := EnglishFrequencies.Expected(c)
		assert.False(t, ok, "byte %#x is not a letter", c)
	}
}

func TestFrequencyTableSumsToHundred(t *testing.T) {
	sum := 0.0
	for _, pct := range EnglishFrequencies {
		sum += pct
	}
	assert.InDelta(t, 100.0, sum, 0.1)
}

func TestScoreNoLetters(t *testing.T) {
	assert.Equal(t, 0.0, Score(nil))
	assert.Equal(t, 0.0, Score([]byte{}))
	assert.Equal(t, 0.0, Score([]byte("1234 !?[]{}")))
	assert.Equal(t, 0.0, Score([]byte{0x00, 0x01, 0x7f, 0x80, 0xff}))
}

func TestScoreSingleLetter(t *testing.T) {
	// one letter observed at 100%, every other letter is absent and
	// contributes nothing
	assert.InDelta(t, 100-8.34, Score([]byte("A")), scoreDelta)
	assert.InDelta(t, 100-8.34, Score([]byte("aaaa")), scoreDelta)
	assert.InDelta(t, 100-0.06, Score([]byte("z!z z")), scoreDelta)
}

func TestScoreAbsentLettersIgnored(t *testing.T) {
	// E and T observed at 50% each
	want := math.Abs(50-12.60) + math.Abs(50-9.37)
	assert.InDelta(t, want, Score([]byte("ET")), scoreDelta)
	assert.InDelta(t, want, Score([]byte("E. T.")), scoreDelta)
}

func TestScoreCaseCountedSeparately(t *testing.T) {
	// 'A' and 'a' are distinct symbols at 50% each, both measured
	// against the expected frequency of A
	want := 2 * math.Abs(50-8.34)
	assert.InDelta(t, want, Score([]byte("Aa")), scoreDelta)
}

func TestScoreDeterministic(t *testing.T) {
	text := []byte("The quick brown fox jumps over the lazy dog")
	first := Score(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(text))
	}
}

func TestScoreCustomTable(t *testing.T) {
	var table FrequencyTable
	table['Q'-'A'] = 100
	assert.Equal(t, 0.0, table.Score([]byte("qqq")))
	assert.InDelta(t, 100.0, table.Score([]byte("e")), scoreDelta)
}
