// Copyright 2016 David Stainton
//
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package xorcrack

import (
	"sort"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultKeySpace is the number of keys tried: 0 through 127.
	DefaultKeySpace = 128
	maxKeySpace     = 256
)

// Candidate is one trial decryption of a single-byte XOR ciphertext.
type Candidate struct {
	Key byte
	// Score is the letter-frequency deviation; lower is better.
	Score float64
	// Unprintable counts bytes outside printable ASCII (0x20-0x7e).
	Unprintable int
	Plaintext   []byte
}

// less orders candidates by unprintable count, then score, then key.
// A candidate without letters scores 0, so plaintexts full of control
// bytes must lose on the first criterion before scores are compared.
func (c *Candidate) less(o *Candidate) bool {
	if c.Unprintable != o.Unprintable {
		return c.Unprintable < o.Unprintable
	}
	if c.Score != o.Score {
		return c.Score < o.Score
	}
	return c.Key < o.Key
}

// scoreLess orders candidates by score, then key.
func (c *Candidate) scoreLess(o *Candidate) bool {
	if c.Score != o.Score {
		return c.Score < o.Score
	}
	return c.Key < o.Key
}

// CrackerParams configures a FrequencyCracker.
type CrackerParams struct {
	// KeySpace is how many keys, starting at 0, are tried.
	KeySpace int
	// Workers bounds the number of goroutines scoring candidates.
	// Zero or one scores sequentially.
	Workers int
	// Logger receives one debug line per candidate in diagnostic mode.
	Logger hclog.Logger
	// Table is the reference distribution; nil means EnglishFrequencies.
	Table *FrequencyTable
}

// DefaultCrackerParams returns the parameters used by Crack.
func DefaultCrackerParams() *CrackerParams {
	return &CrackerParams{
		KeySpace: DefaultKeySpace,
		Logger:   hclog.NewNullLogger(),
		Table:    &EnglishFrequencies,
	}
}

// FrequencyCracker breaks single-byte XOR by letter-frequency scoring.
type FrequencyCracker struct {
	keySpace int
	workers  int
	log      hclog.Logger
	table    *FrequencyTable
}

// NewFrequencyCracker creates a cracker. A nil params uses
// DefaultCrackerParams.
func NewFrequencyCracker(params *CrackerParams) (*FrequencyCracker, error) {
	if params == nil {
		params = DefaultCrackerParams()
	}
	if params.KeySpace < 1 || params.KeySpace > maxKeySpace {
		return nil, ErrInvalidKeySpace
	}
	if params.Workers < 0 {
		return nil, ErrInvalidWorkers
	}
	c := FrequencyCracker{
		keySpace: params.KeySpace,
		workers:  params.Workers,
		log:      params.Logger,
		table:    params.Table,
	}
	if c.log == nil {
		c.log = hclog.NewNullLogger()
	}
	if c.table == nil {
		c.table = &EnglishFrequencies
	}
	return &c, nil
}

// SingleByteXOR returns src with every byte XORed against key.
func SingleByteXOR(src []byte, key byte) []byte {
	out := make([]byte, len(src))
	for i := range src {
		out[i] = src[i] ^ key
	}
	return out
}

func countUnprintable(b []byte) int {
	n := 0
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			n++
		}
	}
	return n
}

func (f *FrequencyCracker) candidate(ciphertext []byte, key byte) Candidate {
	plaintext := SingleByteXOR(ciphertext, key)
	return Candidate{
		Key:         key,
		Score:       f.table.Score(plaintext),
		Unprintable: countUnprintable(plaintext),
		Plaintext:   plaintext,
	}
}

// score builds every candidate, indexed by key.
func (f *FrequencyCracker) score(ciphertext []byte) ([]Candidate, error) {
	candidates := make([]Candidate, f.keySpace)
	if f.workers <= 1 {
		for k := range candidates {
			candidates[k] = f.candidate(ciphertext, byte(k))
		}
		return candidates, nil
	}

	var g errgroup.Group
	g.SetLimit(f.workers)
	for k := range candidates {
		k := k
		g.Go(func() error {
			candidates[k] = f.candidate(ciphertext, byte(k))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Crack decodes cipherHex and returns the best candidate decryption.
func (f *FrequencyCracker) Crack(cipherHex string) (*Candidate, error) {
	ciphertext, err := DecodeHex(cipherHex)
	if err != nil {
		return nil, err
	}
	candidates, err := f.score(ciphertext)
	if err != nil {
		return nil, err
	}
	best := &candidates[0]
	for i := 1; i < len(candidates); i++ {
		if candidates[i].less(best) {
			best = &candidates[i]
		}
	}
	f.log.Trace("cracked single-byte xor", "key", best.Key, "score", best.Score)
	return best, nil
}

// Candidates is the diagnostic mode of Crack: it returns every
// candidate sorted ascending by score, ties by key, logging each one at
// debug level. The order ignores Unprintable, so the first entry is not
// necessarily the one Crack picks.
func (f *FrequencyCracker) Candidates(cipherHex string) ([]Candidate, error) {
	ciphertext, err := DecodeHex(cipherHex)
	if err != nil {
		return nil, err
	}
	candidates, err := f.score(ciphertext)
	if err != nil {
		return nil, err
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].scoreLess(&candidates[j])
	})
	for i := range candidates {
		f.log.Debug("candidate",
			"rank", i,
			"key", candidates[i].Key,
			"score", candidates[i].Score,
			"unprintable", candidates[i].Unprintable,
			"plaintext", string(candidates[i].Plaintext))
	}
	return candidates, nil
}

// Crack returns the most English-like decryption of a hex encoded
// single-byte XOR ciphertext, trying keys 0 through 127.
func Crack(cipherHex string) ([]byte, error) {
	f, err := NewFrequencyCracker(nil)
	if err != nil {
		return nil, err
	}
	best, err := f.Crack(cipherHex)
	if err != nil {
		return nil, err
	}
	return best.Plaintext, nil
}
