// Copyright 2016 David Stainton
//
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package xorcrack

import (
	"github.com/david415/go-lioness"
)

// XORBytes returns a fresh buffer holding a[i] ^ b[i].
// Unlike lioness.XorBytes it refuses to truncate to the shorter input.
func XORBytes(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, &LengthMismatchError{Left: len(a), Right: len(b)}
	}
	out := make([]byte, len(a))
	lioness.XorBytes(out, a, b)
	return out, nil
}

// FixedXOR decodes two equal length hex strings, XORs them and
// returns the result as upper-case hex.
func FixedXOR(hexA, hexB string) (string, error) {
	a, err := DecodeHex(hexA)
	if err != nil {
		return "", err
	}
	b, err := DecodeHex(hexB)
	if err != nil {
		return "", err
	}
	out, err := XORBytes(a, b)
	if err != nil {
		return "", err
	}
	return EncodeHex(out), nil
}
