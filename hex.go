// Copyright 2016 David Stainton
//
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file in the root of the source
// tree.

package xorcrack

import (
	"encoding/hex"
	"strings"
)

// DecodeHex decodes case-insensitive hexadecimal text.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &DecodeError{Input: s, Err: err}
	}
	return b, nil
}

// EncodeHex renders b as upper-case hexadecimal text.
func EncodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
