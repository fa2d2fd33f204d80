// Copyright 2016 David Stainton
//
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file in the root of the source
// tree.

/*
Package xorcrack provides the two XOR exercises from the first set of
the cryptopals challenges: a fixed-length XOR of two hex encoded
buffers, and a breaker for the single-byte XOR cipher that scores every
candidate decryption against English letter frequencies.

If you're looking to dive right into code, see the unit tests for examples.
*/
package xorcrack
