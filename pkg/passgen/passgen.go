// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// Package passgen generates random passwords from character classes.
package passgen

import (
	"errors"

	"github.com/aesbox/aesbox/pkg/randsource"
)

// Class selects which characters may appear in a generated password.
type Class uint32

const (
	Lower Class = 1 << iota
	Upper
	Digit
	Punct

	// All is every printable ASCII class combined.
	All = Lower | Upper | Digit | Punct
)

const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"
	punctChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var errNoClasses = errors.New("passgen: no character classes selected")

func alphabet(classes Class) string {
	var a string
	if classes&Lower != 0 {
		a += lowerChars
	}
	if classes&Upper != 0 {
		a += upperChars
	}
	if classes&Digit != 0 {
		a += digitChars
	}
	if classes&Punct != 0 {
		a += punctChars
	}
	return a
}

// Generate returns a password of n characters drawn uniformly from the
// selected classes. Bytes from src are rejection sampled, so no
// character is favored by a modulo bias.
func Generate(src randsource.Source, n int, classes Class) (string, error) {
	chars := alphabet(classes)
	if len(chars) == 0 {
		return "", errNoClasses
	}

	// Largest multiple of len(chars) that fits in a byte; anything
	// at or above it is thrown away.
	limit := 256 - 256%len(chars)

	out := make([]byte, 0, n)
	var buf [64]byte
	for len(out) < n {
		if err := src.Fill(buf[0:]); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, chars[int(b)%len(chars)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
