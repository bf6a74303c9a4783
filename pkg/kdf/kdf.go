// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// Package kdf derives Rijndael keys from passwords the way the
// "aes-encrypted" container format has always done it: the password is
// zero-padded, CBC-encrypted under itself with a zero IV, and the last
// output block becomes the key.
//
// This construction is weak by any modern standard. There is no salt,
// no iteration count and no memory hardness, so it offers no real
// protection against offline guessing beyond the entropy of the
// password itself. It is reproduced byte for byte because existing
// containers cannot be decrypted any other way. Do not reuse it in new
// formats; use a real KDF.
package kdf

import (
	"github.com/aesbox/aesbox/pkg/cbc"
	"github.com/aesbox/aesbox/pkg/rijndael"
)

// DeriveKey derives a 4*nk byte key from password. nk must be 4, 6
// or 8; an empty password is treated as a single zero-padded block.
func DeriveKey(password []byte, nk int) ([]byte, error) {
	if nk != 4 && nk != 8 && nk != 6 {
		return nil, rijndael.KeySizeError(nk * 4)
	}
	bs := nk * 4

	blocks := (len(password) + bs - 1) / bs
	if blocks == 0 {
		blocks = 1
	}
	padded := make([]byte, blocks*bs)
	copy(padded, password)

	// The schedule comes from the first block of the padded password,
	// and the password then encrypts itself.
	c, err := rijndael.NewCipher(padded[:bs], nk)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, bs)
	out := cbc.Encrypt(c, iv, padded)
	key := make([]byte, bs)
	copy(key, out[len(out)-bs:])

	c.Destroy()
	wipe(padded)
	wipe(out)
	return key, nil
}

func wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
