// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package ocb2

import (
	"crypto/cipher"
)

// PMAC computes the PMAC of header under cipher and writes the
// BlockSize-byte tag into dst. The header must not be empty; callers
// that have no associated data skip PMAC entirely.
func PMAC(cipher cipher.Block, dst []byte, header []byte) {
	if cipher.BlockSize() != BlockSize {
		panic("ocb2: cipher block size mismatch")
	}
	if len(header) == 0 {
		panic("ocb2: pmac of empty header")
	}

	var delta [BlockSize]byte
	var checksum [BlockSize]byte
	var tmp [BlockSize]byte
	off := 0

	zeros(tmp[0:])
	cipher.Encrypt(delta[0:], tmp[0:])
	times3(delta[0:])
	times3(delta[0:])
	zeros(checksum[0:])

	remain := len(header)
	for remain > BlockSize {
		times2(delta[0:])
		xor(tmp[0:], delta[0:], header[off:off+BlockSize])
		cipher.Encrypt(tmp[0:], tmp[0:])
		xor(checksum[0:], checksum[0:], tmp[0:])
		remain -= BlockSize
		off += BlockSize
	}

	times2(delta[0:])
	if remain == BlockSize {
		times3(delta[0:])
		xor(checksum[0:], checksum[0:], header[off:off+BlockSize])
	} else {
		times3(delta[0:])
		times3(delta[0:])
		zeros(tmp[0:])
		copy(tmp[0:], header[off:])
		tmp[remain] = 0x80
		xor(checksum[0:], checksum[0:], tmp[0:])
	}

	xor(tmp[0:], delta[0:], checksum[0:])
	cipher.Encrypt(dst[0:], tmp[0:])

	zeros(delta[0:])
	zeros(checksum[0:])
	zeros(tmp[0:])
}
