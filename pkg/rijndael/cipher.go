// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// Package rijndael implements the Rijndael block cipher with the full
// parameter range of the original submission: block and key sizes of
// 128, 192 and 256 bits in any combination. With a 16-byte block it is
// AES as specified in FIPS-197.
//
// The implementation is table driven and makes no attempt to be
// constant time; it is not hardened against timing or power analysis.
package rijndael

// A Cipher is an instance of Rijndael using a particular key and block
// size. It implements crypto/cipher.Block.
type Cipher struct {
	nb int // block size in 32-bit words
	nr int // number of rounds
	w  []byte
}

// ShiftRows row offsets. Row 0 never shifts; the 256-bit block uses the
// wider (1,3,4) pattern from the Rijndael submission.
func shifts(nb int) [4]int {
	if nb == 8 {
		return [4]int{0, 1, 3, 4}
	}
	return [4]int{0, 1, 2, 3}
}

// NewCipher creates and returns a new Cipher with block size 4*nb bytes.
// The key must be 16, 24 or 32 bytes long.
func NewCipher(key []byte, nb int) (*Cipher, error) {
	w, err := ExpandKey(key, nb)
	if err != nil {
		return nil, err
	}

	nk := len(key) / 4
	nr := nb + 6
	if nk > nb {
		nr = nk + 6
	}

	return &Cipher{nb: nb, nr: nr, w: w}, nil
}

// BlockSize returns the cipher's block size in bytes.
func (c *Cipher) BlockSize() int { return c.nb * 4 }

// Destroy wipes the round-key schedule. The Cipher must not be used
// afterwards.
func (c *Cipher) Destroy() {
	for i := range c.w {
		c.w[i] = 0
	}
	c.w = nil
}

// Encrypt encrypts the first block in src into dst.
// Dst and src may overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	bs := c.nb * 4
	if len(src) < bs {
		panic("rijndael: input not full block")
	}
	if len(dst) < bs {
		panic("rijndael: output not full block")
	}

	var a, b [32]byte
	state := a[:bs]
	next := b[:bs]
	copy(state, src[:bs])

	sh := shifts(c.nb)
	nb := c.nb

	// Initial round key.
	for i := 0; i < bs; i++ {
		state[i] ^= c.w[i]
	}

	// The full rounds fold SubBytes, ShiftRows, MixColumns and
	// AddRoundKey into one pass per column.
	for r := 1; r < c.nr; r++ {
		rk := c.w[r*bs:]
		for col := 0; col < nb; col++ {
			s0 := sbox[state[4*((col+sh[0])%nb)]]
			s1 := sbox[state[4*((col+sh[1])%nb)+1]]
			s2 := sbox[state[4*((col+sh[2])%nb)+2]]
			s3 := sbox[state[4*((col+sh[3])%nb)+3]]
			next[4*col] = lmul2[s0] ^ lmul3[s1] ^ s2 ^ s3 ^ rk[4*col]
			next[4*col+1] = s0 ^ lmul2[s1] ^ lmul3[s2] ^ s3 ^ rk[4*col+1]
			next[4*col+2] = s0 ^ s1 ^ lmul2[s2] ^ lmul3[s3] ^ rk[4*col+2]
			next[4*col+3] = lmul3[s0] ^ s1 ^ s2 ^ lmul2[s3] ^ rk[4*col+3]
		}
		state, next = next, state
	}

	// Final round: no MixColumns.
	rk := c.w[c.nr*bs:]
	for col := 0; col < nb; col++ {
		next[4*col] = sbox[state[4*((col+sh[0])%nb)]] ^ rk[4*col]
		next[4*col+1] = sbox[state[4*((col+sh[1])%nb)+1]] ^ rk[4*col+1]
		next[4*col+2] = sbox[state[4*((col+sh[2])%nb)+2]] ^ rk[4*col+2]
		next[4*col+3] = sbox[state[4*((col+sh[3])%nb)+3]] ^ rk[4*col+3]
	}
	copy(dst[:bs], next)

	wipe(a[:])
	wipe(b[:])
}

// Decrypt decrypts the first block in src into dst.
// Dst and src may overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	bs := c.nb * 4
	if len(src) < bs {
		panic("rijndael: input not full block")
	}
	if len(dst) < bs {
		panic("rijndael: output not full block")
	}

	var a, b [32]byte
	state := a[:bs]
	next := b[:bs]
	copy(state, src[:bs])

	sh := shifts(c.nb)
	nb := c.nb

	// Undo the final round.
	rk := c.w[c.nr*bs:]
	for col := 0; col < nb; col++ {
		next[4*((col+sh[0])%nb)] = invSbox[state[4*col]^rk[4*col]]
		next[4*((col+sh[1])%nb)+1] = invSbox[state[4*col+1]^rk[4*col+1]]
		next[4*((col+sh[2])%nb)+2] = invSbox[state[4*col+2]^rk[4*col+2]]
		next[4*((col+sh[3])%nb)+3] = invSbox[state[4*col+3]^rk[4*col+3]]
	}
	state, next = next, state

	// Full inverse rounds: AddRoundKey, InvMixColumns, then the
	// inverse substitution written through the inverse row shift.
	for r := c.nr - 1; r >= 1; r-- {
		rk := c.w[r*bs:]
		for col := 0; col < nb; col++ {
			t0 := state[4*col] ^ rk[4*col]
			t1 := state[4*col+1] ^ rk[4*col+1]
			t2 := state[4*col+2] ^ rk[4*col+2]
			t3 := state[4*col+3] ^ rk[4*col+3]
			next[4*((col+sh[0])%nb)] = invSbox[lmul14[t0]^lmul11[t1]^lmul13[t2]^lmul9[t3]]
			next[4*((col+sh[1])%nb)+1] = invSbox[lmul9[t0]^lmul14[t1]^lmul11[t2]^lmul13[t3]]
			next[4*((col+sh[2])%nb)+2] = invSbox[lmul13[t0]^lmul9[t1]^lmul14[t2]^lmul11[t3]]
			next[4*((col+sh[3])%nb)+3] = invSbox[lmul11[t0]^lmul13[t1]^lmul9[t2]^lmul14[t3]]
		}
		state, next = next, state
	}

	// Initial round key.
	for i := 0; i < bs; i++ {
		state[i] ^= c.w[i]
	}
	copy(dst[:bs], state)

	wipe(a[:])
	wipe(b[:])
}

func wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
