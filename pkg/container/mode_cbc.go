// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package container

import (
	"strconv"

	"github.com/aesbox/aesbox/pkg/cbc"
	"github.com/aesbox/aesbox/pkg/randsource"
	"github.com/aesbox/aesbox/pkg/rijndael"
)

// cbcMode implements the CBC payload layout. The plaintext is framed
// with a decimal length prefix before encryption so that the zero
// padding can be stripped again on the way out.
type cbcMode struct{}

// No plaintext is longer than 10^19 bytes; anything claiming to be is
// a corrupt prefix, not a length.
const maxLengthDigits = 20

func (cbcMode) seal(c *rijndael.Cipher, rand randsource.Source, line []byte, plaintext []byte) ([]byte, error) {
	bs := c.BlockSize()

	iv := make([]byte, bs)
	if err := rand.Fill(iv); err != nil {
		return nil, err
	}

	inner := make([]byte, 0, len(plaintext)+maxLengthDigits+1)
	inner = append(inner, strconv.Itoa(len(plaintext))...)
	inner = append(inner, '\n')
	inner = append(inner, plaintext...)

	payload := make([]byte, 0, bs+len(inner)+bs)
	payload = append(payload, iv...)
	payload = append(payload, cbc.Encrypt(c, iv, inner)...)

	wipe(inner)
	return payload, nil
}

func (cbcMode) open(c *rijndael.Cipher, line []byte, payload []byte) ([]byte, error) {
	bs := c.BlockSize()
	if len(payload) < bs {
		return nil, ErrBadCiphertextLength
	}

	iv := payload[:bs]
	inner, err := cbc.Decrypt(c, iv, payload[bs:])
	if err != nil {
		return nil, err
	}

	// Parse the "<digits>\n" prefix.
	i := 0
	for i < len(inner) && inner[i] >= '0' && inner[i] <= '9' {
		i++
	}
	if i == 0 || i > maxLengthDigits || i == len(inner) || inner[i] != '\n' {
		wipe(inner)
		return nil, ErrLengthPrefixMissing
	}
	n, err := strconv.Atoi(string(inner[:i]))
	if err != nil || n > len(inner)-i-1 {
		wipe(inner)
		return nil, ErrLengthPrefixMissing
	}

	plaintext := make([]byte, n)
	copy(plaintext, inner[i+1:i+1+n])
	wipe(inner)
	return plaintext, nil
}

func wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
