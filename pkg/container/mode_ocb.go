// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package container

import (
	"github.com/aesbox/aesbox/pkg/ocb2"
	"github.com/aesbox/aesbox/pkg/randsource"
	"github.com/aesbox/aesbox/pkg/rijndael"
)

// ocbMode implements the OCB payload layout: iv || tag || ciphertext,
// with the header line as associated data. The ciphertext is exactly
// as long as the plaintext.
type ocbMode struct{}

func (ocbMode) seal(c *rijndael.Cipher, rand randsource.Source, line []byte, plaintext []byte) ([]byte, error) {
	payload := make([]byte, ocb2.NonceSize+ocb2.TagSize+len(plaintext))
	iv := payload[:ocb2.NonceSize]
	tag := payload[ocb2.NonceSize : ocb2.NonceSize+ocb2.TagSize]
	ciphertext := payload[ocb2.NonceSize+ocb2.TagSize:]

	if err := rand.Fill(iv); err != nil {
		return nil, err
	}

	ocb2.Encrypt(c, ciphertext, plaintext, iv, line, tag)
	return payload, nil
}

func (ocbMode) open(c *rijndael.Cipher, line []byte, payload []byte) ([]byte, error) {
	if len(payload) < ocb2.NonceSize+ocb2.TagSize {
		return nil, ErrBadCiphertextLength
	}

	iv := payload[:ocb2.NonceSize]
	tag := payload[ocb2.NonceSize : ocb2.NonceSize+ocb2.TagSize]
	ciphertext := payload[ocb2.NonceSize+ocb2.TagSize:]

	plaintext := make([]byte, len(ciphertext))
	if err := ocb2.Decrypt(c, plaintext, ciphertext, iv, line, tag); err != nil {
		return nil, err
	}
	return plaintext, nil
}
