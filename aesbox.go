// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// Package aesbox encrypts byte buffers into the "aes-encrypted" text
// container format and back. The format carries its own parameters, so
// decryption needs nothing but the container and the password.
//
// The cipher is Rijndael with selectable block and key sizes (128, 192
// or 256 bits each), in one of two modes: OCB 2.0 authenticated
// encryption (the default for short plaintexts) or plain CBC. Keys are
// derived from the password with the format's historical KDF; see the
// kdf package for why that construction should not outlive this
// format.
package aesbox

import (
	"github.com/aesbox/aesbox/pkg/container"
	"github.com/aesbox/aesbox/pkg/kdf"
)

// Plaintexts at least this large default to CBC; smaller ones default
// to OCB.
const autoThreshold = 20000

// Encrypt seals plaintext under password and returns the complete
// container. A nil opts selects the defaults: automatic mode choice,
// 128-bit block and key, base64 payload, unibyte marker, crypto/rand
// IVs.
func Encrypt(plaintext []byte, password []byte, opts *Options) ([]byte, error) {
	o := opts.withDefaults()

	mode := o.Mode
	if mode == Auto {
		if len(plaintext) < autoThreshold {
			mode = OCB
		} else {
			mode = CBC
		}
	}

	h := container.Header{
		Encoding: o.Encoding,
		Nb:       o.BlockWords,
		Nk:       o.KeyWords,
		Marker:   o.Marker,
	}
	switch mode {
	case OCB:
		h.Mode = container.ModeOCB
		h.Nb = 4
	case CBC:
		h.Mode = container.ModeCBC
	}

	key, err := kdf.DeriveKey(password, h.Nk)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	return container.Seal(h, key, plaintext, o.Random)
}

// Decrypt opens a container produced by Encrypt (or any interoperable
// implementation of the format) with password. For OCB containers the
// header and payload are authenticated; tampering yields
// ocb2.ErrAuthenticationFailed and no plaintext.
func Decrypt(data []byte, password []byte) ([]byte, error) {
	p, err := container.Parse(data)
	if err != nil {
		return nil, err
	}

	key, err := kdf.DeriveKey(password, p.Header.Nk)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	return p.Open(key)
}

// Marker reports the character-width marker of a container without
// decrypting it. Hosts use it to decide whether to reinterpret the
// decrypted bytes as text; the library itself never does.
func Marker(data []byte) (container.CharMarker, error) {
	p, err := container.Parse(data)
	if err != nil {
		return "", err
	}
	return p.Header.Marker, nil
}

func wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
