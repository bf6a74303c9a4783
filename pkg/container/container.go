// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// Package container reads and writes the "aes-encrypted" text
// container format: an ASCII header line naming the mode, payload
// encoding, block and key sizes and a character-width marker, followed
// by the payload, optionally base64 encoded.
//
// The payload layout depends on the mode. For CBC it is
//
//	iv || cbc(len_ascii || "\n" || plaintext)
//
// where len_ascii is the decimal plaintext length; the prefix exists
// because CBC zero padding is ambiguous. For OCB it is
//
//	iv || tag || ciphertext
//
// and the exact header line, newline included, is the associated data
// the tag authenticates. Both layouts are byte-exact for
// interoperability with existing containers.
package container

import (
	"bytes"
	"encoding/base64"
	"errors"

	"github.com/aesbox/aesbox/pkg/cbc"
	"github.com/aesbox/aesbox/pkg/randsource"
	"github.com/aesbox/aesbox/pkg/rijndael"
)

var (
	// ErrBadHeader is returned when the first line of a container
	// does not match the header grammar.
	ErrBadHeader = errors.New("container: malformed header line")

	// ErrBadBase64 is returned when a base64 payload fails to decode.
	ErrBadBase64 = errors.New("container: payload is not valid base64")

	// ErrBadCiphertextLength is returned when the payload is too
	// short for its IV and tag prefix, or when a CBC payload is not
	// block aligned.
	ErrBadCiphertextLength = cbc.ErrBadCiphertextLength

	// ErrLengthPrefixMissing is returned when a decrypted CBC payload
	// does not begin with a decimal length and a newline.
	ErrLengthPrefixMissing = errors.New("container: CBC length prefix missing")

	// ErrOCBBlockSize is returned when an OCB header carries a block
	// size other than 128 bits.
	ErrOCBBlockSize = errors.New("container: OCB requires a 128-bit block")
)

// mode drivers, one per header mode.
type payloadMode interface {
	// seal produces the binary payload (before any base64) for
	// plaintext under c. line is the marshalled header.
	seal(c *rijndael.Cipher, rand randsource.Source, line []byte, plaintext []byte) ([]byte, error)
	// open recovers the plaintext from a binary payload.
	open(c *rijndael.Cipher, line []byte, payload []byte) ([]byte, error)
}

func modeFor(h Header) (payloadMode, error) {
	switch h.Mode {
	case ModeCBC:
		return cbcMode{}, nil
	case ModeOCB:
		if h.Nb != 4 {
			return nil, ErrOCBBlockSize
		}
		return ocbMode{}, nil
	}
	return nil, ErrBadHeader
}

// Seal produces a complete container for plaintext: header line plus
// encoded payload. The key must be 4*h.Nk bytes, normally derived from
// a password by the kdf package.
func Seal(h Header, key []byte, plaintext []byte, rand randsource.Source) ([]byte, error) {
	mode, err := modeFor(h)
	if err != nil {
		return nil, err
	}

	c, err := rijndael.NewCipher(key, h.Nb)
	if err != nil {
		return nil, err
	}
	defer c.Destroy()

	line := h.Marshal()
	payload, err := mode.seal(c, rand, line, plaintext)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Write(line)
	if h.Encoding == Base64 {
		enc := base64.StdEncoding
		b64 := make([]byte, enc.EncodedLen(len(payload)))
		enc.Encode(b64, payload)
		out.Write(b64)
	} else {
		out.Write(payload)
	}
	return out.Bytes(), nil
}

// A Parsed is a container whose header has been read and whose payload
// has been decoded, but not yet decrypted. Callers inspect Header to
// derive the key, then call Open.
type Parsed struct {
	Header Header

	line    []byte
	payload []byte
}

// Parse splits and validates a container, decoding the payload when
// the header says it is base64.
func Parse(data []byte) (*Parsed, error) {
	h, line, body, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := body
	if h.Encoding == Base64 {
		// Tolerate line-wrapped base64: some emitters break the
		// body every 76 characters.
		compact := make([]byte, 0, len(body))
		for _, b := range body {
			if b == '\n' || b == '\r' || b == ' ' || b == '\t' {
				continue
			}
			compact = append(compact, b)
		}
		payload = make([]byte, base64.StdEncoding.DecodedLen(len(compact)))
		n, err := base64.StdEncoding.Decode(payload, compact)
		if err != nil {
			return nil, ErrBadBase64
		}
		payload = payload[:n]
	}

	return &Parsed{Header: h, line: line, payload: payload}, nil
}

// Open decrypts the parsed container with key. For OCB the payload is
// authenticated against the header line; authentication failure never
// surfaces plaintext.
func (p *Parsed) Open(key []byte) ([]byte, error) {
	mode, err := modeFor(p.Header)
	if err != nil {
		return nil, err
	}

	c, err := rijndael.NewCipher(key, p.Header.Nb)
	if err != nil {
		return nil, err
	}
	defer c.Destroy()

	return mode.open(c, p.line, p.payload)
}
