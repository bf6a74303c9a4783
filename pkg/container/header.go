// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package container

import (
	"fmt"
	"regexp"
)

// Mode names a mode of operation carried in the header.
type Mode string

const (
	// ModeCBC is cipher block chaining; confidentiality only.
	ModeCBC Mode = "CBC"
	// ModeOCB is OCB 2.0 authenticated encryption.
	ModeOCB Mode = "OCB"
)

// Encoding names the payload encoding carried in the header.
type Encoding string

const (
	// Base64 encodes the payload with standard base64.
	Base64 Encoding = "B"
	// Raw stores the payload bytes verbatim.
	Raw Encoding = "N"
)

// CharMarker records whether the host considered the plaintext
// multibyte text ("M") or raw bytes ("U"). The library stores and
// returns it verbatim and never reinterprets the plaintext.
type CharMarker string

const (
	Multibyte CharMarker = "M"
	Unibyte   CharMarker = "U"
)

// A Header holds the parameters of a container. Its marshalled form is
// the plaintext first line of every container and, for OCB, the
// associated data authenticated by the tag.
type Header struct {
	Mode     Mode
	Encoding Encoding
	Nb       int
	Nk       int
	Marker   CharMarker
}

var headerPattern = regexp.MustCompile(`^aes-encrypted V 1\.2-(CBC|OCB)-(B|N)-(4|6|8)-(4|6|8)-(M|U)\n`)

// Marshal renders the header line, trailing newline included.
func (h Header) Marshal() []byte {
	return []byte(fmt.Sprintf("aes-encrypted V 1.2-%s-%s-%d-%d-%s\n", h.Mode, h.Encoding, h.Nb, h.Nk, h.Marker))
}

// parseHeader splits data into its header and the body following the
// header's newline. The returned line includes the newline.
func parseHeader(data []byte) (h Header, line []byte, body []byte, err error) {
	m := headerPattern.FindSubmatch(data)
	if m == nil {
		return Header{}, nil, nil, ErrBadHeader
	}

	h.Mode = Mode(m[1])
	h.Encoding = Encoding(m[2])
	h.Nb = int(m[3][0] - '0')
	h.Nk = int(m[4][0] - '0')
	h.Marker = CharMarker(m[5])

	line = data[:len(m[0])]
	body = data[len(m[0]):]
	return h, line, body, nil
}
