// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package aesbox

import (
	"github.com/aesbox/aesbox/pkg/container"
	"github.com/aesbox/aesbox/pkg/randsource"
)

// Mode selects the mode of operation for Encrypt.
type Mode int

const (
	// Auto picks OCB for plaintexts under 20000 bytes, CBC above.
	Auto Mode = iota
	// CBC forces cipher block chaining.
	CBC
	// OCB forces OCB 2.0 authenticated encryption.
	OCB
)

// Options tune Encrypt. The zero value selects every default, as does
// nil; fill in only the fields to override, the rest default.
type Options struct {
	// Mode of operation; Auto by default.
	Mode Mode

	// BlockWords is Nb, the block size in 32-bit words: 4, 6 or 8.
	// Forced to 4 when OCB ends up selected. Default 4.
	BlockWords int

	// KeyWords is Nk, the key size in 32-bit words: 4, 6 or 8.
	// Default 4.
	KeyWords int

	// Encoding of the payload: container.Base64 (default) or
	// container.Raw.
	Encoding container.Encoding

	// Marker is stored verbatim in the header. Hosts that encrypted
	// multibyte text set container.Multibyte to know to decode it
	// again later. Default container.Unibyte.
	Marker container.CharMarker

	// Random supplies IV bytes. Default randsource.Crypto.
	Random randsource.Source
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.BlockWords == 0 {
		out.BlockWords = 4
	}
	if out.KeyWords == 0 {
		out.KeyWords = 4
	}
	if out.Encoding == "" {
		out.Encoding = container.Base64
	}
	if out.Marker == "" {
		out.Marker = container.Unibyte
	}
	if out.Random == nil {
		out.Random = randsource.Crypto
	}
	return out
}
