// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package main

import (
	"fmt"
	"strings"

	"github.com/aesbox/aesbox"
	"github.com/aesbox/aesbox/pkg/conf"
	"github.com/aesbox/aesbox/pkg/container"
)

// process turns input into output: a container on encrypt, the
// recovered plaintext on decrypt. Flags override the configuration,
// which overrides the built-in defaults.
func process(cfg *conf.Config, a args, password []byte, input []byte) ([]byte, error) {
	if a.Decrypt {
		return aesbox.Decrypt(input, password)
	}

	opts := &aesbox.Options{}

	mode := a.Mode
	if mode == "" {
		mode = cfg.StringValue("Mode")
	}
	switch strings.ToLower(mode) {
	case "", "auto":
		// The library's Auto uses a fixed threshold; resolve the
		// configurable one here instead.
		if len(input) < cfg.IntValue("OCBThreshold") {
			opts.Mode = aesbox.OCB
		} else {
			opts.Mode = aesbox.CBC
		}
	case "cbc":
		opts.Mode = aesbox.CBC
	case "ocb":
		opts.Mode = aesbox.OCB
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	opts.BlockWords = a.Nb
	if opts.BlockWords == 0 {
		opts.BlockWords = cfg.IntValue("BlockWords")
	}
	opts.KeyWords = a.Nk
	if opts.KeyWords == 0 {
		opts.KeyWords = cfg.IntValue("KeyWords")
	}

	if a.Raw || strings.EqualFold(cfg.StringValue("Encoding"), "raw") {
		opts.Encoding = container.Raw
	}
	if a.Multibyte || strings.EqualFold(cfg.StringValue("CharMarker"), "multibyte") {
		opts.Marker = container.Multibyte
	}

	return aesbox.Encrypt(input, password, opts)
}
