// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package conf

import (
	"gopkg.in/ini.v1"
)

// Load reads a Config from an ini file. Keys in the global section
// override the built-in defaults.
func Load(path string) (*Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true, UnescapeValueDoubleQuotes: true}, path)
	if err != nil {
		return nil, err
	}
	file.BlockMode = false // read only, avoid locking
	return New(file.Section("").KeysHash()), nil
}

// DefaultConfigFile documents every key the tool understands.
var DefaultConfigFile = `# aesbox configuration file.
#
# The commented out settings represent the defaults.
# Command-line flags override anything set here.

# Mode chooses the mode of operation: auto, cbc or ocb. In auto mode,
# plaintexts shorter than OCBThreshold bytes use OCB, longer ones CBC.
#Mode = auto
#OCBThreshold = 20000

# Block and key size of the cipher, in 32-bit words: 4, 6 or 8.
# OCB always uses a 4-word block regardless of BlockWords.
#BlockWords = 4
#KeyWords = 4

# Payload encoding: base64 or raw.
#Encoding = base64

# Marker recorded in the container header: unibyte or multibyte.
#CharMarker = unibyte

# Append log output to this file in addition to stderr.
#LogPath =
`
