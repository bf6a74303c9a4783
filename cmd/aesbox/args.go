// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

type args struct {
	ShowHelp  bool
	Decrypt   bool
	Output    string
	InPlace   bool
	Backup    bool
	Mode      string
	Nb        int
	Nk        int
	Raw       bool
	Multibyte bool
	PassFile  string
	GenPass   int
	ConfPath  string
	LogPath   string
	Verbose   bool
}

func defaultConfDir() string {
	dirname := ".aesbox"
	if runtime.GOOS == "windows" {
		dirname = "aesbox"
	}
	return filepath.Join(os.Getenv("HOME"), dirname)
}

func defaultConfPath() string {
	return filepath.Join(defaultConfDir(), "aesbox.ini")
}

func Usage() {
	fmt.Fprintf(os.Stderr, "usage: aesbox [options] [file]\n")
	fmt.Fprintf(os.Stderr, "Encrypts file (or stdin) into an aes-encrypted container, or decrypts one with -d.\n")
	flag.PrintDefaults()
}

var Args args

func init() {
	flag.BoolVar(&Args.ShowHelp, "help", false, "Show this help listing")
	flag.BoolVar(&Args.Decrypt, "d", false, "Decrypt instead of encrypt")
	flag.StringVar(&Args.Output, "o", "", "Output file (defaults to stdout)")
	flag.BoolVar(&Args.InPlace, "inplace", false, "Replace the input file with the result")
	flag.BoolVar(&Args.Backup, "backup", false, "With -inplace, keep the original as <file>.bak")
	flag.StringVar(&Args.Mode, "mode", "", "Mode of operation: auto, cbc or ocb")
	flag.IntVar(&Args.Nb, "nb", 0, "Block size in 32-bit words: 4, 6 or 8")
	flag.IntVar(&Args.Nk, "nk", 0, "Key size in 32-bit words: 4, 6 or 8")
	flag.BoolVar(&Args.Raw, "raw", false, "Store the payload raw instead of base64")
	flag.BoolVar(&Args.Multibyte, "multibyte", false, "Mark the plaintext as multibyte text in the header")
	flag.StringVar(&Args.PassFile, "passfile", "", "Read the password from the first line of this file")
	flag.IntVar(&Args.GenPass, "genpass", 0, "Print a random password of this many characters and exit")
	flag.StringVar(&Args.ConfPath, "config", "", "Configuration file path")
	flag.StringVar(&Args.LogPath, "log", "", "Append log output to this file")
	flag.BoolVar(&Args.Verbose, "verbose", false, "Log at debug level")
}
