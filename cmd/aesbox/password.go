// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh/terminal"
)

var errPasswordMismatch = errors.New("passwords do not match")

// readPassFile returns the first line of the password file, without
// the line terminator.
func readPassFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return bytes.TrimSuffix(data, []byte("\r")), nil
}

// promptPassword reads a password from the controlling terminal with
// echo disabled. When confirm is set the password is read twice and
// both entries must match. The prompt goes to the terminal, not
// stdout, so piped output stays clean.
func promptPassword(confirm bool) ([]byte, error) {
	tty, owned, err := openTTY()
	if err != nil {
		return nil, err
	}
	// The prompt goes to the opened tty, or to stderr when reading
	// straight from a terminal stdin.
	out := io.Writer(os.Stderr)
	if owned {
		defer tty.Close()
		out = tty
	}

	fd := int(tty.Fd())
	if !terminal.IsTerminal(fd) {
		return nil, errors.New("no terminal available to prompt for a password; use -passfile")
	}

	fmt.Fprintf(out, "Password: ")
	password, err := terminal.ReadPassword(fd)
	fmt.Fprintf(out, "\n")
	if err != nil {
		return nil, err
	}

	if confirm {
		fmt.Fprintf(out, "Repeat password: ")
		again, err := terminal.ReadPassword(fd)
		fmt.Fprintf(out, "\n")
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(password, again) {
			return nil, errPasswordMismatch
		}
		for i := range again {
			again[i] = 0
		}
	}

	return password, nil
}

func openTTY() (f *os.File, owned bool, err error) {
	if terminal.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, false, nil
	}
	f, err = os.OpenFile(ttyName, os.O_RDWR, 0)
	return f, true, err
}
