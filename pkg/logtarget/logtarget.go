// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// Package logtarget implements a multiplexing logging target
package logtarget

import (
	"os"
	"sync"
)

// LogTarget implements the io.Writer interface, allowing
// LogTarget to be registered with the logging backend.
// Writes always go to stderr and, once OpenFile has been
// called, to an append-only log file as well.
type LogTarget struct {
	mu    sync.Mutex
	logfn string
	file  *os.File
}

var Target LogTarget

// Write writes a log message to stderr and the log file, if any.
func (target *LogTarget) Write(in []byte) (int, error) {
	target.mu.Lock()
	defer target.mu.Unlock()

	n, err := os.Stderr.Write(in)
	if err != nil {
		return n, err
	}

	if target.file != nil {
		n, err = target.file.Write(in)
		if err != nil {
			return n, err
		}
	}

	return len(in), nil
}

// OpenFile opens the main log file for writing.
// This method will open the file in append-only mode.
func (target *LogTarget) OpenFile(fn string) (err error) {
	target.mu.Lock()
	defer target.mu.Unlock()

	target.logfn = fn
	target.file, err = os.OpenFile(target.logfn, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0650)
	if err != nil {
		return err
	}
	return nil
}

// Rotate rotates the current log file.
// This method holds a lock while rotating the log file,
// and all log writes will be held back until the rotation
// is complete.
func (target *LogTarget) Rotate() error {
	target.mu.Lock()
	defer target.mu.Unlock()

	if target.file == nil {
		return nil
	}

	// Close the existing log file
	err := target.file.Close()
	if err != nil {
		return err
	}

	target.file, err = os.OpenFile(target.logfn, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0650)
	if err != nil {
		return err
	}

	return nil
}
