// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// +build !windows

package main

const ttyName = "/dev/tty"
