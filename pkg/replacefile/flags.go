// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// Package replacefile atomically swaps a file's contents for a
// replacement written next to it, keeping an optional backup of the
// original. It backs the tool's in-place encryption: the original file
// is only replaced once the complete output is on disk.
package replacefile

type Flag uint32

const (
	// KeepBackup preserves the replaced file under the backup name
	// instead of discarding it.
	KeepBackup Flag = 0x1
)
