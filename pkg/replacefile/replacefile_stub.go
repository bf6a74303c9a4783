// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// +build !windows

package replacefile

import (
	"os"
)

// ReplaceFile replaces the file named replaced with the file named
// replacement via rename. Without KeepBackup this is a single atomic
// rename and the old contents are discarded with it. With KeepBackup
// replaced is first renamed to the backup name, so between the two
// renames no file exists under the name replaced.
func ReplaceFile(replaced string, replacement string, backup string, flags Flag) error {
	if flags&KeepBackup != 0 {
		if err := os.Rename(replaced, backup); err != nil {
			return err
		}
	}
	return os.Rename(replacement, replaced)
}
