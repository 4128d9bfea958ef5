//go:build linux

package xrotate

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace 以 RENAME_NOREPLACE 原子重命名，目标已存在时返回 ErrBackupExists。
//
// 文件系统或内核不支持该标志时退回检查后重命名。
func renameNoReplace(from, to string) error {
	err := unix.Renameat2(unix.AT_FDCWD, from, unix.AT_FDCWD, to, unix.RENAME_NOREPLACE)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.EEXIST):
		return ErrBackupExists
	case errors.Is(err, unix.ENOSYS), errors.Is(err, unix.EINVAL):
		return renameNoReplaceFallback(from, to)
	default:
		return &os.LinkError{Op: "rename", Old: from, New: to, Err: err}
	}
}
