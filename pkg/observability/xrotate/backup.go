package xrotate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/omeyang/xlogfile/pkg/util/xfile"
)

// BackupTimeLayout 备份文件名中的时间戳格式（yyyyMMddHHmmss）
const BackupTimeLayout = "20060102150405"

// BackupName 计算 filename 在时刻 t 的备份文件名：<dir>/<name>_<yyyyMMddHHmmss><ext>
//
// 时间戳使用 t 自身的时区，调用方传入本地时间即得到本地时间戳。
func BackupName(filename string, t time.Time) string {
	dir, name, ext := xfile.SplitName(filename)
	return filepath.Join(dir, name+"_"+t.Format(BackupTimeLayout)+ext)
}

// MaybeRotate 检查 filename 的大小，超过 maxSize 字节时重命名为备份文件。
//
// 文件不存在、不是普通文件或大小 <= maxSize 时不做任何事，返回空字符串；
// 因此对未超阈值的文件重复调用是幂等的。发生轮转时返回备份文件路径。
//
// 任何失败都包装 [ErrRotate] 返回；备份名被占用时额外包装 [ErrBackupExists]。
func MaybeRotate(filename string, maxSize int64, now time.Time) (string, error) {
	size, ok, err := xfile.RegularFileSize(filename)
	if err != nil {
		return "", fmt.Errorf("%w: stat %s: %w", ErrRotate, filename, err)
	}
	if !ok || size <= maxSize {
		return "", nil
	}

	backup := BackupName(filename, now)
	if err := renameNoReplace(filename, backup); err != nil {
		return "", fmt.Errorf("%w: rename %s to %s: %w", ErrRotate, filename, backup, err)
	}
	return backup, nil
}

// renameNoReplaceFallback 先检查目标是否存在再重命名，目标已存在时返回 ErrBackupExists。
//
// 存在检查与 rename 之间有时间窗口；同进程内的轮转由 Rotator 的锁串行化，
// 跨进程并发写同一路径不在本包处理范围内。
func renameNoReplaceFallback(from, to string) error {
	if _, err := os.Lstat(to); err == nil {
		return ErrBackupExists
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(from, to)
}
