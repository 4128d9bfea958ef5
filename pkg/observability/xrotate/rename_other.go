//go:build !linux

package xrotate

// renameNoReplace 重命名文件，目标已存在时返回 ErrBackupExists。
func renameNoReplace(from, to string) error {
	return renameNoReplaceFallback(from, to)
}
