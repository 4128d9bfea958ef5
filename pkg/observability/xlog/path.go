package xlog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/omeyang/xlogfile/pkg/util/xfile"
)

// DefaultFilePath 计算默认日志文件路径 <baseDir>/log/<yyyy>/<MM>.log，并创建其所在目录
//
// 显式接收基准目录与当前时间，不读取进程全局状态；
// [Builder.Build] 在未设置文件路径时以 xproc.BaseDir() 和时钟调用它。
// 目录创建失败直接返回错误。
func DefaultFilePath(baseDir string, now time.Time) (string, error) {
	path := FilePathFor(baseDir, now)
	if err := xfile.EnsureDir(path); err != nil {
		return "", fmt.Errorf("xlog: create log directory for %s: %w", path, err)
	}
	return path, nil
}

// FilePathFor 计算默认日志文件路径 <baseDir>/log/<yyyy>/<MM>.log，不创建目录
func FilePathFor(baseDir string, now time.Time) string {
	return filepath.Join(baseDir, "log", now.Format("2006"), now.Format("01")+".log")
}
