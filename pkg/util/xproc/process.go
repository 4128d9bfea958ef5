// Package xproc 提供当前进程的基础信息：进程名称和程序基准目录。
package xproc

import (
	"os"
	"path/filepath"
	"sync"
)

// 可注入的系统调用，仅用于测试
var (
	osExecutable = os.Executable
	osGetwd      = os.Getwd
)

// processName 缓存进程名称，避免每次调用都执行 readlink 系统调用。
var (
	processNameOnce  sync.Once
	processNameValue string
)

// baseName 提取路径的基础文件名。
// 对 [filepath.Base] 返回的特殊值（"."、".."、路径分隔符）返回空字符串。
func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// resolveProcessName 执行实际的进程名称解析。
func resolveProcessName() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return ""
	}
	return baseName(os.Args[0])
}

// ProcessName 返回当前进程名称（不含路径），首次调用后缓存。
//
// 优先使用 [os.Executable]，失败时回退到 os.Args[0]；全部无效时返回空字符串。
// 用于诊断输出的前缀等"尽力获取"场景。
func ProcessName() string {
	processNameOnce.Do(func() {
		processNameValue = resolveProcessName()
	})
	return processNameValue
}

// BaseDir 返回程序基准目录：可执行文件所在目录。
//
// 可执行文件路径无法获取时回退到当前工作目录，仍失败则返回 "."。
// 默认日志路径 <BaseDir>/log/<yyyy>/<MM>.log 以此为根。
//
// 不缓存结果：调用频率低（仅在构建 Logger 时），且测试需要替换底层实现。
func BaseDir() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := osGetwd(); err == nil && wd != "" {
		return wd
	}
	return "."
}
