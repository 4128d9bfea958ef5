package xproc

import "sync"

// ResetProcessName 重置进程名称缓存（仅用于测试）。
func ResetProcessName() {
	processNameOnce = sync.Once{}
	processNameValue = ""
}

// SetExecutableForTest 替换可执行文件路径解析函数，返回恢复函数。
func SetExecutableForTest(fn func() (string, error)) func() {
	old := osExecutable
	osExecutable = fn
	return func() { osExecutable = old }
}

// SetGetwdForTest 替换工作目录解析函数，返回恢复函数。
func SetGetwdForTest(fn func() (string, error)) func() {
	old := osGetwd
	osGetwd = fn
	return func() { osGetwd = old }
}
