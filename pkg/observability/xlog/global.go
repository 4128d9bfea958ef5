package xlog

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// =============================================================================
// 全局 Logger
//
// 定位：脚手架/小工具等简单场景，写入默认路径 <程序目录>/log/<yyyy>/<MM>.log。
// 服务端推荐依赖注入（显式持有 Logger 并在退出时调用 cleanup）。
// =============================================================================

// globalLogger 全局 Logger 实例（并发安全）
var globalLogger atomic.Pointer[LoggerWithLevel]

// globalMu 保护 globalOnce 及其 Do 执行（也用于 ResetDefault）
var globalMu sync.Mutex

// globalOnce 确保默认 Logger 只初始化一次
var globalOnce sync.Once

// newBuilder 默认 Logger 使用的构建器工厂，测试中可替换
var newBuilder = New

// defaultLogger 创建默认 Logger（惰性初始化）
//
// 在持锁状态下执行 once.Do，避免与 ResetDefault 重置 globalOnce 并发。
func defaultLogger() LoggerWithLevel {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalOnce.Do(func() {
		// 全局 Logger 随进程存活，cleanup 不调用；每次写入已同步到磁盘
		logger, _, err := newBuilder().Build()
		if err != nil {
			// 默认路径不可用（目录无法创建、构造期轮转失败）时降级为 stderr，
			// 避免库代码 panic 终止宿主进程。
			fmt.Fprintf(diagWriter, "xlog: failed to build default logger: %v, using stderr\n", err)
			levelVar := new(slog.LevelVar)
			var fallback LoggerWithLevel = &xlogger{
				handler:  newLineHandler(os.Stderr, levelVar),
				levelVar: levelVar,
				now:      time.Now,
			}
			globalLogger.Store(&fallback)
			return
		}
		globalLogger.Store(&logger)
	})
	return *globalLogger.Load()
}

// Default 返回全局默认 Logger
//
// 懒初始化：首次调用时以默认配置构建。并发安全。
func Default() LoggerWithLevel {
	if l := globalLogger.Load(); l != nil {
		return *l
	}
	return defaultLogger()
}

// SetDefault 替换全局默认 Logger
//
// 传入 nil 时忽略。要重置为默认 logger，请使用 ResetDefault()。
func SetDefault(l LoggerWithLevel) {
	if l == nil {
		return
	}
	globalLogger.Store(&l)
}

// ResetDefault 重置全局 Logger 为未初始化状态（仅用于测试）
func ResetDefault() {
	globalMu.Lock()
	globalLogger.Store(nil)
	globalOnce = sync.Once{}
	globalMu.Unlock()
}

// Trace 使用全局 Logger 记录 TRACE 级别日志
func Trace(msg string) { Default().Trace(msg) }

// Debug 使用全局 Logger 记录 DEBUG 级别日志
func Debug(msg string) { Default().Debug(msg) }

// Info 使用全局 Logger 记录 INFO 级别日志
func Info(msg string) { Default().Info(msg) }

// Warning 使用全局 Logger 记录 WARNING 级别日志
func Warning(msg string) { Default().Warning(msg) }

// Error 使用全局 Logger 记录 ERROR 级别日志
func Error(msg string) { Default().Error(msg) }

// Fatal 使用全局 Logger 记录 FATAL 级别日志
func Fatal(msg string) { Default().Fatal(msg) }
