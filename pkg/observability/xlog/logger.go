package xlog

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// maxPendingErrors 等待上报的写入失败上限，也是一次上报轮次最多调用 onError 的次数
const maxPendingErrors = 256

// 编译时接口检查
var (
	_ Logger          = (*xlogger)(nil)
	_ Leveler         = (*xlogger)(nil)
	_ LoggerWithLevel = (*xlogger)(nil)
)

// xlogger Logger 接口的实现
type xlogger struct {
	handler        slog.Handler
	levelVar       *slog.LevelVar
	path           string
	now            func() time.Time
	onError        func(error)   // 写入失败回调（诊断通道）
	errorCount     atomic.Uint64 // 内部错误计数器（用于监控/测试）
	droppedReports atomic.Uint64 // 待上报队列已满而未送达 onError 的错误数

	reportMu  sync.Mutex
	pending   []error // 等待送达 onError 的写入失败
	reporting bool    // 是否已有 goroutine 在执行上报
}

// log 通用日志方法
//
// 级别过滤先于一切：被过滤的调用不取时间、不触碰文件句柄。
func (l *xlogger) log(level Level, msg string) {
	ctx := context.Background()
	if !l.handler.Enabled(ctx, slog.Level(level)) {
		return
	}

	r := slog.NewRecord(l.now(), slog.Level(level), msg, 0)
	if err := l.handler.Handle(ctx, r); err != nil {
		l.handleError(err)
	}
}

// handleError 处理写入失败
//
// 失败只计数并通知 onError，绝不返回给业务调用方。
//
// onError 同一时刻只在一个 goroutine 中执行：先入队，没有上报者时由当前
// goroutine 接手，依次送达队列中的全部错误，包括回调执行期间其他 goroutine
// 产生的错误。回调内部再次触发的写入失败同样只入队，不会递归。
// 每个上报轮次最多调用 onError maxPendingErrors 次，剩余错误留给下一次失败的上报者；
// 队列已满时新错误只计入 errorCount 与 droppedReports。
func (l *xlogger) handleError(err error) {
	l.errorCount.Add(1)
	if l.onError == nil {
		return
	}

	l.reportMu.Lock()
	if len(l.pending) >= maxPendingErrors {
		l.droppedReports.Add(1)
	} else {
		l.pending = append(l.pending, err)
	}
	if l.reporting {
		l.reportMu.Unlock()
		return
	}
	l.reporting = true
	l.reportMu.Unlock()

	l.drainErrors()
}

// drainErrors 送达待上报的错误，直到队列为空或本轮次配额用完
func (l *xlogger) drainErrors() {
	budget := maxPendingErrors
	for {
		l.reportMu.Lock()
		if len(l.pending) == 0 || budget == 0 {
			l.reporting = false
			l.reportMu.Unlock()
			return
		}
		n := min(len(l.pending), budget)
		batch := make([]error, n)
		copy(batch, l.pending)
		l.pending = append(l.pending[:0], l.pending[n:]...)
		l.reportMu.Unlock()

		budget -= n
		for _, err := range batch {
			l.safeOnError(err)
		}
	}
}

// safeOnError 安全执行 onError 回调，隔离 panic
func (l *xlogger) safeOnError(err error) {
	defer func() {
		if r := recover(); r != nil {
			l.errorCount.Add(1)
		}
	}()
	l.onError(err)
}

// Trace 记录 TRACE 级别日志
func (l *xlogger) Trace(msg string) { l.log(LevelTrace, msg) }

// Debug 记录 DEBUG 级别日志
func (l *xlogger) Debug(msg string) { l.log(LevelDebug, msg) }

// Info 记录 INFO 级别日志
func (l *xlogger) Info(msg string) { l.log(LevelInfo, msg) }

// Warning 记录 WARNING 级别日志
func (l *xlogger) Warning(msg string) { l.log(LevelWarning, msg) }

// Error 记录 ERROR 级别日志
func (l *xlogger) Error(msg string) { l.log(LevelError, msg) }

// Fatal 记录 FATAL 级别日志
func (l *xlogger) Fatal(msg string) { l.log(LevelFatal, msg) }

// SetLevel 动态设置日志级别（实现 Leveler 接口）
func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

// GetLevel 获取当前日志级别（实现 Leveler 接口）
func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

// Enabled 检查指定级别是否启用（实现 Leveler 接口）
func (l *xlogger) Enabled(level Level) bool {
	return l.handler.Enabled(context.Background(), slog.Level(level))
}

// FilePath 返回活动日志文件路径
func (l *xlogger) FilePath() string {
	return l.path
}
