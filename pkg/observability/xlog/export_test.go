package xlog

import "io"

// SetNewBuilderForTest 替换 defaultLogger 使用的构建器工厂，返回恢复函数。
func SetNewBuilderForTest(fn func() *Builder) func() {
	old := newBuilder
	newBuilder = fn
	return func() { newBuilder = old }
}

// SetDiagWriterForTest 替换默认诊断通道的输出目标，返回恢复函数。
func SetDiagWriterForTest(w io.Writer) func() {
	old := diagWriter
	diagWriter = w
	return func() { diagWriter = old }
}

// ErrorCount 返回 logger 记录的内部错误次数。
func ErrorCount(l LoggerWithLevel) uint64 {
	if xl, ok := l.(*xlogger); ok {
		return xl.errorCount.Load()
	}
	return 0
}

// DroppedReports 返回因待上报队列已满而未送达 onError 的错误数。
func DroppedReports(l LoggerWithLevel) uint64 {
	if xl, ok := l.(*xlogger); ok {
		return xl.droppedReports.Load()
	}
	return 0
}

// MaxPendingErrors 待上报队列上限。
const MaxPendingErrors = maxPendingErrors
