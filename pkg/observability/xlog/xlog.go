// xlog.go 定义核心接口：Logger、Leveler、LoggerWithLevel
//
// 设计理念：
//   - 六个级别入口，只接受一条消息字符串
//   - 级别过滤在任何 I/O 之前完成
//   - 写入失败不向调用方返回、不 panic，交给 onError 诊断通道
//   - 生命周期管理，Build() 返回 cleanup 函数
package xlog

// Logger 日志接口
//
// 所有方法都不返回错误：写入失败由 Builder.SetOnError 配置的回调处理。
type Logger interface {
	// Trace 记录 TRACE 级别日志
	Trace(msg string)

	// Debug 记录 DEBUG 级别日志
	Debug(msg string)

	// Info 记录 INFO 级别日志
	Info(msg string)

	// Warning 记录 WARNING 级别日志
	Warning(msg string)

	// Error 记录 ERROR 级别日志
	Error(msg string)

	// Fatal 记录 FATAL 级别日志（只记录，不退出进程）
	Fatal(msg string)
}

// Leveler 级别控制接口
//
// 与 Logger 分离，避免污染核心日志接口。
type Leveler interface {
	// SetLevel 设置最低输出级别，对之后的调用立即生效
	SetLevel(level Level)

	// GetLevel 获取当前最低输出级别
	GetLevel() Level

	// Enabled 检查指定级别是否会被输出
	Enabled(level Level) bool
}

// LoggerWithLevel 组合接口：Logger + Leveler
//
// Build() 返回此接口，避免业务代码频繁类型断言。
type LoggerWithLevel interface {
	Logger
	Leveler

	// FilePath 返回活动日志文件的路径（已解析默认路径）
	FilePath() string
}
