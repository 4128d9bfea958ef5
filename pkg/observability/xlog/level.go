package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，与 slog.Level 兼容
//
// 取值按严重程度递增：TRACE < DEBUG < INFO < WARNING < ERROR < FATAL，
// 相邻级别间隔 4，与 slog 的约定一致。
type Level slog.Level

// 日志级别常量
const (
	LevelTrace   = Level(slog.LevelDebug - 4)
	LevelDebug   = Level(slog.LevelDebug)
	LevelInfo    = Level(slog.LevelInfo)
	LevelWarning = Level(slog.LevelWarn)
	LevelError   = Level(slog.LevelError)
	LevelFatal   = Level(slog.LevelError + 4)
)

// Levels 按严重程度升序列出全部标准级别
var Levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError, LevelFatal}

// ShouldLog 判断 level 的日志在最低级别 minLevel 下是否输出
//
// 纯函数：level >= minLevel 时返回 true。
func ShouldLog(level, minLevel Level) bool {
	return level >= minLevel
}

// String 返回级别的规范名称，即日志行中 [LEVEL] 的内容
//
// 非标准级别委托给 slog.Level.String()（如 "INFO+2"）。
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return slog.Level(l).String()
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口
//
// 支持从命令行参数、环境变量直接解析日志级别。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析字符串为日志级别
// 支持 trace/debug/info/warning/warn/error/fatal（大小写不敏感，自动 TrimSpace）
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("%w %q", ErrUnknownLevel, s)
	}
}
