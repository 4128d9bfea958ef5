package xlog

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// TimeLayout 日志行时间戳格式（yyyy/MM/dd HH:mm:ss.fff）
const TimeLayout = "2006/01/02 15:04:05.000"

// bufPool 行缓冲区池
var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// maxPooledBuf 超过此容量的缓冲区不放回池中
const maxPooledBuf = 16 * 1024

// lineHandler 输出制表符分隔行的 slog.Handler
//
// 每条记录格式为：
//
//	<yyyy/MM/dd HH:mm:ss.fff>\t[<LEVEL>]\t<message>\n
//
// 只输出消息本身，属性与分组被忽略。每条记录只调用一次 w.Write，
// 行的完整性由 w 的并发安全保证（xrotate.Rotator 持锁写入）。
type lineHandler struct {
	w     io.Writer
	level slog.Leveler
}

// newLineHandler 创建 lineHandler
func newLineHandler(w io.Writer, level slog.Leveler) *lineHandler {
	return &lineHandler{w: w, level: level}
}

// Enabled 实现 slog.Handler，委托给 ShouldLog
func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return ShouldLog(Level(level), Level(h.level.Level()))
}

// Handle 实现 slog.Handler
func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	bufp, ok := bufPool.Get().(*[]byte)
	if !ok {
		buf := make([]byte, 0, 256)
		bufp = &buf
	}
	buf := appendLine((*bufp)[:0], r)
	_, err := h.w.Write(buf)

	if cap(buf) <= maxPooledBuf {
		*bufp = buf
		bufPool.Put(bufp)
	}
	return err
}

// WithAttrs 实现 slog.Handler；行格式不携带属性
func (h *lineHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

// WithGroup 实现 slog.Handler；行格式不携带分组
func (h *lineHandler) WithGroup(_ string) slog.Handler { return h }

// appendLine 把一条记录格式化为日志行追加到 buf
func appendLine(buf []byte, r slog.Record) []byte {
	buf = r.Time.AppendFormat(buf, TimeLayout)
	buf = append(buf, "\t["...)
	buf = append(buf, Level(r.Level).String()...)
	buf = append(buf, "]\t"...)
	buf = append(buf, r.Message...)
	return append(buf, '\n')
}
