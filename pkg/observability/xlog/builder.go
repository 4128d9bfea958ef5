package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/omeyang/xlogfile/pkg/observability/xrotate"
	"github.com/omeyang/xlogfile/pkg/util/xfile"
	"github.com/omeyang/xlogfile/pkg/util/xproc"
)

// DefaultRotateSize 默认轮转阈值（16 MiB）
const DefaultRotateSize = xrotate.DefaultMaxSize

// Builder 日志配置构建器
type Builder struct {
	filename      string
	baseDir       string
	rotateSize    int64
	rotateOnWrite bool
	fileMode      os.FileMode
	sync          bool
	levelVar      *slog.LevelVar
	now           func() time.Time
	onError       func(error)
	used          bool
	err           error
}

// New 创建配置构建器
//
// 默认值：文件路径为 <程序目录>/log/<yyyy>/<MM>.log、阈值 16 MiB、级别 INFO、
// 每次写入后同步、写入失败输出到 stderr。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	return &Builder{
		rotateSize: DefaultRotateSize,
		fileMode:   xrotate.DefaultFileMode,
		sync:       xrotate.DefaultSync,
		levelVar:   levelVar,
		now:        time.Now,
		onError:    stderrOnError,
	}
}

// setErr 记录第一个配置错误（first-error-wins）
func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// SetFile 设置活动日志文件路径
//
// 为空时使用默认路径，见 [DefaultFilePath]。缺失的父目录在构建时以 0750 创建。
func (b *Builder) SetFile(filename string) *Builder {
	b.filename = filename
	return b
}

// SetBaseDir 设置默认路径的基准目录（默认为程序所在目录）
//
// 仅在未通过 SetFile 指定路径时生效。
func (b *Builder) SetBaseDir(dir string) *Builder {
	b.baseDir = dir
	return b
}

// SetRotateSize 设置轮转阈值（字节），文件大小严格大于该值时轮转
func (b *Builder) SetRotateSize(bytes int64) *Builder {
	if bytes <= 0 {
		b.setErr(fmt.Errorf("%w: got %d, want > 0", ErrInvalidRotateSize, bytes))
		return b
	}
	b.rotateSize = bytes
	return b
}

// SetRotateEachWrite 设置是否在每次写入前检查轮转
//
// 默认关闭：只在 Build 时检查一次，长期运行的实例不会在运行中轮转。
// 开启后，写入路径上的轮转失败交给 onError，不会返回给调用方；该行仍追加到原文件。
func (b *Builder) SetRotateEachWrite(enable bool) *Builder {
	b.rotateOnWrite = enable
	return b
}

// SetFileMode 设置新建日志文件的权限（默认 0600）
func (b *Builder) SetFileMode(mode os.FileMode) *Builder {
	b.fileMode = mode
	return b
}

// SetSync 设置每次写入后是否同步到磁盘（默认开启）
func (b *Builder) SetSync(enable bool) *Builder {
	b.sync = enable
	return b
}

// SetLevel 设置最低输出级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置最低输出级别
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.setErr(err)
		return b
	}
	return b.SetLevel(level)
}

// SetClock 设置时钟，用于日志行时间戳、默认路径和备份文件名
func (b *Builder) SetClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// SetOnError 设置写入失败回调
//
// 当打开、写入或同步日志文件失败时调用；日志方法本身始终正常返回。
// 默认回调向 stderr 输出一行诊断信息，传入 nil 保持默认。
//
// 注意事项：
//   - 回调在日志调用的 goroutine 中同步执行，应保持轻量
//   - 回调串行执行：其他 goroutine 的失败在回调返回后依次送达，不会丢失
//   - 回调内部再次触发写入失败时不会递归
//   - 回调 panic 被捕获
func (b *Builder) SetOnError(fn func(error)) *Builder {
	if fn != nil {
		b.onError = fn
	}
	return b
}

// Build 构建 Logger 实例
//
// 返回值：
//   - LoggerWithLevel: 日志实例，同时支持动态级别控制
//   - func() error: 释放函数，关闭文件句柄；可多次调用，只有第一次生效
//   - error: 配置错误、默认目录创建失败或构造期轮转失败（包装 xrotate.ErrRotate）
//
// Builder 为一次性使用，再次调用返回 [ErrBuilderUsed]。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.used {
		return nil, nil, ErrBuilderUsed
	}
	b.used = true
	if b.err != nil {
		return nil, nil, b.err
	}

	filename := b.filename
	if filename == "" {
		baseDir := b.baseDir
		if baseDir == "" {
			baseDir = xproc.BaseDir()
		}
		path, err := DefaultFilePath(baseDir, b.now())
		if err != nil {
			return nil, nil, err
		}
		filename = path
	}
	filename, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, nil, err
	}

	rotator, err := xrotate.NewFile(filename,
		xrotate.WithMaxSize(b.rotateSize),
		xrotate.WithRotateOnWrite(b.rotateOnWrite),
		xrotate.WithFileMode(b.fileMode),
		xrotate.WithSync(b.sync),
		xrotate.WithClock(b.now),
	)
	if err != nil {
		return nil, nil, err
	}

	logger := &xlogger{
		handler:  newLineHandler(rotator, b.levelVar),
		levelVar: b.levelVar,
		path:     filename,
		now:      b.now,
		onError:  b.onError,
	}
	return logger, closeOnce(rotator), nil
}

// closeOnce 创建只执行一次的释放函数
func closeOnce(rotator xrotate.Rotator) func() error {
	var (
		once sync.Once
		err  error
	)
	return func() error {
		once.Do(func() {
			err = rotator.Close()
		})
		return err
	}
}

// diagWriter 默认诊断通道的输出目标，测试中可替换
var diagWriter io.Writer = os.Stderr

// stderrOnError 默认的诊断通道：向 stderr 输出一行
func stderrOnError(err error) {
	fmt.Fprintf(diagWriter, "%s: xlog: %v\n", xproc.ProcessName(), err)
}
