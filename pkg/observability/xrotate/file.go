package xrotate

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/omeyang/xlogfile/pkg/util/xfile"
)

// 文件轮转器默认配置值
const (
	// DefaultMaxSize 默认轮转阈值（16 MiB）
	DefaultMaxSize int64 = 16 * 1024 * 1024

	// DefaultFileMode 默认日志文件权限
	DefaultFileMode os.FileMode = 0o600

	// DefaultSync 默认每次写入后同步到磁盘
	DefaultSync = true
)

// fileConfig 文件轮转器配置
type fileConfig struct {
	// MaxSize 轮转阈值（字节），文件大小严格大于该值时轮转
	MaxSize int64

	// RotateOnWrite 每次写入前检查大小（默认只在构造时检查一次）
	RotateOnWrite bool

	// FileMode 新建日志文件的权限，仅允许权限位
	FileMode os.FileMode

	// Sync 每次写入后调用 fsync
	Sync bool

	// Now 时钟，用于备份文件名
	Now func() time.Time
}

// Option 文件轮转器配置选项函数
type Option func(*fileConfig)

// WithMaxSize 设置轮转阈值（字节）
func WithMaxSize(bytes int64) Option {
	return func(c *fileConfig) {
		c.MaxSize = bytes
	}
}

// WithRotateOnWrite 设置是否在每次写入前检查轮转
//
// 关闭时（默认）只在 [NewFile] 构造时检查一次。开启后写入路径上的轮转失败
// 不影响本次写入：数据仍追加到活动文件，Write 返回写入字节数和包装 [ErrRotate] 的错误。
func WithRotateOnWrite(enable bool) Option {
	return func(c *fileConfig) {
		c.RotateOnWrite = enable
	}
}

// WithFileMode 设置新建日志文件的权限（默认 0600）
func WithFileMode(mode os.FileMode) Option {
	return func(c *fileConfig) {
		c.FileMode = mode
	}
}

// WithSync 设置每次写入后是否同步到磁盘（默认开启）
func WithSync(enable bool) Option {
	return func(c *fileConfig) {
		c.Sync = enable
	}
}

// WithClock 设置时钟，主要用于测试备份文件名
func WithClock(now func() time.Time) Option {
	return func(c *fileConfig) {
		if now != nil {
			c.Now = now
		}
	}
}

// fileRotator 基于单个活动文件的 Rotator 实现
//
// mu 同时保护"检查或打开句柄"与"写入+同步"，保证多 goroutine 共享时
// 行不交错、句柄只打开一次。
type fileRotator struct {
	path          string
	maxSize       int64
	rotateOnWrite bool
	fileMode      os.FileMode
	sync          bool
	now           func() time.Time

	mu     sync.Mutex
	file   *os.File
	size   int64 // 当前句柄对应文件的已知大小（打开时 Stat，之后累加）
	closed bool

	// 可注入的文件打开函数（nil 时使用 os.OpenFile），仅用于测试
	openFn func(name string, flag int, perm os.FileMode) (*os.File, error)
}

// NewFile 创建单文件按大小轮转的 Rotator
//
// 参数:
//   - filename: 活动日志文件路径（必需）
//   - opts: 可选配置项
//
// 构造过程：校验配置 → 规范化路径 → 确保父目录存在（0750）→ 执行一次 [MaybeRotate]。
// 轮转失败时返回包装 [ErrRotate] 的错误。文件句柄在首次 Write 时才打开。
func NewFile(filename string, opts ...Option) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg := fileConfig{
		MaxSize:  DefaultMaxSize,
		FileMode: DefaultFileMode,
		Sync:     DefaultSync,
		Now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateFileConfig(&cfg); err != nil {
		return nil, err
	}

	safePath, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, err
	}
	if err := xfile.EnsureDir(safePath); err != nil {
		return nil, err
	}

	if _, err := MaybeRotate(safePath, cfg.MaxSize, cfg.Now()); err != nil {
		return nil, err
	}

	return &fileRotator{
		path:          safePath,
		maxSize:       cfg.MaxSize,
		rotateOnWrite: cfg.RotateOnWrite,
		fileMode:      cfg.FileMode,
		sync:          cfg.Sync,
		now:           cfg.Now,
	}, nil
}

// validateFileConfig 验证文件轮转器配置
func validateFileConfig(cfg *fileConfig) error {
	if cfg.MaxSize <= 0 {
		return fmt.Errorf("%w: got %d, want > 0", ErrInvalidMaxSize, cfg.MaxSize)
	}
	if cfg.FileMode == 0 || cfg.FileMode&^os.FileMode(0o777) != 0 {
		return fmt.Errorf("%w: got %04o, only permission bits (0001~0777) allowed",
			ErrInvalidFileMode, cfg.FileMode)
	}
	return nil
}

// Write 实现 io.Writer 接口
func (r *fileRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrClosed
	}

	// 轮转失败时继续写入原文件，错误在写入成功后返回
	var rotateErr error
	if r.rotateOnWrite {
		rotateErr = r.rotateIfNeededLocked()
	}

	if r.file == nil {
		if err := r.openLocked(); err != nil {
			return 0, errors.Join(rotateErr, err)
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	if err != nil {
		return n, errors.Join(rotateErr, fmt.Errorf("%w: write %s: %w", ErrWrite, r.path, err))
	}
	if r.sync {
		if err := r.file.Sync(); err != nil {
			return n, errors.Join(rotateErr, fmt.Errorf("%w: sync %s: %w", ErrWrite, r.path, err))
		}
	}
	return n, rotateErr
}

// openLocked 以追加模式打开活动文件，调用方必须持有 mu
func (r *fileRotator) openLocked() error {
	open := r.openFn
	if open == nil {
		open = os.OpenFile
	}

	//#nosec G304 -- 路径已经过 SanitizePath 规范化
	f, err := open(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, r.fileMode)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrWrite, r.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: stat %s: %w", ErrWrite, r.path, err)
	}

	r.file = f
	r.size = info.Size()
	return nil
}

// closeFileLocked 关闭当前句柄（如有），调用方必须持有 mu
func (r *fileRotator) closeFileLocked() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.size = 0
	return err
}

// rotateIfNeededLocked 写入前的轮转检查，调用方必须持有 mu
//
// 句柄已打开时用累计大小判断，避免每次写入都 Stat；未打开时直接检查磁盘上的文件。
func (r *fileRotator) rotateIfNeededLocked() error {
	if r.file != nil {
		if r.size <= r.maxSize {
			return nil
		}
		if err := r.closeFileLocked(); err != nil {
			return fmt.Errorf("%w: close %s: %w", ErrRotate, r.path, err)
		}
	}
	_, err := MaybeRotate(r.path, r.maxSize, r.now())
	return err
}

// Close 实现 io.Closer 接口
//
// 关闭后调用 Write 或 Rotate 返回 [ErrClosed]，重复调用 Close 也返回 [ErrClosed]。
// 底层 Close 失败时仍标记为已关闭，不会重新尝试。
func (r *fileRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.closed = true
	return r.closeFileLocked()
}

// Rotate 手动触发轮转
//
// 空文件或不存在的文件不轮转。
func (r *fileRotator) Rotate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.closeFileLocked(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrRotate, r.path, err)
	}
	_, err := MaybeRotate(r.path, 0, r.now())
	return err
}
