package xrotate

import "io"

// 编译时断言：Rotator 接口是 io.WriteCloser 的超集
var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器接口
//
// 隐式实现 [io.WriteCloser]，可直接作为 xlog 的输出目标。
// 所有实现都必须是并发安全的。
//
// 约定：
//   - Close 后调用 Write 或 Rotate 返回 [ErrClosed]
//   - 重复调用 Close 返回 [ErrClosed]
//   - Rotate 可以在任意时刻调用
type Rotator interface {
	// Write 追加写入一段数据，调用方保证 p 是完整的一行
	Write(p []byte) (n int, err error)

	// Close 关闭当前文件句柄，释放资源
	Close() error

	// Rotate 手动触发轮转：关闭当前句柄，把非空的活动文件重命名为备份文件，
	// 下一次写入重新创建活动文件
	Rotate() error
}
