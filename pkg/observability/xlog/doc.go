// Package xlog 提供按级别过滤、写入单个文件并按大小轮转的日志库。
//
// # 输出格式
//
// 每次调用追加一行（UTF-8，本地时间，制表符分隔）：
//
//	2024/05/20 14:30:00.123	[INFO]	service started
//
// 级别名称为 TRACE、DEBUG、INFO、WARNING、ERROR、FATAL。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：保留遇到的第一个配置错误，Build 时返回）。
// Builder 为一次性使用：调用 [Builder.Build] 后不可复用。
//
//	logger, cleanup, err := xlog.New().
//		SetFile("/var/log/app/app.log").
//		SetRotateSize(16 << 20).
//		SetLevel(xlog.LevelDebug).
//		Build()
//	if err != nil {
//		return err // 配置错误或构造期轮转失败
//	}
//	defer cleanup()
//
// 未设置文件时使用 [DefaultFilePath]：<程序目录>/log/<yyyy>/<MM>.log。
//
// # 轮转
//
// Build 时检查一次活动文件大小，严格大于阈值时重命名为 <name>_<yyyyMMddHHmmss><ext>
// （见 xrotate）。默认不在运行中再次检查；需要持续约束时使用 [Builder.SetRotateEachWrite]。
//
// # 错误处理
//
// 两类错误走不同通道：
//   - 构造期轮转失败、配置错误：由 Build 返回
//   - 打开/写入/同步失败：日志方法照常返回，错误交给 [Builder.SetOnError] 回调
//     （默认向 stderr 输出一行）
//
// # 并发
//
// Logger 可被多个 goroutine 共享：级别保存在 slog.LevelVar 中，
// 文件句柄的惰性打开与"写入+同步"在同一把锁内完成。
//
// # 全局 Logger
//
// [Default] 惰性构建一个使用默认配置的 Logger；[Trace]、[Debug]、[Info]、
// [Warning]、[Error]、[Fatal] 为对应的便利函数。默认路径不可用时降级为 stderr。
package xlog
