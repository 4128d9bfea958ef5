// Package xrotate 提供按大小触发的日志文件轮转。
//
// 轮转即把当前活动文件重命名为同目录下带时间戳的备份文件：
//
//	/var/log/2024/05.log  ->  /var/log/2024/05_20240520143000.log
//
// 之后的写入在原路径重新创建新文件。备份文件一经生成即不再被本包管理
// （不压缩、不清理、不限制数量）。
//
// # 组成
//
//   - [MaybeRotate]: 单次轮转检查。文件不存在或大小 <= 阈值时什么都不做（严格大于才轮转）
//   - [BackupName]: 计算备份文件名，时间戳精度为秒
//   - [NewFile]: 基于 [Rotator] 接口的文件写入器，构造时执行一次轮转检查，
//     首次写入时以追加模式惰性打开文件，每次写入后同步到磁盘
//
// # 轮转时机
//
// 默认只在 [NewFile] 构造时检查一次：长期运行的实例即使文件超过阈值也不会再次轮转，
// 下一个实例构造时才会处理。如需持续约束文件大小，使用 [WithRotateOnWrite]，
// 每次写入前检查，超阈值时关闭句柄、重命名、重新打开。
//
// # 错误通道
//
// 轮转失败（[ErrRotate]）与写入失败（[ErrWrite]）是两类错误。本包对两者都返回给调用方；
// 上层日志库（xlog）会把写入失败吞掉并上报到诊断通道，而构造期轮转失败会返回给构造方。
//
// # 同秒冲突
//
// 同一秒内对同一文件轮转两次会得到相同的备份名。本包不覆盖已有备份，
// 而是返回包装了 [ErrBackupExists] 的 [ErrRotate]，由调用方决定重试或放弃。
package xrotate
