// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 分级日志，写入单个文件，基于 log/slog 扩展
//   - xrotate: 日志文件按大小轮转
//
// 设计原则：
//   - 日志调用永不阻断业务：写入失败只走诊断通道
//   - 轮转失败显式返回给调用方
//   - 支持动态级别控制
package observability
