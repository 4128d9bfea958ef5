// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件操作工具，目录创建、路径处理等
//   - xproc: 进程信息查询，进程名称和程序所在目录
//
// 设计原则：
//   - 提供常用的文件和路径操作封装
//   - 安全处理路径遍历
package util
