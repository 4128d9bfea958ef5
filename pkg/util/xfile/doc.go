// Package xfile 提供日志文件路径相关的小工具。
//
//   - [SanitizePath]: 规范化日志文件路径，拒绝空路径、空字节、相对路径穿越和目录路径
//   - [SplitName]: 将文件路径拆分为目录、无扩展名的文件名、扩展名，供轮转文件命名使用
//   - [EnsureDir] / [EnsureDirWithPerm]: 确保文件的父目录存在（默认 0750）
//   - [RegularFileSize]: 获取普通文件大小，文件不存在时返回 ok=false
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xfile.SanitizePath("../etc/app.log")
//	if errors.Is(err, xfile.ErrPathTraversal) {
//	    // 处理路径穿越
//	}
package xfile
