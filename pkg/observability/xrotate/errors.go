package xrotate

import "errors"

// 配置校验错误
var (
	// ErrEmptyFilename 文件名为空
	ErrEmptyFilename = errors.New("xrotate: filename is required")

	// ErrInvalidMaxSize 轮转阈值无效（必须 > 0）
	ErrInvalidMaxSize = errors.New("xrotate: invalid max size")

	// ErrInvalidFileMode FileMode 包含非权限位（仅允许低 9 位 0000~0777）
	ErrInvalidFileMode = errors.New("xrotate: invalid FileMode")
)

// 运行期错误
var (
	// ErrRotate 轮转失败（检查文件状态或重命名失败），返回给触发轮转的调用方
	ErrRotate = errors.New("xrotate: rotate failed")

	// ErrBackupExists 备份文件名已被占用（同一秒内重复轮转），总是与 ErrRotate 一起包装
	ErrBackupExists = errors.New("xrotate: backup file already exists")

	// ErrWrite 打开、写入或同步活动文件失败
	ErrWrite = errors.New("xrotate: write failed")

	// ErrClosed 轮转器已关闭
	ErrClosed = errors.New("xrotate: rotator is closed")
)
