package xlog

import "errors"

var (
	// ErrUnknownLevel 无法识别的日志级别字符串
	ErrUnknownLevel = errors.New("xlog: unknown level")

	// ErrInvalidRotateSize 轮转阈值必须 > 0
	ErrInvalidRotateSize = errors.New("xlog: invalid rotate size")

	// ErrBuilderUsed Builder 已经 Build 过，不可复用
	ErrBuilderUsed = errors.New("xlog: builder already used")
)
