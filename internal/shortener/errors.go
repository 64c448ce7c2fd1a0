package shortener

import "errors"

// 业务错误是一个封闭集合，调用方通过 errors.Is 判断并决定如何响应。
// 核心层只返回错误，不打日志、不做重试。
var (
	// ErrInvalidURL 目标 URL 格式非法
	ErrInvalidURL = errors.New("无效的目标 URL")

	// ErrSlugAlreadyInUse 自定义短码已被占用
	ErrSlugAlreadyInUse = errors.New("短码已被占用")

	// ErrSlugNotFound 短码不存在
	ErrSlugNotFound = errors.New("短码不存在")
)

// ErrCorruptLog 事件日志与投影状态不一致（如重复的创建事件、孤立的跳转事件）。
// 这类错误不可恢复，回放阶段遇到时应当直接终止启动。
var ErrCorruptLog = errors.New("事件日志不一致")
