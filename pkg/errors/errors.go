package errors

import "errors"

// 核心错误分类：考勤对账与报表流程共用，Service 层返回，Handler 层映射为响应码
var (
	// ErrValidation 缺少必填过滤条件（班次/日期为空）
	ErrValidation = errors.New("缺少必填参数")
	// ErrEmptyRoster 班次名册为空
	ErrEmptyRoster = errors.New("该班次暂无学生")
	// ErrNotFound 请求键对应的记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrStoreUnavailable 文档数据库访问失败
	ErrStoreUnavailable = errors.New("数据存储暂时不可用")
)
