package app

import (
	"context"

	"chanedit/internal/model"
	"chanedit/internal/util"
)

// Reporter 面向操作员的消息出口
//
// 校验失败走 Info，协作方/传输失败走 Error，成功走 Success
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// Host 嵌入方的生命周期回调
type Host interface {
	// Refresh 重新拉取渠道列表
	Refresh()
	// Close 关闭编辑会话
	Close()
}

// HostFuncs 函数适配器，nil 字段视为空操作
type HostFuncs struct {
	RefreshFn func()
	CloseFn   func()
}

func (h HostFuncs) Refresh() {
	if h.RefreshFn != nil {
		h.RefreshFn()
	}
}

func (h HostFuncs) Close() {
	if h.CloseFn != nil {
		h.CloseFn()
	}
}

// Recorder 提交日志写入接口（storage.Journal 实现）
type Recorder interface {
	Record(ctx context.Context, rec *model.SubmissionRecord) error
}

// LogReporter 将消息写入标准日志（经 SafePrintf 清洗）
type LogReporter struct{}

func (LogReporter) Info(msg string)    { util.SafePrintf("[INFO] %s", msg) }
func (LogReporter) Success(msg string) { util.SafePrintf("[OK] %s", msg) }
func (LogReporter) Error(msg string)   { util.SafePrintf("[ERROR] %s", msg) }

// nopReporter 丢弃所有消息
type nopReporter struct{}

func (nopReporter) Info(string)    {}
func (nopReporter) Success(string) {}
func (nopReporter) Error(string)   {}
