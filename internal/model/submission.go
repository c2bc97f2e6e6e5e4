package model

import (
	"strconv"
	"time"
)

// JSONTime 自定义时间类型，使用Unix时间戳进行JSON序列化
// 设计原则：与数据库格式统一，减少转换复杂度（KISS原则）
type JSONTime struct {
	time.Time
}

// MarshalJSON 实现JSON序列化
func (jt JSONTime) MarshalJSON() ([]byte, error) {
	if jt.Time.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(jt.Time.Unix(), 10)), nil
}

// UnmarshalJSON 实现JSON反序列化
func (jt *JSONTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == "0" {
		jt.Time = time.Time{}
		return nil
	}
	ts, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	jt.Time = time.Unix(ts, 0)
	return nil
}

// SubmitMode 提交模式
type SubmitMode string

const (
	SubmitModeCreate SubmitMode = "create"
	SubmitModeUpdate SubmitMode = "update"
	SubmitModeBatch  SubmitMode = "batch"
)

// OutcomeKind 单条提交结果分类
type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeRejected       OutcomeKind = "rejected"        // 注册中心返回 success=false
	OutcomeTransportError OutcomeKind = "transport_error" // 网络/解析异常
)

// SubmissionRecord 提交日志条目（本地审计，不是渠道持久化）
type SubmissionRecord struct {
	ID          int64       `json:"id"`
	RunID       string      `json:"run_id"` // 同一次提交（含整批）共享
	Mode        SubmitMode  `json:"mode"`
	ChannelID   *int64      `json:"channel_id,omitempty"`
	Name        string      `json:"name"`
	BaseURL     string      `json:"base_url,omitempty"`
	ChannelType ChannelType `json:"channel_type"`
	Kind        OutcomeKind `json:"kind"`
	Message     string      `json:"message,omitempty"`
	CreatedAt   JSONTime    `json:"created_at"`
}

// Success 是否成功
func (r *SubmissionRecord) Success() bool {
	return r.Kind == OutcomeSuccess
}
