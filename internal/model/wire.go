package model

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// ChannelWire 与注册中心交换的线上格式
// 只有字符串和整数：models/group 为逗号拼接，model_mapping/headers 为JSON文本，开关为0/1
type ChannelWire struct {
	ID                 *int64   `json:"id,omitempty"`
	Name               string   `json:"name"`
	Type               FlexInt  `json:"type"`
	Key                string   `json:"key"`
	OpenAIOrganization string   `json:"openai_organization"`
	BaseURL            string   `json:"base_url"`
	Other              string   `json:"other"`
	ModelMapping       string   `json:"model_mapping"`
	Headers            string   `json:"headers"`
	Models             string   `json:"models"`
	Group              string   `json:"group"`
	AutoBan            FlexInt  `json:"auto_ban"`
	IsImageURLEnabled  FlexInt  `json:"is_image_url_enabled"`
	RateLimited        FlexBool `json:"rate_limited"`
	Priority           FlexInt  `json:"priority"`
	Weight             FlexInt  `json:"weight"`
	TestedTime         FlexInt  `json:"tested_time"`
	ModelTest          string   `json:"model_test"`
}

// FlexInt 宽松整数：兼容数字、数字字符串、空串、null、bool
// 非法值与负数一律归零（注册中心历史数据里 tested_time 可能是空串）
type FlexInt int

// UnmarshalJSON 实现 json.Unmarshaler（sonic 同样遵循该接口）
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt(ParseNonNegativeInt(string(bytes.Trim(bytes.TrimSpace(data), `"`))))
	return nil
}

// Int 返回int值
func (f FlexInt) Int() int {
	return int(f)
}

// FlexBool 宽松布尔：兼容 true/false 与 0/1
type FlexBool bool

// UnmarshalJSON 实现 json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	raw := strings.ToLower(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	switch raw {
	case "true":
		*b = true
	case "", "null", "false":
		*b = false
	default:
		*b = ParseNonNegativeInt(raw) != 0
	}
	return nil
}

// ParseNonNegativeInt 解析非负整数，失败或为负时返回0
// 接受 "12"、" 12 "、"12.0"；bool 字面量 true 视为1
func ParseNonNegativeInt(raw string) int {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "", "null", "false":
		return 0
	case "true":
		return 1
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	fv, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(fv) || math.IsInf(fv, 0) || fv < 0 || fv > math.MaxInt32 {
		return 0
	}
	return int(fv)
}

// BoolToInt 开关编码为线上整数
func BoolToInt(v bool) FlexInt {
	if v {
		return 1
	}
	return 0
}
