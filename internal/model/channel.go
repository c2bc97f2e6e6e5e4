package model

import (
	"slices"
)

// ChannelType 渠道类型（上游服务商枚举，与注册中心的整数编码一致）
type ChannelType int

// 渠道类型常量（编号与注册中心保持一致，禁止重排）
const (
	ChannelTypeUnknown        ChannelType = 0
	ChannelTypeOpenAI         ChannelType = 1
	ChannelTypeMidjourney     ChannelType = 2
	ChannelTypeAzure          ChannelType = 3
	ChannelTypeCloseAI        ChannelType = 4
	ChannelTypeOpenAISB       ChannelType = 5
	ChannelTypeOpenAIMax      ChannelType = 6
	ChannelTypeOhMyGPT        ChannelType = 7
	ChannelTypeCustom         ChannelType = 8
	ChannelTypeAILS           ChannelType = 9
	ChannelTypeAIProxy        ChannelType = 10
	ChannelTypePaLM           ChannelType = 11
	ChannelTypeAPI2GPT        ChannelType = 12
	ChannelTypeAIGC2D         ChannelType = 13
	ChannelTypeAnthropic      ChannelType = 14
	ChannelTypeBaidu          ChannelType = 15
	ChannelTypeZhipu          ChannelType = 16
	ChannelTypeAli            ChannelType = 17
	ChannelTypeXunfei         ChannelType = 18
	ChannelType360            ChannelType = 19
	ChannelTypeOpenRouter     ChannelType = 20
	ChannelTypeAIProxyLibrary ChannelType = 21
	ChannelTypeFastGPT        ChannelType = 22
	ChannelTypeTencent        ChannelType = 23
	ChannelTypeGemini         ChannelType = 24
	ChannelTypeChatBot        ChannelType = 25
	ChannelTypeLobeChat       ChannelType = 26
	ChannelTypeMoonshot       ChannelType = 27
	ChannelTypeZhipuV4        ChannelType = 28
	ChannelTypeStability      ChannelType = 29
)

// DefaultGroup 默认访问分组
const DefaultGroup = "default"

// ChannelConfig 渠道配置草稿（内存模型）
// 与 ChannelWire 的区别：列表是切片、开关是bool，只在规范化边界才转换为线上格式
type ChannelConfig struct {
	ID                 *int64      `json:"id,omitempty"` // nil 表示创建模式
	Name               string      `json:"name"`
	Type               ChannelType `json:"type"`
	Key                string      `json:"key"`
	OpenAIOrganization string      `json:"openai_organization"`
	BaseURL            string      `json:"base_url"`
	Other              string      `json:"other"`         // API版本 / engine id / 知识库ID，含义随类型变化
	ModelMapping       string      `json:"model_mapping"` // JSON对象文本
	Headers            string      `json:"headers"`       // JSON对象文本
	Models             []string    `json:"models"`
	Groups             []string    `json:"groups"`

	AutoBan         bool `json:"auto_ban"`
	ImageURLEnabled bool `json:"is_image_url_enabled"` // 仅 API2D(Midjourney) 类型有效
	RateLimited     bool `json:"rate_limited"`

	Priority   int `json:"priority"`
	Weight     int `json:"weight"`
	TestedTime int `json:"tested_time"` // 健康检查失败后的重启延迟（秒）

	ModelTest string `json:"model_test"`
}

// NewDraft 创建空白草稿（创建模式的初始模板）
func NewDraft() *ChannelConfig {
	return &ChannelConfig{
		Type:    ChannelTypeOpenAI,
		Models:  []string{},
		Groups:  []string{DefaultGroup},
		AutoBan: true,
	}
}

// IsEdit 是否为编辑模式
func (c *ChannelConfig) IsEdit() bool {
	return c.ID != nil
}

// Clone 深拷贝（切片与ID指针均复制，避免批量记录之间共享底层数组）
func (c *ChannelConfig) Clone() *ChannelConfig {
	if c == nil {
		return nil
	}
	cp := *c
	if c.ID != nil {
		id := *c.ID
		cp.ID = &id
	}
	cp.Models = slices.Clone(c.Models)
	cp.Groups = slices.Clone(c.Groups)
	if cp.Models == nil {
		cp.Models = []string{}
	}
	if cp.Groups == nil {
		cp.Groups = []string{}
	}
	return &cp
}

// HasModel 检查模型是否已选择
func (c *ChannelConfig) HasModel(name string) bool {
	return slices.Contains(c.Models, name)
}

// ModelInfo 注册中心模型目录条目
type ModelInfo struct {
	ID      string `json:"id"`
	OwnedBy string `json:"owned_by,omitempty"`
}
