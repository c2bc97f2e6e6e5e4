// Package normalize 负责渠道配置在内存模型与线上格式之间的双向转换
//
// Load:   线上格式 → 内存草稿（列表拆分、JSON缩进、0/1 → bool）
// Submit: 内存草稿 → 线上格式（bool → 0/1、base_url 去尾斜杠、类型默认值注入、数值归零）
// Encode: 同 Submit 但不注入默认值
package normalize

import (
	"strings"

	"chanedit/internal/config"
	"chanedit/internal/model"
	"chanedit/internal/util"
)

// Load 将注册中心返回的线上格式转换为可编辑草稿
func Load(w *model.ChannelWire) *model.ChannelConfig {
	if w == nil {
		return model.NewDraft()
	}

	cfg := &model.ChannelConfig{
		Name:               w.Name,
		Type:               model.ChannelType(w.Type.Int()),
		Key:                w.Key,
		OpenAIOrganization: w.OpenAIOrganization,
		BaseURL:            w.BaseURL,
		Other:              w.Other,
		ModelMapping:       loadJSONText(w.ModelMapping),
		Headers:            loadJSONText(w.Headers),
		Models:             util.SplitCommaList(w.Models),
		Groups:             util.SplitCommaList(w.Group),
		AutoBan:            w.AutoBan != 0,
		ImageURLEnabled:    w.IsImageURLEnabled != 0,
		RateLimited:        bool(w.RateLimited),
		Priority:           w.Priority.Int(),
		Weight:             w.Weight.Int(),
		TestedTime:         w.TestedTime.Int(),
		ModelTest:          w.ModelTest,
	}
	if w.ID != nil {
		id := *w.ID
		cfg.ID = &id
	}
	return cfg
}

// loadJSONText 非空JSON重排为两空格缩进；历史脏数据原样保留，交给校验器提示操作员修正
func loadJSONText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	indented, err := util.IndentJSON(raw)
	if err != nil {
		return raw
	}
	return indented
}

// Submit 将草稿转换为提交给注册中心的线上格式
// 调用前应已通过 validator.ValidateDraft
func Submit(cfg *model.ChannelConfig) *model.ChannelWire {
	w := Encode(cfg)
	if strings.TrimSpace(w.Other) == "" {
		w.Other = util.DefaultOther(cfg.Type)
	}
	if w.ModelTest == "" {
		w.ModelTest = config.FallbackTestModel
	}
	return w
}

// Encode 草稿按字段编码为线上格式，不注入类型默认值
// 用作叠加部分线上JSON的底稿（文件中缺省的键保持草稿原值）
func Encode(cfg *model.ChannelConfig) *model.ChannelWire {
	w := &model.ChannelWire{
		Name:               strings.TrimSpace(cfg.Name),
		Type:               model.FlexInt(cfg.Type),
		Key:                strings.TrimSpace(cfg.Key),
		OpenAIOrganization: strings.TrimSpace(cfg.OpenAIOrganization),
		BaseURL:            NormalizeBaseURL(cfg.BaseURL),
		Other:              cfg.Other,
		ModelMapping:       strings.TrimSpace(cfg.ModelMapping),
		Headers:            strings.TrimSpace(cfg.Headers),
		Models:             util.JoinCommaList(util.NormalizeList(cfg.Models)),
		Group:              util.JoinCommaList(util.NormalizeList(cfg.Groups)),
		AutoBan:            model.BoolToInt(cfg.AutoBan),
		IsImageURLEnabled:  model.BoolToInt(cfg.ImageURLEnabled),
		RateLimited:        model.FlexBool(cfg.RateLimited),
		Priority:           model.FlexInt(nonNegative(cfg.Priority)),
		Weight:             model.FlexInt(nonNegative(cfg.Weight)),
		TestedTime:         model.FlexInt(nonNegative(cfg.TestedTime)),
		ModelTest:          strings.TrimSpace(cfg.ModelTest),
	}
	if cfg.ID != nil {
		id := *cfg.ID
		w.ID = &id
	}
	return w
}

// NormalizeBaseURL 去除首尾空白和末尾的 '/'
// 连续多个尾斜杠一并去除，保证线上 base_url 永不以 '/' 结尾
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
