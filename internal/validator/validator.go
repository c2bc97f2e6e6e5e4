// Package validator 提供渠道草稿提交前的字段校验
//
// 设计原则:
// - 每条规则只负责一个字段约束
// - 规则按注册顺序执行，首个失败即短路返回
// - 纯函数，不访问网络
package validator

import (
	"fmt"
	"strings"

	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
	"chanedit/internal/util"
)

// Mode 提交模式标志
type Mode struct {
	Create     bool // 创建模式（草稿无ID）
	BatchProxy bool // 批量代理创建模式（名称由代理列表生成）
}

// ModeFor 根据草稿推导提交模式
func ModeFor(cfg *model.ChannelConfig, batchProxy bool) Mode {
	return Mode{Create: !cfg.IsEdit(), BatchProxy: batchProxy}
}

// Rule 单条校验规则
type Rule interface {
	// Name 规则名称（日志与测试使用）
	Name() string
	// Check 返回nil表示通过，否则返回面向操作员的 AppError
	Check(cfg *model.ChannelConfig, mode Mode) error
}

// RuleFunc 函数适配器
type RuleFunc struct {
	RuleName string
	Fn       func(cfg *model.ChannelConfig, mode Mode) error
}

func (r RuleFunc) Name() string { return r.RuleName }

func (r RuleFunc) Check(cfg *model.ChannelConfig, mode Mode) error {
	return r.Fn(cfg, mode)
}

// Manager 校验器管理器
//
// 采用责任链模式,依次执行所有已注册的规则
// 任何一条规则失败,则整个校验失败
type Manager struct {
	rules []Rule
}

// NewManager 创建空的校验器管理器
func NewManager() *Manager {
	return &Manager{rules: make([]Rule, 0, 4)}
}

// AddRule 注册规则（按注册顺序执行）
func (m *Manager) AddRule(r Rule) {
	m.rules = append(m.rules, r)
}

// Rules 返回已注册规则名称
func (m *Manager) Rules() []string {
	names := make([]string, 0, len(m.rules))
	for _, r := range m.rules {
		names = append(names, r.Name())
	}
	return names
}

// Validate 执行校验，返回第一个失败规则的错误
func (m *Manager) Validate(cfg *model.ChannelConfig, mode Mode) error {
	for _, r := range m.rules {
		if err := r.Check(cfg, mode); err != nil {
			return err
		}
	}
	return nil
}

// NewDraftValidator 构建渠道草稿的标准规则链
//
// 规则顺序固定:
//  1. 创建模式且非批量代理: name 必填
//  2. models 去除空白项后至少一项
//  3. 模型名不含逗号（线上格式逗号拼接，含逗号会被注册中心拆成多个模型）
//  4. model_mapping 非空时必须是合法JSON
//  5. headers 非空时必须是合法JSON
func NewDraftValidator() *Manager {
	m := NewManager()
	m.AddRule(RuleFunc{RuleName: "name_required", Fn: checkName})
	m.AddRule(RuleFunc{RuleName: "models_non_empty", Fn: checkModels})
	m.AddRule(RuleFunc{RuleName: "models_well_formed", Fn: checkModelNames})
	m.AddRule(RuleFunc{RuleName: "model_mapping_json", Fn: jsonRule(model.FieldModelMapping, func(c *model.ChannelConfig) string { return c.ModelMapping })})
	m.AddRule(RuleFunc{RuleName: "headers_json", Fn: jsonRule(model.FieldHeaders, func(c *model.ChannelConfig) string { return c.Headers })})
	return m
}

var defaultValidator = NewDraftValidator()

// ValidateDraft 使用标准规则链校验草稿
func ValidateDraft(cfg *model.ChannelConfig, mode Mode) error {
	return defaultValidator.Validate(cfg, mode)
}

func checkName(cfg *model.ChannelConfig, mode Mode) error {
	if mode.Create && !mode.BatchProxy && strings.TrimSpace(cfg.Name) == "" {
		return apperrors.ValidationError("name", "please fill in the channel name")
	}
	return nil
}

// checkModels 按提交时的规范化结果判断，空白项不算
func checkModels(cfg *model.ChannelConfig, _ Mode) error {
	if len(util.NormalizeList(cfg.Models)) == 0 {
		return apperrors.ValidationError("models", "please select at least one model")
	}
	return nil
}

func checkModelNames(cfg *model.ChannelConfig, _ Mode) error {
	for _, m := range cfg.Models {
		if strings.Contains(m, ",") {
			return apperrors.ValidationError("models", fmt.Sprintf("model name %q must not contain a comma", strings.TrimSpace(m))).
				WithContext("model", m)
		}
	}
	return nil
}

func jsonRule(f model.Field, get func(*model.ChannelConfig) string) func(*model.ChannelConfig, Mode) error {
	return func(cfg *model.ChannelConfig, _ Mode) error {
		raw := get(cfg)
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		if !util.ValidJSON(raw) {
			var probe any
			return apperrors.InvalidJSONError(f.String(), util.UnmarshalJSON([]byte(raw), &probe))
		}
		return nil
	}
}
