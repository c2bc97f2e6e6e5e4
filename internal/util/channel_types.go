package util

import (
	"slices"

	"chanedit/internal/model"
)

// Capability 渠道类型的可选字段能力（决定表单显示哪些字段）
type Capability uint8

const (
	CapBaseURL  Capability = 1 << iota // 独立的地址字段（Azure端点 / 自定义Base URL / 私有部署地址）
	CapProxy                           // 可选代理地址（复用 base_url 字段）
	CapOther                           // 辅助参数字段（other）
	CapImageURL                        // 图片原始地址开关
)

// GenericKeyPrompt 未登记类型的通用密钥提示
const GenericKeyPrompt = "enter the channel's credential"

// ChannelTypeConfig 渠道类型配置（元数据定义）
type ChannelTypeConfig struct {
	Type           model.ChannelType `json:"value"`
	DisplayName    string            `json:"display_name"`
	DefaultBaseURL string            `json:"default_base_url,omitempty"`
	DefaultModels  []string          `json:"default_models,omitempty"`
	KeyPrompt      string            `json:"key_prompt,omitempty"`
	DefaultOther   string            `json:"default_other,omitempty"`
	OtherLabel     string            `json:"other_label,omitempty"`
	BaseURLLabel   string            `json:"base_url_label,omitempty"`
	Capabilities   Capability        `json:"capabilities"`
}

// TypeDefaults 类型默认值解析结果
type TypeDefaults struct {
	Type         model.ChannelType
	Known        bool
	Models       []string
	KeyPrompt    string
	DefaultOther string
	OtherLabel   string
	BaseURLLabel string
	Capabilities Capability
}

// Has 是否具备指定能力
func (d TypeDefaults) Has(c Capability) bool {
	return d.Capabilities&c != 0
}

// channelTypes 全局渠道类型配置（单一数据源 - Single Source of Truth）
// 新增类型只需在此追加一条，禁止在业务代码中散落 type == N 判断
var channelTypes = map[model.ChannelType]ChannelTypeConfig{
	model.ChannelTypeOpenAI:    {DisplayName: "OpenAI", DefaultBaseURL: "https://api.openai.com", Capabilities: CapProxy},
	model.ChannelTypeMidjourney: {
		DisplayName:   "Midjourney Proxy",
		DefaultModels: []string{"midjourney"},
		Capabilities:  CapProxy | CapImageURL,
	},
	model.ChannelTypeAzure: {
		DisplayName:  "Azure OpenAI",
		DefaultOther: "2023-06-01-preview",
		OtherLabel:   "default API version, e.g. 2023-06-01-preview; overridable by the request query",
		BaseURLLabel: "AZURE_OPENAI_ENDPOINT, e.g. https://docs-test-001.openai.azure.com",
		Capabilities: CapBaseURL | CapOther,
	},
	model.ChannelTypeCloseAI:   {DisplayName: "CloseAI", DefaultBaseURL: "https://api.closeai-proxy.xyz", Capabilities: CapProxy},
	model.ChannelTypeOpenAISB:  {DisplayName: "OpenAI-SB", DefaultBaseURL: "https://api.openai-sb.com", Capabilities: CapProxy},
	model.ChannelTypeOpenAIMax: {DisplayName: "OpenAI Max", DefaultBaseURL: "https://api.openaimax.com", Capabilities: CapProxy},
	model.ChannelTypeOhMyGPT:   {DisplayName: "OhMyGPT", DefaultBaseURL: "https://api.ohmygpt.com", Capabilities: CapProxy},
	model.ChannelTypeCustom: {
		DisplayName:  "Custom",
		BaseURLLabel: "base URL of the custom channel",
		Capabilities: CapBaseURL,
	},
	model.ChannelTypeAILS:    {DisplayName: "AILS", DefaultBaseURL: "https://api.caipacity.com", Capabilities: CapProxy},
	model.ChannelTypeAIProxy: {DisplayName: "AI Proxy", DefaultBaseURL: "https://api.aiproxy.io", Capabilities: CapProxy},
	model.ChannelTypePaLM: {
		DisplayName:   "Google PaLM2",
		DefaultModels: []string{"PaLM-2"},
		Capabilities:  CapProxy,
	},
	model.ChannelTypeAPI2GPT: {DisplayName: "API2GPT", DefaultBaseURL: "https://api.api2gpt.com", Capabilities: CapProxy},
	model.ChannelTypeAIGC2D:  {DisplayName: "AIGC2D", DefaultBaseURL: "https://api.aigc2d.com", Capabilities: CapProxy},
	model.ChannelTypeAnthropic: {
		DisplayName:    "Anthropic Claude",
		DefaultBaseURL: "https://api.anthropic.com",
		DefaultModels: []string{
			"claude-instant-1", "claude-2", "claude-2.0", "claude-2.1",
			"claude-3-opus-20240229", "claude-3-opus", "claude-3-sonnet-20240229",
		},
		Capabilities: CapProxy,
	},
	model.ChannelTypeBaidu: {
		DisplayName:    "Baidu ERNIE",
		DefaultBaseURL: "https://aip.baidubce.com",
		DefaultModels:  []string{"ERNIE-Bot", "ERNIE-Bot-turbo", "ERNIE-Bot-4", "Embedding-V1"},
		KeyPrompt:      "format: APIKey|SecretKey",
		Capabilities:   CapProxy,
	},
	model.ChannelTypeZhipu: {
		DisplayName:    "Zhipu ChatGLM",
		DefaultBaseURL: "https://open.bigmodel.cn",
		DefaultModels:  []string{"chatglm_pro", "chatglm_std", "chatglm_lite"},
		Capabilities:   CapProxy,
	},
	model.ChannelTypeAli: {
		DisplayName:    "Alibaba Tongyi Qianwen",
		DefaultBaseURL: "https://dashscope.aliyuncs.com",
		DefaultModels:  []string{"qwen-turbo", "qwen-plus", "text-embedding-v1"},
		Capabilities:   CapProxy,
	},
	model.ChannelTypeXunfei: {
		DisplayName:   "iFlytek Spark",
		DefaultModels: []string{"SparkDesk"},
		KeyPrompt:     "format: APPID|APISecret|APIKey",
		DefaultOther:  "v2.1",
		OtherLabel:    "Spark model version as it appears in the API path, e.g. v2.1",
		Capabilities:  CapProxy | CapOther,
	},
	model.ChannelType360: {
		DisplayName:    "360 ZhiNao",
		DefaultBaseURL: "https://ai.360.cn",
		DefaultModels:  []string{"360GPT_S2_V9", "embedding-bert-512-v1", "embedding_s1_v1", "semantic_similarity_s1_v1"},
		Capabilities:   CapProxy,
	},
	model.ChannelTypeOpenRouter: {DisplayName: "OpenRouter", DefaultBaseURL: "https://openrouter.ai/api", Capabilities: CapProxy},
	model.ChannelTypeAIProxyLibrary: {
		DisplayName:    "AI Proxy Library",
		DefaultBaseURL: "https://api.aiproxy.io",
		OtherLabel:     "knowledge base ID, e.g. 123456",
		Capabilities:   CapProxy | CapOther,
	},
	model.ChannelTypeFastGPT: {
		DisplayName:    "FastGPT",
		DefaultBaseURL: "https://fastgpt.run/api/openapi",
		KeyPrompt:      "format: APIKey-AppId, e.g. fastgpt-0sp2gtvfdgyi4k30jwlgwf1i-64f335d84283f05518e9e041",
		BaseURLLabel:   "private deployment address, e.g. https://fastgpt.run/api/openapi",
		Capabilities:   CapBaseURL,
	},
	model.ChannelTypeTencent: {
		DisplayName:    "Tencent Hunyuan",
		DefaultBaseURL: "https://hunyuan.cloud.tencent.com",
		DefaultModels:  []string{"hunyuan"},
		KeyPrompt:      "format: AppId|SecretId|SecretKey",
		Capabilities:   CapProxy,
	},
	model.ChannelTypeGemini: {
		DisplayName:    "Google Gemini",
		DefaultBaseURL: "https://generativelanguage.googleapis.com",
		DefaultModels:  []string{"gemini-pro"},
		Capabilities:   CapProxy,
	},
	model.ChannelTypeChatBot:  {DisplayName: "ChatBot", Capabilities: CapProxy},
	model.ChannelTypeLobeChat: {DisplayName: "LobeChat", Capabilities: CapProxy},
	model.ChannelTypeMoonshot: {DisplayName: "Moonshot", DefaultBaseURL: "https://api.moonshot.cn", Capabilities: CapProxy},
	model.ChannelTypeZhipuV4: {
		DisplayName:    "Zhipu GLM-4",
		DefaultBaseURL: "https://open.bigmodel.cn",
		DefaultModels:  []string{"glm-4", "glm-4v", "glm-3-turbo"},
		Capabilities:   CapProxy,
	},
	model.ChannelTypeStability: {
		DisplayName:    "Stability AI",
		DefaultBaseURL: "https://api.stability.ai",
		DefaultModels:  []string{"stable-diffusion"},
		OtherLabel:     "engine id, e.g. stable-diffusion-v1-6",
		Capabilities:   CapProxy | CapOther,
	},
}

// ResolveTypeDefaults 解析渠道类型默认值
// 未登记的类型返回空模型列表和通用提示，永不报错
func ResolveTypeDefaults(t model.ChannelType) TypeDefaults {
	cfg, ok := channelTypes[t]
	if !ok {
		return TypeDefaults{
			Type:         t,
			Models:       []string{},
			KeyPrompt:    GenericKeyPrompt,
			Capabilities: CapProxy,
		}
	}

	prompt := cfg.KeyPrompt
	if prompt == "" {
		prompt = GenericKeyPrompt
	}
	models := slices.Clone(cfg.DefaultModels)
	if models == nil {
		models = []string{}
	}
	return TypeDefaults{
		Type:         t,
		Known:        true,
		Models:       models,
		KeyPrompt:    prompt,
		DefaultOther: cfg.DefaultOther,
		OtherLabel:   cfg.OtherLabel,
		BaseURLLabel: cfg.BaseURLLabel,
		Capabilities: cfg.Capabilities,
	}
}

// KeyPrompt 获取密钥格式提示
func KeyPrompt(t model.ChannelType) string {
	return ResolveTypeDefaults(t).KeyPrompt
}

// DefaultOther 获取 other 字段默认值（未登记或无默认返回空串）
func DefaultOther(t model.ChannelType) string {
	return channelTypes[t].DefaultOther
}

// DefaultModels 获取默认模型列表（返回副本，调用方可安全修改）
func DefaultModels(t model.ChannelType) []string {
	return ResolveTypeDefaults(t).Models
}

// GetChannelTypeDisplayName 根据类型获取显示名称
func GetChannelTypeDisplayName(t model.ChannelType) string {
	if cfg, ok := channelTypes[t]; ok {
		return cfg.DisplayName
	}
	return "Unknown" // 回退
}

// IsValidChannelType 验证渠道类型是否已登记
func IsValidChannelType(t model.ChannelType) bool {
	_, ok := channelTypes[t]
	return ok
}

// ListChannelTypes 按类型编号升序列出所有已登记类型
func ListChannelTypes() []ChannelTypeConfig {
	out := make([]ChannelTypeConfig, 0, len(channelTypes))
	for t, cfg := range channelTypes {
		cfg.Type = t
		cfg.DefaultModels = slices.Clone(cfg.DefaultModels)
		out = append(out, cfg)
	}
	slices.SortFunc(out, func(a, b ChannelTypeConfig) int {
		return int(a.Type) - int(b.Type)
	})
	return out
}

// CapabilityNames 能力位转可读名称（CLI展示用）
func CapabilityNames(c Capability) []string {
	names := make([]string, 0, 4)
	if c&CapBaseURL != 0 {
		names = append(names, "base_url")
	}
	if c&CapProxy != 0 {
		names = append(names, "proxy")
	}
	if c&CapOther != 0 {
		names = append(names, "other")
	}
	if c&CapImageURL != 0 {
		names = append(names, "image_url")
	}
	return names
}
