package app

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
	"chanedit/internal/normalize"
	"chanedit/internal/registry"
	"chanedit/internal/util"
)

// basicModelPrefixes 「填入基础模型」使用的前缀
var basicModelPrefixes = []string{"gpt-3", "gpt-4", "text-"}

// Session 单个渠道编辑会话
//
// 草稿只属于当前会话，不跨会话共享，无需加锁
type Session struct {
	registry registry.Registry
	reporter Reporter

	draft  *model.ChannelConfig
	models []string // 模型目录（注册中心全量）
	groups []string // 分组目录

	batchProxy bool
	proxyText  string
	submitted  bool
}

// OpenSession 打开编辑会话
//
// 模型目录、分组目录与（编辑模式下的）渠道详情并发加载，全部结束后才返回会话；
// 加载期间调用方拿不到会话，草稿不会在渠道详情到达前被修改。
// 目录加载失败只报告不阻断；渠道详情加载失败报告并返回错误。
func OpenSession(ctx context.Context, reg registry.Registry, id *int64, reporter Reporter) (*Session, error) {
	if reporter == nil {
		reporter = nopReporter{}
	}
	s := &Session{
		registry: reg,
		reporter: reporter,
		draft:    model.NewDraft(),
		models:   []string{},
		groups:   []string{},
	}

	var (
		g         errgroup.Group
		modelsErr error
		groupsErr error
		loaded    *model.ChannelConfig
	)

	g.Go(func() error {
		list, err := reg.ListModels(ctx)
		if err != nil {
			modelsErr = err
			return nil
		}
		ids := make([]string, 0, len(list))
		for _, m := range list {
			ids = append(ids, m.ID)
		}
		s.models = util.NormalizeList(ids)
		return nil
	})
	g.Go(func() error {
		list, err := reg.ListGroups(ctx)
		if err != nil {
			groupsErr = err
			return nil
		}
		s.groups = util.NormalizeList(list)
		return nil
	})
	if id != nil {
		g.Go(func() error {
			w, err := reg.GetChannel(ctx, *id)
			if err != nil {
				return err
			}
			loaded = normalize.Load(w)
			loaded.ID = id
			return nil
		})
	}

	loadErr := g.Wait()

	// 统一在等待后报告，保持 Reporter 单线程调用
	if modelsErr != nil {
		reporter.Error(apperrors.UserMessage(modelsErr))
	}
	if groupsErr != nil {
		reporter.Error(apperrors.UserMessage(groupsErr))
	}
	if loadErr != nil {
		reporter.Error(apperrors.UserMessage(loadErr))
		return nil, loadErr
	}
	if loaded != nil {
		s.draft = loaded
	}
	return s, nil
}

// Draft 当前草稿（调用方不应跨会话持有）
func (s *Session) Draft() *model.ChannelConfig { return s.draft }

// IsEdit 是否为编辑模式
func (s *Session) IsEdit() bool { return s.draft.IsEdit() }

// ModelCatalog 注册中心模型目录
func (s *Session) ModelCatalog() []string { return s.models }

// GroupCatalog 注册中心分组目录
func (s *Session) GroupCatalog() []string { return s.groups }

// Update 按字段选择器更新草稿
// 类型变化（同值不算）时触发一次类型默认值解析
func (s *Session) Update(f model.Field, value any) error {
	prev := s.draft.Type
	if err := normalize.SetField(s.draft, f, value); err != nil {
		return err
	}
	if f == model.FieldType && s.draft.Type != prev {
		s.applyTypeDefaults()
	}
	return nil
}

// ApplyJSON 将线上格式JSON（CLI -f 文件）叠加到当前草稿
// 只覆盖文件中出现的键；缺省的键保持草稿原值（创建模式即空白模板的默认分组与 auto_ban）
// 会话的ID不受文件中 id 影响
func (s *Session) ApplyJSON(data []byte) error {
	w := normalize.Encode(s.draft)
	if err := util.UnmarshalJSON(data, w); err != nil {
		return apperrors.InvalidJSONError("draft", err)
	}
	cfg := normalize.Load(w)
	cfg.ID = s.draft.ID
	s.draft = cfg
	return nil
}

// UpdateNamed 按线上字段名更新（CLI --set 使用）
func (s *Session) UpdateNamed(name string, value any) error {
	f := model.ParseField(name)
	if f == model.FieldUnknown {
		return apperrors.InvalidFieldError(name, "unknown field")
	}
	return s.Update(f, value)
}

// applyTypeDefaults 仅在模型列表为空时填充类型默认模型
func (s *Session) applyTypeDefaults() {
	if !util.IsValidChannelType(s.draft.Type) {
		util.SafePrintf("[WARN] 渠道类型 %d 未登记，使用通用默认值", int(s.draft.Type))
	}
	if len(s.draft.Models) > 0 {
		return
	}
	s.draft.Models = util.DefaultModels(s.draft.Type)
}

// KeyPrompt 当前类型的密钥输入提示
func (s *Session) KeyPrompt() string {
	return util.KeyPrompt(s.draft.Type)
}

// VisibleCapabilities 当前类型可见的可选字段
func (s *Session) VisibleCapabilities() util.Capability {
	return util.ResolveTypeDefaults(s.draft.Type).Capabilities
}

// FillBasicModels 用目录中 gpt-3/gpt-4/text- 前缀的模型替换当前列表
func (s *Session) FillBasicModels() {
	basic := make([]string, 0, len(s.models))
	for _, id := range s.models {
		for _, p := range basicModelPrefixes {
			if strings.HasPrefix(id, p) {
				basic = append(basic, id)
				break
			}
		}
	}
	s.draft.Models = basic
}

// FillAllModels 用完整目录替换当前列表
func (s *Session) FillAllModels() {
	s.draft.Models = append([]string{}, s.models...)
}

// ClearModels 清空模型列表
func (s *Session) ClearModels() {
	s.draft.Models = []string{}
}

// AddCustomModel 追加自定义模型；空白或重复时忽略，返回是否追加
func (s *Session) AddCustomModel(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.draft.HasModel(name) {
		return false
	}
	s.draft.Models = append(s.draft.Models, name)
	return true
}

// SetBatchProxy 开启批量代理模式（仅创建模式可用）；空文本关闭
func (s *Session) SetBatchProxy(text string) error {
	if s.IsEdit() {
		return apperrors.InvalidFieldError("batch_proxy", "batch proxy mode is only available when creating channels")
	}
	s.proxyText = text
	s.batchProxy = strings.TrimSpace(text) != ""
	return nil
}

// BatchProxy 是否处于批量代理模式
func (s *Session) BatchProxy() bool { return s.batchProxy }

// Submit 通过协调器提交当前草稿
func (s *Session) Submit(ctx context.Context, c *Coordinator) (*Report, error) {
	report, err := c.Submit(ctx, SubmitRequest{
		Draft:            s.draft,
		BatchProxy:       s.batchProxy,
		ProxyText:        s.proxyText,
		AlreadySubmitted: s.submitted,
	})
	if report != nil && report.Closed {
		s.submitted = true
	}
	if report != nil && report.Reset {
		s.draft = model.NewDraft()
		s.batchProxy = false
		s.proxyText = ""
	}
	return report, err
}
