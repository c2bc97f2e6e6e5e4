package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
	"chanedit/internal/normalize"
	"chanedit/internal/proxylist"
	"chanedit/internal/registry"
	"chanedit/internal/util"
	"chanedit/internal/validator"
)

const doubleSubmitMessage = "submission failed, please do not submit twice"

// SubmitRequest 一次提交的输入
type SubmitRequest struct {
	Draft            *model.ChannelConfig
	BatchProxy       bool   // 批量代理模式（仅创建模式生效）
	ProxyText        string // 每行 "名称,地址"
	AlreadySubmitted bool   // 会话此前已完成提交
}

// ItemResult 单条提交结果
type ItemResult struct {
	Index   int // 从0开始，与代理列表行顺序一致
	Name    string
	BaseURL string
	Kind    model.OutcomeKind
	Message string
	Err     error
}

// Report 提交汇总
type Report struct {
	RunID  string
	Mode   model.SubmitMode
	Items  []ItemResult
	Closed bool // 已触发 Refresh/Close
	Reset  bool // 创建成功后草稿应重置为空模板
}

// Succeeded 成功条数
func (r *Report) Succeeded() int {
	n := 0
	for _, it := range r.Items {
		if it.Kind == model.OutcomeSuccess {
			n++
		}
	}
	return n
}

// Failed 失败条数
func (r *Report) Failed() int { return len(r.Items) - r.Succeeded() }

// OK 全部成功且至少提交了一条
func (r *Report) OK() bool { return len(r.Items) > 0 && r.Failed() == 0 }

// Coordinator 提交协调器
//
// 单条模式: 校验 → 防重复检查 → 规范化 → create/update
// 批量模式: 校验（跳过名称） → 展开代理列表 → 逐条顺序创建，失败互不影响
type Coordinator struct {
	registry  registry.Registry
	reporter  Reporter
	host      Host
	recorder  Recorder // 可为nil
	validator *validator.Manager
	now       func() time.Time
}

// NewCoordinator 创建协调器；reporter/host 为 nil 时使用空实现
func NewCoordinator(reg registry.Registry, reporter Reporter, host Host, recorder Recorder) *Coordinator {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if host == nil {
		host = HostFuncs{}
	}
	return &Coordinator{
		registry:  reg,
		reporter:  reporter,
		host:      host,
		recorder:  recorder,
		validator: validator.NewDraftValidator(),
		now:       time.Now,
	}
}

// Submit 执行一次提交
//
// 返回的 error 只表示提交未进入派发阶段（校验失败、展开失败、防重复检查），
// 已派发请求的逻辑失败与传输失败记录在 Report.Items 中。
func (c *Coordinator) Submit(ctx context.Context, req SubmitRequest) (*Report, error) {
	if req.Draft == nil {
		return nil, apperrors.InvalidFieldError("draft", "no draft to submit")
	}
	batch := req.BatchProxy && !req.Draft.IsEdit()

	if err := c.validator.Validate(req.Draft, validator.ModeFor(req.Draft, batch)); err != nil {
		c.reporter.Info(apperrors.UserMessage(err))
		return nil, err
	}

	// 一旦开始派发，调用方取消不再中断
	ctx = context.WithoutCancel(ctx)
	if batch {
		return c.submitBatch(ctx, req)
	}
	return c.submitSingle(ctx, req)
}

func (c *Coordinator) submitSingle(ctx context.Context, req SubmitRequest) (*Report, error) {
	if reason := staleReason(req); reason != "" {
		util.SafePrintf("⚠️  WARNING: 中止提交: %s", reason)
		c.reporter.Error(doubleSubmitMessage)
		c.host.Close()
		return nil, apperrors.StaleDraftError(reason)
	}

	w := normalize.Submit(req.Draft)
	report := &Report{RunID: uuid.NewString(), Mode: model.SubmitModeCreate}
	if w.ID != nil {
		report.Mode = model.SubmitModeUpdate
	}

	var (
		res *registry.Result
		err error
	)
	if report.Mode == model.SubmitModeUpdate {
		res, err = c.registry.UpdateChannel(ctx, w)
	} else {
		res, err = c.registry.CreateChannel(ctx, w)
	}

	item := ItemResult{Name: w.Name, BaseURL: w.BaseURL}
	switch {
	case err != nil:
		item.Kind = model.OutcomeTransportError
		item.Message = apperrors.UserMessage(err)
		item.Err = err
		c.reporter.Error(item.Message)
	case !res.Success:
		item.Kind = model.OutcomeRejected
		item.Message = res.Message
		c.reporter.Error(res.Message)
	default:
		item.Kind = model.OutcomeSuccess
		if report.Mode == model.SubmitModeUpdate {
			item.Message = "channel updated successfully"
		} else {
			item.Message = "channel created successfully"
			report.Reset = true
		}
		c.reporter.Success(item.Message)
	}
	report.Items = append(report.Items, item)
	c.record(ctx, report, w, item)

	if item.Kind == model.OutcomeSuccess {
		c.finish(report)
	}
	return report, nil
}

// staleReason 单条提交前的一致性检查
// 含逗号的模型名已由校验器拦截；这里只处理重复提交与表单残留的空白条目
func staleReason(req SubmitRequest) string {
	if req.AlreadySubmitted {
		return "draft was already submitted"
	}
	for i, m := range req.Draft.Models {
		if strings.TrimSpace(m) == "" {
			return fmt.Sprintf("model entry %d is empty", i)
		}
	}
	return ""
}

func (c *Coordinator) submitBatch(ctx context.Context, req SubmitRequest) (*Report, error) {
	records, err := proxylist.Expand(req.ProxyText, req.Draft)
	if err != nil {
		c.reporter.Error(apperrors.UserMessage(err))
		return nil, err
	}

	report := &Report{
		RunID: uuid.NewString(),
		Mode:  model.SubmitModeBatch,
		Items: make([]ItemResult, 0, len(records)),
	}
	util.SafePrintf("[INFO] 批量创建 %d 个渠道 (run=%s)", len(records), report.RunID)

	// 顺序派发：第 n+1 条在第 n 条结果确定后才发出
	for i, rec := range records {
		w := normalize.Submit(rec)
		item := ItemResult{Index: i, Name: w.Name, BaseURL: w.BaseURL}

		res, err := c.registry.CreateChannel(ctx, w)
		switch {
		case err != nil:
			item.Kind = model.OutcomeTransportError
			item.Err = err
			item.Message = apperrors.UserMessage(err)
			c.reporter.Error(fmt.Sprintf("channel %s creation error: %s", w.Name, item.Message))
		case !res.Success:
			item.Kind = model.OutcomeRejected
			item.Message = res.Message
			c.reporter.Error(fmt.Sprintf("channel %s creation failed: %s", w.Name, res.Message))
		default:
			item.Kind = model.OutcomeSuccess
			item.Message = fmt.Sprintf("channel %s created successfully", w.Name)
			c.reporter.Success(item.Message)
		}
		report.Items = append(report.Items, item)
		c.record(ctx, report, w, item)
	}

	if n := report.Failed(); n > 0 {
		util.SafePrintf("[WARN] 批量创建完成: 成功 %d, 失败 %d (run=%s)", report.Succeeded(), n, report.RunID)
	}
	c.finish(report)
	return report, nil
}

// finish 刷新列表并关闭表单，每次提交至多一次
func (c *Coordinator) finish(report *Report) {
	if report.Closed {
		return
	}
	report.Closed = true
	c.host.Refresh()
	c.host.Close()
}

// record 写入提交日志；日志失败不影响提交结果
func (c *Coordinator) record(ctx context.Context, report *Report, w *model.ChannelWire, item ItemResult) {
	if c.recorder == nil {
		return
	}
	rec := &model.SubmissionRecord{
		RunID:       report.RunID,
		Mode:        report.Mode,
		Name:        w.Name,
		BaseURL:     w.BaseURL,
		ChannelType: model.ChannelType(w.Type.Int()),
		Kind:        item.Kind,
		Message:     item.Message,
		CreatedAt:   model.JSONTime{Time: c.now()},
	}
	if w.ID != nil {
		id := *w.ID
		rec.ChannelID = &id
	}
	if err := c.recorder.Record(ctx, rec); err != nil {
		util.SafePrintf("[WARN] 写入提交日志失败: %v", err)
	}
}
