// Package registry 封装渠道注册中心的HTTP接口
//
// 错误约定:
//   - 传输层失败（连接、超时、非JSON响应）返回 HTTP_REQUEST / HTTP_TIMEOUT AppError
//   - 读接口 success=false 返回 REGISTRY_REJECTED AppError，message 原样透传
//   - 写接口 success=false 返回 Result{Success:false}，err 为 nil，便于调用方区分逻辑失败与传输失败
package registry

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"chanedit/internal/config"
	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
	"chanedit/internal/version"
)

// Registry 注册中心协作方接口（app 层依赖抽象，测试可替换）
type Registry interface {
	GetChannel(ctx context.Context, id int64) (*model.ChannelWire, error)
	ListModels(ctx context.Context) ([]model.ModelInfo, error)
	ListGroups(ctx context.Context) ([]string, error)
	CreateChannel(ctx context.Context, w *model.ChannelWire) (*Result, error)
	UpdateChannel(ctx context.Context, w *model.ChannelWire) (*Result, error)
}

// Result 写操作结果
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// envelope 注册中心统一响应结构
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Options 客户端配置
type Options struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	HTTPClient  *http.Client // 为空时按 Timeout 创建
}

// Client 注册中心HTTP客户端
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
}

// NewClient 创建注册中心客户端
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeoutSec * time.Second
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: config.HTTPDialTimeout}).DialContext,
				MaxIdleConnsPerHost: config.HTTPMaxIdleConnsPerHost,
			},
		}
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.AccessToken,
		timeout: timeout,
		http:    hc,
	}
}

// NewClientFromConfig 根据环境配置创建客户端
func NewClientFromConfig(cfg *config.EnvConfig) *Client {
	return NewClient(Options{
		BaseURL:     cfg.RegistryURL,
		AccessToken: cfg.AccessToken,
		Timeout:     cfg.RequestTimeout,
	})
}

// GetChannel GET /api/channel/{id}
func (c *Client) GetChannel(ctx context.Context, id int64) (*model.ChannelWire, error) {
	var env envelope[*model.ChannelWire]
	status, err := c.do(ctx, http.MethodGet, "/api/channel/"+strconv.FormatInt(id, 10), nil, &env)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, apperrors.RegistryRejected("get_channel", rejectMessage(status, env.Message)).WithContext("channel_id", id)
	}
	if env.Data == nil {
		return nil, apperrors.RegistryRejected("get_channel", fmt.Sprintf("channel %d not found", id)).WithContext("channel_id", id)
	}
	if env.Data.ID == nil {
		env.Data.ID = &id
	}
	return env.Data, nil
}

// ListModels GET /api/channel/models
func (c *Client) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	var env envelope[[]model.ModelInfo]
	status, err := c.do(ctx, http.MethodGet, "/api/channel/models", nil, &env)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, apperrors.RegistryRejected("list_models", rejectMessage(status, env.Message))
	}
	models := make([]model.ModelInfo, 0, len(env.Data))
	for _, m := range env.Data {
		if m.ID != "" {
			models = append(models, m)
		}
	}
	return models, nil
}

// ListGroups GET /api/group/
func (c *Client) ListGroups(ctx context.Context) ([]string, error) {
	var env envelope[[]string]
	status, err := c.do(ctx, http.MethodGet, "/api/group/", nil, &env)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, apperrors.RegistryRejected("list_groups", rejectMessage(status, env.Message))
	}
	if env.Data == nil {
		return []string{}, nil
	}
	return env.Data, nil
}

// CreateChannel POST /api/channel/
func (c *Client) CreateChannel(ctx context.Context, w *model.ChannelWire) (*Result, error) {
	body := *w
	body.ID = nil
	return c.write(ctx, http.MethodPost, &body)
}

// UpdateChannel PUT /api/channel/（请求体必须带 id）
func (c *Client) UpdateChannel(ctx context.Context, w *model.ChannelWire) (*Result, error) {
	if w.ID == nil {
		return nil, apperrors.InvalidFieldError("id", "update requires a channel id")
	}
	return c.write(ctx, http.MethodPut, w)
}

func (c *Client) write(ctx context.Context, method string, w *model.ChannelWire) (*Result, error) {
	payload, err := sonic.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("序列化渠道失败: %w", err)
	}
	var res Result
	status, err := c.do(ctx, method, "/api/channel/", payload, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		res.Message = rejectMessage(status, res.Message)
	}
	return &res, nil
}

// rejectMessage success=false 却没有 message 时（如网关返回 {"error":"..."}），以HTTP状态兜底
func rejectMessage(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if status < 200 || status >= 300 {
		return fmt.Sprintf("HTTP %d %s", status, http.StatusText(status))
	}
	return "registry rejected the request without a message"
}

// do 执行请求并解码响应信封，返回HTTP状态码
// 非2xx但响应体可解析时仍交给调用方按 success/message 处理（注册中心习惯用200+success=false）
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) (int, error) {
	endpoint := c.baseURL + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, apperrors.HTTPRequestError(endpoint, method, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "chanedit/"+version.Version)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, apperrors.HTTPTimeoutError(endpoint, int(c.timeout/time.Second))
		}
		return 0, apperrors.HTTPRequestError(endpoint, method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxResponseBytes))
	if err != nil {
		return resp.StatusCode, apperrors.HTTPRequestError(endpoint, method, fmt.Errorf("读取响应失败: %w", err))
	}

	if err := sonic.Unmarshal(raw, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp.StatusCode, apperrors.HTTPRequestError(endpoint, method, fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(raw), 256)))
		}
		return resp.StatusCode, apperrors.HTTPRequestError(endpoint, method, fmt.Errorf("解析响应失败: %w", err))
	}
	return resp.StatusCode, nil
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
