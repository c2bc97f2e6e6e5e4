// Package testutil 提供测试用的注册中心桩服务
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"chanedit/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// CapturedRequest 桩服务收到的请求快照
type CapturedRequest struct {
	Method        string
	Path          string
	Authorization string
	UserAgent     string
	Body          []byte
}

// StubRegistry gin 实现的注册中心桩（httptest.Server）
//
// 字段在 NewStubRegistry 之后、发出请求之前修改；运行期间由内部锁保护
type StubRegistry struct {
	Server *httptest.Server
	URL    string

	mu       sync.Mutex
	channels map[int64]*model.ChannelWire
	nextID   int64
	requests []CapturedRequest

	Models []model.ModelInfo
	Groups []string

	// RequiredToken 非空时校验 Bearer Token，不匹配返回 401 + success=false
	RequiredToken string
	// RejectNames 按渠道名脚本化 success=false
	RejectNames map[string]string
	// BrokenNames 按渠道名返回非JSON 502（模拟网关故障）
	BrokenNames map[string]bool
	// ModelsMessage 非空时模型目录返回 success=false
	ModelsMessage string
}

// NewStubRegistry 启动桩服务，测试结束自动关闭
func NewStubRegistry(t testing.TB) *StubRegistry {
	t.Helper()

	s := &StubRegistry{
		channels:    make(map[int64]*model.ChannelWire),
		nextID:      1,
		Models:      []model.ModelInfo{{ID: "gpt-3.5-turbo", OwnedBy: "openai"}, {ID: "gpt-4", OwnedBy: "openai"}},
		Groups:      []string{"default"},
		RejectNames: map[string]string{},
		BrokenNames: map[string]bool{},
	}

	r := gin.New()
	r.Use(s.capture(), s.auth())
	api := r.Group("/api")
	api.GET("/channel/models", s.listModels)
	api.GET("/channel/:id", s.getChannel)
	api.POST("/channel/", s.createChannel)
	api.PUT("/channel/", s.updateChannel)
	api.GET("/group/", s.listGroups)

	s.Server = httptest.NewServer(r)
	s.URL = s.Server.URL
	t.Cleanup(s.Server.Close)
	return s
}

// Seed 预置一个渠道，返回分配的ID
func (s *StubRegistry) Seed(w model.ChannelWire) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	w.ID = &id
	s.channels[id] = &w
	return id
}

// Channel 返回已存储渠道的副本
func (s *StubRegistry) Channel(id int64) (model.ChannelWire, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.channels[id]
	if !ok {
		return model.ChannelWire{}, false
	}
	return *w, true
}

// ChannelCount 已存储渠道数
func (s *StubRegistry) ChannelCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.channels)
}

// Requests 返回已收到请求的副本
func (s *StubRegistry) Requests() []CapturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CapturedRequest(nil), s.requests...)
}

func (s *StubRegistry) capture() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, _ := c.GetRawData()
		c.Set("body", body)
		s.mu.Lock()
		s.requests = append(s.requests, CapturedRequest{
			Method:        c.Request.Method,
			Path:          c.Request.URL.Path,
			Authorization: c.GetHeader("Authorization"),
			UserAgent:     c.GetHeader("User-Agent"),
			Body:          body,
		})
		s.mu.Unlock()
		c.Next()
	}
}

func (s *StubRegistry) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.RequiredToken == "" {
			c.Next()
			return
		}
		if strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ") != s.RequiredToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
			return
		}
		c.Next()
	}
}

func fail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": msg})
}

func (s *StubRegistry) listModels(c *gin.Context) {
	if s.ModelsMessage != "" {
		fail(c, s.ModelsMessage)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "", "data": s.Models})
}

func (s *StubRegistry) listGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "", "data": s.Groups})
}

func (s *StubRegistry) getChannel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, "invalid channel id")
		return
	}
	w, ok := s.Channel(id)
	if !ok {
		fail(c, "channel not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "", "data": w})
}

func (s *StubRegistry) decode(c *gin.Context) (*model.ChannelWire, bool) {
	raw, _ := c.Get("body")
	var w model.ChannelWire
	if err := sonic.Unmarshal(raw.([]byte), &w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return nil, false
	}
	if s.BrokenNames[w.Name] {
		c.String(http.StatusBadGateway, "<html>502 Bad Gateway</html>")
		return nil, false
	}
	if msg, ok := s.RejectNames[w.Name]; ok {
		fail(c, msg)
		return nil, false
	}
	return &w, true
}

func (s *StubRegistry) createChannel(c *gin.Context) {
	w, ok := s.decode(c)
	if !ok {
		return
	}
	s.Seed(*w)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": ""})
}

func (s *StubRegistry) updateChannel(c *gin.Context) {
	w, ok := s.decode(c)
	if !ok {
		return
	}
	if w.ID == nil {
		fail(c, "channel id is required")
		return
	}
	s.mu.Lock()
	_, exists := s.channels[*w.ID]
	if exists {
		s.channels[*w.ID] = w
	}
	s.mu.Unlock()
	if !exists {
		fail(c, "channel not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": ""})
}
