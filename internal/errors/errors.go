package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode 错误代码类型（便于机器识别和监控）
type ErrorCode string

const (
	// 表单校验相关错误
	ErrCodeValidation   ErrorCode = "VALIDATION"    // 必填字段缺失、模型为空等
	ErrCodeInvalidJSON  ErrorCode = "INVALID_JSON"  // model_mapping / headers 非法JSON
	ErrCodeInvalidField ErrorCode = "INVALID_FIELD" // 字段值类型与声明不符
	ErrCodeExpansion    ErrorCode = "EXPANSION"     // 批量代理列表格式错误
	ErrCodeStaleDraft   ErrorCode = "STALE_DRAFT"   // 草稿已提交或模型列表损坏

	// 注册中心相关错误
	ErrCodeRegistryRejected ErrorCode = "REGISTRY_REJECTED" // 服务端返回 success=false
	ErrCodeHTTPRequest      ErrorCode = "HTTP_REQUEST"      // HTTP请求失败
	ErrCodeHTTPTimeout      ErrorCode = "HTTP_TIMEOUT"      // HTTP请求超时

	// 数据库操作错误
	ErrCodeDBQuery  ErrorCode = "DB_QUERY"  // 数据库查询失败
	ErrCodeDBInsert ErrorCode = "DB_INSERT" // 数据库插入失败

	// 配置相关错误
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG" // 配置无效
	ErrCodeMissingConfig ErrorCode = "MISSING_CONFIG" // 配置缺失
)

// AppError 应用级错误结构（支持错误链和上下文信息）
type AppError struct {
	Code    ErrorCode      // 错误代码（机器可识别）
	Message string         // 错误消息（人类可读，直接展示给操作员）
	Err     error          // 底层错误（支持错误链）
	Context map[string]any // 错误上下文（便于调试和监控）
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 实现错误链（Go 1.13+）
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext 添加错误上下文
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ============== 表单错误工厂函数 ==============

// ValidationError 本地校验失败（不会触达注册中心）
func ValidationError(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: map[string]any{"field": field},
	}
}

// InvalidJSONError JSON字段格式错误
func InvalidJSONError(field string, err error) *AppError {
	label := field
	switch field {
	case "model_mapping":
		label = "model mapping"
	case "headers":
		label = "headers"
	}
	return &AppError{
		Code:    ErrCodeInvalidJSON,
		Message: label + " must be valid JSON",
		Err:     err,
		Context: map[string]any{"field": field},
	}
}

// InvalidFieldError 字段值与字段声明类型不匹配
func InvalidFieldError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidField,
		Message: fmt.Sprintf("invalid value for field '%s': %s", field, reason),
		Context: map[string]any{"field": field, "reason": reason},
	}
}

// ExpansionError 批量代理列表解析失败（整批中止）
func ExpansionError(line int, reason string) *AppError {
	msg := "invalid proxy address format"
	if reason != "" {
		msg = reason
	}
	if line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, line)
	}
	return &AppError{
		Code:    ErrCodeExpansion,
		Message: msg,
		Context: map[string]any{"line": line},
	}
}

// StaleDraftError 草稿状态不一致（重复提交或模型列表损坏）
func StaleDraftError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeStaleDraft,
		Message: "submission failed, please do not submit twice",
		Context: map[string]any{"reason": reason},
	}
}

// ============== 注册中心错误工厂函数 ==============

// RegistryRejected 注册中心返回 success=false，消息原样透传
func RegistryRejected(operation string, message string) *AppError {
	return &AppError{
		Code:    ErrCodeRegistryRejected,
		Message: message,
		Context: map[string]any{"operation": operation},
	}
}

// HTTPRequestError HTTP请求失败
func HTTPRequestError(url string, method string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeHTTPRequest,
		Message: fmt.Sprintf("%s request to %s failed", method, url),
		Err:     err,
		Context: map[string]any{"url": url, "method": method},
	}
}

// HTTPTimeoutError HTTP请求超时
func HTTPTimeoutError(url string, timeout int) *AppError {
	return &AppError{
		Code:    ErrCodeHTTPTimeout,
		Message: fmt.Sprintf("request to %s timed out after %ds", url, timeout),
		Context: map[string]any{"url": url, "timeout": timeout},
	}
}

// ============== 数据库错误工厂函数 ==============

// DBQueryError 数据库查询失败
func DBQueryError(operation string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDBQuery,
		Message: fmt.Sprintf("database query failed: %s", operation),
		Err:     err,
		Context: map[string]any{"operation": operation},
	}
}

// DBInsertError 数据库插入失败
func DBInsertError(table string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDBInsert,
		Message: fmt.Sprintf("failed to insert into %s", table),
		Err:     err,
		Context: map[string]any{"table": table},
	}
}

// ============== 配置错误工厂函数 ==============

// InvalidConfigError 配置无效
func InvalidConfigError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: fmt.Sprintf("invalid config field '%s': %s", field, reason),
		Context: map[string]any{"field": field, "reason": reason},
	}
}

// MissingConfigError 配置缺失
func MissingConfigError(field string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingConfig,
		Message: fmt.Sprintf("missing required config field: %s", field),
		Context: map[string]any{"field": field},
	}
}

// ============== 工具函数 ==============

// GetErrorCode 获取错误代码（如果是AppError）
func GetErrorCode(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasErrorCode 判断错误是否为特定错误代码
func HasErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// UserMessage 提取面向操作员的消息（不含错误码前缀）
// 传输层错误保留底层原因，便于区分"服务拒绝"和"网络异常"
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Code {
	case ErrCodeHTTPRequest, ErrCodeDBQuery, ErrCodeDBInsert:
		if appErr.Err != nil {
			return fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
		}
	}
	return appErr.Message
}
