package util

import (
	"log"
	"regexp"
	"strings"
	"unicode"

	"chanedit/internal/config"
)

// credentialPattern 日志中可能出现的凭据：Bearer 令牌与 sk- 前缀密钥
var credentialPattern = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._\-]+|\bsk-[A-Za-z0-9_\-]{8,}`)

// SanitizeLogMessage 消毒日志消息
//  1. 转义换行、回车、制表符，其余控制字符转为 \xNN，防止日志注入
//  2. 凭据脱敏（保留前4位与后4位）
//  3. 超过 config.LogMaxMessageLength 截断
func SanitizeLogMessage(msg string) string {
	if msg == "" {
		return ""
	}

	msg = strings.ReplaceAll(msg, "\n", "\\n")
	msg = strings.ReplaceAll(msg, "\r", "\\r")
	msg = strings.ReplaceAll(msg, "\t", "\\t")

	var builder strings.Builder
	builder.Grow(len(msg))
	for _, r := range msg {
		switch {
		case unicode.IsPrint(r) || r == ' ':
			builder.WriteRune(r)
		case r < 32:
			builder.WriteString("\\x")
			builder.WriteString(string(rune('0' + (r/16)%16)))
			builder.WriteString(string(rune('0' + r%16)))
		}
	}
	msg = redactCredentials(builder.String())

	if len(msg) > config.LogMaxMessageLength {
		msg = msg[:config.LogMaxMessageLength] + "...[truncated]"
	}
	return msg
}

func redactCredentials(msg string) string {
	return credentialPattern.ReplaceAllStringFunc(msg, func(m string) string {
		if sub := credentialPattern.FindStringSubmatch(m); sub[1] != "" {
			return sub[1] + MaskAPIKey(strings.TrimPrefix(m, sub[1]))
		}
		return MaskAPIKey(m)
	})
}

// SanitizeError 消毒error对象的Error()输出
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeLogMessage(err.Error())
}

// SafePrintf 替代 log.Printf：string 与 error 参数先经 SanitizeLogMessage 处理
// 格式串本身不消毒，必须是字面量
func SafePrintf(format string, args ...any) {
	sanitized := make([]any, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			sanitized[i] = SanitizeLogMessage(v)
		case error:
			sanitized[i] = SanitizeError(v)
		default:
			sanitized[i] = v
		}
	}
	log.Printf(format, sanitized...)
}
