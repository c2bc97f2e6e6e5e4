package util

import "strings"

// ParseBool 解析常见的布尔字符串表示
// 返回 (value, ok)：ok 表示是否为有效的布尔值
func ParseBool(raw string) (bool, bool) {
	val := strings.TrimSpace(strings.ToLower(raw))
	switch val {
	case "1", "true", "yes", "y", "启用", "enabled", "on":
		return true, true
	case "0", "false", "no", "n", "禁用", "disabled", "off":
		return false, true
	default:
		return false, false
	}
}

// ParseAssignment 解析 "field=value" 形式的赋值表达式（CLI --set 参数）
// 只按第一个 '=' 切分，value 中允许出现 '='（如JSON、URL查询串）
func ParseAssignment(raw string) (field, value string, ok bool) {
	field, value, ok = strings.Cut(raw, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return "", "", false
	}
	return field, value, true
}
