// Package util 提供通用工具函数
package util

import "strings"

// SplitCommaList 解析逗号拼接的列表（models / group 的线上格式）
// 去除首尾空白、跳过空项、去重并保持首次出现的顺序
func SplitCommaList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	return NormalizeList(parts)
}

// NormalizeList 规范化字符串列表：trim、去空、去重（保序）
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// JoinCommaList 列表拼接为线上格式
func JoinCommaList(items []string) string {
	return strings.Join(items, ",")
}

// MaskAPIKey 将API Key脱敏为 "abcd...klmn" 格式（前4位 + ... + 后4位）
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
