package util

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/bytedance/sonic"

	"chanedit/internal/config"
)

// MarshalJSON 使用sonic进行JSON序列化
func MarshalJSON(v any) (string, error) {
	bytes, err := sonic.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// UnmarshalJSON 使用sonic进行JSON反序列化
func UnmarshalJSON(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

// ValidJSON 判断文本是否为语法合法的JSON
func ValidJSON(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	return sonic.Valid([]byte(raw))
}

// IndentJSON 以两个空格缩进重排JSON文本（编辑态展示）
// 直接重排原始字节，保留键的原有顺序；sonic 解码成 map 会丢失顺序
func IndentJSON(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	var probe any
	if err := sonic.UnmarshalString(raw, &probe); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", config.JSONIndent); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// JSONEqual 按解析后的值比较两段JSON（忽略空白与格式差异）
func JSONEqual(a, b string) bool {
	var va, vb any
	if err := sonic.UnmarshalString(a, &va); err != nil {
		return false
	}
	if err := sonic.UnmarshalString(b, &vb); err != nil {
		return false
	}
	ca, err1 := sonic.ConfigStd.Marshal(va)
	cb, err2 := sonic.ConfigStd.Marshal(vb)
	return err1 == nil && err2 == nil && bytes.Equal(ca, cb)
}
