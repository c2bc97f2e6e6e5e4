// Package proxylist 将批量代理文本展开为多条独立的渠道草稿
package proxylist

import (
	"strings"

	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
)

// GeneratedNamePrefix 未指定名称时的生成前缀
const GeneratedNamePrefix = "Channel for "

// Entry 单行解析结果
type Entry struct {
	Line    int // 源文本行号（从1开始）
	Name    string
	Address string
}

// Parse 解析批量代理文本，每行 "name,address"
// 空行跳过；只按第一个逗号切分；任意一行缺少地址则整体失败（全有或全无）
func Parse(text string) ([]Entry, error) {
	lines := strings.Split(text, "\n")
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		name, address, _ := strings.Cut(line, ",")
		name = strings.TrimSpace(name)
		address = strings.TrimSpace(address)
		if address == "" {
			return nil, apperrors.ExpansionError(i+1, "invalid proxy address format")
		}
		if name == "" {
			name = GeneratedNamePrefix + address
		}
		entries = append(entries, Entry{Line: i + 1, Name: name, Address: address})
	}
	if len(entries) == 0 {
		return nil, apperrors.ExpansionError(0, "no proxy entries")
	}
	return entries, nil
}

// Expand 基于模板草稿生成批量创建记录
// 每条记录深拷贝模板的全部字段，仅覆盖 name 与 base_url，并清除ID（始终为创建）
// 输出顺序与输入行顺序一致，决定后续提交顺序
func Expand(text string, template *model.ChannelConfig) ([]*model.ChannelConfig, error) {
	entries, err := Parse(text)
	if err != nil {
		return nil, err
	}

	out := make([]*model.ChannelConfig, 0, len(entries))
	for _, e := range entries {
		rec := template.Clone()
		rec.ID = nil
		rec.Name = e.Name
		rec.BaseURL = e.Address
		out = append(out, rec)
	}
	return out, nil
}
