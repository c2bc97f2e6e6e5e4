package model

import "strings"

// Field 可编辑字段选择器（替代按字符串键名打补丁的动态对象）
type Field int

const (
	FieldUnknown Field = iota
	FieldName
	FieldType
	FieldKey
	FieldOpenAIOrganization
	FieldBaseURL
	FieldOther
	FieldModelMapping
	FieldHeaders
	FieldModels
	FieldGroups
	FieldAutoBan
	FieldImageURLEnabled
	FieldRateLimited
	FieldPriority
	FieldWeight
	FieldTestedTime
	FieldModelTest
)

// FieldKind 字段声明类型
type FieldKind int

const (
	KindText FieldKind = iota
	KindList
	KindBool
	KindNumber
	KindType
)

var fieldNames = map[Field]string{
	FieldName:               "name",
	FieldType:               "type",
	FieldKey:                "key",
	FieldOpenAIOrganization: "openai_organization",
	FieldBaseURL:            "base_url",
	FieldOther:              "other",
	FieldModelMapping:       "model_mapping",
	FieldHeaders:            "headers",
	FieldModels:             "models",
	FieldGroups:             "groups",
	FieldAutoBan:            "auto_ban",
	FieldImageURLEnabled:    "is_image_url_enabled",
	FieldRateLimited:        "rate_limited",
	FieldPriority:           "priority",
	FieldWeight:             "weight",
	FieldTestedTime:         "tested_time",
	FieldModelTest:          "model_test",
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, len(fieldNames)+1)
	for f, n := range fieldNames {
		m[n] = f
	}
	m["group"] = FieldGroups // 线上字段名别名
	return m
}()

// String 返回字段的线上名称
func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

// Valid 是否为已定义字段
func (f Field) Valid() bool {
	_, ok := fieldNames[f]
	return ok
}

// Kind 返回字段声明类型
func (f Field) Kind() FieldKind {
	switch f {
	case FieldModels, FieldGroups:
		return KindList
	case FieldAutoBan, FieldImageURLEnabled, FieldRateLimited:
		return KindBool
	case FieldPriority, FieldWeight, FieldTestedTime:
		return KindNumber
	case FieldType:
		return KindType
	default:
		return KindText
	}
}

// ParseField 线上字段名转选择器（大小写不敏感），未知返回 FieldUnknown
func ParseField(name string) Field {
	if f, ok := fieldsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f
	}
	return FieldUnknown
}

// AllFields 所有可编辑字段（声明顺序）
func AllFields() []Field {
	out := make([]Field, 0, len(fieldNames))
	for f := FieldName; f <= FieldModelTest; f++ {
		out = append(out, f)
	}
	return out
}
