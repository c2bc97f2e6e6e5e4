package normalize

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
	"chanedit/internal/util"
)

// SetField 按字段选择器更新草稿，在边界处按字段声明类型校验值
//
//	文本字段: string
//	列表字段: []string 或逗号拼接的 string
//	开关字段: bool、整数（0为false）或 util.ParseBool 可识别的字符串
//	数值字段: 整数或字符串，非法值与负数归零
//	类型字段: 整数或数字字符串，非法值报错
func SetField(cfg *model.ChannelConfig, f model.Field, value any) error {
	if !f.Valid() {
		return apperrors.InvalidFieldError(f.String(), "unknown field")
	}
	switch f.Kind() {
	case model.KindText:
		s, ok := value.(string)
		if !ok {
			return apperrors.InvalidFieldError(f.String(), fmt.Sprintf("expected string, got %T", value))
		}
		setText(cfg, f, s)
		return nil

	case model.KindList:
		list, err := coerceList(f, value)
		if err != nil {
			return err
		}
		if f == model.FieldModels {
			cfg.Models = list
		} else {
			cfg.Groups = list
		}
		return nil

	case model.KindBool:
		b, err := coerceBool(f, value)
		if err != nil {
			return err
		}
		switch f {
		case model.FieldAutoBan:
			cfg.AutoBan = b
		case model.FieldImageURLEnabled:
			cfg.ImageURLEnabled = b
		case model.FieldRateLimited:
			cfg.RateLimited = b
		}
		return nil

	case model.KindNumber:
		n, err := coerceNumber(f, value)
		if err != nil {
			return err
		}
		switch f {
		case model.FieldPriority:
			cfg.Priority = n
		case model.FieldWeight:
			cfg.Weight = n
		case model.FieldTestedTime:
			cfg.TestedTime = n
		}
		return nil

	case model.KindType:
		t, err := CoerceChannelType(value)
		if err != nil {
			return err
		}
		cfg.Type = t
		return nil
	}
	return apperrors.InvalidFieldError(f.String(), "unknown field")
}

func setText(cfg *model.ChannelConfig, f model.Field, s string) {
	switch f {
	case model.FieldName:
		cfg.Name = s
	case model.FieldKey:
		cfg.Key = s
	case model.FieldOpenAIOrganization:
		cfg.OpenAIOrganization = s
	case model.FieldBaseURL:
		cfg.BaseURL = s
	case model.FieldOther:
		cfg.Other = s
	case model.FieldModelMapping:
		cfg.ModelMapping = s
	case model.FieldHeaders:
		cfg.Headers = s
	case model.FieldModelTest:
		cfg.ModelTest = s
	}
}

func coerceList(f model.Field, value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return util.NormalizeList(v), nil
	case string:
		return util.SplitCommaList(v), nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, apperrors.InvalidFieldError(f.String(), fmt.Sprintf("list item must be string, got %T", item))
			}
			items = append(items, s)
		}
		return util.NormalizeList(items), nil
	}
	return nil, apperrors.InvalidFieldError(f.String(), fmt.Sprintf("expected list of strings, got %T", value))
}

func coerceBool(f model.Field, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case string:
		if b, ok := util.ParseBool(v); ok {
			return b, nil
		}
		return false, apperrors.InvalidFieldError(f.String(), fmt.Sprintf("cannot parse %q as boolean", v))
	}
	return false, apperrors.InvalidFieldError(f.String(), fmt.Sprintf("expected boolean, got %T", value))
}

func coerceNumber(f model.Field, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return nonNegative(v), nil
	case int64:
		return model.ParseNonNegativeInt(strconv.FormatInt(v, 10)), nil
	case float64:
		return model.ParseNonNegativeInt(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case string:
		return model.ParseNonNegativeInt(v), nil
	}
	return 0, apperrors.InvalidFieldError(f.String(), fmt.Sprintf("expected number, got %T", value))
}

// CoerceChannelType 解析渠道类型；与数值字段不同，非法类型不归零而是报错
func CoerceChannelType(value any) (model.ChannelType, error) {
	var n int64
	switch v := value.(type) {
	case model.ChannelType:
		n = int64(v)
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != float64(int64(v)) {
			return 0, apperrors.InvalidFieldError("type", fmt.Sprintf("%v is not an integer", v))
		}
		n = int64(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, apperrors.InvalidFieldError("type", fmt.Sprintf("cannot parse %q as channel type", v))
		}
		n = parsed
	default:
		return 0, apperrors.InvalidFieldError("type", fmt.Sprintf("expected integer, got %T", value))
	}
	if n < 0 {
		return 0, apperrors.InvalidFieldError("type", "channel type must not be negative")
	}
	return model.ChannelType(n), nil
}
