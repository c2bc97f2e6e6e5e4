package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bytedance/sonic"
)

func TestParseNonNegativeInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"12", 12},
		{" 12 ", 12},
		{"12.0", 12},
		{"-3", 0},
		{"-0.5", 0},
		{"", 0},
		{"null", 0},
		{"true", 1},
		{"false", 0},
		{"abc", 0},
		{"1e3", 1000},
		{"NaN", 0},
	}
	for _, tt := range tests {
		if got := ParseNonNegativeInt(tt.raw); got != tt.want {
			t.Errorf("ParseNonNegativeInt(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

// TestChannelWire_LenientDecode 注册中心历史数据：数字字符串、空串、bool 混用
func TestChannelWire_LenientDecode(t *testing.T) {
	t.Parallel()

	body := `{"id":7,"name":"legacy","type":"3","priority":"","weight":-2,"tested_time":"30",
		"auto_ban":true,"is_image_url_enabled":"1","rate_limited":1,"models":"a,b"}`

	var w ChannelWire
	if err := sonic.UnmarshalString(body, &w); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if w.ID == nil || *w.ID != 7 {
		t.Fatalf("ID = %v", w.ID)
	}
	if w.Type != 3 || w.Priority != 0 || w.Weight != 0 || w.TestedTime != 30 {
		t.Fatalf("numbers = type:%d priority:%d weight:%d tested:%d", w.Type, w.Priority, w.Weight, w.TestedTime)
	}
	if w.AutoBan != 1 || w.IsImageURLEnabled != 1 || !bool(w.RateLimited) {
		t.Fatalf("flags = %d/%d/%v", w.AutoBan, w.IsImageURLEnabled, w.RateLimited)
	}
}

func TestFlexBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"true"`, true},
		{`""`, false},
		{`null`, false},
	}
	for _, tt := range tests {
		var b FlexBool
		if err := json.Unmarshal([]byte(tt.raw), &b); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tt.raw, err)
		}
		if bool(b) != tt.want {
			t.Errorf("FlexBool(%s) = %v, want %v", tt.raw, b, tt.want)
		}
	}
}

func TestChannelWire_CreateOmitsID(t *testing.T) {
	t.Parallel()

	data, err := sonic.Marshal(ChannelWire{Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	_ = sonic.Unmarshal(data, &m)
	if _, ok := m["id"]; ok {
		t.Fatalf("create payload contains id: %s", data)
	}
	if _, ok := m["tested_time"]; !ok {
		t.Fatalf("numeric fields must always be present: %s", data)
	}
}

func TestNewDraft(t *testing.T) {
	t.Parallel()

	d := NewDraft()
	if d.IsEdit() {
		t.Fatal("new draft must be in create mode")
	}
	if d.Type != ChannelTypeOpenAI || !d.AutoBan {
		t.Fatalf("draft = %+v", d)
	}
	if len(d.Models) != 0 || d.Models == nil {
		t.Fatalf("Models = %#v, want empty non-nil", d.Models)
	}
	if len(d.Groups) != 1 || d.Groups[0] != DefaultGroup {
		t.Fatalf("Groups = %v", d.Groups)
	}
}

func TestChannelConfig_Clone(t *testing.T) {
	t.Parallel()

	id := int64(5)
	src := &ChannelConfig{ID: &id, Name: "src", Models: []string{"a"}, Groups: []string{"g"}}
	cp := src.Clone()

	cp.Models[0] = "changed"
	cp.Groups = append(cp.Groups, "h")
	*cp.ID = 9

	if src.Models[0] != "a" || len(src.Groups) != 1 || *src.ID != 5 {
		t.Fatalf("clone shares state with source: %+v", src)
	}
	if (*ChannelConfig)(nil).Clone() != nil {
		t.Fatal("Clone(nil) should be nil")
	}
	if c := (&ChannelConfig{}).Clone(); c.Models == nil || c.Groups == nil {
		t.Fatal("Clone should normalize nil lists to empty")
	}
}

func TestParseField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Field
		kind FieldKind
	}{
		{"name", FieldName, KindText},
		{" Base_URL ", FieldBaseURL, KindText},
		{"group", FieldGroups, KindList},
		{"groups", FieldGroups, KindList},
		{"models", FieldModels, KindList},
		{"auto_ban", FieldAutoBan, KindBool},
		{"priority", FieldPriority, KindNumber},
		{"type", FieldType, KindType},
		{"nope", FieldUnknown, KindText},
	}
	for _, tt := range tests {
		f := ParseField(tt.name)
		if f != tt.want || f.Kind() != tt.kind {
			t.Errorf("ParseField(%q) = %v (%v), want %v (%v)", tt.name, f, f.Kind(), tt.want, tt.kind)
		}
	}

	for _, f := range AllFields() {
		if ParseField(f.String()) != f {
			t.Errorf("field %v does not round-trip through its wire name", f)
		}
	}
}

func TestJSONTime(t *testing.T) {
	t.Parallel()

	jt := JSONTime{Time: time.Unix(1700000000, 0)}
	data, err := jt.MarshalJSON()
	if err != nil || string(data) != "1700000000" {
		t.Fatalf("MarshalJSON() = %s, %v", data, err)
	}
	var back JSONTime
	if err := back.UnmarshalJSON(data); err != nil || !back.Equal(jt.Time) {
		t.Fatalf("UnmarshalJSON() = %v, %v", back, err)
	}
	if data, _ := (JSONTime{}).MarshalJSON(); string(data) != "0" {
		t.Fatalf("zero time = %s", data)
	}
}
