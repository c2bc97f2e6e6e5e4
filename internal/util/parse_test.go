package util

import "testing"

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		wantV bool
		wantO bool
	}{
		{name: "true_1", raw: "1", wantV: true, wantO: true},
		{name: "true_true", raw: "true", wantV: true, wantO: true},
		{name: "true_yes", raw: "yes", wantV: true, wantO: true},
		{name: "true_chinese", raw: "启用", wantV: true, wantO: true},
		{name: "true_spaces_case", raw: "  ON  ", wantV: true, wantO: true},
		{name: "false_0", raw: "0", wantV: false, wantO: true},
		{name: "false_false", raw: "false", wantV: false, wantO: true},
		{name: "false_no", raw: "no", wantV: false, wantO: true},
		{name: "false_chinese", raw: "禁用", wantV: false, wantO: true},
		{name: "false_spaces_case", raw: "  Off  ", wantV: false, wantO: true},
		{name: "invalid", raw: "maybe", wantV: false, wantO: false},
		{name: "empty", raw: "", wantV: false, wantO: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotV, gotO := ParseBool(tt.raw)
			if gotV != tt.wantV || gotO != tt.wantO {
				t.Fatalf("ParseBool(%q) = (%v,%v), want (%v,%v)", tt.raw, gotV, gotO, tt.wantV, tt.wantO)
			}
		})
	}
}

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw       string
		wantField string
		wantValue string
		wantOK    bool
	}{
		{raw: "name=primary", wantField: "name", wantValue: "primary", wantOK: true},
		{raw: " priority = 5", wantField: "priority", wantValue: " 5", wantOK: true},
		{raw: `headers={"a":"b=c"}`, wantField: "headers", wantValue: `{"a":"b=c"}`, wantOK: true},
		{raw: "base_url=", wantField: "base_url", wantValue: "", wantOK: true},
		{raw: "noequals", wantOK: false},
		{raw: "=value", wantOK: false},
	}

	for _, tt := range tests {
		f, v, ok := ParseAssignment(tt.raw)
		if ok != tt.wantOK || f != tt.wantField || v != tt.wantValue {
			t.Fatalf("ParseAssignment(%q) = (%q,%q,%v), want (%q,%q,%v)", tt.raw, f, v, ok, tt.wantField, tt.wantValue, tt.wantOK)
		}
	}
}
