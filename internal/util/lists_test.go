package util

import (
	"slices"
	"testing"
)

// TestSplitCommaList 测试逗号列表解析
func TestSplitCommaList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "单个模型", input: "gpt-4", expected: []string{"gpt-4"}},
		{name: "多个模型", input: "gpt-4,gpt-3.5-turbo,claude-2", expected: []string{"gpt-4", "gpt-3.5-turbo", "claude-2"}},
		{name: "带空格", input: " gpt-4 , claude-2 ", expected: []string{"gpt-4", "claude-2"}},
		{name: "空字符串", input: "", expected: []string{}},
		{name: "仅空格", input: "   ", expected: []string{}},
		{name: "包含空项", input: "a,,b", expected: []string{"a", "b"}},
		{name: "重复项保序去重", input: "b,a,b,c,a", expected: []string{"b", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCommaList(tt.input)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if !slices.Equal(got, tt.expected) {
				t.Fatalf("SplitCommaList(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJoinCommaList_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []string{"gpt-4", "claude-2", "gemini-pro"}
	if got := SplitCommaList(JoinCommaList(in)); !slices.Equal(got, in) {
		t.Fatalf("round trip mismatch: %v", got)
	}
	if JoinCommaList(nil) != "" {
		t.Fatal("expected empty string for nil list")
	}
}

func TestMaskAPIKey(t *testing.T) {
	t.Parallel()

	if got := MaskAPIKey("sk-1234567890abcdef"); got != "sk-1...cdef" {
		t.Fatalf("MaskAPIKey = %q", got)
	}
	if got := MaskAPIKey("short"); got != "****" {
		t.Fatalf("MaskAPIKey(short) = %q", got)
	}
}
