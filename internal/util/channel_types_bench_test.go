package util

import (
	"testing"

	"chanedit/internal/model"
)

// BenchmarkResolveTypeDefaults 类型切换时的默认值解析开销
func BenchmarkResolveTypeDefaults(b *testing.B) {
	testCases := []struct {
		name string
		typ  model.ChannelType
	}{
		{"Azure", model.ChannelTypeAzure},
		{"Anthropic", model.ChannelTypeAnthropic},
		{"Unknown", 999},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = ResolveTypeDefaults(tc.typ)
			}
		})
	}
}

// BenchmarkListChannelTypes 并发列举
func BenchmarkListChannelTypes(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = ListChannelTypes()
		}
	})
}
