// Package version 提供构建版本信息与启动 Banner
// 版本号通过 go build -ldflags 注入，同时用于注册中心请求的 User-Agent
package version

// 构建信息变量，通过 ldflags 注入
// 构建命令示例:
//
//	go build -ldflags "-X chanedit/internal/version.Version=$(git describe --tags --always) \
//	  -X chanedit/internal/version.Commit=$(git rev-parse --short HEAD) \
//	  -X 'chanedit/internal/version.BuildTime=$(date +%Y-%m-%d\ %H:%M:%S\ %z)'"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String 单行版本描述（cobra --version 使用）
func String() string {
	return Version + " (commit " + Commit + ", built " + BuildTime + ")"
}
