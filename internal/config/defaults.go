package config

import "time"

// 注册中心客户端配置常量
const (
	// DefaultRegistryURL 默认注册中心地址
	DefaultRegistryURL = "http://localhost:3000"

	// DefaultRequestTimeoutSec 单次请求超时（秒）
	DefaultRequestTimeoutSec = 30

	// HTTPDialTimeout DNS解析+TCP连接建立超时
	HTTPDialTimeout = 10 * time.Second

	// HTTPMaxIdleConnsPerHost 单host空闲连接数（批量提交串行，保持少量即可）
	HTTPMaxIdleConnsPerHost = 2

	// MaxResponseBytes 注册中心响应体上限
	MaxResponseBytes = 8 * 1024 * 1024
)

// 表单默认值常量
const (
	// FallbackTestModel model_test 未设置时的兜底测试模型
	FallbackTestModel = "gpt-3.5-turbo"

	// JSONIndent 编辑态JSON缩进
	JSONIndent = "  "
)

// 日志配置常量
const (
	// LogMaxMessageLength 单条日志最大长度（字符），超出截断
	LogMaxMessageLength = 2000
)

// 提交日志（journal）配置常量
const (
	// DefaultSQLitePath 默认SQLite路径
	DefaultSQLitePath = "data/chanedit.db"

	// DefaultHistoryLimit history 命令默认条数
	DefaultHistoryLimit = 20

	// SQLiteConnMaxLifetime 连接最大生命周期
	SQLiteConnMaxLifetime = 5 * time.Minute

	// MySQLMaxOpenConns MySQL最大连接数（CLI单进程，够用即可）
	MySQLMaxOpenConns = 4

	// StartupDBPingTimeout 启动时数据库连通性检测超时
	StartupDBPingTimeout = 5 * time.Second

	// StartupMigrationTimeout 建表超时
	StartupMigrationTimeout = 10 * time.Second
)
