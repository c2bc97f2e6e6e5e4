package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "chanedit/internal/errors"
)

// EnvConfig 统一环境变量配置结构
type EnvConfig struct {
	// 注册中心
	RegistryURL    string
	AccessToken    string
	RequestTimeout time.Duration

	// 提交日志
	JournalEnabled bool
	SQLitePath     string
	MySQLDSN       string
	JournalMode    string

	// 终端
	NoBanner bool
}

// LoadFromEnv 从环境变量加载配置并验证
func LoadFromEnv() (*EnvConfig, error) {
	cfg := &EnvConfig{}

	cfg.RegistryURL = strings.TrimRight(getEnvOrDefault("CHANEDIT_REGISTRY_URL", DefaultRegistryURL), "/")
	cfg.AccessToken = strings.TrimSpace(os.Getenv("CHANEDIT_ACCESS_TOKEN"))
	cfg.RequestTimeout = time.Duration(getIntEnv("CHANEDIT_TIMEOUT", DefaultRequestTimeoutSec)) * time.Second

	cfg.JournalEnabled = getBoolEnv("CHANEDIT_JOURNAL", true)
	cfg.SQLitePath = getEnvOrDefault("SQLITE_PATH", DefaultSQLitePath)
	cfg.MySQLDSN = os.Getenv("CHANEDIT_MYSQL")
	cfg.JournalMode = strings.ToUpper(getEnvOrDefault("SQLITE_JOURNAL_MODE", "WAL"))

	cfg.NoBanner = getBoolEnv("CHANEDIT_NO_BANNER", false)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置合法性
func (c *EnvConfig) Validate() error {
	if c.RegistryURL == "" {
		return apperrors.MissingConfigError("CHANEDIT_REGISTRY_URL")
	}
	u, err := url.Parse(c.RegistryURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.InvalidConfigError("CHANEDIT_REGISTRY_URL", "must be an absolute http(s) URL")
	}

	if c.RequestTimeout < time.Second || c.RequestTimeout > 600*time.Second {
		return apperrors.InvalidConfigError("CHANEDIT_TIMEOUT", "out of range [1s, 600s]")
	}

	if c.JournalEnabled && c.MySQLDSN == "" && c.SQLitePath == "" {
		return apperrors.MissingConfigError("SQLITE_PATH")
	}

	// 白名单校验：journal_mode 会拼进 DSN
	if !validJournalModes[c.JournalMode] {
		return apperrors.InvalidConfigError("SQLITE_JOURNAL_MODE", "allowed values: DELETE, TRUNCATE, PERSIST, MEMORY, WAL, OFF")
	}
	return nil
}

var validJournalModes = map[string]bool{
	"DELETE":   true,
	"TRUNCATE": true,
	"PERSIST":  true,
	"MEMORY":   true,
	"WAL":      true,
	"OFF":      true,
}

// 辅助函数：获取环境变量或默认值
func getEnvOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// 辅助函数：获取整数环境变量
func getIntEnv(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultValue
}

// 辅助函数：获取布尔环境变量
func getBoolEnv(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "1" || strings.EqualFold(val, "true") {
		return true
	}
	if val == "0" || strings.EqualFold(val, "false") {
		return false
	}
	return defaultValue
}
