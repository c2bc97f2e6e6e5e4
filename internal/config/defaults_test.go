package config

import (
	"testing"
	"time"
)

// TestDefaultConstants 测试默认常量值的合理性
func TestDefaultConstants(t *testing.T) {
	tests := []struct {
		name  string
		value int
		min   int
		max   int
	}{
		{"DefaultRequestTimeoutSec", DefaultRequestTimeoutSec, 1, 600},
		{"HTTPMaxIdleConnsPerHost", HTTPMaxIdleConnsPerHost, 1, 100},
		{"MaxResponseBytes", MaxResponseBytes, 1024, 64 * 1024 * 1024},
		{"LogMaxMessageLength", LogMaxMessageLength, 100, 100000},
		{"DefaultHistoryLimit", DefaultHistoryLimit, 1, 1000},
		{"MySQLMaxOpenConns", MySQLMaxOpenConns, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value < tt.min || tt.value > tt.max {
				t.Errorf("%s=%d 超出合理范围 [%d, %d]", tt.name, tt.value, tt.min, tt.max)
			}
		})
	}
}

// TestTimeoutConstants 测试超时常量
func TestTimeoutConstants(t *testing.T) {
	for name, d := range map[string]time.Duration{
		"HTTPDialTimeout":         HTTPDialTimeout,
		"StartupDBPingTimeout":    StartupDBPingTimeout,
		"StartupMigrationTimeout": StartupMigrationTimeout,
		"SQLiteConnMaxLifetime":   SQLiteConnMaxLifetime,
	} {
		if d <= 0 {
			t.Errorf("%s=%v 必须为正", name, d)
		}
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"CHANEDIT_REGISTRY_URL", "CHANEDIT_ACCESS_TOKEN", "CHANEDIT_TIMEOUT", "CHANEDIT_JOURNAL",
		"SQLITE_PATH", "CHANEDIT_MYSQL", "SQLITE_JOURNAL_MODE", "CHANEDIT_NO_BANNER",
	} {
		t.Setenv(k, "")
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.RegistryURL != DefaultRegistryURL {
		t.Errorf("RegistryURL = %q", cfg.RegistryURL)
	}
	if cfg.RequestTimeout != DefaultRequestTimeoutSec*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if !cfg.JournalEnabled || cfg.SQLitePath != DefaultSQLitePath || cfg.JournalMode != "WAL" {
		t.Errorf("journal config = %+v", cfg)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("CHANEDIT_REGISTRY_URL", "https://registry.example.com/")
	t.Setenv("CHANEDIT_ACCESS_TOKEN", " tok ")
	t.Setenv("CHANEDIT_TIMEOUT", "45")
	t.Setenv("CHANEDIT_JOURNAL", "false")
	t.Setenv("SQLITE_JOURNAL_MODE", "delete")
	t.Setenv("CHANEDIT_MYSQL", "")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.RegistryURL != "https://registry.example.com" {
		t.Errorf("RegistryURL = %q, want trailing slash trimmed", cfg.RegistryURL)
	}
	if cfg.AccessToken != "tok" || cfg.RequestTimeout != 45*time.Second || cfg.JournalEnabled {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.JournalMode != "DELETE" {
		t.Errorf("JournalMode = %q", cfg.JournalMode)
	}
}

func TestEnvConfig_Validate(t *testing.T) {
	base := func() EnvConfig {
		return EnvConfig{
			RegistryURL:    "http://localhost:3000",
			RequestTimeout: 30 * time.Second,
			JournalEnabled: true,
			SQLitePath:     "data/x.db",
			JournalMode:    "WAL",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*EnvConfig)
		wantErr bool
	}{
		{"valid", func(*EnvConfig) {}, false},
		{"relative_url", func(c *EnvConfig) { c.RegistryURL = "localhost:3000" }, true},
		{"ftp_url", func(c *EnvConfig) { c.RegistryURL = "ftp://host" }, true},
		{"timeout_too_large", func(c *EnvConfig) { c.RequestTimeout = time.Hour }, true},
		{"no_journal_path", func(c *EnvConfig) { c.SQLitePath = "" }, true},
		{"journal_disabled_no_path", func(c *EnvConfig) { c.SQLitePath = ""; c.JournalEnabled = false }, false},
		{"bad_journal_mode", func(c *EnvConfig) { c.JournalMode = "WAL;DROP" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
