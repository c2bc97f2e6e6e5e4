package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chanedit/internal/config"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// NewJournal 根据配置创建提交日志（工厂模式）
//
// 两种模式：
//   - SQLite 模式：CHANEDIT_MYSQL 不设置（默认）
//   - MySQL 模式：CHANEDIT_MYSQL 设置（多人共用审计库）
//
// CHANEDIT_JOURNAL=false 时返回 nil, nil，调用方不记录
func NewJournal(cfg *config.EnvConfig) (*SQLJournal, error) {
	if !cfg.JournalEnabled {
		return nil, nil
	}
	if cfg.MySQLDSN != "" {
		j, err := OpenMySQLJournal(cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("MySQL 初始化失败: %w", err)
		}
		log.Print("[INFO] 提交日志使用 MySQL 存储")
		return j, nil
	}

	j, err := OpenSQLiteJournal(cfg.SQLitePath, cfg.JournalMode)
	if err != nil {
		return nil, fmt.Errorf("SQLite 初始化失败: %w", err)
	}
	return j, nil
}

// OpenMySQLJournal 打开MySQL提交日志
func OpenMySQLJournal(dsn string) (*SQLJournal, error) {
	if dsn == "" {
		return nil, fmt.Errorf("MySQL DSN不能为空")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("打开MySQL连接失败: %w", err)
	}
	db.SetMaxOpenConns(config.MySQLMaxOpenConns)
	db.SetMaxIdleConns(config.MySQLMaxOpenConns)
	db.SetConnMaxLifetime(config.SQLiteConnMaxLifetime)

	// 测试连接（带超时，Fail-Fast）
	pingCtx, pingCancel := context.WithTimeout(context.Background(), config.StartupDBPingTimeout)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("MySQL连接测试失败（超时%v）: %w", config.StartupDBPingTimeout, err)
	}

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), config.StartupMigrationTimeout)
	defer migrateCancel()
	if err := migrate(migrateCtx, db, DialectMySQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("MySQL迁移失败（超时%v）: %w", config.StartupMigrationTimeout, err)
	}
	return newSQLJournal(db), nil
}

// OpenSQLiteJournal 打开SQLite提交日志，必要时创建数据目录
func OpenSQLiteJournal(path, journalMode string) (*SQLJournal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil { //nolint:gosec // G301: 数据目录需要当前用户可写
		return nil, err
	}

	db, err := sql.Open("sqlite", buildSQLiteDSN(path, journalMode))
	if err != nil {
		return nil, fmt.Errorf("打开SQLite失败: %w", err)
	}

	// 单连接：CLI 进程内串行写入，避免 BUSY
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(config.SQLiteConnMaxLifetime)

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), config.StartupMigrationTimeout)
	defer migrateCancel()
	if err := migrate(migrateCtx, db, DialectSQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("SQLite迁移失败（超时%v）: %w", config.StartupMigrationTimeout, err)
	}
	return newSQLJournal(db), nil
}

// buildSQLiteDSN 构建SQLite DSN（journalMode 已由 config.Validate 白名单校验）
func buildSQLiteDSN(path, journalMode string) string {
	if journalMode == "" {
		journalMode = "WAL"
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(%s)", path, journalMode)
}
