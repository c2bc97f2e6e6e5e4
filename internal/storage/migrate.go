package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"chanedit/internal/storage/schema"
)

// Dialect 数据库方言
type Dialect int

const (
	// DialectSQLite SQLite数据库方言
	DialectSQLite Dialect = iota
	// DialectMySQL MySQL数据库方言
	DialectMySQL
)

// schemaVersion 当前表结构版本，变更表结构时递增并在 migrate 中处理
const schemaVersion = "2026-10-submissions-v1"

// migrate 统一迁移逻辑
func migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	tables := []func() *schema.TableBuilder{
		schema.DefineSchemaMigrationsTable, // 迁移版本表必须最先创建
		schema.DefineSubmissionsTable,
	}

	for _, defineTable := range tables {
		tb := defineTable()
		if _, err := db.ExecContext(ctx, buildDDL(tb, dialect)); err != nil {
			return fmt.Errorf("create %s table: %w", tb.Name(), err)
		}
		for _, idx := range buildIndexes(tb, dialect) {
			if err := createIndex(ctx, db, idx, dialect); err != nil {
				return err
			}
		}
	}
	return recordMigration(ctx, db, schemaVersion, dialect)
}

func buildDDL(tb *schema.TableBuilder, dialect Dialect) string {
	if dialect == DialectMySQL {
		return tb.BuildMySQL()
	}
	return tb.BuildSQLite()
}

func buildIndexes(tb *schema.TableBuilder, dialect Dialect) []schema.IndexDef {
	if dialect == DialectMySQL {
		return tb.GetIndexesMySQL()
	}
	return tb.GetIndexesSQLite()
}

func createIndex(ctx context.Context, db *sql.DB, idx schema.IndexDef, dialect Dialect) error {
	_, err := db.ExecContext(ctx, idx.SQL)
	if err == nil {
		return nil
	}
	// MySQL不支持 CREATE INDEX IF NOT EXISTS，忽略重复索引错误
	if dialect == DialectMySQL && strings.Contains(err.Error(), "Duplicate key name") {
		return nil
	}
	return fmt.Errorf("create index %s: %w", idx.Name, err)
}

// recordMigration 记录迁移已执行（重复执行幂等）
func recordMigration(ctx context.Context, db *sql.DB, version string, dialect Dialect) error {
	var insertSQL string
	if dialect == DialectMySQL {
		insertSQL = `INSERT IGNORE INTO schema_migrations (version, applied_at) VALUES (?, UNIX_TIMESTAMP())`
	} else {
		insertSQL = `INSERT OR IGNORE INTO schema_migrations (version, applied_at) VALUES (?, unixepoch())`
	}
	if _, err := db.ExecContext(ctx, insertSQL, version); err != nil {
		return fmt.Errorf("record migration %s: %w", version, err)
	}
	return nil
}
