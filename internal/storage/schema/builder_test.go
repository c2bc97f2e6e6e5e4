package schema

import (
	"strings"
	"testing"
)

func TestSubmissionsTableGeneration(t *testing.T) {
	t.Parallel()

	tb := DefineSubmissionsTable()

	t.Run("MySQL DDL", func(t *testing.T) {
		sql := tb.BuildMySQL()
		if !strings.Contains(sql, "INT PRIMARY KEY AUTO_INCREMENT") {
			t.Error("Missing AUTO_INCREMENT")
		}
		if !strings.Contains(sql, "VARCHAR(36)") {
			t.Error("Missing VARCHAR")
		}
	})

	t.Run("SQLite DDL", func(t *testing.T) {
		sql := tb.BuildSQLite()
		if !strings.Contains(sql, "INTEGER PRIMARY KEY AUTOINCREMENT") {
			t.Error("Missing AUTOINCREMENT")
		}
		if strings.Contains(sql, "VARCHAR") {
			t.Errorf("VARCHAR not converted to TEXT:\n%s", sql)
		}
		if strings.Contains(sql, "TINYINT") {
			t.Errorf("TINYINT not converted:\n%s", sql)
		}
		if !strings.Contains(sql, "channel_id BIGINT NULL") {
			t.Errorf("BIGINT column rewritten:\n%s", sql)
		}
	})

	t.Run("Indexes", func(t *testing.T) {
		if n := len(tb.GetIndexesMySQL()); n != 2 {
			t.Errorf("Expected 2 MySQL indexes, got %d", n)
		}
		for _, idx := range tb.GetIndexesSQLite() {
			if !strings.Contains(idx.SQL, "IF NOT EXISTS") {
				t.Errorf("SQLite index missing IF NOT EXISTS: %s", idx.SQL)
			}
		}
	})
}

func TestMySQLToSQLite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"id INT PRIMARY KEY AUTO_INCREMENT", "id INTEGER PRIMARY KEY AUTOINCREMENT"},
		{"channel_type INT NOT NULL DEFAULT 0", "channel_type INTEGER NOT NULL DEFAULT 0"},
		{"success TINYINT NOT NULL DEFAULT 0", "success INTEGER NOT NULL DEFAULT 0"},
		{"name VARCHAR(191) NOT NULL", "name TEXT NOT NULL"},
		{"created_at BIGINT NOT NULL", "created_at BIGINT NOT NULL"},
	}
	for _, tt := range tests {
		if got := mysqlToSQLite(tt.in); got != tt.want {
			t.Errorf("mysqlToSQLite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
