package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// TableBuilder 轻量级表构建器（方言无关）
type TableBuilder struct {
	name    string
	columns []string
	indexes []IndexDef
}

// IndexDef 索引定义
type IndexDef struct {
	Name string
	SQL  string
}

// NewTable 创建表构建器
func NewTable(name string) *TableBuilder {
	return &TableBuilder{name: name}
}

// Name 表名
func (b *TableBuilder) Name() string {
	return b.name
}

// Column 添加列定义（使用MySQL语法作为基准）
func (b *TableBuilder) Column(def string) *TableBuilder {
	b.columns = append(b.columns, def)
	return b
}

// Index 添加索引定义
func (b *TableBuilder) Index(name, columns string) *TableBuilder {
	b.indexes = append(b.indexes, IndexDef{
		Name: name,
		SQL:  fmt.Sprintf("CREATE INDEX %s ON %s(%s)", name, b.name, columns),
	})
	return b
}

// BuildMySQL 生成MySQL DDL
func (b *TableBuilder) BuildMySQL() string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n) DEFAULT CHARSET=utf8mb4;",
		b.name,
		strings.Join(b.columns, ",\n\t"))
}

// BuildSQLite 生成SQLite DDL（类型转换）
func (b *TableBuilder) BuildSQLite() string {
	cols := make([]string, len(b.columns))
	for i, col := range b.columns {
		cols[i] = mysqlToSQLite(col)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n);",
		b.name,
		strings.Join(cols, ",\n\t"))
}

var varcharPattern = regexp.MustCompile(`VARCHAR\(\d+\)`)

// mysqlToSQLite 类型转换（MySQL → SQLite）
func mysqlToSQLite(mysqlCol string) string {
	// 特殊模式先处理（避免部分匹配）
	col := strings.ReplaceAll(mysqlCol, "INT PRIMARY KEY AUTO_INCREMENT", "INTEGER PRIMARY KEY AUTOINCREMENT")
	col = strings.ReplaceAll(col, "TINYINT", "INTEGER")
	col = replaceWord(col, "INT", "INTEGER")
	col = varcharPattern.ReplaceAllString(col, "TEXT")
	return col
}

// replaceWord 替换单词（避免部分匹配）
func replaceWord(s, old, new string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if strings.TrimRight(word, ",") == old {
			words[i] = strings.Replace(word, old, new, 1)
		}
	}
	return strings.Join(words, " ")
}

// GetIndexesMySQL 获取MySQL索引创建语句
func (b *TableBuilder) GetIndexesMySQL() []IndexDef {
	return b.indexes
}

// GetIndexesSQLite 获取SQLite索引创建语句（添加IF NOT EXISTS）
func (b *TableBuilder) GetIndexesSQLite() []IndexDef {
	indexes := make([]IndexDef, len(b.indexes))
	for i, idx := range b.indexes {
		indexes[i] = IndexDef{
			Name: idx.Name,
			SQL:  strings.Replace(idx.SQL, "CREATE INDEX", "CREATE INDEX IF NOT EXISTS", 1),
		}
	}
	return indexes
}
