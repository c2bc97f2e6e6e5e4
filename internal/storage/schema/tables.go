package schema

// DefineSchemaMigrationsTable 迁移版本表
func DefineSchemaMigrationsTable() *TableBuilder {
	return NewTable("schema_migrations").
		Column("version VARCHAR(64) PRIMARY KEY").
		Column("applied_at BIGINT NOT NULL")
}

// DefineSubmissionsTable 提交日志表
// 每次 create/update 调用一行；同一批量提交共享 run_id
func DefineSubmissionsTable() *TableBuilder {
	return NewTable("submissions").
		Column("id INT PRIMARY KEY AUTO_INCREMENT").
		Column("run_id VARCHAR(36) NOT NULL").
		Column("mode VARCHAR(16) NOT NULL").
		Column("channel_id BIGINT NULL").
		Column("name VARCHAR(191) NOT NULL DEFAULT ''").
		Column("base_url VARCHAR(512) NOT NULL DEFAULT ''").
		Column("channel_type INT NOT NULL DEFAULT 0").
		Column("success TINYINT NOT NULL DEFAULT 0").
		Column("kind VARCHAR(32) NOT NULL").
		Column("message TEXT NOT NULL").
		Column("created_at BIGINT NOT NULL").
		Index("idx_submissions_created", "created_at").
		Index("idx_submissions_run", "run_id")
}
