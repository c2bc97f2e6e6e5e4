// Package storage 提交日志（journal）持久化
//
// 只记录本地提交尝试，用于审计与 history 命令；渠道本身由注册中心持久化
package storage

import (
	"context"
	"database/sql"
	"time"

	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
)

// Journal 提交日志接口
type Journal interface {
	Record(ctx context.Context, rec *model.SubmissionRecord) error
	Recent(ctx context.Context, limit int) ([]*model.SubmissionRecord, error)
	ByRun(ctx context.Context, runID string) ([]*model.SubmissionRecord, error)
	Close() error
}

// SQLJournal 通用SQL实现（SQLite 与 MySQL 共用同一套SQL）
type SQLJournal struct {
	db *sql.DB
}

var _ Journal = (*SQLJournal)(nil)

// newSQLJournal 方言差异只存在于迁移DDL，查询语句两种数据库通用
func newSQLJournal(db *sql.DB) *SQLJournal {
	return &SQLJournal{db: db}
}

// Close 关闭数据库连接
func (j *SQLJournal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

const submissionColumns = "id, run_id, mode, channel_id, name, base_url, channel_type, kind, message, created_at"

// Record 写入一条提交记录，成功后回填 ID
func (j *SQLJournal) Record(ctx context.Context, rec *model.SubmissionRecord) error {
	if j == nil {
		return nil
	}
	createdAt := rec.CreatedAt.Time
	if createdAt.IsZero() {
		createdAt = time.Now()
		rec.CreatedAt = model.JSONTime{Time: createdAt}
	}

	var channelID sql.NullInt64
	if rec.ChannelID != nil {
		channelID = sql.NullInt64{Int64: *rec.ChannelID, Valid: true}
	}
	success := 0
	if rec.Success() {
		success = 1
	}

	res, err := j.db.ExecContext(ctx,
		`INSERT INTO submissions (run_id, mode, channel_id, name, base_url, channel_type, success, kind, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, string(rec.Mode), channelID, rec.Name, rec.BaseURL, int(rec.ChannelType),
		success, string(rec.Kind), rec.Message, createdAt.UnixMilli(),
	)
	if err != nil {
		return apperrors.DBInsertError("submissions", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// Recent 按时间倒序返回最近的记录
func (j *SQLJournal) Recent(ctx context.Context, limit int) ([]*model.SubmissionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.QueryContext(ctx,
		"SELECT "+submissionColumns+" FROM submissions ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, apperrors.DBQueryError("recent_submissions", err)
	}
	return scanSubmissions(rows)
}

// ByRun 返回同一次提交的全部记录（按写入顺序）
func (j *SQLJournal) ByRun(ctx context.Context, runID string) ([]*model.SubmissionRecord, error) {
	rows, err := j.db.QueryContext(ctx,
		"SELECT "+submissionColumns+" FROM submissions WHERE run_id = ? ORDER BY id ASC", runID)
	if err != nil {
		return nil, apperrors.DBQueryError("run_submissions", err)
	}
	return scanSubmissions(rows)
}

func scanSubmissions(rows *sql.Rows) ([]*model.SubmissionRecord, error) {
	defer func() { _ = rows.Close() }()

	out := make([]*model.SubmissionRecord, 0)
	for rows.Next() {
		var (
			rec         model.SubmissionRecord
			mode, kind  string
			channelID   sql.NullInt64
			channelType int
			createdAtMs int64
		)
		if err := rows.Scan(&rec.ID, &rec.RunID, &mode, &channelID, &rec.Name, &rec.BaseURL,
			&channelType, &kind, &rec.Message, &createdAtMs); err != nil {
			return nil, apperrors.DBQueryError("scan_submission", err)
		}
		rec.Mode = model.SubmitMode(mode)
		rec.Kind = model.OutcomeKind(kind)
		rec.ChannelType = model.ChannelType(channelType)
		rec.CreatedAt = model.JSONTime{Time: time.UnixMilli(createdAtMs)}
		if channelID.Valid {
			id := channelID.Int64
			rec.ChannelID = &id
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DBQueryError("iterate_submissions", err)
	}
	return out, nil
}
