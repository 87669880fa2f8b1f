package audit

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/agri-market/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AuditRepository interface {
	Insert(ctx context.Context, req *model.AdminAuditEvent) error
	List(ctx context.Context, filter *model.AuditFilter) ([]model.AdminAuditEvent, error)
	Count(ctx context.Context, filter *model.AuditFilter) (int64, error)
}

func NewAuditRepository(conn *sqlx.DB) AuditRepository {
	return &SQL{conn: conn}
}

const (
	// event_id is unique, so a redelivered message is stored once.
	insertAuditQuery = `INSERT IGNORE INTO admin_audit (event_id, action, actor_id, target_id, admin_type, from_status,
		to_status, reason, occurred_at, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	listAuditBase = `SELECT id, event_id, action, actor_id, target_id, admin_type, from_status, to_status, reason,
		occurred_at FROM admin_audit WHERE true`
	countAuditBase = `SELECT COUNT(*) FROM admin_audit WHERE true`
)

func (s *SQL) Insert(ctx context.Context, req *model.AdminAuditEvent) error {
	_, err := s.conn.ExecContext(ctx, insertAuditQuery,
		req.EventID, req.Action, req.ActorID, req.TargetID, req.AdminType, req.FromStatus,
		req.ToStatus, req.Reason, req.OccurredAt,
	)
	return err
}

func (s *SQL) List(ctx context.Context, filter *model.AuditFilter) ([]model.AdminAuditEvent, error) {
	where, args := buildAuditWhere(filter)
	query := listAuditBase + where + " ORDER BY occurred_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	res := make([]model.AdminAuditEvent, 0)
	if err := s.conn.SelectContext(ctx, &res, query, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SQL) Count(ctx context.Context, filter *model.AuditFilter) (int64, error) {
	where, args := buildAuditWhere(filter)

	var total int64
	if err := s.conn.GetContext(ctx, &total, countAuditBase+where, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func buildAuditWhere(filter *model.AuditFilter) (string, []any) {
	where := ""
	args := make([]any, 0, 2)
	if filter.TargetID != 0 {
		where += " AND target_id = ?"
		args = append(args, filter.TargetID)
	}
	if filter.Action != "" {
		where += " AND action = ?"
		args = append(args, filter.Action)
	}
	return where, args
}
