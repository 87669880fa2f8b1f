package admintag

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/agri-market/model"
)

type SQL struct {
	conn *sqlx.DB
}

// AdminTagRepository keeps the admins a user has bookmarked.
type AdminTagRepository interface {
	Tag(ctx context.Context, userID, adminID uint64) error
	Untag(ctx context.Context, userID, adminID uint64) error
	ListTaggedAdmins(ctx context.Context, userID uint64) ([]model.AdminSummary, error)
	DeleteByUserTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error
}

func NewAdminTagRepository(conn *sqlx.DB) AdminTagRepository {
	return &SQL{conn: conn}
}

const (
	tagQuery          = `INSERT IGNORE INTO user_admin_tag (user_id, admin_id, created_at) VALUES (?, ?, NOW())`
	untagQuery        = `DELETE FROM user_admin_tag WHERE user_id = ? AND admin_id = ?`
	deleteByUserQuery = `DELETE FROM user_admin_tag WHERE user_id = ? OR admin_id = ?`
	listTaggedQuery   = `SELECT u.id, u.username, u.first_name, u.last_name, u.location, u.latitude, u.longitude,
		u.admin_type, u.admin_status
		FROM user_admin_tag t JOIN user u ON u.id = t.admin_id
		WHERE t.user_id = ? ORDER BY t.created_at DESC, u.id ASC`
)

// Tag is idempotent: tagging twice leaves one row.
func (s *SQL) Tag(ctx context.Context, userID, adminID uint64) error {
	_, err := s.conn.ExecContext(ctx, tagQuery, userID, adminID)
	return err
}

func (s *SQL) Untag(ctx context.Context, userID, adminID uint64) error {
	_, err := s.conn.ExecContext(ctx, untagQuery, userID, adminID)
	return err
}

func (s *SQL) ListTaggedAdmins(ctx context.Context, userID uint64) ([]model.AdminSummary, error) {
	res := make([]model.AdminSummary, 0)
	if err := s.conn.SelectContext(ctx, &res, listTaggedQuery, userID); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteByUserTx removes tags made by the user and tags pointing at the user.
func (s *SQL) DeleteByUserTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error {
	_, err := tx.ExecContext(ctx, deleteByUserQuery, userID, userID)
	return err
}
