package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	"github.com/muhammadheryan/agri-market/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (*model.UserEntity, error)
	ListUsers(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error)
	CountUsers(ctx context.Context, filter *model.UserFilter) (int64, error)
	UpdateProfile(ctx context.Context, req *model.UserEntity) error
	TransitionAdminTx(ctx context.Context, tx *sqlx.Tx, req *model.AdminTransition) error
	ClearAdminReferencesTx(ctx context.Context, tx *sqlx.Tx, adminID uint64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns = `id, username, password_hash, mobile_number, first_name, last_name, location, latitude, longitude,
		roles, admin_type, admin_status, approved_by, requested_admin_id, admin_request_date, admin_approval_date,
		admin_rejection_reason, created_at, updated_at`

	insertUserQuery = `INSERT INTO user (username, password_hash, mobile_number, first_name, last_name, location,
		latitude, longitude, roles, admin_type, admin_status, approved_by, admin_request_date, admin_approval_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	getUserBase      = `SELECT ` + userColumns + ` FROM user WHERE true`
	countUserBase    = `SELECT COUNT(*) FROM user WHERE true`
	getUserForUpdate = `SELECT ` + userColumns + ` FROM user WHERE id = ? FOR UPDATE`

	updateProfileQuery = `UPDATE user SET mobile_number = ?, first_name = ?, last_name = ?, location = ?,
		latitude = ?, longitude = ?, roles = ?, updated_at = NOW() WHERE id = ?`

	transitionAdminQuery = `UPDATE user SET admin_type = ?, admin_status = ?, approved_by = ?, requested_admin_id = ?,
		admin_request_date = ?, admin_approval_date = ?, admin_rejection_reason = ?, updated_at = NOW()
		WHERE id = ? AND admin_type = ? AND admin_status = ?`

	clearApprovedByQuery     = `UPDATE user SET approved_by = NULL WHERE approved_by = ?`
	revertPendingQuery       = `UPDATE user SET admin_status = 'registered', requested_admin_id = NULL WHERE requested_admin_id = ? AND admin_status = 'pending'`
	clearRequestedAdminQuery = `UPDATE user SET requested_admin_id = NULL WHERE requested_admin_id = ?`
	deleteUserQuery          = `DELETE FROM user WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Username, data.PasswordHash, data.MobileNumber, data.FirstName, data.LastName, data.Location,
		data.Latitude, data.Longitude, data.Roles, data.AdminType, data.AdminStatus, data.ApprovedBy,
		data.AdminRequestDate, data.AdminApprovalDate,
	)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	where, args, err := buildUserWhere(filter)
	if err != nil {
		return nil, err
	}
	query := s.conn.Rebind(getUserBase + where + " LIMIT 1")

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetForUpdateTx locks the user row until tx ends.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := tx.QueryRowxContext(ctx, getUserForUpdate, userID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// ListUsers is the one parameterized scan behind every admin directory.
func (s *SQL) ListUsers(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error) {
	where, args, err := buildUserWhere(filter)
	if err != nil {
		return nil, err
	}
	query := getUserBase + where + " ORDER BY id ASC"
	if filter != nil && filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	res := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &res, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SQL) CountUsers(ctx context.Context, filter *model.UserFilter) (int64, error) {
	where, args, err := buildUserWhere(filter)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, s.conn.Rebind(countUserBase+where), args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateProfileQuery,
		data.MobileNumber, data.FirstName, data.LastName, data.Location,
		data.Latitude, data.Longitude, data.Roles, data.ID,
	)
	return err
}

// TransitionAdminTx writes the new admin state only if the row still holds the expected
// pre-state. A concurrent change surfaces as ErrStateConflict.
func (s *SQL) TransitionAdminTx(ctx context.Context, tx *sqlx.Tx, req *model.AdminTransition) error {
	result, err := tx.ExecContext(ctx, transitionAdminQuery,
		req.ToType, req.ToStatus, req.ApprovedBy, req.RequestedAdminID,
		req.AdminRequestDate, req.AdminApprovalDate, req.AdminRejectionReason,
		req.UserID, req.FromType, req.FromStatus,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrStateConflict)
	}
	return nil
}

// ClearAdminReferencesTx drops every approved_by / requested_admin_id pointing at adminID.
// Requests still pending with that admin fall back to registered.
func (s *SQL) ClearAdminReferencesTx(ctx context.Context, tx *sqlx.Tx, adminID uint64) error {
	for _, q := range []string{clearApprovedByQuery, revertPendingQuery, clearRequestedAdminQuery} {
		if _, err := tx.ExecContext(ctx, q, adminID); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error {
	_, err := tx.ExecContext(ctx, deleteUserQuery, userID)
	return err
}

func buildUserWhere(filter *model.UserFilter) (string, []any, error) {
	if filter == nil {
		return "", nil, nil
	}

	var sb strings.Builder
	args := make([]any, 0, 8)

	if filter.ID != 0 {
		sb.WriteString(" AND id = ?")
		args = append(args, filter.ID)
	}
	if len(filter.IDs) > 0 {
		in, inArgs, err := sqlx.In(" AND id IN (?)", filter.IDs)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(in)
		args = append(args, inArgs...)
	}
	if filter.Username != "" {
		sb.WriteString(" AND username = ?")
		args = append(args, filter.Username)
	}
	if len(filter.AdminTypes) > 0 {
		in, inArgs, err := sqlx.In(" AND admin_type IN (?)", filter.AdminTypes)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(in)
		args = append(args, inArgs...)
	}
	if filter.AdminStatus != "" {
		sb.WriteString(" AND admin_status = ?")
		args = append(args, filter.AdminStatus)
	}
	if filter.RequestedAdminID != 0 {
		sb.WriteString(" AND requested_admin_id = ?")
		args = append(args, filter.RequestedAdminID)
	}
	if filter.HasCoordinates {
		sb.WriteString(" AND latitude IS NOT NULL AND longitude IS NOT NULL")
	}
	if filter.MinLatitude != nil {
		sb.WriteString(" AND latitude >= ?")
		args = append(args, *filter.MinLatitude)
	}
	if filter.MaxLatitude != nil {
		sb.WriteString(" AND latitude <= ?")
		args = append(args, *filter.MaxLatitude)
	}
	return sb.String(), args, nil
}
