package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	cerr "github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

var sqlmockNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

var userCols = []string{
	"id", "username", "password_hash", "mobile_number", "first_name", "last_name", "location", "latitude", "longitude",
	"roles", "admin_type", "admin_status", "approved_by", "requested_admin_id", "admin_request_date", "admin_approval_date",
	"admin_rejection_reason", "created_at", "updated_at",
}

func TestSQL_Get_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("AND username = ? LIMIT 1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userCols))

	got, err := repo.Get(context.Background(), &model.UserFilter{Username: "ghost"})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ListUsers_NearbyFilter(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	minLat, maxLat := 20.0, 21.0
	lat, lng := 20.5, 78.9
	mock.ExpectQuery(regexp.QuoteMeta("AND admin_type IN (?, ?) AND admin_status = ? AND latitude IS NOT NULL AND longitude IS NOT NULL AND latitude >= ? AND latitude <= ? ORDER BY id ASC")).
		WithArgs(constant.AdminTypeLocal, constant.AdminTypeSuper, constant.AdminStatusApproved, minLat, maxLat).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(
			7, "alice", "hash", "0812", "Alice", "", "Nagpur", lat, lng,
			"buyer,seller", "local_admin", "approved", 2, 2, nil, nil, nil, sqlmockNow, nil,
		))

	got, err := repo.ListUsers(context.Background(), &model.UserFilter{
		AdminTypes:     []constant.AdminType{constant.AdminTypeLocal, constant.AdminTypeSuper},
		AdminStatus:    constant.AdminStatusApproved,
		HasCoordinates: true,
		MinLatitude:    &minLat,
		MaxLatitude:    &maxLat,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(7), got[0].ID)
	assert.Equal(t, model.RoleSet{constant.RoleBuyer, constant.RoleSeller}, got[0].Roles)
	assert.True(t, got[0].IsApproved(constant.AdminTypeLocal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_TransitionAdminTx(t *testing.T) {
	req := &model.AdminTransition{
		UserID:     5,
		FromType:   constant.AdminTypeLocal,
		FromStatus: constant.AdminStatusPending,
		ToType:     constant.AdminTypeLocal,
		ToStatus:   constant.AdminStatusApproved,
	}

	tests := []struct {
		name     string
		affected int64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{name: "success: row still pending", affected: 1},
		{name: "error: row changed concurrently", affected: 0, wantErr: true, errCode: constant.ErrStateConflict},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewUserRepository(db)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("WHERE id = ? AND admin_type = ? AND admin_status = ?")).
				WithArgs(req.ToType, req.ToStatus, nil, nil, nil, nil, nil, req.UserID, req.FromType, req.FromStatus).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			tx, err := db.Beginx()
			require.NoError(t, err)

			err = repo.TransitionAdminTx(context.Background(), tx, req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode))
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_ClearAdminReferencesTx(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET approved_by = NULL WHERE approved_by = ?")).
		WithArgs(uint64(2)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("SET admin_status = 'registered', requested_admin_id = NULL")).
		WithArgs(uint64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET requested_admin_id = NULL WHERE requested_admin_id = ?")).
		WithArgs(uint64(2)).WillReturnResult(sqlmock.NewResult(0, 2))

	tx, err := db.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.ClearAdminReferencesTx(context.Background(), tx, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
