package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appadmin "github.com/muhammadheryan/agri-market/application/admin"
	"github.com/muhammadheryan/agri-market/cmd/config"
	"github.com/muhammadheryan/agri-market/constant"
	admintagmocks "github.com/muhammadheryan/agri-market/mocks/repository/admintag"
	auditmocks "github.com/muhammadheryan/agri-market/mocks/repository/audit"
	txmocks "github.com/muhammadheryan/agri-market/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/agri-market/mocks/repository/user"
	rabbitmocks "github.com/muhammadheryan/agri-market/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/agri-market/model"
	cerr "github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	config    *config.Config
	txRepo    *txmocks.TxRepository
	userRepo  *usermocks.UserRepository
	tagRepo   *admintagmocks.AdminTagRepository
	auditRepo *auditmocks.AuditRepository
	publisher *rabbitmocks.AuditPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		config:    &config.Config{Geo: config.GeoConfig{DefaultRadiusKm: 50, MaxRadiusKm: 500}},
		txRepo:    txmocks.NewTxRepository(t),
		userRepo:  usermocks.NewUserRepository(t),
		tagRepo:   admintagmocks.NewAdminTagRepository(t),
		auditRepo: auditmocks.NewAuditRepository(t),
		publisher: rabbitmocks.NewAuditPublisher(t),
	}
}

func (f fields) app() appadmin.AdminApp {
	return appadmin.NewAdminApp(f.config, f.txRepo, f.userRepo, f.tagRepo, f.auditRepo, f.publisher)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CustomError, got %T: %v", err, err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func u64(v uint64) *uint64 { return &v }

func f64(v float64) *float64 { return &v }

func superAdmin(id uint64) *model.UserEntity {
	return &model.UserEntity{ID: id, AdminType: constant.AdminTypeSuper, AdminStatus: constant.AdminStatusApproved}
}

func TestAdminApp_LocalAdminApprovalFlow(t *testing.T) {
	tx := &sqlx.Tx{}
	bob := superAdmin(2)
	carol := superAdmin(3)
	requestedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	aliceRegistered := func() *model.UserEntity {
		return &model.UserEntity{ID: 20, Username: "alice", AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusRegistered}
	}
	alicePending := func() *model.UserEntity {
		return &model.UserEntity{
			ID: 20, Username: "alice",
			AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusPending,
			RequestedAdminID: u64(2), AdminRequestDate: &requestedAt,
		}
	}

	t.Run("alice requests local_admin naming bob", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 20}).Return(aliceRegistered(), nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(bob, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(20)).Return(aliceRegistered(), nil).Once()
		f.userRepo.
			On("TransitionAdminTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.AdminTransition) bool {
				return tr.UserID == 20 &&
					tr.FromType == constant.AdminTypeLocal && tr.FromStatus == constant.AdminStatusRegistered &&
					tr.ToType == constant.AdminTypeLocal && tr.ToStatus == constant.AdminStatusPending &&
					tr.RequestedAdminID != nil && *tr.RequestedAdminID == 2 &&
					tr.AdminRequestDate != nil && tr.ApprovedBy == nil
			})).
			Return(nil).
			Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.publisher.
			On("PublishAdminAudit", mock.Anything, mock.MatchedBy(func(ev *model.AdminAuditEvent) bool {
				return ev.Action == constant.AuditActionRequest && ev.TargetID == 20 && ev.ToStatus == constant.AdminStatusPending
			})).
			Return(nil).
			Once()

		got, err := f.app().RequestApproval(context.Background(), 20, &model.AdminApprovalRequest{
			AdminType:        constant.AdminTypeLocal,
			RequestedAdminID: u64(2),
		})
		require.NoError(t, err)
		assert.Equal(t, constant.AdminStatusPending, got.AdminStatus)
		assert.Equal(t, uint64(2), *got.RequestedAdminID)
	})

	t.Run("carol cannot approve a request addressed to bob", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(carol, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(20)).Return(alicePending(), nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		_, err := f.app().Approve(context.Background(), 3, 20)
		assertErrCode(t, err, constant.ErrForbiddenTarget)
	})

	t.Run("bob approves", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(bob, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(20)).Return(alicePending(), nil).Once()
		f.userRepo.
			On("TransitionAdminTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.AdminTransition) bool {
				return tr.FromStatus == constant.AdminStatusPending &&
					tr.ToType == constant.AdminTypeLocal && tr.ToStatus == constant.AdminStatusApproved &&
					tr.ApprovedBy != nil && *tr.ApprovedBy == 2 &&
					tr.AdminApprovalDate != nil &&
					tr.AdminRequestDate != nil && tr.AdminRequestDate.Equal(requestedAt) &&
					tr.AdminRejectionReason == nil
			})).
			Return(nil).
			Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.publisher.On("PublishAdminAudit", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		got, err := f.app().Approve(context.Background(), 2, 20)
		require.NoError(t, err)
		assert.Equal(t, constant.AdminTypeLocal, got.AdminType)
		assert.Equal(t, constant.AdminStatusApproved, got.AdminStatus)
		assert.Equal(t, uint64(2), *got.ApprovedBy)
	})
}

func TestAdminApp_RequestApproval(t *testing.T) {
	master := &model.UserEntity{ID: 1, AdminType: constant.AdminTypeMaster, AdminStatus: constant.AdminStatusApproved}
	registeredSuper := &model.UserEntity{ID: 30, AdminType: constant.AdminTypeSuper, AdminStatus: constant.AdminStatusRegistered}
	pendingLocal := &model.UserEntity{ID: 31, AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusPending}
	plain := &model.UserEntity{ID: 34, AdminType: constant.AdminTypeNone, AdminStatus: constant.AdminStatusNone}
	registeredLocal := &model.UserEntity{ID: 32, AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusRegistered}
	localApproved := &model.UserEntity{ID: 33, AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusApproved}

	tests := []struct {
		name     string
		userID   uint64
		req      *model.AdminApprovalRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: super_admin request routes to the master admin",
			userID: 30,
			req:    &model.AdminApprovalRequest{},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 30}).Return(registeredSuper, nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{
						AdminTypes:  []constant.AdminType{constant.AdminTypeMaster},
						AdminStatus: constant.AdminStatusApproved,
					}).
					Return(master, nil).
					Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(30)).Return(registeredSuper, nil).Once()
				f.userRepo.
					On("TransitionAdminTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.AdminTransition) bool {
						return tr.ToType == constant.AdminTypeSuper && tr.ToStatus == constant.AdminStatusPending &&
							*tr.RequestedAdminID == 1
					})).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishAdminAudit", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:   "error: already pending",
			userID: 31,
			req:    &model.AdminApprovalRequest{RequestedAdminID: u64(2)},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 31}).Return(pendingLocal, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidAdminState,
		},
		{
			name:   "error: no admin role registered yet",
			userID: 34,
			req:    &model.AdminApprovalRequest{AdminType: constant.AdminTypeLocal, RequestedAdminID: u64(2)},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 34}).Return(plain, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidAdminState,
		},
		{
			name:   "error: local request without approver",
			userID: 32,
			req:    &model.AdminApprovalRequest{AdminType: constant.AdminTypeLocal},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 32}).Return(registeredLocal, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: named approver is not a super admin",
			userID: 32,
			req:    &model.AdminApprovalRequest{AdminType: constant.AdminTypeLocal, RequestedAdminID: u64(33)},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 32}).Return(registeredLocal, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 33}).Return(localApproved, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: named approver does not exist",
			userID: 32,
			req:    &model.AdminApprovalRequest{AdminType: constant.AdminTypeLocal, RequestedAdminID: u64(99)},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 32}).Return(registeredLocal, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 99}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().RequestApproval(context.Background(), tt.userID, tt.req)
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.AdminStatusPending, got.AdminStatus)
		})
	}
}

func TestAdminApp_Reject(t *testing.T) {
	tx := &sqlx.Tx{}
	master := &model.UserEntity{ID: 1, AdminType: constant.AdminTypeMaster, AdminStatus: constant.AdminStatusApproved}
	pendingSuper := func() *model.UserEntity {
		return &model.UserEntity{ID: 40, AdminType: constant.AdminTypeSuper, AdminStatus: constant.AdminStatusPending, RequestedAdminID: u64(1)}
	}

	tests := []struct {
		name     string
		reason   string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: reason stored",
			reason: "  incomplete documents ",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(master, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(40)).Return(pendingSuper(), nil).Once()
				f.userRepo.
					On("TransitionAdminTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.AdminTransition) bool {
						return tr.ToStatus == constant.AdminStatusRejected &&
							tr.AdminRejectionReason != nil && *tr.AdminRejectionReason == "incomplete documents"
					})).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.
					On("PublishAdminAudit", mock.Anything, mock.MatchedBy(func(ev *model.AdminAuditEvent) bool {
						return ev.Action == constant.AuditActionReject && ev.Reason == "incomplete documents"
					})).
					Return(nil).
					Once()
			},
		},
		{
			name:   "error: blank reason",
			reason: "   ",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(master, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(40)).Return(pendingSuper(), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: row changed concurrently",
			reason: "duplicate",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(master, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(40)).Return(pendingSuper(), nil).Once()
				f.userRepo.
					On("TransitionAdminTx", mock.Anything, tx, mock.Anything).
					Return(cerr.SetCustomError(constant.ErrStateConflict)).
					Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrStateConflict,
		},
		{
			name:   "error: target missing",
			reason: "duplicate",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(master, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(40)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Reject(context.Background(), 1, 40, &model.AdminRejectRequest{Reason: tt.reason})
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.AdminStatusRejected, got.AdminStatus)
			assert.Equal(t, "incomplete documents", *got.AdminRejectionReason)
		})
	}
}

func TestAdminApp_NearbyAdmins(t *testing.T) {
	local := func(id uint64, lat, lng *float64) model.UserEntity {
		return model.UserEntity{ID: id, AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusApproved, Latitude: lat, Longitude: lng}
	}
	rows := []model.UserEntity{
		local(1, f64(21.040560124565285), f64(78.96)), // 50.1 km north
		local(2, f64(21.038761481353447), f64(78.96)), // 49.9 km north
		local(3, nil, nil),
		{ID: 4, AdminType: constant.AdminTypeSuper, AdminStatus: constant.AdminStatusApproved, Latitude: f64(20.67993216059187), Longitude: f64(78.96)},
	}

	f := newFields(t)
	f.userRepo.
		On("ListUsers", mock.Anything, mock.MatchedBy(func(filter *model.UserFilter) bool {
			return filter.HasCoordinates &&
				filter.AdminStatus == constant.AdminStatusApproved &&
				len(filter.AdminTypes) == 2 &&
				filter.MinLatitude != nil && filter.MaxLatitude != nil &&
				*filter.MinLatitude < 20.59 && *filter.MaxLatitude > 21.03 && *filter.MaxLatitude < 21.04
		})).
		Return(rows, nil).
		Once()

	got, err := f.app().NearbyAdmins(context.Background(), &model.NearbyAdminsRequest{Latitude: 20.59, Longitude: 78.96, RadiusKm: 50})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(4), got[0].ID)
	assert.InDelta(t, 10.0, got[0].DistanceKm, 0.001)
	assert.Equal(t, uint64(2), got[1].ID)
	assert.InDelta(t, 49.9, got[1].DistanceKm, 0.001)

	_, err = f.app().NearbyAdmins(context.Background(), &model.NearbyAdminsRequest{Latitude: 20.59, Longitude: 78.96, RadiusKm: 501})
	assertErrCode(t, err, constant.ErrInvalidRequest)
}

func TestAdminApp_PendingRequests(t *testing.T) {
	bob := superAdmin(2)
	buyer := &model.UserEntity{ID: 10, Roles: model.RoleSet{constant.RoleBuyer}, AdminType: constant.AdminTypeNone, AdminStatus: constant.AdminStatusNone}

	t.Run("super admin sees only requests addressed to self", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(bob, nil).Once()
		match := mock.MatchedBy(func(filter *model.UserFilter) bool {
			return filter.RequestedAdminID == 2 &&
				filter.AdminStatus == constant.AdminStatusPending &&
				len(filter.AdminTypes) == 1 && filter.AdminTypes[0] == constant.AdminTypeLocal &&
				filter.Limit == 20 && filter.Offset == 20
		})
		f.userRepo.On("ListUsers", mock.Anything, match).Return([]model.UserEntity{{ID: 20}}, nil).Once()
		f.userRepo.On("CountUsers", mock.Anything, match).Return(int64(21), nil).Once()

		got, err := f.app().PendingRequests(context.Background(), 2, &model.PageQuery{Page: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(21), got.TotalCount)
		assert.Equal(t, 2, got.Page)
		assert.Len(t, got.Items, 1)
	})

	t.Run("plain user is refused", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 10}).Return(buyer, nil).Once()

		_, err := f.app().PendingRequests(context.Background(), 10, &model.PageQuery{})
		assertErrCode(t, err, constant.ErrForbiddenRole)
	})
}

func TestAdminApp_AdminContact(t *testing.T) {
	buyer := &model.UserEntity{ID: 10, Roles: model.RoleSet{constant.RoleBuyer}, AdminType: constant.AdminTypeNone, AdminStatus: constant.AdminStatusNone}
	approvedLocal := &model.UserEntity{ID: 20, MobileNumber: "0812", AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusApproved}

	f := newFields(t)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 10}).Return(buyer, nil)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 20}).Return(approvedLocal, nil).Once()
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(superAdmin(2), nil).Once()

	got, err := f.app().AdminContact(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Equal(t, "0812", got.MobileNumber)

	_, err = f.app().AdminContact(context.Background(), 10, 2)
	assertErrCode(t, err, constant.ErrForbiddenTarget)
}

func TestAdminApp_Tag(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(superAdmin(2), nil).Once()
	f.tagRepo.On("Tag", mock.Anything, uint64(10), uint64(2)).Return(nil).Once()
	require.NoError(t, f.app().Tag(context.Background(), 10, 2))

	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 11}).
		Return(&model.UserEntity{ID: 11, AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusPending}, nil).Once()
	assertErrCode(t, f.app().Tag(context.Background(), 10, 11), constant.ErrForbiddenTarget)

	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 12}).Return(nil, nil).Once()
	assertErrCode(t, f.app().Tag(context.Background(), 10, 12), constant.ErrNotFound)
}

func TestAdminApp_AuditLog(t *testing.T) {
	master := &model.UserEntity{ID: 1, AdminType: constant.AdminTypeMaster, AdminStatus: constant.AdminStatusApproved}

	f := newFields(t)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(master, nil).Once()
	filter := &model.AuditFilter{TargetID: 20, Action: constant.AuditActionApprove, Limit: 20, Offset: 0}
	f.auditRepo.On("List", mock.Anything, filter).Return([]model.AdminAuditEvent{{EventID: "e1"}}, nil).Once()
	f.auditRepo.On("Count", mock.Anything, filter).Return(int64(1), nil).Once()

	got, err := f.app().AuditLog(context.Background(), 1, &model.AuditQuery{TargetID: 20, Action: constant.AuditActionApprove})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalCount)
	assert.Equal(t, "e1", got.Items[0].EventID)

	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(superAdmin(2), nil).Once()
	_, err = f.app().AuditLog(context.Background(), 2, &model.AuditQuery{})
	assertErrCode(t, err, constant.ErrForbiddenRole)
}
