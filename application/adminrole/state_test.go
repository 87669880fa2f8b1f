package adminrole_test

import (
	"errors"
	"testing"

	"github.com/muhammadheryan/agri-market/application/adminrole"
	"github.com/muhammadheryan/agri-market/constant"
	cerr "github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	assert.Equal(t, constant.ErrorTypeCode[want], ce.ErrorCode())
}

func st(t constant.AdminType, s constant.AdminStatus) adminrole.State {
	return adminrole.State{Type: t, Status: s}
}

func TestValidateState(t *testing.T) {
	tests := []struct {
		name    string
		state   adminrole.State
		wantErr bool
	}{
		{name: "none/none", state: adminrole.NoneState},
		{name: "local registered", state: st(constant.AdminTypeLocal, constant.AdminStatusRegistered)},
		{name: "super approved", state: st(constant.AdminTypeSuper, constant.AdminStatusApproved)},
		{name: "master approved", state: adminrole.Bootstrap()},
		{name: "status without type", state: st(constant.AdminTypeNone, constant.AdminStatusPending), wantErr: true},
		{name: "type without status", state: st(constant.AdminTypeLocal, constant.AdminStatusNone), wantErr: true},
		{name: "master pending", state: st(constant.AdminTypeMaster, constant.AdminStatusPending), wantErr: true},
		{name: "unknown type", state: st("owner", constant.AdminStatusApproved), wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := adminrole.ValidateState(tt.state)
			if tt.wantErr {
				assertErrType(t, err, constant.ErrInvalidAdminState)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name    string
		cur     adminrole.State
		target  constant.AdminType
		want    adminrole.State
		wantErr bool
		errCode constant.ErrorType
	}{
		{
			name:   "success: local admin",
			cur:    adminrole.NoneState,
			target: constant.AdminTypeLocal,
			want:   st(constant.AdminTypeLocal, constant.AdminStatusRegistered),
		},
		{
			name:   "success: super admin",
			cur:    adminrole.NoneState,
			target: constant.AdminTypeSuper,
			want:   st(constant.AdminTypeSuper, constant.AdminStatusRegistered),
		},
		{
			name:    "error: master is not requestable",
			cur:     adminrole.NoneState,
			target:  constant.AdminTypeMaster,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: already registered",
			cur:     st(constant.AdminTypeLocal, constant.AdminStatusRegistered),
			target:  constant.AdminTypeSuper,
			wantErr: true,
			errCode: constant.ErrInvalidAdminState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := adminrole.Register(tt.cur, tt.target)
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, adminrole.ValidateState(got))
		})
	}
}

func TestRequestApproval(t *testing.T) {
	tests := []struct {
		name    string
		cur     adminrole.State
		target  constant.AdminType
		want    adminrole.State
		wantErr bool
		errCode constant.ErrorType
	}{
		{
			name: "success: registered keeps type",
			cur:  st(constant.AdminTypeLocal, constant.AdminStatusRegistered),
			want: st(constant.AdminTypeLocal, constant.AdminStatusPending),
		},
		{
			name:   "success: rejected re-requests as super",
			cur:    st(constant.AdminTypeLocal, constant.AdminStatusRejected),
			target: constant.AdminTypeSuper,
			want:   st(constant.AdminTypeSuper, constant.AdminStatusPending),
		},
		{
			name:    "error: no role must register first",
			cur:     adminrole.NoneState,
			target:  constant.AdminTypeLocal,
			wantErr: true,
			errCode: constant.ErrInvalidAdminState,
		},
		{
			name:    "error: no role and no target",
			cur:     adminrole.NoneState,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: already pending",
			cur:     st(constant.AdminTypeLocal, constant.AdminStatusPending),
			wantErr: true,
			errCode: constant.ErrInvalidAdminState,
		},
		{
			name:    "error: approved is terminal",
			cur:     st(constant.AdminTypeSuper, constant.AdminStatusApproved),
			wantErr: true,
			errCode: constant.ErrInvalidAdminState,
		},
		{
			name:    "error: master target",
			cur:     st(constant.AdminTypeLocal, constant.AdminStatusRegistered),
			target:  constant.AdminTypeMaster,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := adminrole.RequestApproval(tt.cur, tt.target)
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApprove(t *testing.T) {
	got, err := adminrole.Approve(st(constant.AdminTypeLocal, constant.AdminStatusPending))
	require.NoError(t, err)
	assert.Equal(t, st(constant.AdminTypeLocal, constant.AdminStatusApproved), got)

	for _, s := range []constant.AdminStatus{constant.AdminStatusRegistered, constant.AdminStatusApproved, constant.AdminStatusRejected} {
		_, err := adminrole.Approve(st(constant.AdminTypeLocal, s))
		assertErrType(t, err, constant.ErrInvalidAdminState)
	}
}

func TestReject(t *testing.T) {
	pending := st(constant.AdminTypeSuper, constant.AdminStatusPending)

	got, reason, err := adminrole.Reject(pending, "  no coverage in region ")
	require.NoError(t, err)
	assert.Equal(t, st(constant.AdminTypeSuper, constant.AdminStatusRejected), got)
	assert.Equal(t, "no coverage in region", reason)

	_, _, err = adminrole.Reject(pending, "   ")
	assertErrType(t, err, constant.ErrInvalidRequest)

	_, _, err = adminrole.Reject(st(constant.AdminTypeSuper, constant.AdminStatusRegistered), "late")
	assertErrType(t, err, constant.ErrInvalidAdminState)
}

func TestBootstrap(t *testing.T) {
	s := adminrole.Bootstrap()
	assert.Equal(t, constant.AdminTypeMaster, s.Type)
	assert.Equal(t, constant.AdminStatusApproved, s.Status)
	assert.True(t, adminrole.BootstrapRoles().Has(constant.RoleBuyer))
	assert.True(t, adminrole.BootstrapRoles().Has(constant.RoleSeller))
}
