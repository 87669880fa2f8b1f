package adminrole_test

import (
	"testing"

	"github.com/muhammadheryan/agri-market/application/adminrole"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u64(v uint64) *uint64 { return &v }

func admin(id uint64, t constant.AdminType, s constant.AdminStatus, roles ...constant.Role) *model.UserEntity {
	return &model.UserEntity{ID: id, AdminType: t, AdminStatus: s, Roles: roles}
}

var (
	master = admin(1, constant.AdminTypeMaster, constant.AdminStatusApproved, constant.RoleBuyer, constant.RoleSeller)
	bob    = admin(2, constant.AdminTypeSuper, constant.AdminStatusApproved)
	carol  = admin(3, constant.AdminTypeSuper, constant.AdminStatusApproved)
	buyer  = admin(10, constant.AdminTypeNone, constant.AdminStatusNone, constant.RoleBuyer)
	seller = admin(11, constant.AdminTypeNone, constant.AdminStatusNone, constant.RoleSeller)
)

func TestCanProcess(t *testing.T) {
	aliceForBob := &model.UserEntity{ID: 5, AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusPending, RequestedAdminID: u64(bob.ID)}
	superApplicant := &model.UserEntity{ID: 6, AdminType: constant.AdminTypeSuper, AdminStatus: constant.AdminStatusPending, RequestedAdminID: u64(master.ID)}
	pendingSuper := admin(7, constant.AdminTypeSuper, constant.AdminStatusPending)

	tests := []struct {
		name     string
		approver *model.UserEntity
		target   *model.UserEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{name: "master approves super applicant", approver: master, target: superApplicant},
		{name: "addressed super approves local applicant", approver: bob, target: aliceForBob},
		{name: "peer super cannot act", approver: carol, target: aliceForBob, wantErr: true, errCode: constant.ErrForbiddenTarget},
		{name: "master cannot act on local", approver: master, target: aliceForBob, wantErr: true, errCode: constant.ErrForbiddenTarget},
		{name: "super cannot act on super", approver: bob, target: superApplicant, wantErr: true, errCode: constant.ErrForbiddenTarget},
		{name: "pending super has no authority", approver: pendingSuper, target: aliceForBob, wantErr: true, errCode: constant.ErrForbiddenRole},
		{name: "plain buyer", approver: buyer, target: aliceForBob, wantErr: true, errCode: constant.ErrForbiddenRole},
		{name: "anonymous", approver: nil, target: aliceForBob, wantErr: true, errCode: constant.ErrUnauthorize},
		{name: "missing target", approver: master, target: nil, wantErr: true, errCode: constant.ErrNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := adminrole.CanProcess(tt.approver, tt.target)
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCanViewPendingQueue(t *testing.T) {
	f, err := adminrole.CanViewPendingQueue(master)
	require.NoError(t, err)
	assert.Equal(t, []constant.AdminType{constant.AdminTypeSuper}, f.AdminTypes)
	assert.Equal(t, constant.AdminStatusPending, f.AdminStatus)
	assert.Zero(t, f.RequestedAdminID)

	f, err = adminrole.CanViewPendingQueue(bob)
	require.NoError(t, err)
	assert.Equal(t, []constant.AdminType{constant.AdminTypeLocal}, f.AdminTypes)
	assert.Equal(t, bob.ID, f.RequestedAdminID)

	_, err = adminrole.CanViewPendingQueue(seller)
	assertErrType(t, err, constant.ErrForbiddenRole)

	_, err = adminrole.CanViewPendingQueue(nil)
	assertErrType(t, err, constant.ErrUnauthorize)
}

func TestCanViewRosterAndDirectory(t *testing.T) {
	assert.NoError(t, adminrole.CanViewRoster(master))
	assertErrType(t, adminrole.CanViewRoster(bob), constant.ErrForbiddenRole)

	assert.NoError(t, adminrole.CanViewLocalDirectory(seller))
	assert.NoError(t, adminrole.CanViewLocalDirectory(master))
	assertErrType(t, adminrole.CanViewLocalDirectory(buyer), constant.ErrForbiddenRole)
}

func TestCanContactOwner(t *testing.T) {
	product := &model.ListingEntity{ID: 1, ListingType: constant.ListingTypeSeller, Active: true}
	request := &model.ListingEntity{ID: 2, ListingType: constant.ListingTypeBuyer, Active: true}
	inactive := &model.ListingEntity{ID: 3, ListingType: constant.ListingTypeSeller, Active: false}

	assert.NoError(t, adminrole.CanContactOwner(buyer, product))
	assertErrType(t, adminrole.CanContactOwner(seller, product), constant.ErrForbiddenRole)
	assert.NoError(t, adminrole.CanContactOwner(seller, request))
	assertErrType(t, adminrole.CanContactOwner(buyer, request), constant.ErrForbiddenRole)
	assertErrType(t, adminrole.CanContactOwner(buyer, inactive), constant.ErrNotFound)
	assertErrType(t, adminrole.CanContactOwner(buyer, nil), constant.ErrNotFound)
}

func TestCanViewAdminContact(t *testing.T) {
	approvedLocal := admin(20, constant.AdminTypeLocal, constant.AdminStatusApproved)
	pendingLocal := admin(21, constant.AdminTypeLocal, constant.AdminStatusPending)

	assert.NoError(t, adminrole.CanViewAdminContact(buyer, approvedLocal))
	assertErrType(t, adminrole.CanViewAdminContact(buyer, pendingLocal), constant.ErrForbiddenTarget)
	assertErrType(t, adminrole.CanViewAdminContact(buyer, bob), constant.ErrForbiddenTarget)
	assert.NoError(t, adminrole.CanViewAdminContact(bob, pendingLocal))
	assert.NoError(t, adminrole.CanViewAdminContact(master, carol))
	assert.NoError(t, adminrole.CanViewAdminContact(master, seller))
	assert.NoError(t, adminrole.CanViewAdminContact(bob, buyer))
	assertErrType(t, adminrole.CanViewAdminContact(buyer, seller), constant.ErrNotFound)
	assertErrType(t, adminrole.CanViewAdminContact(master, nil), constant.ErrNotFound)
}

func TestCanDeleteUser(t *testing.T) {
	assert.NoError(t, adminrole.CanDeleteUser(buyer, buyer))
	assert.NoError(t, adminrole.CanDeleteUser(master, bob))
	assertErrType(t, adminrole.CanDeleteUser(bob, buyer), constant.ErrForbiddenTarget)
	assertErrType(t, adminrole.CanDeleteUser(master, master), constant.ErrMasterAdminProtected)
	assertErrType(t, adminrole.CanDeleteUser(buyer, nil), constant.ErrNotFound)
}

func TestCanCreateAndManageListing(t *testing.T) {
	assert.NoError(t, adminrole.CanCreateListing(seller, constant.ListingTypeSeller))
	assertErrType(t, adminrole.CanCreateListing(buyer, constant.ListingTypeSeller), constant.ErrForbiddenRole)
	assert.NoError(t, adminrole.CanCreateListing(buyer, constant.ListingTypeBuyer))

	own := &model.ListingEntity{ID: 1, OwnerID: seller.ID}
	assert.NoError(t, adminrole.CanManageListing(seller, own))
	assertErrType(t, adminrole.CanManageListing(buyer, own), constant.ErrForbiddenTarget)
}
