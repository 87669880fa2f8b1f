package adminrole

import (
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	"github.com/muhammadheryan/agri-market/utils/errors"
)

// CanProcess decides whether approver may approve or reject target's request.
// The master admin handles super_admin requests; an approved super admin handles
// local_admin requests addressed to them.
func CanProcess(approver, target *model.UserEntity) error {
	if approver == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if target == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	switch {
	case approver.IsMaster():
		if target.AdminType != constant.AdminTypeSuper {
			return errors.SetCustomError(constant.ErrForbiddenTarget)
		}
		return nil
	case approver.IsApproved(constant.AdminTypeSuper):
		if target.AdminType != constant.AdminTypeLocal {
			return errors.SetCustomError(constant.ErrForbiddenTarget)
		}
		if target.RequestedAdminID == nil || *target.RequestedAdminID != approver.ID {
			return errors.SetCustomError(constant.ErrForbiddenTarget)
		}
		return nil
	}
	return errors.SetCustomError(constant.ErrForbiddenRole)
}

// CanViewPendingQueue returns the filter selecting the requests viewer may see.
func CanViewPendingQueue(viewer *model.UserEntity) (*model.UserFilter, error) {
	if viewer == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	switch {
	case viewer.IsMaster():
		return &model.UserFilter{
			AdminTypes:  []constant.AdminType{constant.AdminTypeSuper},
			AdminStatus: constant.AdminStatusPending,
		}, nil
	case viewer.IsApproved(constant.AdminTypeSuper):
		return &model.UserFilter{
			AdminTypes:       []constant.AdminType{constant.AdminTypeLocal},
			AdminStatus:      constant.AdminStatusPending,
			RequestedAdminID: viewer.ID,
		}, nil
	}
	return nil, errors.SetCustomError(constant.ErrForbiddenRole)
}

func CanViewRoster(viewer *model.UserEntity) error {
	if viewer == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !viewer.IsMaster() {
		return errors.SetCustomError(constant.ErrForbiddenRole)
	}
	return nil
}

// CanViewLocalDirectory is seller-only; buyers go through the nearby search.
func CanViewLocalDirectory(viewer *model.UserEntity) error {
	if viewer == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !viewer.HasRole(constant.RoleSeller) {
		return errors.SetCustomError(constant.ErrForbiddenRole)
	}
	return nil
}

// CanContactOwner requires an active listing and the counterpart role:
// buyers contact sellers, sellers contact buyers.
func CanContactOwner(requester *model.UserEntity, listing *model.ListingEntity) error {
	if requester == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if listing == nil || !listing.Active {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !requester.HasRole(listing.ListingType.ContactRole()) {
		return errors.SetCustomError(constant.ErrForbiddenRole)
	}
	return nil
}

// CanViewAdminContact lets master and approved super admins see anyone; everyone
// else only sees approved local admins.
func CanViewAdminContact(viewer, target *model.UserEntity) error {
	if viewer == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if target == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if viewer.IsMaster() || viewer.IsApproved(constant.AdminTypeSuper) {
		return nil
	}
	if target.AdminType == constant.AdminTypeNone {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !target.IsApproved(constant.AdminTypeLocal) {
		return errors.SetCustomError(constant.ErrForbiddenTarget)
	}
	return nil
}

// CanDeleteUser allows self deletion, and the master admin deleting anyone else.
func CanDeleteUser(requester, target *model.UserEntity) error {
	if requester == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if target == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if target.AdminType == constant.AdminTypeMaster {
		return errors.SetCustomError(constant.ErrMasterAdminProtected)
	}
	if requester.ID != target.ID && !requester.IsMaster() {
		return errors.SetCustomError(constant.ErrForbiddenTarget)
	}
	return nil
}

func CanCreateListing(requester *model.UserEntity, listingType constant.ListingType) error {
	if requester == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !requester.HasRole(listingType.OwnerRole()) {
		return errors.SetCustomError(constant.ErrForbiddenRole)
	}
	return nil
}

// CanManageListing lets only the owner edit or delete a listing.
func CanManageListing(requester *model.UserEntity, listing *model.ListingEntity) error {
	if requester == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if listing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if listing.OwnerID != requester.ID {
		return errors.SetCustomError(constant.ErrForbiddenTarget)
	}
	return nil
}
