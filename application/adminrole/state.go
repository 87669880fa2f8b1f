// Package adminrole holds the admin hierarchy rules: the (admin_type, admin_status)
// state machine and the authorization policy deciding who may drive it.
// Everything here is pure; persistence is the caller's job.
package adminrole

import (
	"strings"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	"github.com/muhammadheryan/agri-market/utils/errors"
)

type State struct {
	Type   constant.AdminType
	Status constant.AdminStatus
}

var NoneState = State{Type: constant.AdminTypeNone, Status: constant.AdminStatusNone}

func StateOf(u *model.UserEntity) State {
	if u == nil {
		return NoneState
	}
	return State{Type: u.AdminType, Status: u.AdminStatus}
}

// ValidateState enforces admin_type = none <=> admin_status = none, on known values only.
func ValidateState(s State) error {
	if !s.Type.IsValid() || !s.Status.IsValid() {
		return errors.SetCustomError(constant.ErrInvalidAdminState)
	}
	if (s.Type == constant.AdminTypeNone) != (s.Status == constant.AdminStatusNone) {
		return errors.SetCustomError(constant.ErrInvalidAdminState)
	}
	if s.Type == constant.AdminTypeMaster && s.Status != constant.AdminStatusApproved {
		return errors.SetCustomError(constant.ErrInvalidAdminState)
	}
	return nil
}

// Register moves a user without admin role to <target>/registered.
func Register(cur State, target constant.AdminType) (State, error) {
	if !target.IsRequestable() {
		return cur, errors.SetFieldError(errors.FieldError{Field: "admin_type", Message: "must be local_admin or super_admin"})
	}
	if cur != NoneState {
		return cur, errors.SetCustomError(constant.ErrInvalidAdminState)
	}
	return State{Type: target, Status: constant.AdminStatusRegistered}, nil
}

// RequestApproval moves registered or rejected users to pending. An empty target
// keeps the registered type. Users without an admin role must Register first.
func RequestApproval(cur State, target constant.AdminType) (State, error) {
	if target == "" {
		target = cur.Type
	}
	if !target.IsRequestable() {
		return cur, errors.SetFieldError(errors.FieldError{Field: "admin_type", Message: "must be local_admin or super_admin"})
	}

	switch cur.Status {
	case constant.AdminStatusRegistered, constant.AdminStatusRejected:
		return State{Type: target, Status: constant.AdminStatusPending}, nil
	}
	return cur, errors.SetCustomError(constant.ErrInvalidAdminState)
}

func Approve(cur State) (State, error) {
	if cur.Status != constant.AdminStatusPending {
		return cur, errors.SetCustomError(constant.ErrInvalidAdminState)
	}
	return State{Type: cur.Type, Status: constant.AdminStatusApproved}, nil
}

// Reject returns the trimmed reason along with the new state.
func Reject(cur State, reason string) (State, string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return cur, "", errors.SetFieldError(errors.FieldError{Field: "reason", Message: "is required"})
	}
	if cur.Status != constant.AdminStatusPending {
		return cur, "", errors.SetCustomError(constant.ErrInvalidAdminState)
	}
	return State{Type: cur.Type, Status: constant.AdminStatusRejected}, reason, nil
}

// Bootstrap is the state of the reserved master account.
func Bootstrap() State {
	return State{Type: constant.AdminTypeMaster, Status: constant.AdminStatusApproved}
}

// BootstrapRoles are the functional roles forced onto the master account.
func BootstrapRoles() model.RoleSet {
	return model.RoleSet{constant.RoleBuyer, constant.RoleSeller}
}

// Transition builds the guarded write moving a user from one state to another.
func Transition(userID uint64, from, to State) *model.AdminTransition {
	return &model.AdminTransition{
		UserID:     userID,
		FromType:   from.Type,
		FromStatus: from.Status,
		ToType:     to.Type,
		ToStatus:   to.Status,
	}
}
