package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/utils/geo"
)

// RoleSet is stored as a comma separated column and serialized as a JSON array.
type RoleSet []constant.Role

func (r RoleSet) Has(role constant.Role) bool {
	for _, it := range r {
		if it == role {
			return true
		}
	}
	return false
}

// Normalize drops unknown and duplicate roles, keeping first-seen order.
func (r RoleSet) Normalize() RoleSet {
	out := make(RoleSet, 0, len(r))
	for _, it := range r {
		if it.IsValid() && !out.Has(it) {
			out = append(out, it)
		}
	}
	return out
}

func (r RoleSet) Value() (driver.Value, error) {
	parts := make([]string, 0, len(r))
	for _, it := range r {
		parts = append(parts, string(it))
	}
	return strings.Join(parts, ","), nil
}

func (r *RoleSet) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*r = RoleSet{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("roles: unsupported type %T", src)
	}

	out := RoleSet{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, constant.Role(p))
		}
	}
	*r = out
	return nil
}

// UserEntity represents the user table entity
type UserEntity struct {
	ID                   uint64               `db:"id" json:"id"`
	Username             string               `db:"username" json:"username"`
	PasswordHash         string               `db:"password_hash" json:"-"`
	MobileNumber         string               `db:"mobile_number" json:"mobile_number"`
	FirstName            string               `db:"first_name" json:"first_name"`
	LastName             string               `db:"last_name" json:"last_name"`
	Location             string               `db:"location" json:"location"`
	Latitude             *float64             `db:"latitude" json:"latitude"`
	Longitude            *float64             `db:"longitude" json:"longitude"`
	Roles                RoleSet              `db:"roles" json:"roles"`
	AdminType            constant.AdminType   `db:"admin_type" json:"admin_type"`
	AdminStatus          constant.AdminStatus `db:"admin_status" json:"admin_status"`
	ApprovedBy           *uint64              `db:"approved_by" json:"approved_by"`
	RequestedAdminID     *uint64              `db:"requested_admin_id" json:"requested_admin_id"`
	AdminRequestDate     *time.Time           `db:"admin_request_date" json:"admin_request_date,omitempty"`
	AdminApprovalDate    *time.Time           `db:"admin_approval_date" json:"admin_approval_date,omitempty"`
	AdminRejectionReason *string              `db:"admin_rejection_reason" json:"admin_rejection_reason,omitempty"`
	CreatedAt            time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt            *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

func (u *UserEntity) HasRole(role constant.Role) bool {
	return u != nil && u.Roles.Has(role)
}

func (u *UserEntity) IsMaster() bool {
	return u != nil && u.AdminType == constant.AdminTypeMaster && u.AdminStatus == constant.AdminStatusApproved
}

// IsApproved reports whether u is an approved admin of the given type.
func (u *UserEntity) IsApproved(adminType constant.AdminType) bool {
	return u != nil && u.AdminType == adminType && u.AdminStatus == constant.AdminStatusApproved
}

func (u *UserEntity) Point() *geo.Point {
	return geo.PointFrom(u.Latitude, u.Longitude)
}

func (u *UserEntity) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserFilter is the single parameterized query behind every user and admin directory.
// Zero values mean "any".
type UserFilter struct {
	ID               uint64
	IDs              []uint64
	Username         string
	AdminTypes       []constant.AdminType
	AdminStatus      constant.AdminStatus
	RequestedAdminID uint64
	HasCoordinates   bool
	MinLatitude      *float64
	MaxLatitude      *float64
	Limit            int
	Offset           int
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username     string          `json:"username" validate:"required,min=3,max=50"`
	Password     string          `json:"password" validate:"required,min=6"`
	MobileNumber string          `json:"mobile_number" validate:"required,min=6,max=20"`
	FirstName    string          `json:"first_name" validate:"required,max=100"`
	LastName     string          `json:"last_name" validate:"max=100"`
	Location     string          `json:"location" validate:"max=255"`
	Latitude     *float64        `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64        `json:"longitude" validate:"omitempty,longitude"`
	Roles        []constant.Role `json:"roles" validate:"omitempty,dive,role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *UserEntity `json:"user"`
}

// UpdateProfileRequest carries optional profile changes; nil fields are left untouched.
type UpdateProfileRequest struct {
	MobileNumber *string         `json:"mobile_number" validate:"omitempty,min=6,max=20"`
	FirstName    *string         `json:"first_name" validate:"omitempty,max=100"`
	LastName     *string         `json:"last_name" validate:"omitempty,max=100"`
	Location     *string         `json:"location" validate:"omitempty,max=255"`
	Latitude     *float64        `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64        `json:"longitude" validate:"omitempty,longitude"`
	Roles        []constant.Role `json:"roles" validate:"omitempty,dive,role"`
}
