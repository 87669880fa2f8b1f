package model

import (
	"time"

	"github.com/muhammadheryan/agri-market/constant"
)

type AdminRegisterRequest struct {
	AdminType constant.AdminType `json:"admin_type" validate:"required,requestable_admin"`
}

// AdminApprovalRequest asks for review. AdminType defaults to the registered type.
type AdminApprovalRequest struct {
	AdminType        constant.AdminType `json:"admin_type" validate:"omitempty,requestable_admin"`
	RequestedAdminID *uint64            `json:"requested_admin_id"`
}

type AdminRejectRequest struct {
	Reason string `json:"reason"`
}

// AdminTransition is the conditional write applied by a role transition.
// The row is only updated while it still holds FromType/FromStatus.
type AdminTransition struct {
	UserID               uint64
	FromType             constant.AdminType
	FromStatus           constant.AdminStatus
	ToType               constant.AdminType
	ToStatus             constant.AdminStatus
	ApprovedBy           *uint64
	RequestedAdminID     *uint64
	AdminRequestDate     *time.Time
	AdminApprovalDate    *time.Time
	AdminRejectionReason *string
}

// AdminSummary is the public directory view of an admin, without contact details.
type AdminSummary struct {
	ID          uint64               `db:"id" json:"id"`
	Username    string               `db:"username" json:"username"`
	FirstName   string               `db:"first_name" json:"first_name"`
	LastName    string               `db:"last_name" json:"last_name"`
	Location    string               `db:"location" json:"location"`
	Latitude    *float64             `db:"latitude" json:"latitude"`
	Longitude   *float64             `db:"longitude" json:"longitude"`
	AdminType   constant.AdminType   `db:"admin_type" json:"admin_type"`
	AdminStatus constant.AdminStatus `db:"admin_status" json:"admin_status"`
}

func NewAdminSummary(u *UserEntity) AdminSummary {
	return AdminSummary{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Location:    u.Location,
		Latitude:    u.Latitude,
		Longitude:   u.Longitude,
		AdminType:   u.AdminType,
		AdminStatus: u.AdminStatus,
	}
}

type NearbyAdmin struct {
	AdminSummary
	DistanceKm float64 `json:"distance_km"`
}

type AdminContact struct {
	AdminSummary
	MobileNumber string `json:"mobile_number"`
}

type AdminListResponse struct {
	Items      []UserEntity `json:"items"`
	TotalCount int64        `json:"total_count"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
}

type AdminRosterFilter struct {
	AdminType   constant.AdminType   `json:"admin_type" validate:"omitempty,oneof=local_admin super_admin master_admin"`
	AdminStatus constant.AdminStatus `json:"admin_status" validate:"omitempty,oneof=registered pending approved rejected"`
	Page        int                  `json:"page"`
	PerPage     int                  `json:"per_page"`
}

type NearbyAdminsRequest struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lng" validate:"longitude"`
	RadiusKm  float64 `json:"radius_km" validate:"gt=0,lte=20000"`
}

// AdminAuditEvent records one admin role transition.
type AdminAuditEvent struct {
	ID         uint64               `db:"id" json:"id"`
	EventID    string               `db:"event_id" json:"event_id" validate:"required,uuid"`
	Action     constant.AuditAction `db:"action" json:"action" validate:"required"`
	ActorID    uint64               `db:"actor_id" json:"actor_id" validate:"required"`
	TargetID   uint64               `db:"target_id" json:"target_id" validate:"required"`
	AdminType  constant.AdminType   `db:"admin_type" json:"admin_type"`
	FromStatus constant.AdminStatus `db:"from_status" json:"from_status"`
	ToStatus   constant.AdminStatus `db:"to_status" json:"to_status"`
	Reason     string               `db:"reason" json:"reason,omitempty"`
	OccurredAt time.Time            `db:"occurred_at" json:"occurred_at"`
}

type AdminTagEntity struct {
	UserID    uint64    `db:"user_id" json:"user_id"`
	AdminID   uint64    `db:"admin_id" json:"admin_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type AuditFilter struct {
	TargetID uint64
	Action   constant.AuditAction
	Limit    int
	Offset   int
}

type AuditListResponse struct {
	Items      []AdminAuditEvent `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

type AuditQuery struct {
	TargetID uint64               `json:"target_id"`
	Action   constant.AuditAction `json:"action" validate:"omitempty,oneof=bootstrap register request approve reject"`
	Page     int                  `json:"page"`
	PerPage  int                  `json:"per_page"`
}

type PageQuery struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}
