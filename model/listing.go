package model

import (
	"time"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/utils/geo"
)

// ListingEntity is a product (seller listing) or a buyer request; both share one shape.
type ListingEntity struct {
	ID              uint64               `db:"id" json:"id"`
	ListingType     constant.ListingType `db:"listing_type" json:"listing_type"`
	OwnerID         uint64               `db:"owner_id" json:"owner_id"`
	Name            string               `db:"name" json:"name"`
	Quantity        float64              `db:"quantity" json:"quantity"`
	Quality         string               `db:"quality" json:"quality"`
	Condition       string               `db:"item_condition" json:"condition"`
	Category        string               `db:"category" json:"category"`
	TargetPrice     float64              `db:"target_price" json:"target_price"`
	City            string               `db:"city" json:"city"`
	State           string               `db:"state" json:"state"`
	Latitude        *float64             `db:"latitude" json:"latitude"`
	Longitude       *float64             `db:"longitude" json:"longitude"`
	Active          bool                 `db:"active" json:"active"`
	Views           int64                `db:"views" json:"views"`
	ContactRequests int64                `db:"contact_requests" json:"contact_requests"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

func (l *ListingEntity) Point() *geo.Point {
	return geo.PointFrom(l.Latitude, l.Longitude)
}

// ListingRequest creates or fully replaces a listing. LocalAdminIDs uses replace-all semantics.
type ListingRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Quantity      float64  `json:"quantity" validate:"gt=0"`
	Quality       string   `json:"quality" validate:"max=100"`
	Condition     string   `json:"condition" validate:"max=100"`
	Category      string   `json:"category" validate:"required,max=100"`
	TargetPrice   float64  `json:"target_price" validate:"gte=0"`
	City          string   `json:"city" validate:"required,max=100"`
	State         string   `json:"state" validate:"required,max=100"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,longitude"`
	LocalAdminIDs []uint64 `json:"local_admin_ids"`
}

type ListingFilter struct {
	ListingType constant.ListingType
	OwnerID     uint64
	Category    string
	City        string
	State       string
	ActiveOnly  bool
	MinLatitude *float64
	MaxLatitude *float64
	// HasCoordinates restricts the scan to rows with both latitude and longitude.
	HasCoordinates bool
	Limit          int
	Offset         int
}

// ListingQuery is the HTTP-facing list request. Center + RadiusKm switch on radius search.
type ListingQuery struct {
	Category string   `json:"category"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Lat      *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng      *float64 `json:"lng" validate:"omitempty,longitude"`
	RadiusKm *float64 `json:"radius_km" validate:"omitempty,gt=0,lte=20000"`
	Page     int      `json:"page"`
	PerPage  int      `json:"per_page"`
}

type ListingItem struct {
	ListingEntity
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type ListingDetail struct {
	ListingEntity
	Admins []AdminSummary `json:"admins"`
}

type ListingListResponse struct {
	Items      []ListingItem `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}

// ContactResponse exposes only the owner's name and phone.
type ContactResponse struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
}
