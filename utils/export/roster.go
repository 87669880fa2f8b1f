// Package export renders admin data as spreadsheets.
package export

import (
	"bytes"
	"time"

	"github.com/muhammadheryan/agri-market/model"
	"github.com/xuri/excelize/v2"
)

const rosterSheet = "Admins"

var rosterHeader = []interface{}{
	"id", "username", "first_name", "last_name", "mobile_number", "location", "latitude", "longitude",
	"admin_type", "admin_status", "approved_by", "requested_admin_id", "request_date", "approval_date", "rejection_reason",
}

// RosterXLSX writes one row per admin, in the given order.
func RosterXLSX(admins []model.UserEntity) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), rosterSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(rosterSheet, "A1", &rosterHeader); err != nil {
		return nil, err
	}

	for i, a := range admins {
		row := []interface{}{
			a.ID, a.Username, a.FirstName, a.LastName, a.MobileNumber, a.Location,
			floatCell(a.Latitude), floatCell(a.Longitude),
			string(a.AdminType), string(a.AdminStatus),
			uintCell(a.ApprovedBy), uintCell(a.RequestedAdminID),
			timeCell(a.AdminRequestDate), timeCell(a.AdminApprovalDate), stringCell(a.AdminRejectionReason),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(rosterSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func uintCell(v *uint64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func timeCell(v *time.Time) interface{} {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func stringCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
