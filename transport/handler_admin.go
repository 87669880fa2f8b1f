package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	utilsContext "github.com/muhammadheryan/agri-market/utils/context"
	validatorx "github.com/muhammadheryan/agri-market/utils/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegisterAdmin handler
// @Summary Register for an admin role
// @Description Moves a user without admin role to <admin_type>/registered.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AdminRegisterRequest true "Admin type"
// @Success 200 {object} model.UserEntity
// @Failure 409 {object} Response
// @Router /admin/register [post]
func (s *RestHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	var req model.AdminRegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.RegisterAdmin(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RequestApproval handler
// @Summary Request admin approval
// @Description local_admin requests must name an approved super admin; super_admin requests go to the master admin.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AdminApprovalRequest true "Approval request"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /admin/request [post]
func (s *RestHandler) RequestApproval(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	var req model.AdminApprovalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.RequestApproval(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveRequest handler
// @Summary Approve a pending admin request
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requesting user ID"
// @Success 200 {object} model.UserEntity
// @Failure 403 {object} Response
// @Failure 409 {object} Response
// @Router /admin/requests/{id}/approve [post]
func (s *RestHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	targetID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Approve(r.Context(), userID, targetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RejectRequest handler
// @Summary Reject a pending admin request
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requesting user ID"
// @Param request body model.AdminRejectRequest true "Rejection reason"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /admin/requests/{id}/reject [post]
func (s *RestHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	targetID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AdminRejectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Reject(r.Context(), userID, targetID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PendingRequests handler
// @Summary Pending admin requests visible to the caller
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.AdminListResponse
// @Failure 403 {object} Response
// @Router /admin/requests [get]
func (s *RestHandler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.AdminApp.PendingRequests(r.Context(), userID, pageQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func pageQuery(r *http.Request) *model.PageQuery {
	return &model.PageQuery{Page: queryInt(r, "page"), PerPage: queryInt(r, "per_page")}
}

func rosterQuery(r *http.Request) (*model.AdminRosterFilter, error) {
	q := r.URL.Query()
	req := &model.AdminRosterFilter{
		AdminType:   constant.AdminType(q.Get("admin_type")),
		AdminStatus: constant.AdminStatus(q.Get("admin_status")),
		Page:        queryInt(r, "page"),
		PerPage:     queryInt(r, "per_page"),
	}
	if err := validatorx.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Roster handler
// @Summary Admin roster
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param admin_type query string false "local_admin, super_admin or master_admin"
// @Param admin_status query string false "registered, pending, approved or rejected"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.AdminListResponse
// @Failure 403 {object} Response
// @Router /admins [get]
func (s *RestHandler) Roster(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	req, err := rosterQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Roster(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ExportRoster handler
// @Summary Admin roster as xlsx
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param admin_type query string false "Admin type"
// @Param admin_status query string false "Admin status"
// @Success 200 {file} file
// @Failure 403 {object} Response
// @Router /admins/export [get]
func (s *RestHandler) ExportRoster(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	req, err := rosterQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := s.AdminApp.ExportRoster(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("admins-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// SuperDirectory handler
// @Summary Approved super admins
// @Description Lists the super admins a local admin applicant can name as approver.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AdminSummary
// @Router /admins/super [get]
func (s *RestHandler) SuperDirectory(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.SuperDirectory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// LocalDirectory handler
// @Summary Approved local admins
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AdminSummary
// @Failure 403 {object} Response
// @Router /admins/local [get]
func (s *RestHandler) LocalDirectory(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.AdminApp.LocalDirectory(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// NearbyAdmins handler
// @Summary Approved admins near a point
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Radius in km"
// @Success 200 {array} model.NearbyAdmin
// @Failure 400 {object} Response
// @Router /admins/nearby [get]
func (s *RestHandler) NearbyAdmins(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat")
	if err != nil {
		writeError(w, err)
		return
	}
	lng, err := queryFloat(r, "lng")
	if err != nil {
		writeError(w, err)
		return
	}
	radius, err := queryFloat(r, "radius_km")
	if err != nil {
		writeError(w, err)
		return
	}
	if lat == nil || lng == nil {
		writeError(w, fieldRequired("lat"))
		return
	}

	req := &model.NearbyAdminsRequest{Latitude: *lat, Longitude: *lng, RadiusKm: s.Config.Geo.DefaultRadiusKm}
	if radius != nil {
		req.RadiusKm = *radius
	}
	if err := validatorx.Validate(req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.NearbyAdmins(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdminContact handler
// @Summary Admin contact details
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} model.AdminContact
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /admins/{id}/contact [get]
func (s *RestHandler) AdminContact(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	adminID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.AdminContact(r.Context(), userID, adminID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// TagAdmin handler
// @Summary Bookmark an admin
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} Response
// @Router /admins/{id}/tag [post]
func (s *RestHandler) TagAdmin(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	adminID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.Tag(r.Context(), userID, adminID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// UntagAdmin handler
// @Summary Remove an admin bookmark
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} Response
// @Router /admins/{id}/tag [delete]
func (s *RestHandler) UntagAdmin(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	adminID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.Untag(r.Context(), userID, adminID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListTags handler
// @Summary Bookmarked admins
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AdminSummary
// @Router /me/tags [get]
func (s *RestHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.AdminApp.ListTags(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AuditLog handler
// @Summary Admin audit trail
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param target_id query int false "Target user ID"
// @Param action query string false "bootstrap, register, request, approve or reject"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.AuditListResponse
// @Failure 403 {object} Response
// @Router /admins/audit [get]
func (s *RestHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	targetID, err := queryUint(r, "target_id")
	if err != nil {
		writeError(w, err)
		return
	}

	req := &model.AuditQuery{
		TargetID: targetID,
		Action:   constant.AuditAction(r.URL.Query().Get("action")),
		Page:     queryInt(r, "page"),
		PerPage:  queryInt(r, "per_page"),
	}
	if err := validatorx.Validate(req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.AuditLog(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// StoreAuditEvent handler
// @Summary Persist an admin audit event
// @Description Internal endpoint called by the audit consumer.
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.AdminAuditEvent true "Audit event"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Router /internal/v1/admin-events [post]
func (s *RestHandler) StoreAuditEvent(w http.ResponseWriter, r *http.Request) {
	var req model.AdminAuditEvent
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.StoreAuditEvent(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, nil)
}
