package admin

import (
	"context"
	"sort"
	"time"

	"github.com/muhammadheryan/agri-market/application/adminrole"
	"github.com/muhammadheryan/agri-market/cmd/config"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	admintagrepo "github.com/muhammadheryan/agri-market/repository/admintag"
	auditrepo "github.com/muhammadheryan/agri-market/repository/audit"
	txrepo "github.com/muhammadheryan/agri-market/repository/tx"
	userrepo "github.com/muhammadheryan/agri-market/repository/user"
	"github.com/muhammadheryan/agri-market/thirdparty/rabbitmq"
	"github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/muhammadheryan/agri-market/utils/export"
	"github.com/muhammadheryan/agri-market/utils/geo"
	"github.com/muhammadheryan/agri-market/utils/logger"
	"github.com/muhammadheryan/agri-market/utils/metrics"
	"go.uber.org/zap"
)

type AdminApp interface {
	RegisterAdmin(ctx context.Context, userID uint64, req *model.AdminRegisterRequest) (*model.UserEntity, error)
	RequestApproval(ctx context.Context, userID uint64, req *model.AdminApprovalRequest) (*model.UserEntity, error)
	Approve(ctx context.Context, approverID, targetID uint64) (*model.UserEntity, error)
	Reject(ctx context.Context, approverID, targetID uint64, req *model.AdminRejectRequest) (*model.UserEntity, error)
	PendingRequests(ctx context.Context, viewerID uint64, req *model.PageQuery) (*model.AdminListResponse, error)
	Roster(ctx context.Context, viewerID uint64, req *model.AdminRosterFilter) (*model.AdminListResponse, error)
	ExportRoster(ctx context.Context, viewerID uint64, req *model.AdminRosterFilter) ([]byte, error)
	SuperDirectory(ctx context.Context) ([]model.AdminSummary, error)
	LocalDirectory(ctx context.Context, viewerID uint64) ([]model.AdminSummary, error)
	NearbyAdmins(ctx context.Context, req *model.NearbyAdminsRequest) ([]model.NearbyAdmin, error)
	AdminContact(ctx context.Context, viewerID, adminID uint64) (*model.AdminContact, error)
	Tag(ctx context.Context, userID, adminID uint64) error
	Untag(ctx context.Context, userID, adminID uint64) error
	ListTags(ctx context.Context, userID uint64) ([]model.AdminSummary, error)
	AuditLog(ctx context.Context, viewerID uint64, req *model.AuditQuery) (*model.AuditListResponse, error)
	StoreAuditEvent(ctx context.Context, event *model.AdminAuditEvent) error
}

type adminAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	userRepo  userrepo.UserRepository
	tagRepo   admintagrepo.AdminTagRepository
	auditRepo auditrepo.AuditRepository
	publisher rabbitmq.AuditPublisher
	now       func() time.Time
}

func NewAdminApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	userRepo userrepo.UserRepository,
	tagRepo admintagrepo.AdminTagRepository,
	auditRepo auditrepo.AuditRepository,
	publisher rabbitmq.AuditPublisher,
) AdminApp {
	return &adminAppImpl{
		config:    config,
		txRepo:    txRepo,
		userRepo:  userRepo,
		tagRepo:   tagRepo,
		auditRepo: auditRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

var directoryTypes = []constant.AdminType{constant.AdminTypeLocal, constant.AdminTypeSuper}

// decideFunc inspects the locked target row and returns the write to apply.
type decideFunc func(target *model.UserEntity, now time.Time) (*model.AdminTransition, error)

// transition runs decide against the target row locked FOR UPDATE, applies the guarded
// write and commits. The audit event is published after commit.
func (s *adminAppImpl) transition(ctx context.Context, op string, action constant.AuditAction, actorID, targetID uint64, decide decideFunc) (*model.UserEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	target, err := s.userRepo.GetForUpdateTx(ctx, tx, targetID)
	if err != nil {
		logger.Error("["+op+"] get target for update", zap.String("error", err.Error()), zap.Uint64("target_id", targetID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if target == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	now := s.now()
	change, err := decide(target, now)
	if err != nil {
		return nil, err
	}

	from := adminrole.StateOf(target)
	to := adminrole.State{Type: change.ToType, Status: change.ToStatus}
	if err := adminrole.ValidateState(to); err != nil {
		logger.Error("["+op+"] transition to invalid state", zap.Uint64("target_id", targetID),
			zap.String("admin_type", string(to.Type)), zap.String("admin_status", string(to.Status)))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.TransitionAdminTx(ctx, tx, change); err != nil {
		if errors.Is(err, constant.ErrStateConflict) {
			logger.Info("["+op+"] state changed concurrently", zap.Uint64("target_id", targetID))
			return nil, err
		}
		logger.Error("["+op+"] transition admin", zap.String("error", err.Error()), zap.Uint64("target_id", targetID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	applyTransition(target, change)
	metrics.IncAdminTransition(string(action), string(to.Type))

	reason := ""
	if change.AdminRejectionReason != nil {
		reason = *change.AdminRejectionReason
	}
	s.publishAudit(ctx, op, adminrole.AuditEvent(action, actorID, targetID, from, to, reason, now))

	logger.Info("["+op+"] admin transition applied",
		zap.Uint64("actor_id", actorID),
		zap.Uint64("target_id", targetID),
		zap.String("from", string(from.Status)),
		zap.String("to", string(to.Status)),
		zap.String("admin_type", string(to.Type)),
	)
	return target, nil
}

func (s *adminAppImpl) publishAudit(ctx context.Context, op string, event *model.AdminAuditEvent) {
	if err := s.publisher.PublishAdminAudit(ctx, event); err != nil {
		metrics.AuditPublishFailures.Inc()
		logger.Error("["+op+"] publish audit", zap.String("error", err.Error()), zap.String("event_id", event.EventID))
	}
}

func applyTransition(u *model.UserEntity, t *model.AdminTransition) {
	u.AdminType = t.ToType
	u.AdminStatus = t.ToStatus
	u.ApprovedBy = t.ApprovedBy
	u.RequestedAdminID = t.RequestedAdminID
	u.AdminRequestDate = t.AdminRequestDate
	u.AdminApprovalDate = t.AdminApprovalDate
	u.AdminRejectionReason = t.AdminRejectionReason
}

func (s *adminAppImpl) RegisterAdmin(ctx context.Context, userID uint64, req *model.AdminRegisterRequest) (*model.UserEntity, error) {
	return s.transition(ctx, "RegisterAdmin", constant.AuditActionRegister, userID, userID,
		func(target *model.UserEntity, now time.Time) (*model.AdminTransition, error) {
			to, err := adminrole.Register(adminrole.StateOf(target), req.AdminType)
			if err != nil {
				return nil, err
			}
			change := adminrole.Transition(target.ID, adminrole.StateOf(target), to)
			change.AdminRequestDate = &now
			return change, nil
		})
}

// RequestApproval sends the request to its approver: a named approved super admin for
// local_admin, the master admin for super_admin.
func (s *adminAppImpl) RequestApproval(ctx context.Context, userID uint64, req *model.AdminApprovalRequest) (*model.UserEntity, error) {
	requester, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[RequestApproval] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if requester == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	// resolve the type first so the approver lookup matches what will be requested
	to, err := adminrole.RequestApproval(adminrole.StateOf(requester), req.AdminType)
	if err != nil {
		return nil, err
	}

	approverID, err := s.resolveApprover(ctx, userID, to.Type, req.RequestedAdminID)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, "RequestApproval", constant.AuditActionRequest, userID, userID,
		func(target *model.UserEntity, now time.Time) (*model.AdminTransition, error) {
			to, err := adminrole.RequestApproval(adminrole.StateOf(target), req.AdminType)
			if err != nil {
				return nil, err
			}
			change := adminrole.Transition(target.ID, adminrole.StateOf(target), to)
			change.RequestedAdminID = &approverID
			change.AdminRequestDate = &now
			return change, nil
		})
}

func (s *adminAppImpl) resolveApprover(ctx context.Context, userID uint64, adminType constant.AdminType, requestedID *uint64) (uint64, error) {
	if adminType == constant.AdminTypeSuper {
		master, err := s.userRepo.Get(ctx, &model.UserFilter{
			AdminTypes:  []constant.AdminType{constant.AdminTypeMaster},
			AdminStatus: constant.AdminStatusApproved,
		})
		if err != nil {
			logger.Error("[RequestApproval] err get master admin", zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
		if master == nil {
			return 0, errors.SetCustomError(constant.ErrNotFound)
		}
		return master.ID, nil
	}

	if requestedID == nil || *requestedID == 0 {
		return 0, errors.SetFieldError(errors.FieldError{Field: "requested_admin_id", Message: "is required for local_admin"})
	}
	if *requestedID == userID {
		return 0, errors.SetFieldError(errors.FieldError{Field: "requested_admin_id", Message: "must not be yourself"})
	}

	approver, err := s.userRepo.Get(ctx, &model.UserFilter{ID: *requestedID})
	if err != nil {
		logger.Error("[RequestApproval] err get requested admin", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if approver == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}
	if !approver.IsApproved(constant.AdminTypeSuper) {
		return 0, errors.SetFieldError(errors.FieldError{Field: "requested_admin_id", Message: "must be an approved super_admin"})
	}
	return approver.ID, nil
}

func (s *adminAppImpl) Approve(ctx context.Context, approverID, targetID uint64) (*model.UserEntity, error) {
	approver, err := s.loadActor(ctx, "Approve", approverID)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, "Approve", constant.AuditActionApprove, approverID, targetID,
		func(target *model.UserEntity, now time.Time) (*model.AdminTransition, error) {
			if err := adminrole.CanProcess(approver, target); err != nil {
				return nil, err
			}
			to, err := adminrole.Approve(adminrole.StateOf(target))
			if err != nil {
				return nil, err
			}
			change := adminrole.Transition(target.ID, adminrole.StateOf(target), to)
			change.ApprovedBy = &approver.ID
			change.RequestedAdminID = target.RequestedAdminID
			change.AdminRequestDate = target.AdminRequestDate
			change.AdminApprovalDate = &now
			return change, nil
		})
}

func (s *adminAppImpl) Reject(ctx context.Context, approverID, targetID uint64, req *model.AdminRejectRequest) (*model.UserEntity, error) {
	approver, err := s.loadActor(ctx, "Reject", approverID)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, "Reject", constant.AuditActionReject, approverID, targetID,
		func(target *model.UserEntity, now time.Time) (*model.AdminTransition, error) {
			if err := adminrole.CanProcess(approver, target); err != nil {
				return nil, err
			}
			to, reason, err := adminrole.Reject(adminrole.StateOf(target), req.Reason)
			if err != nil {
				return nil, err
			}
			change := adminrole.Transition(target.ID, adminrole.StateOf(target), to)
			change.ApprovedBy = &approver.ID
			change.RequestedAdminID = target.RequestedAdminID
			change.AdminRequestDate = target.AdminRequestDate
			change.AdminApprovalDate = &now
			change.AdminRejectionReason = &reason
			return change, nil
		})
}

func (s *adminAppImpl) loadActor(ctx context.Context, op string, userID uint64) (*model.UserEntity, error) {
	actor, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get actor", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if actor == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return actor, nil
}

func (s *adminAppImpl) PendingRequests(ctx context.Context, viewerID uint64, req *model.PageQuery) (*model.AdminListResponse, error) {
	viewer, err := s.loadActor(ctx, "PendingRequests", viewerID)
	if err != nil {
		return nil, err
	}
	filter, err := adminrole.CanViewPendingQueue(viewer)
	if err != nil {
		return nil, err
	}
	return s.listPage(ctx, "PendingRequests", filter, req.Page, req.PerPage)
}

func (s *adminAppImpl) Roster(ctx context.Context, viewerID uint64, req *model.AdminRosterFilter) (*model.AdminListResponse, error) {
	viewer, err := s.loadActor(ctx, "Roster", viewerID)
	if err != nil {
		return nil, err
	}
	if err := adminrole.CanViewRoster(viewer); err != nil {
		return nil, err
	}
	return s.listPage(ctx, "Roster", rosterFilter(req), req.Page, req.PerPage)
}

// ExportRoster renders the whole filtered roster, unpaginated, as xlsx.
func (s *adminAppImpl) ExportRoster(ctx context.Context, viewerID uint64, req *model.AdminRosterFilter) ([]byte, error) {
	viewer, err := s.loadActor(ctx, "ExportRoster", viewerID)
	if err != nil {
		return nil, err
	}
	if err := adminrole.CanViewRoster(viewer); err != nil {
		return nil, err
	}

	admins, err := s.userRepo.ListUsers(ctx, rosterFilter(req))
	if err != nil {
		logger.Error("[ExportRoster] err userRepo.ListUsers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	data, err := export.RosterXLSX(admins)
	if err != nil {
		logger.Error("[ExportRoster] err export.RosterXLSX", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return data, nil
}

func rosterFilter(req *model.AdminRosterFilter) *model.UserFilter {
	filter := &model.UserFilter{
		AdminTypes:  []constant.AdminType{constant.AdminTypeLocal, constant.AdminTypeSuper, constant.AdminTypeMaster},
		AdminStatus: req.AdminStatus,
	}
	if req.AdminType != "" {
		filter.AdminTypes = []constant.AdminType{req.AdminType}
	}
	return filter
}

func (s *adminAppImpl) listPage(ctx context.Context, op string, filter *model.UserFilter, page, perPage int) (*model.AdminListResponse, error) {
	page, perPage, offset := model.Paginate(page, perPage)
	filter.Limit = perPage
	filter.Offset = offset

	items, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] err userRepo.ListUsers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	total, err := s.userRepo.CountUsers(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] err userRepo.CountUsers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AdminListResponse{Items: items, TotalCount: total, Page: page, PerPage: perPage}, nil
}

// SuperDirectory lists approved super admins, for local admin applicants picking an approver.
func (s *adminAppImpl) SuperDirectory(ctx context.Context) ([]model.AdminSummary, error) {
	return s.directory(ctx, "SuperDirectory", constant.AdminTypeSuper)
}

func (s *adminAppImpl) LocalDirectory(ctx context.Context, viewerID uint64) ([]model.AdminSummary, error) {
	viewer, err := s.loadActor(ctx, "LocalDirectory", viewerID)
	if err != nil {
		return nil, err
	}
	if err := adminrole.CanViewLocalDirectory(viewer); err != nil {
		return nil, err
	}
	return s.directory(ctx, "LocalDirectory", constant.AdminTypeLocal)
}

func (s *adminAppImpl) directory(ctx context.Context, op string, adminType constant.AdminType) ([]model.AdminSummary, error) {
	users, err := s.userRepo.ListUsers(ctx, &model.UserFilter{
		AdminTypes:  []constant.AdminType{adminType},
		AdminStatus: constant.AdminStatusApproved,
	})
	if err != nil {
		logger.Error("["+op+"] err userRepo.ListUsers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.AdminSummary, 0, len(users))
	for i := range users {
		res = append(res, model.NewAdminSummary(&users[i]))
	}
	return res, nil
}

// NearbyAdmins returns approved local and super admins within radius_km, nearest first.
// The SQL scan is narrowed to the latitude band of the circle; Haversine decides.
func (s *adminAppImpl) NearbyAdmins(ctx context.Context, req *model.NearbyAdminsRequest) ([]model.NearbyAdmin, error) {
	if req.RadiusKm > s.config.Geo.MaxRadiusKm {
		return nil, errors.SetFieldError(errors.FieldError{Field: "radius_km", Message: "exceeds the maximum search radius"})
	}

	center := geo.Point{Lat: req.Latitude, Lng: req.Longitude}
	radius := geo.KmToMeters(req.RadiusKm)
	minLat, maxLat := geo.LatitudeBounds(center, radius)

	users, err := s.userRepo.ListUsers(ctx, &model.UserFilter{
		AdminTypes:     directoryTypes,
		AdminStatus:    constant.AdminStatusApproved,
		HasCoordinates: true,
		MinLatitude:    &minLat,
		MaxLatitude:    &maxLat,
	})
	if err != nil {
		logger.Error("[NearbyAdmins] err userRepo.ListUsers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.NearbyAdmin, 0)
	for i := range users {
		u := &users[i]
		if u.AdminStatus != constant.AdminStatusApproved {
			continue
		}
		d := geo.DistanceBetween(&center, u.Point())
		if d > radius {
			continue
		}
		res = append(res, model.NearbyAdmin{AdminSummary: model.NewAdminSummary(u), DistanceKm: geo.MetersToKm(d)})
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].DistanceKm != res[j].DistanceKm {
			return res[i].DistanceKm < res[j].DistanceKm
		}
		return res[i].ID < res[j].ID
	})
	metrics.NearbySearchResults.Observe(float64(len(res)))
	return res, nil
}

func (s *adminAppImpl) AdminContact(ctx context.Context, viewerID, adminID uint64) (*model.AdminContact, error) {
	viewer, err := s.loadActor(ctx, "AdminContact", viewerID)
	if err != nil {
		return nil, err
	}

	target, err := s.userRepo.Get(ctx, &model.UserFilter{ID: adminID})
	if err != nil {
		logger.Error("[AdminContact] err userRepo.Get", zap.String("error", err.Error()), zap.Uint64("admin_id", adminID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := adminrole.CanViewAdminContact(viewer, target); err != nil {
		return nil, err
	}

	return &model.AdminContact{AdminSummary: model.NewAdminSummary(target), MobileNumber: target.MobileNumber}, nil
}

// Tag bookmarks an approved local or super admin.
func (s *adminAppImpl) Tag(ctx context.Context, userID, adminID uint64) error {
	target, err := s.userRepo.Get(ctx, &model.UserFilter{ID: adminID})
	if err != nil {
		logger.Error("[Tag] err userRepo.Get", zap.String("error", err.Error()), zap.Uint64("admin_id", adminID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if target == nil || target.AdminType == constant.AdminTypeNone {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if target.AdminStatus != constant.AdminStatusApproved || target.IsMaster() {
		return errors.SetCustomError(constant.ErrForbiddenTarget)
	}

	if err := s.tagRepo.Tag(ctx, userID, adminID); err != nil {
		logger.Error("[Tag] err tagRepo.Tag", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) Untag(ctx context.Context, userID, adminID uint64) error {
	if err := s.tagRepo.Untag(ctx, userID, adminID); err != nil {
		logger.Error("[Untag] err tagRepo.Untag", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) ListTags(ctx context.Context, userID uint64) ([]model.AdminSummary, error) {
	res, err := s.tagRepo.ListTaggedAdmins(ctx, userID)
	if err != nil {
		logger.Error("[ListTags] err tagRepo.ListTaggedAdmins", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return res, nil
}

func (s *adminAppImpl) AuditLog(ctx context.Context, viewerID uint64, req *model.AuditQuery) (*model.AuditListResponse, error) {
	viewer, err := s.loadActor(ctx, "AuditLog", viewerID)
	if err != nil {
		return nil, err
	}
	if err := adminrole.CanViewRoster(viewer); err != nil {
		return nil, err
	}

	page, perPage, offset := model.Paginate(req.Page, req.PerPage)
	filter := &model.AuditFilter{TargetID: req.TargetID, Action: req.Action, Limit: perPage, Offset: offset}

	items, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[AuditLog] err auditRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	total, err := s.auditRepo.Count(ctx, filter)
	if err != nil {
		logger.Error("[AuditLog] err auditRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.AuditListResponse{Items: items, TotalCount: total, Page: page, PerPage: perPage}, nil
}

// StoreAuditEvent persists an event delivered by the audit consumer.
func (s *adminAppImpl) StoreAuditEvent(ctx context.Context, event *model.AdminAuditEvent) error {
	if err := s.auditRepo.Insert(ctx, event); err != nil {
		logger.Error("[StoreAuditEvent] err auditRepo.Insert", zap.String("error", err.Error()), zap.String("event_id", event.EventID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
