package listing

import (
	"context"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/agri-market/application/adminrole"
	"github.com/muhammadheryan/agri-market/cmd/config"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	listingrepo "github.com/muhammadheryan/agri-market/repository/listing"
	txrepo "github.com/muhammadheryan/agri-market/repository/tx"
	userrepo "github.com/muhammadheryan/agri-market/repository/user"
	"github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/muhammadheryan/agri-market/utils/geo"
	"github.com/muhammadheryan/agri-market/utils/logger"
	"github.com/muhammadheryan/agri-market/utils/metrics"
	validatorx "github.com/muhammadheryan/agri-market/utils/validator"
	"go.uber.org/zap"
)

// ListingApp serves products (listingType seller) and buyer requests (listingType buyer).
type ListingApp interface {
	Create(ctx context.Context, ownerID uint64, listingType constant.ListingType, req *model.ListingRequest) (*model.ListingDetail, error)
	Update(ctx context.Context, ownerID uint64, listingType constant.ListingType, id uint64, req *model.ListingRequest) (*model.ListingDetail, error)
	Delete(ctx context.Context, ownerID uint64, listingType constant.ListingType, id uint64) error
	Get(ctx context.Context, listingType constant.ListingType, id uint64) (*model.ListingDetail, error)
	List(ctx context.Context, listingType constant.ListingType, req *model.ListingQuery) (*model.ListingListResponse, error)
	Feed(ctx context.Context, req *model.ListingQuery) (*model.ListingListResponse, error)
	MyListings(ctx context.Context, ownerID uint64, listingType constant.ListingType, req *model.PageQuery) (*model.ListingListResponse, error)
	IncrementViews(ctx context.Context, listingType constant.ListingType, id uint64) error
	Contact(ctx context.Context, requesterID uint64, listingType constant.ListingType, id uint64) (*model.ContactResponse, error)
}

type listingAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	userRepo    userrepo.UserRepository
	listingRepo listingrepo.ListingRepository
}

func NewListingApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	userRepo userrepo.UserRepository,
	listingRepo listingrepo.ListingRepository,
) ListingApp {
	return &listingAppImpl{
		config:      config,
		txRepo:      txRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

func (s *listingAppImpl) Create(ctx context.Context, ownerID uint64, listingType constant.ListingType, req *model.ListingRequest) (*model.ListingDetail, error) {
	owner, err := s.userRepo.Get(ctx, &model.UserFilter{ID: ownerID})
	if err != nil {
		logger.Error("[CreateListing] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := adminrole.CanCreateListing(owner, listingType); err != nil {
		return nil, err
	}
	if err := validatorx.CoordinatePair(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	adminIDs, admins, err := s.resolveAdmins(ctx, req.LocalAdminIDs)
	if err != nil {
		return nil, err
	}

	entity := &model.ListingEntity{ListingType: listingType, OwnerID: ownerID, Active: true}
	applyRequest(entity, req)

	err = s.inTx(ctx, "CreateListing", func(tx *sqlx.Tx) error {
		id, err := s.listingRepo.CreateTx(ctx, tx, entity)
		if err != nil {
			logger.Error("[CreateListing] err listingRepo.CreateTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		entity.ID = id

		if err := s.listingRepo.ReplaceAdminsTx(ctx, tx, listingType, id, adminIDs); err != nil {
			logger.Error("[CreateListing] err listingRepo.ReplaceAdminsTx", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("[CreateListing] listing created", zap.Uint64("listing_id", entity.ID),
		zap.String("listing_type", string(listingType)), zap.Uint64("owner_id", ownerID))
	return &model.ListingDetail{ListingEntity: *entity, Admins: admins}, nil
}

// Update rewrites every field of the listing and replaces its admin set in one transaction.
func (s *listingAppImpl) Update(ctx context.Context, ownerID uint64, listingType constant.ListingType, id uint64, req *model.ListingRequest) (*model.ListingDetail, error) {
	entity, err := s.manageable(ctx, "UpdateListing", ownerID, listingType, id)
	if err != nil {
		return nil, err
	}
	if err := validatorx.CoordinatePair(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	adminIDs, admins, err := s.resolveAdmins(ctx, req.LocalAdminIDs)
	if err != nil {
		return nil, err
	}
	applyRequest(entity, req)

	err = s.inTx(ctx, "UpdateListing", func(tx *sqlx.Tx) error {
		if err := s.listingRepo.UpdateTx(ctx, tx, entity); err != nil {
			logger.Error("[UpdateListing] err listingRepo.UpdateTx", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.listingRepo.ReplaceAdminsTx(ctx, tx, listingType, id, adminIDs); err != nil {
			logger.Error("[UpdateListing] err listingRepo.ReplaceAdminsTx", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.ListingDetail{ListingEntity: *entity, Admins: admins}, nil
}

// Delete is a soft delete: the row stays readable by id but leaves every list and search.
func (s *listingAppImpl) Delete(ctx context.Context, ownerID uint64, listingType constant.ListingType, id uint64) error {
	if _, err := s.manageable(ctx, "DeleteListing", ownerID, listingType, id); err != nil {
		return err
	}

	if err := s.listingRepo.SoftDelete(ctx, listingType, id); err != nil {
		logger.Error("[DeleteListing] err listingRepo.SoftDelete", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *listingAppImpl) manageable(ctx context.Context, op string, ownerID uint64, listingType constant.ListingType, id uint64) (*model.ListingEntity, error) {
	requester, err := s.userRepo.Get(ctx, &model.UserFilter{ID: ownerID})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity, err := s.listingRepo.GetByID(ctx, listingType, id)
	if err != nil {
		logger.Error("["+op+"] err listingRepo.GetByID", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity != nil && !entity.Active {
		entity = nil
	}
	if err := adminrole.CanManageListing(requester, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *listingAppImpl) Get(ctx context.Context, listingType constant.ListingType, id uint64) (*model.ListingDetail, error) {
	entity, err := s.listingRepo.GetByID(ctx, listingType, id)
	if err != nil {
		logger.Error("[GetListing] err listingRepo.GetByID", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	admins, err := s.listingRepo.GetAdmins(ctx, listingType, id)
	if err != nil {
		logger.Error("[GetListing] err listingRepo.GetAdmins", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListingDetail{ListingEntity: *entity, Admins: admins}, nil
}

// List returns active listings of one type. With lat, lng and radius_km set it becomes a
// radius search ordered by distance. Every returned listing gets one view.
func (s *listingAppImpl) List(ctx context.Context, listingType constant.ListingType, req *model.ListingQuery) (*model.ListingListResponse, error) {
	return s.browse(ctx, "ListListings", listingType, req)
}

// Feed is List over both listing types at once.
func (s *listingAppImpl) Feed(ctx context.Context, req *model.ListingQuery) (*model.ListingListResponse, error) {
	return s.browse(ctx, "Feed", "", req)
}

func (s *listingAppImpl) browse(ctx context.Context, op string, listingType constant.ListingType, req *model.ListingQuery) (*model.ListingListResponse, error) {
	filter := &model.ListingFilter{
		ListingType: listingType,
		Category:    req.Category,
		City:        req.City,
		State:       req.State,
		ActiveOnly:  true,
	}

	var (
		res *model.ListingListResponse
		err error
	)
	if req.RadiusKm != nil || req.Lat != nil || req.Lng != nil {
		res, err = s.radiusSearch(ctx, op, filter, req)
	} else {
		res, err = s.page(ctx, op, filter, req.Page, req.PerPage)
	}
	if err != nil {
		return nil, err
	}

	s.recordViews(ctx, op, res.Items)
	return res, nil
}

func (s *listingAppImpl) radiusSearch(ctx context.Context, op string, filter *model.ListingFilter, req *model.ListingQuery) (*model.ListingListResponse, error) {
	if req.Lat == nil || req.Lng == nil || req.RadiusKm == nil {
		return nil, errors.SetFieldError(errors.FieldError{Field: "radius_km", Message: "lat, lng and radius_km must be provided together"})
	}
	if *req.RadiusKm > s.config.Geo.MaxRadiusKm {
		return nil, errors.SetFieldError(errors.FieldError{Field: "radius_km", Message: "exceeds the maximum search radius"})
	}

	center := geo.Point{Lat: *req.Lat, Lng: *req.Lng}
	radius := geo.KmToMeters(*req.RadiusKm)
	minLat, maxLat := geo.LatitudeBounds(center, radius)
	filter.HasCoordinates = true
	filter.MinLatitude = &minLat
	filter.MaxLatitude = &maxLat

	candidates, err := s.listingRepo.List(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] err listingRepo.List radius", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	type hit struct {
		item     model.ListingEntity
		distance float64
	}
	hits := make([]hit, 0, len(candidates))
	for _, c := range candidates {
		d := geo.DistanceBetween(&center, c.Point())
		if d <= radius {
			hits = append(hits, hit{item: c, distance: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].distance < hits[j].distance
	})

	page, perPage, offset := model.Paginate(req.Page, req.PerPage)
	items := make([]model.ListingItem, 0, perPage)
	for i := offset; i < len(hits) && i < offset+perPage; i++ {
		km := geo.MetersToKm(hits[i].distance)
		items = append(items, model.ListingItem{ListingEntity: hits[i].item, DistanceKm: &km})
	}

	return &model.ListingListResponse{Items: items, TotalCount: int64(len(hits)), Page: page, PerPage: perPage}, nil
}

func (s *listingAppImpl) page(ctx context.Context, op string, filter *model.ListingFilter, page, perPage int) (*model.ListingListResponse, error) {
	page, perPage, offset := model.Paginate(page, perPage)
	filter.Limit = perPage
	filter.Offset = offset

	rows, err := s.listingRepo.List(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] err listingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	total, err := s.listingRepo.Count(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] err listingRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.ListingItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, model.ListingItem{ListingEntity: r})
	}
	return &model.ListingListResponse{Items: items, TotalCount: total, Page: page, PerPage: perPage}, nil
}

// recordViews gives every listing in the page one view. The returned items keep the
// pre-fetch count. A failed increment is logged and does not fail the read.
func (s *listingAppImpl) recordViews(ctx context.Context, op string, items []model.ListingItem) {
	byType := make(map[constant.ListingType][]uint64, 2)
	for _, it := range items {
		byType[it.ListingType] = append(byType[it.ListingType], it.ID)
	}
	for lt, ids := range byType {
		if err := s.listingRepo.IncrementViews(ctx, lt, ids...); err != nil {
			logger.Error("["+op+"] err listingRepo.IncrementViews", zap.String("error", err.Error()), zap.String("listing_type", string(lt)))
			continue
		}
		metrics.AddViews(string(lt), len(ids))
	}
}

// MyListings pages through the owner's listings, inactive ones included. No views are recorded.
func (s *listingAppImpl) MyListings(ctx context.Context, ownerID uint64, listingType constant.ListingType, req *model.PageQuery) (*model.ListingListResponse, error) {
	return s.page(ctx, "MyListings", &model.ListingFilter{ListingType: listingType, OwnerID: ownerID}, req.Page, req.PerPage)
}

func (s *listingAppImpl) IncrementViews(ctx context.Context, listingType constant.ListingType, id uint64) error {
	entity, err := s.listingRepo.GetByID(ctx, listingType, id)
	if err != nil {
		logger.Error("[IncrementViews] err listingRepo.GetByID", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || !entity.Active {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.listingRepo.IncrementViews(ctx, listingType, id); err != nil {
		logger.Error("[IncrementViews] err listingRepo.IncrementViews", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
		return errors.SetCustomError(constant.ErrInternal)
	}
	metrics.AddViews(string(listingType), 1)
	return nil
}

// Contact reveals the owner's name and phone and counts the request. Repeat contacts
// are allowed and each one counts.
func (s *listingAppImpl) Contact(ctx context.Context, requesterID uint64, listingType constant.ListingType, id uint64) (*model.ContactResponse, error) {
	requester, err := s.userRepo.Get(ctx, &model.UserFilter{ID: requesterID})
	if err != nil {
		logger.Error("[Contact] err userRepo.Get requester", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity, err := s.listingRepo.GetByID(ctx, listingType, id)
	if err != nil {
		logger.Error("[Contact] err listingRepo.GetByID", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := adminrole.CanContactOwner(requester, entity); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.Get(ctx, &model.UserFilter{ID: entity.OwnerID})
	if err != nil {
		logger.Error("[Contact] err userRepo.Get owner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if owner == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.listingRepo.IncrementContactRequests(ctx, listingType, id); err != nil {
		logger.Error("[Contact] err listingRepo.IncrementContactRequests", zap.String("error", err.Error()), zap.Uint64("listing_id", id))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	metrics.IncContact(string(listingType))

	return &model.ContactResponse{Name: owner.FullName(), MobileNumber: owner.MobileNumber}, nil
}

// resolveAdmins deduplicates ids, keeping first-seen order, and requires each one to be an
// approved local or super admin.
func (s *listingAppImpl) resolveAdmins(ctx context.Context, ids []uint64) ([]uint64, []model.AdminSummary, error) {
	unique := make([]uint64, 0, len(ids))
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return unique, []model.AdminSummary{}, nil
	}

	users, err := s.userRepo.ListUsers(ctx, &model.UserFilter{
		IDs:         unique,
		AdminTypes:  []constant.AdminType{constant.AdminTypeLocal, constant.AdminTypeSuper},
		AdminStatus: constant.AdminStatusApproved,
	})
	if err != nil {
		logger.Error("[resolveAdmins] err userRepo.ListUsers", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}

	found := make(map[uint64]*model.UserEntity, len(users))
	for i := range users {
		found[users[i].ID] = &users[i]
	}
	admins := make([]model.AdminSummary, 0, len(unique))
	for _, id := range unique {
		u, ok := found[id]
		if !ok {
			return nil, nil, errors.SetFieldError(errors.FieldError{Field: "local_admin_ids", Message: "every id must be an approved admin"})
		}
		admins = append(admins, model.NewAdminSummary(u))
	}
	sort.SliceStable(admins, func(i, j int) bool { return admins[i].ID < admins[j].ID })
	return unique, admins, nil
}

// inTx runs fn in one transaction, committing only when fn succeeds.
func (s *listingAppImpl) inTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func applyRequest(entity *model.ListingEntity, req *model.ListingRequest) {
	entity.Name = req.Name
	entity.Quantity = req.Quantity
	entity.Quality = req.Quality
	entity.Condition = req.Condition
	entity.Category = req.Category
	entity.TargetPrice = req.TargetPrice
	entity.City = req.City
	entity.State = req.State
	entity.Latitude = req.Latitude
	entity.Longitude = req.Longitude
}
