package listing_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	applisting "github.com/muhammadheryan/agri-market/application/listing"
	"github.com/muhammadheryan/agri-market/cmd/config"
	"github.com/muhammadheryan/agri-market/constant"
	listingmocks "github.com/muhammadheryan/agri-market/mocks/repository/listing"
	txmocks "github.com/muhammadheryan/agri-market/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/agri-market/mocks/repository/user"
	"github.com/muhammadheryan/agri-market/model"
	cerr "github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	config      *config.Config
	txRepo      *txmocks.TxRepository
	userRepo    *usermocks.UserRepository
	listingRepo *listingmocks.ListingRepository
}

func newFields(t *testing.T) fields {
	return fields{
		config:      &config.Config{Geo: config.GeoConfig{DefaultRadiusKm: 50, MaxRadiusKm: 500}},
		txRepo:      txmocks.NewTxRepository(t),
		userRepo:    usermocks.NewUserRepository(t),
		listingRepo: listingmocks.NewListingRepository(t),
	}
}

func (f fields) app() applisting.ListingApp {
	return applisting.NewListingApp(f.config, f.txRepo, f.userRepo, f.listingRepo)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CustomError, got %T: %v", err, err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func f64(v float64) *float64 { return &v }

var (
	seller = &model.UserEntity{ID: 11, FirstName: "Sam", LastName: "Seller", MobileNumber: "0811", Roles: model.RoleSet{constant.RoleSeller}}
	buyer  = &model.UserEntity{ID: 10, FirstName: "Bea", Roles: model.RoleSet{constant.RoleBuyer}}
	alice  = model.UserEntity{ID: 20, Username: "alice", AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusApproved}
)

func productRequest(adminIDs ...uint64) *model.ListingRequest {
	return &model.ListingRequest{
		Name:          "Rice",
		Quantity:      100,
		Category:      "grain",
		City:          "Nagpur",
		State:         "MH",
		LocalAdminIDs: adminIDs,
	}
}

func TestListingApp_ReplaceAdmins(t *testing.T) {
	tx := &sqlx.Tx{}
	f := newFields(t)

	// create with [alice, alice]
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 11}).Return(seller, nil)
	f.userRepo.
		On("ListUsers", mock.Anything, mock.MatchedBy(func(filter *model.UserFilter) bool {
			return len(filter.IDs) == 1 && filter.IDs[0] == 20 && filter.AdminStatus == constant.AdminStatusApproved
		})).
		Return([]model.UserEntity{alice}, nil).
		Once()
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil)
	f.listingRepo.
		On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(l *model.ListingEntity) bool {
			return l.OwnerID == 11 && l.ListingType == constant.ListingTypeSeller && l.Active
		})).
		Return(uint64(100), nil).
		Once()
	f.listingRepo.On("ReplaceAdminsTx", mock.Anything, tx, constant.ListingTypeSeller, uint64(100), []uint64{20}).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil)

	created, err := f.app().Create(context.Background(), 11, constant.ListingTypeSeller, productRequest(20, 20))
	require.NoError(t, err)
	assert.Equal(t, uint64(100), created.ID)
	require.Len(t, created.Admins, 1)
	assert.Equal(t, uint64(20), created.Admins[0].ID)

	// update with [] clears the set
	stored := &model.ListingEntity{ID: 100, ListingType: constant.ListingTypeSeller, OwnerID: 11, Active: true}
	f.listingRepo.On("GetByID", mock.Anything, constant.ListingTypeSeller, uint64(100)).Return(stored, nil)
	f.listingRepo.On("UpdateTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
	f.listingRepo.On("ReplaceAdminsTx", mock.Anything, tx, constant.ListingTypeSeller, uint64(100), []uint64{}).Return(nil).Once()

	updated, err := f.app().Update(context.Background(), 11, constant.ListingTypeSeller, 100, productRequest())
	require.NoError(t, err)
	assert.Empty(t, updated.Admins)

	// a fetch reports admins: []
	f.listingRepo.On("GetAdmins", mock.Anything, constant.ListingTypeSeller, uint64(100)).Return([]model.AdminSummary{}, nil).Once()
	got, err := f.app().Get(context.Background(), constant.ListingTypeSeller, 100)
	require.NoError(t, err)
	assert.NotNil(t, got.Admins)
	assert.Empty(t, got.Admins)
}

func TestListingApp_Create(t *testing.T) {
	tests := []struct {
		name        string
		ownerID     uint64
		listingType constant.ListingType
		req         *model.ListingRequest
		mockCall    func(f fields)
		errCode     constant.ErrorType
	}{
		{
			name:        "error: buyer cannot post a product",
			ownerID:     10,
			listingType: constant.ListingTypeSeller,
			req:         productRequest(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 10}).Return(buyer, nil).Once()
			},
			errCode: constant.ErrForbiddenRole,
		},
		{
			name:        "error: unknown or unapproved admin id",
			ownerID:     11,
			listingType: constant.ListingTypeSeller,
			req:         productRequest(20, 21),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 11}).Return(seller, nil).Once()
				f.userRepo.On("ListUsers", mock.Anything, mock.Anything).Return([]model.UserEntity{alice}, nil).Once()
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:        "error: insert fails and rolls back",
			ownerID:     11,
			listingType: constant.ListingTypeSeller,
			req:         productRequest(),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 11}).Return(seller, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.listingRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("db down")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			_, err := f.app().Create(context.Background(), tt.ownerID, tt.listingType, tt.req)
			assertErrCode(t, err, tt.errCode)
		})
	}
}

func TestListingApp_Contact(t *testing.T) {
	active := &model.ListingEntity{ID: 100, ListingType: constant.ListingTypeSeller, OwnerID: 11, Active: true}

	t.Run("concurrent contacts each count", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 10}).Return(buyer, nil).Times(2)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 11}).Return(seller, nil).Times(2)
		f.listingRepo.On("GetByID", mock.Anything, constant.ListingTypeSeller, uint64(100)).Return(active, nil).Times(2)
		f.listingRepo.On("IncrementContactRequests", mock.Anything, constant.ListingTypeSeller, uint64(100)).Return(nil).Times(2)

		app := f.app()
		var wg sync.WaitGroup
		results := make([]*model.ContactResponse, 2)
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = app.Contact(context.Background(), 10, constant.ListingTypeSeller, 100)
			}(i)
		}
		wg.Wait()

		for i := range results {
			require.NoError(t, errs[i])
			assert.Equal(t, &model.ContactResponse{Name: "Sam Seller", MobileNumber: "0811"}, results[i])
		}
	})

	t.Run("sellers cannot contact sellers", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 11}).Return(seller, nil).Once()
		f.listingRepo.On("GetByID", mock.Anything, constant.ListingTypeSeller, uint64(100)).Return(active, nil).Once()

		_, err := f.app().Contact(context.Background(), 11, constant.ListingTypeSeller, 100)
		assertErrCode(t, err, constant.ErrForbiddenRole)
	})

	t.Run("soft-deleted listing is not found", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 10}).Return(buyer, nil).Once()
		f.listingRepo.
			On("GetByID", mock.Anything, constant.ListingTypeSeller, uint64(100)).
			Return(&model.ListingEntity{ID: 100, ListingType: constant.ListingTypeSeller, OwnerID: 11}, nil).
			Once()

		_, err := f.app().Contact(context.Background(), 10, constant.ListingTypeSeller, 100)
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestListingApp_List(t *testing.T) {
	t.Run("plain page increments views of every returned listing", func(t *testing.T) {
		f := newFields(t)
		rows := []model.ListingEntity{
			{ID: 1, ListingType: constant.ListingTypeSeller, Active: true},
			{ID: 2, ListingType: constant.ListingTypeSeller, Active: true},
		}
		match := mock.MatchedBy(func(filter *model.ListingFilter) bool {
			return filter.ActiveOnly && filter.ListingType == constant.ListingTypeSeller &&
				filter.Category == "grain" && filter.Limit == 20
		})
		f.listingRepo.On("List", mock.Anything, match).Return(rows, nil).Once()
		f.listingRepo.On("Count", mock.Anything, match).Return(int64(2), nil).Once()
		f.listingRepo.On("IncrementViews", mock.Anything, constant.ListingTypeSeller, uint64(1), uint64(2)).Return(nil).Once()

		got, err := f.app().List(context.Background(), constant.ListingTypeSeller, &model.ListingQuery{Category: "grain"})
		require.NoError(t, err)
		assert.Len(t, got.Items, 2)
		assert.Equal(t, int64(2), got.TotalCount)
	})

	t.Run("radius search keeps listings inside the circle, nearest first", func(t *testing.T) {
		f := newFields(t)
		rows := []model.ListingEntity{
			{ID: 1, ListingType: constant.ListingTypeSeller, Active: true, Latitude: f64(21.040560124565285), Longitude: f64(78.96)},
			{ID: 2, ListingType: constant.ListingTypeSeller, Active: true, Latitude: f64(21.038761481353447), Longitude: f64(78.96)},
			{ID: 3, ListingType: constant.ListingTypeSeller, Active: true, Latitude: f64(20.67993216059187), Longitude: f64(78.96)},
		}
		f.listingRepo.
			On("List", mock.Anything, mock.MatchedBy(func(filter *model.ListingFilter) bool {
				return filter.ActiveOnly && filter.HasCoordinates && filter.MinLatitude != nil && filter.MaxLatitude != nil
			})).
			Return(rows, nil).
			Once()
		f.listingRepo.On("IncrementViews", mock.Anything, constant.ListingTypeSeller, uint64(3), uint64(2)).Return(nil).Once()

		got, err := f.app().List(context.Background(), constant.ListingTypeSeller, &model.ListingQuery{
			Lat: f64(20.59), Lng: f64(78.96), RadiusKm: f64(50),
		})
		require.NoError(t, err)
		require.Len(t, got.Items, 2)
		assert.Equal(t, uint64(3), got.Items[0].ID)
		assert.InDelta(t, 10.0, *got.Items[0].DistanceKm, 0.001)
		assert.Equal(t, uint64(2), got.Items[1].ID)
		assert.Equal(t, int64(2), got.TotalCount)
	})

	t.Run("partial radius query is rejected", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().List(context.Background(), constant.ListingTypeSeller, &model.ListingQuery{Lat: f64(20.59)})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestListingApp_Feed(t *testing.T) {
	f := newFields(t)
	rows := []model.ListingEntity{
		{ID: 5, ListingType: constant.ListingTypeBuyer, Active: true},
		{ID: 9, ListingType: constant.ListingTypeSeller, Active: true},
	}
	match := mock.MatchedBy(func(filter *model.ListingFilter) bool {
		return filter.ListingType == "" && filter.ActiveOnly
	})
	f.listingRepo.On("List", mock.Anything, match).Return(rows, nil).Once()
	f.listingRepo.On("Count", mock.Anything, match).Return(int64(2), nil).Once()
	f.listingRepo.On("IncrementViews", mock.Anything, constant.ListingTypeBuyer, uint64(5)).Return(nil).Once()
	f.listingRepo.On("IncrementViews", mock.Anything, constant.ListingTypeSeller, uint64(9)).Return(errors.New("lock wait")).Once()

	got, err := f.app().Feed(context.Background(), &model.ListingQuery{})
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}

func TestListingApp_Delete(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 10}).Return(buyer, nil).Once()
	f.listingRepo.
		On("GetByID", mock.Anything, constant.ListingTypeSeller, uint64(100)).
		Return(&model.ListingEntity{ID: 100, ListingType: constant.ListingTypeSeller, OwnerID: 11, Active: true}, nil).
		Once()
	assertErrCode(t, f.app().Delete(context.Background(), 10, constant.ListingTypeSeller, 100), constant.ErrForbiddenTarget)

	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 11}).Return(seller, nil).Once()
	f.listingRepo.
		On("GetByID", mock.Anything, constant.ListingTypeSeller, uint64(100)).
		Return(&model.ListingEntity{ID: 100, ListingType: constant.ListingTypeSeller, OwnerID: 11, Active: true}, nil).
		Once()
	f.listingRepo.On("SoftDelete", mock.Anything, constant.ListingTypeSeller, uint64(100)).Return(nil).Once()
	require.NoError(t, f.app().Delete(context.Background(), 11, constant.ListingTypeSeller, 100))
}
