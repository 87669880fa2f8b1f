package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/agri-market/application/adminrole"
	"github.com/muhammadheryan/agri-market/cmd/config"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	admintagrepo "github.com/muhammadheryan/agri-market/repository/admintag"
	listingrepo "github.com/muhammadheryan/agri-market/repository/listing"
	redisrepo "github.com/muhammadheryan/agri-market/repository/redis"
	txrepo "github.com/muhammadheryan/agri-market/repository/tx"
	userrepo "github.com/muhammadheryan/agri-market/repository/user"
	"github.com/muhammadheryan/agri-market/thirdparty/rabbitmq"
	"github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/muhammadheryan/agri-market/utils/logger"
	"github.com/muhammadheryan/agri-market/utils/metrics"
	validatorx "github.com/muhammadheryan/agri-market/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	Me(ctx context.Context, userID uint64) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error)
	Delete(ctx context.Context, requesterID, targetID uint64) error
}

type UserAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	userRepo    userrepo.UserRepository
	listingRepo listingrepo.ListingRepository
	tagRepo     admintagrepo.AdminTagRepository
	sessionRepo redisrepo.SessionRepository
	publisher   rabbitmq.AuditPublisher
	now         func() time.Time
}

func NewUserApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	userRepo userrepo.UserRepository,
	listingRepo listingrepo.ListingRepository,
	tagRepo admintagrepo.AdminTagRepository,
	sessionRepo redisrepo.SessionRepository,
	publisher rabbitmq.AuditPublisher,
) UserApp {
	return &UserAppImpl{
		config:      config,
		txRepo:      txRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
		tagRepo:     tagRepo,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Register creates a plain user, or the master admin when the reserved username is used.
func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error) {
	if err := validatorx.CoordinatePair(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Get username", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrUsernameExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	roles := model.RoleSet(req.Roles).Normalize()
	if len(roles) == 0 {
		roles = model.RoleSet{constant.RoleBuyer}
	}

	userEntity := &model.UserEntity{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		MobileNumber: req.MobileNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Roles:        roles,
		AdminType:    constant.AdminTypeNone,
		AdminStatus:  constant.AdminStatusNone,
	}

	isMaster := req.Username == s.config.Admin.MasterUsername
	if isMaster {
		state := adminrole.Bootstrap()
		now := s.now()
		userEntity.AdminType = state.Type
		userEntity.AdminStatus = state.Status
		userEntity.Roles = adminrole.BootstrapRoles()
		userEntity.AdminRequestDate = &now
		userEntity.AdminApprovalDate = &now
	}

	if err := adminrole.ValidateState(adminrole.StateOf(userEntity)); err != nil {
		logger.Error("[Register] invalid admin state", zap.String("username", req.Username))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if isDuplicateKey(err) {
		return nil, errors.SetCustomError(constant.ErrUsernameExists)
	}
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if isMaster {
		logger.Info("[Register] master admin bootstrapped", zap.Uint64("user_id", userEntity.ID))
		metrics.IncAdminTransition(string(constant.AuditActionBootstrap), string(constant.AdminTypeMaster))
		event := adminrole.AuditEvent(constant.AuditActionBootstrap, userEntity.ID, userEntity.ID,
			adminrole.NoneState, adminrole.Bootstrap(), "", s.now())
		if err := s.publisher.PublishAdminAudit(ctx, event); err != nil {
			metrics.AuditPublishFailures.Inc()
			logger.Error("[Register] publish audit", zap.String("error", err.Error()))
		}
	}

	return userEntity, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, jti, expiresAt, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.sessionRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.sessionRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	// session must still exist and belong to the same user
	redisUserID, err := s.sessionRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}
	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) Me(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Me] err userRepo.Get", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields. The master admin keeps its forced roles.
func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	if err := validatorx.CoordinatePair(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	user, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.MobileNumber != nil {
		user.MobileNumber = *req.MobileNumber
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Latitude != nil {
		user.Latitude = req.Latitude
		user.Longitude = req.Longitude
	}
	if req.Roles != nil && !user.IsMaster() {
		roles := model.RoleSet(req.Roles).Normalize()
		if len(roles) == 0 {
			return nil, errors.SetFieldError(errors.FieldError{Field: "roles", Message: "must contain buyer or seller"})
		}
		user.Roles = roles
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()), zap.Uint64("user_id", userID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return user, nil
}

// Delete removes the account in one transaction: back-references to the user are
// cleared, owned listings and all admin and tag rows go with it.
func (s *UserAppImpl) Delete(ctx context.Context, requesterID, targetID uint64) error {
	requester, err := s.userRepo.Get(ctx, &model.UserFilter{ID: requesterID})
	if err != nil {
		logger.Error("[Delete] err userRepo.Get requester", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	target := requester
	if targetID != requesterID {
		target, err = s.userRepo.Get(ctx, &model.UserFilter{ID: targetID})
		if err != nil {
			logger.Error("[Delete] err userRepo.Get target", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := adminrole.CanDeleteUser(requester, target); err != nil {
		return err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Delete] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.userRepo.ClearAdminReferencesTx(ctx, tx, targetID); err != nil {
		logger.Error("[Delete] clear admin references", zap.String("error", err.Error()), zap.Uint64("user_id", targetID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	for _, lt := range []constant.ListingType{constant.ListingTypeSeller, constant.ListingTypeBuyer} {
		if err := s.listingRepo.DeleteByOwnerTx(ctx, tx, lt, targetID); err != nil {
			logger.Error("[Delete] delete owned listings", zap.String("error", err.Error()), zap.String("listing_type", string(lt)))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	if err := s.listingRepo.RemoveAdminTx(ctx, tx, targetID); err != nil {
		logger.Error("[Delete] remove listing admin rows", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.tagRepo.DeleteByUserTx(ctx, tx, targetID); err != nil {
		logger.Error("[Delete] delete admin tags", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.userRepo.DeleteTx(ctx, tx, targetID); err != nil {
		logger.Error("[Delete] delete user", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.sessionRepo.DeleteUserSessions(ctx, targetID); err != nil {
		logger.Error("[Delete] revoke sessions", zap.String("error", err.Error()), zap.Uint64("user_id", targetID))
	}
	logger.Info("[Delete] user deleted", zap.Uint64("user_id", targetID), zap.Uint64("by", requesterID))
	return nil
}

func (s *UserAppImpl) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT returns the signed token, its jti and expiry.
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.Auth.JWTExpiration)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, expiresAt, nil
}

// isDuplicateKey reports a unique index violation; a concurrent register can pass the
// username lookup and still lose on uq_user_username.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	return stderrors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

const mysqlDuplicateEntry = 1062
