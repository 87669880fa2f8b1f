package transport

import (
	"net/http"
	"time"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	utilsContext "github.com/muhammadheryan/agri-market/utils/context"
	validatorx "github.com/muhammadheryan/agri-market/utils/validator"
)

// Register handler
// @Summary Register user
// @Description Register a new user. The reserved master username bootstraps the master admin.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.UserEntity
// @Failure 400 {object} Response
// @Failure 429 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username and password. Returns a bearer token and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		Secure:   s.Config.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := tokenFromRequest(r)
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Config.Auth.SecureCookie,
	})
	writeSuccess(w, nil)
}

// Me handler
// @Summary Current user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserEntity
// @Router /me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.UserApp.Me(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update profile, location or roles
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} Response
// @Router /me [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())

	var req model.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.Validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete an account
// @Description Users delete themselves; the master admin may delete anyone except itself.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Router /users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	targetID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.Delete(r.Context(), userID, targetID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
