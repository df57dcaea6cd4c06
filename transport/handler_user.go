package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} transport.Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone. A guest cart cookie is merged into the account cart.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} transport.Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	guestToken, _ := utilsContext.GetCartToken(ctx)
	res, err := s.UserApp.Login(ctx, &req, guestToken)
	if err != nil {
		writeError(w, err)
		return
	}

	// the guest cart now belongs to the account
	if res.CartMerged {
		http.SetCookie(w, s.expiredCartCookie())
	}
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
