package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"inkwell/contexts/identity/account-service/application"
	"inkwell/contexts/identity/account-service/domain/entities"
	httptransport "inkwell/contexts/identity/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// RegisterHandler godoc
// @Summary Register a new account
// @Description Creates a profile with the default "user" role.
// @Tags identity
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterRequest true "Credentials"
// @Success 200 {object} httptransport.RegisterResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /user_creation [post]
func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	profile, err := h.Service.Register(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{
		Message: "User created successfully",
		Data: []httptransport.ProfileData{{
			UserID:   profile.UserID,
			Username: profile.Username,
			Role:     profile.Role,
		}},
	}, nil
}

// LoginHandler godoc
// @Summary Log in with username and password
// @Description Verifies credentials and issues a bearer token.
// @Tags identity
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} httptransport.LoginResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /login [post]
func (h Handler) LoginHandler(ctx context.Context, username string, password string) (httptransport.LoginResponse, error) {
	token, err := h.Service.Login(ctx, username, password)
	if err != nil {
		application.ResolveLogger(h.Logger).Info("login rejected",
			"event", "http_login_rejected",
			"module", "identity/account-service",
			"layer", "transport",
		)
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// AuthenticateHandler resolves a bearer token into the current identity.
// The platform auth middleware calls this in front of every protected
// route.
func (h Handler) AuthenticateHandler(ctx context.Context, token string) (entities.Identity, error) {
	return h.Service.Authenticate(ctx, token)
}

// RequireAdmin re-checks the identity's role against the admin tier.
func (h Handler) RequireAdmin(identity entities.Identity) (entities.Identity, error) {
	return h.Service.RequireAdmin(identity)
}
