package handlers

import (
	"errors"
	"net/http"

	"github.com/felixgeelhaar/shopbazar/internal/api/response"
	"github.com/felixgeelhaar/shopbazar/internal/auth"
)

// AuthHandler handles shopper registration
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest is the request body for registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// UserResponse is the public view of a user. The password hash is never included.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register handles POST /user-data
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, r, "invalid request body", err)
		return
	}

	result, err := h.authService.Register(r.Context(), auth.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, auth.ErrEmailMissing):
		response.BadRequest(w, r, "email is required", nil)
		return
	case errors.Is(err, auth.ErrEmailExists):
		response.EmailExists(w, r)
		return
	case err != nil:
		// ErrTokenIssue lands here too; its cause names the stored user's id
		response.InternalError(w, r, "failed to register user", err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Token: result.Token,
		User: UserResponse{
			ID:    result.User.ID.Hex(),
			Name:  result.User.Name,
			Email: result.User.Email,
		},
	})
}
