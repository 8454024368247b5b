package handlers

import (
	"errors"
	"net/http"

	"github.com/coursify/coursify-backend/internal/models"
	"github.com/coursify/coursify-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and signin for one role scope. Two instances are
// wired: one over the admin auth service, one over the user auth service.
type AuthHandler struct {
	auth services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /user/signup and POST /admin/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !BindJSON(c, &req) {
		return
	}

	if _, err := h.auth.Signup(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			RespondBadRequest(c, "email_taken", "Email is already in use", nil)
			return
		}
		RespondInternal(c, "Something went wrong during signup")
		return
	}

	// No token here; the caller signs in separately.
	c.JSON(http.StatusCreated, gin.H{
		"message": "You are signed up",
	})
}

// Signin handles POST /user/signin and POST /admin/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if !BindJSON(c, &req) {
		return
	}

	token, err := h.auth.Signin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same answer for unknown email and wrong password.
			RespondForbidden(c, "invalid_credentials", "Incorrect email or password")
			return
		}
		RespondInternal(c, "Something went wrong during signin")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}
