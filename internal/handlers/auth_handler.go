package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/fzambone/event-attendance/config"
	"github.com/fzambone/event-attendance/internal/helpers"
	"github.com/fzambone/event-attendance/internal/middleware"
	"github.com/fzambone/event-attendance/internal/validation"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type LoginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the shared admin secret for a session cookie. A wrong
// secret redirects back to the login page with an error flag and no
// cookie; there is nothing to distinguish beyond right or wrong, so the
// flag stays generic.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.cfg.AdminPasswordHash == "" {
		slog.Error("admin password is not configured")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Server configuration incomplete.")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid JSON in request body.")
		return
	}
	password, err := validation.Required(req.Password, "Password")
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)) != nil {
		c.Redirect(http.StatusFound, middleware.LoginPath+"?error=invalid")
		return
	}

	token, err := helpers.IssueSessionToken(h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	h.setSessionCookie(c, token, int(helpers.SessionTTL.Seconds()))
	c.Redirect(http.StatusFound, middleware.LandingPath)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(helpers.SessionCookieName, value, maxAge, "/", "", h.cfg.IsProduction(), true)
}
