// Package auth exposes the login surfaces: email/password with email
// verification, and Google OAuth. Both issue the same session JWT.
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Saubhagya1707/crying-tailor/internal/notify"
	sharedauth "github.com/Saubhagya1707/crying-tailor/internal/shared/auth"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/server/respond"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
	"github.com/Saubhagya1707/crying-tailor/internal/users"
)

const (
	sendTimeout       = 10 * time.Second
	verifyErrorParam  = "InvalidOrExpiredLink"
	maxCredentialBody = 16 << 10
)

// CredentialsHandler serves signup, login and email verification.
type CredentialsHandler struct {
	Users    *users.Service
	Notifier notify.Notifier
	// BaseURL is the public API origin used to build verification links.
	BaseURL string
	// LoginURL is the UI login page; verification redirects there when set.
	LoginURL string
}

// RegisterRoutes attaches credential auth routes.
func (h *CredentialsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.signup)
	rg.POST("/auth/login", h.login)
	rg.GET("/auth/verify", h.verify)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

func (h *CredentialsHandler) signup(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCredentialBody)
	var req users.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}

	ctx := c.Request.Context()
	user, token, err := h.Users.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, users.ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "email_taken", users.ErrEmailTaken.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Something went wrong. Please try again.", nil)
		}
		return
	}

	h.sendVerification(ctx, user, token)
	telemetry.Info("auth.signup", map[string]any{"user_id": user.ID})
	respond.JSON(c, http.StatusCreated, gin.H{"user": user})
}

// sendVerification never fails the signup; delivery errors are logged.
func (h *CredentialsHandler) sendVerification(ctx context.Context, user users.User, token users.VerificationToken) {
	if h.Notifier == nil {
		return
	}
	link := strings.TrimRight(h.BaseURL, "/") + "/api/v1/auth/verify?token=" + url.QueryEscape(token.Token)
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()
	if err := h.Notifier.SendVerification(sendCtx, user.Email, link); err != nil {
		telemetry.Error("auth.verification_send_failed", map[string]any{"user_id": user.ID, "error": err})
	}
}

func (h *CredentialsHandler) login(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCredentialBody)
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "invalid_credentials", users.ErrInvalidCredentials.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to sign in", nil)
		return
	}

	token, err := IssueSession(user)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}
	respond.JSON(c, http.StatusOK, sessionResponse{Token: token, User: user})
}

func (h *CredentialsHandler) verify(c *gin.Context) {
	_, err := h.Users.Verify(c.Request.Context(), c.Query("token"))
	if err != nil && !errors.Is(err, users.ErrInvalidToken) {
		telemetry.Error("auth.verify_failed", map[string]any{"error": err})
	}

	if h.LoginURL != "" {
		params := url.Values{}
		if err != nil {
			params.Set("error", verifyErrorParam)
		} else {
			params.Set("verified", "1")
		}
		target, buildErr := withQuery(h.LoginURL, params)
		if buildErr == nil {
			c.Redirect(http.StatusFound, target)
			return
		}
	}

	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_token", users.ErrInvalidToken.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"verified": true})
}

// IssueSession signs the session JWT for a stored user.
func IssueSession(user users.User) (string, error) {
	claims := sharedauth.Claims{
		Email:   user.Email,
		Name:    user.FullName,
		Picture: user.PictureURL,
	}
	claims.Subject = user.ID
	return sharedauth.SignJWT(claims)
}

func withQuery(rawURL string, params url.Values) (string, error) {
	if rawURL == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for key, vals := range params {
		for _, v := range vals {
			q.Set(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
