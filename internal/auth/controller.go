package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"framerly/internal/dto"
)

// CookieName carries the admin session token. HTTP-only and SameSite=Strict:
// the browser holds the credential, scripts never see it.
const CookieName = "auth_token"

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool `json:"success"`
}

// AuthController handles the shared-password admin login and logout.
type AuthController struct {
	tokens   *TokenManager
	password string
	secure   bool
	logger   *zap.Logger
}

func NewAuthController(tokens *TokenManager, password string, secure bool, logger *zap.Logger) *AuthController {
	return &AuthController{
		tokens:   tokens,
		password: password,
		secure:   secure,
		logger:   logger,
	}
}

// Login handles POST /admin/login. A matching password mints a session
// token and sets it as the session cookie; anything else is a 401. There is
// no lockout or rate limit on attempts.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, dto.MessageResponse{Message: "request body must be valid JSON"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(c.password)) != 1 {
		c.logger.Warn("admin login rejected", zap.String("remoteAddr", r.RemoteAddr))
		c.writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials"})
		return
	}

	token, err := c.tokens.Generate()
	if err != nil {
		c.logger.Error("generating session token", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.MessageResponse{Message: "failed to create session"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})

	c.logger.Info("admin session created")
	c.writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

// Logout handles POST /admin/logout. Clearing the cookie only removes the
// credential from this browser; the token itself stays valid until expiry.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})

	c.writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

func (c *AuthController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
