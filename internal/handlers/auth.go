package handlers

import (
	"net/http"
	"time"

	"notes-api/internal/contextutil"
	"notes-api/internal/service"
)

// AuthHandler serves registration, login and session routes.
type AuthHandler struct {
	accounts service.AccountService
	// secureCookies selects Secure + SameSite=None session cookies for cross-site production use.
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts service.AccountService, secureCookies bool) *AuthHandler {
	return &AuthHandler{accounts: accounts, secureCookies: secureCookies}
}

// RegisterRequest is the body of the registration routes.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of the login routes.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserEnvelope wraps a single account.
type UserEnvelope struct {
	Error       bool         `json:"error"`
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken,omitempty"`
	Message     string       `json:"message"`
}

// LoginEnvelope carries a bearer token.
type LoginEnvelope struct {
	Error     bool         `json:"error"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      UserResponse `json:"user"`
	Message   string       `json:"message"`
}

// VerifyEnvelope reports whether a token is valid.
type VerifyEnvelope struct {
	Error  bool   `json:"error"`
	Valid  bool   `json:"valid"`
	UserID string `json:"userId,omitempty"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.accounts.Register(ctx, service.RegisterInput(req))
	if err != nil {
		handleServiceError(w, ctx, err, "User")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, UserEnvelope{User: toUserResponse(user), Message: "Registration successful"})
}

// CreateAccount handles POST /create-account: register, then log straight in.
func (h *AuthHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.accounts.Register(ctx, service.RegisterInput(req)); err != nil {
		handleServiceError(w, ctx, err, "User")
		return
	}
	session, err := h.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, ctx, err, "User")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, UserEnvelope{
		User:        toUserResponse(&session.User),
		AccessToken: session.Token,
		Message:     "Registration successful",
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, ctx, err, "User")
		return
	}

	writeJSON(w, ctx, http.StatusOK, LoginEnvelope{
		Token:     session.Token,
		ExpiresIn: int64(session.ExpiresIn / time.Second),
		User:      toUserResponse(&session.User),
		Message:   "Login successful",
	})
}

// CookieLogin handles POST /auth/cookie/login. The token goes into an HttpOnly cookie.
func (h *AuthHandler) CookieLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, ctx, err, "User")
		return
	}

	http.SetCookie(w, h.sessionCookie(session.Token, session.ExpiresIn))
	writeJSON(w, ctx, http.StatusOK, UserEnvelope{User: toUserResponse(&session.User), Message: "Login successful"})
}

// Logout handles POST /auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := h.sessionCookie("", 0)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)

	writeJSON(w, r.Context(), http.StatusOK, MessageEnvelope{Message: "Logged out successfully"})
}

// Verify handles GET /auth/verify.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := h.accounts.VerifyToken(ctx, TokenFromRequest(r))
	if err != nil {
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "token verification failed", "error", err)
		writeJSON(w, ctx, http.StatusUnauthorized, VerifyEnvelope{Error: true, Valid: false})
		return
	}

	writeJSON(w, ctx, http.StatusOK, VerifyEnvelope{Valid: true, UserID: userID})
}

// Me handles GET /auth/me by resolving the presented token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.accounts.WhoAmI(ctx, TokenFromRequest(r))
	if err != nil {
		handleServiceError(w, ctx, err, "User")
		return
	}

	writeJSON(w, ctx, http.StatusOK, UserEnvelope{User: toUserResponse(user), Message: "User retrieved successfully"})
}

// Profile handles GET /auth/profile and GET /get-user for the authenticated caller.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.accounts.Profile(ctx, callerID(r))
	if err != nil {
		handleServiceError(w, ctx, err, "User")
		return
	}

	writeJSON(w, ctx, http.StatusOK, UserEnvelope{User: toUserResponse(user), Message: "User retrieved successfully"})
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(ttl / time.Second),
		SameSite: http.SameSiteLaxMode,
	}
	if h.secureCookies {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
