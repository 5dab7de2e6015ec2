package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/mauriciopaint/backoffice/internal/transport"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (string, error)
	ResolveToken(tokenString string) (*User, error)
	TokenTTL() int
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// Login issues the access token and sets both session cookies: the token
// cookie (prefixed "bearer ", which the guard strips again) and the session
// marker. The JSON body mirrors what the original clients expect.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.Service.Authenticate(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	maxAge := h.Service.TokenTTL()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieAccessToken,
		Value:    "bearer " + token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     CookieSessionActive,
		Value:    SessionActiveValue,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.WriteJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Logout clears both cookies.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: CookieAccessToken, Value: "", Path: "/", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: CookieSessionActive, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

// Guard is the request gate. In order: the session marker cookie must hold
// the expected literal; a token must be present in the cookie or the
// Authorization header; an optional "bearer " prefix is stripped case
// insensitively; the token must verify and its subject must resolve to a
// stored user. Any miss ends the request with 401.
func (h *Handler) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		marker, err := r.Cookie(CookieSessionActive)
		if err != nil || marker.Value != SessionActiveValue {
			h.WriteAppError(w, internal.ErrSessionInactive)
			return
		}

		token := h.extractToken(r)
		if token == "" {
			h.WriteAppError(w, internal.ErrInvalidToken)
			return
		}

		user, err := h.Service.ResolveToken(token)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}

		ctx := internal.ContextWithUsername(r.Context(), user.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken prefers the cookie and falls back to the Authorization
// header. Cookie values carry a "bearer " prefix set at login.
func (h *Handler) extractToken(r *http.Request) string {
	var token string
	if c, err := r.Cookie(CookieAccessToken); err == nil {
		token = c.Value
	}
	if token == "" {
		token = h.ExtractTokenFromHeader(r)
	}
	if token == "" {
		return ""
	}

	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}
	return token
}
