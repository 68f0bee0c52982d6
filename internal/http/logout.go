package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/destinity/erp-ui/internal/ports"
	"github.com/destinity/erp-ui/internal/token"
)

// DefaultRevocationTTL applies to tokens that carry no exp claim.
const DefaultRevocationTTL = 24 * time.Hour

// LogoutHandler records a token revocation for POST {base}/session/logout.
// The token comes from a bearer header or a {"token": "..."} body.
type LogoutHandler struct {
	Revocations ports.RevocationStore
	Metrics     *Metrics
	Logger      *slog.Logger
	Now         func() time.Time
}

type logoutRequest struct {
	Token string `json:"token"`
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := BearerToken(r)
	if raw == "" {
		var body logoutRequest
		if !DecodeJSON(w, r, &body) {
			return
		}
		raw = strings.TrimSpace(body.Token)
	}
	if raw == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_token", Err: errors.New("token is required")})
		return
	}

	claims, err := token.Decode(raw)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "malformed_token", Err: err})
		return
	}

	now := h.now()
	exp := token.ExpiresAt(claims)
	if exp.IsZero() {
		exp = now.Add(DefaultRevocationTTL)
	}
	if !exp.After(now) || h.Revocations == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.Revocations.Revoke(r.Context(), raw, exp); err != nil {
		h.logger().ErrorContext(r.Context(), "token revocation failed",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.Any("error", err))
		WriteError(w, ErrorParams{Code: http.StatusServiceUnavailable, ErrCode: "revocation_failed", Err: errors.New("logout could not be recorded")})
		return
	}
	h.Metrics.countRevocation("revoked")
	h.logger().InfoContext(r.Context(), "session revoked",
		slog.String("role", token.String(claims, "role")),
		slog.Time("expires_at", exp),
		slog.String("request_id", RequestIDFrom(r.Context())))
	w.WriteHeader(http.StatusNoContent)
}

func (h *LogoutHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *LogoutHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
