package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/destinity/erp-ui/internal/ports"
)

// ProxyConfig configures the API reverse proxy.
type ProxyConfig struct {
	// Target is the backend origin. Request paths are kept after the base path is stripped.
	Target *url.URL
	// BasePath is removed from incoming paths, so {base}/api/x reaches {Target}/api/x.
	BasePath string
	// Revocations rejects bearer tokens recorded by logout. nil disables the check.
	Revocations ports.RevocationStore
	// Timeout bounds each proxied round trip. Zero means no extra deadline.
	Timeout   time.Duration
	Transport http.RoundTripper
	Metrics   *Metrics
	Logger    *slog.Logger
}

type outcomeKey struct{}

// NewAPIProxy returns a handler forwarding browser API calls to the backend.
func NewAPIProxy(cfg ProxyConfig) (http.Handler, error) {
	if cfg.Target == nil || cfg.Target.Scheme == "" || cfg.Target.Host == "" {
		return nil, errors.New("proxy target must be an absolute URL")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	target := *cfg.Target

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = stripBase(pr.In.URL.Path, cfg.BasePath)
			pr.Out.URL.RawPath = ""
			pr.SetURL(&target)
			pr.SetXForwarded()
			if id := RequestIDFrom(pr.In.Context()); id != "" {
				pr.Out.Header.Set(HeaderRequestID, id)
			}
		},
		Transport: cfg.Transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			code, errCode := http.StatusBadGateway, "backend_unavailable"
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(r.Context().Err(), context.DeadlineExceeded) {
				code, errCode = http.StatusGatewayTimeout, "backend_timeout"
			}
			if errors.Is(r.Context().Err(), context.Canceled) {
				setOutcome(r, "canceled")
				return
			}
			setOutcome(r, errCode)
			logger.WarnContext(r.Context(), "backend request failed",
				slog.String("path", r.URL.Path),
				slog.String("request_id", RequestIDFrom(r.Context())),
				slog.Any("error", err))
			WriteError(w, ErrorParams{Code: code, ErrCode: errCode, Err: errors.New("the backend could not be reached")})
		},
		ModifyResponse: func(resp *http.Response) error {
			setOutcome(resp.Request, statusClass(resp.StatusCode))
			return nil
		},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if tok := BearerToken(r); tok != "" && cfg.Revocations != nil {
			revoked, err := cfg.Revocations.IsRevoked(r.Context(), tok)
			switch {
			case err != nil:
				logger.WarnContext(r.Context(), "revocation check failed; forwarding request",
					slog.String("request_id", RequestIDFrom(r.Context())),
					slog.Any("error", err))
			case revoked:
				cfg.Metrics.countRevocation("rejected")
				cfg.Metrics.observeProxy(r.Method, "revoked", time.Since(start))
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "token_revoked",
					Err:     errors.New("the session has ended, sign in again"),
				})
				return
			}
		}

		ctx := r.Context()
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		outcome := new(string)
		ctx = context.WithValue(ctx, outcomeKey{}, outcome)
		rp.ServeHTTP(w, r.WithContext(ctx))

		if *outcome == "" {
			*outcome = "unknown"
		}
		cfg.Metrics.observeProxy(r.Method, *outcome, time.Since(start))
	}), nil
}

// BearerToken returns the token of an "Authorization: Bearer" header, or "".
func BearerToken(r *http.Request) string {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(tok)
}

func stripBase(p, base string) string {
	if base == "" {
		return p
	}
	if rest := strings.TrimPrefix(p, base); rest != p && (rest == "" || rest[0] == '/') {
		if rest == "" {
			return "/"
		}
		return rest
	}
	return p
}

func setOutcome(r *http.Request, outcome string) {
	if r == nil {
		return
	}
	if p, ok := r.Context().Value(outcomeKey{}).(*string); ok {
		*p = outcome
	}
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
