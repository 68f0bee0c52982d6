// Package api is the browser app's client for the ERP REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/destinity/erp-ui/internal/domain/auth"
	"github.com/destinity/erp-ui/internal/domain/model"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

const (
	LoginPath     = "/api/auth/login"
	EmployeesPath = "/api/users/all"
	ProductsPath  = "/api/products/all"
	SalesPath     = "/api/sales/all"
	LogoutPath    = "/session/logout"

	// DefaultLoginError is shown when a failed login response carries no message.
	DefaultLoginError = "Error al iniciar sesión"

	maxErrorBody = 64 << 10
)

// Credentials is the login request body.
type Credentials = auth.Credentials

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Error is a non-2xx login response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Options configures a Client.
type Options struct {
	// BaseURL is the origin plus base path, e.g. "https://erp.example.com/destinity-erp".
	BaseURL    string
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	// Token returns the current bearer token, or "".
	Token func() string
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Client calls the REST backend through the UI server.
type Client struct {
	baseURL string
	client  *http.Client
	token   func() string
	logger  *slog.Logger
}

// NewClient builds a Client.
func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		client:  hc,
		token:   opts.Token,
		logger:  logger,
	}
}

// Login posts credentials and returns the issued token. A non-2xx answer is
// an *Error carrying the backend message, or DefaultLoginError when it has none.
// A 2xx answer without a token returns "" and a nil error.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, LoginPath, bytes.NewReader(body), false)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperrors.MapRequestError(err, "login")
	}
	defer resp.Body.Close()

	var out loginResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(out.Message)
		if decodeErr != nil || msg == "" {
			msg = DefaultLoginError
		}
		return "", &Error{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return "", apperrors.Wrap(decodeErr, apperrors.ErrCodeBackend, "decode login response")
	}
	return strings.TrimSpace(out.Token), nil
}

// ListEmployees fetches every employee.
func (c *Client) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return listRecords[model.Employee](ctx, c, EmployeesPath)
}

// ListProducts fetches every product.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	return listRecords[model.Product](ctx, c, ProductsPath)
}

// ListSales fetches every sale.
func (c *Client) ListSales(ctx context.Context) ([]model.Sale, error) {
	return listRecords[model.Sale](ctx, c, SalesPath)
}

// listRecords keeps records with off-type fields; only a body that is
// not a JSON array fails the list.
func listRecords[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var body json.RawMessage
	if err := c.getJSON(ctx, path, &body); err != nil {
		return nil, err
	}
	out, partial, err := model.DecodeRecords[T](body)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeBackend, "GET %s: decode response", path)
	}
	if partial > 0 {
		c.logger.WarnContext(ctx, "records decoded partially", "path", path, "records", len(out), "partial", partial)
	}
	return out, nil
}

// Logout asks the UI server to revoke token.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := c.newRequest(ctx, http.MethodPost, LogoutPath, http.NoBody, false)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.MapRequestError(err, "logout")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.Newf(apperrors.ErrCodeBackend, "logout: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.MapRequestError(err, "GET "+path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeBackend,
			Message: fmt.Sprintf("GET %s: unexpected status %d", path, resp.StatusCode),
			Cause:   errors.New(strings.TrimSpace(string(snippet))),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeBackend, "GET %s: decode response", path)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, withToken bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if withToken && c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}
