package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-core/internal/config"
	"github.com/MKhiriev/go-vault-core/internal/logger"
	"github.com/MKhiriev/go-vault-core/internal/utils"
	"github.com/MKhiriev/go-vault-core/models"
)

type httpIdentityProvider struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string
	email string
	salt  string

	logger *logger.Logger
}

// NewHTTPIdentityProvider constructs an HTTP/REST implementation of
// [IdentityProvider]. It normalises and validates the base URL from
// adapterCfg.IdentityAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.IdentityAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPIdentityProvider(adapterCfg config.ClientAdapter, logger *logger.Logger) (IdentityProvider, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.IdentityAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpIdentityProvider{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [IdentityProvider]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (h *httpIdentityProvider) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [IdentityProvider]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpIdentityProvider) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login implements [IdentityProvider]. It POSTs the credentials to
// POST /api/auth/login. When the provider answers with mfa_required the
// result is returned alongside a wrapped [ErrMfaRequired] and no token is
// stored. On full success the session token and the user's email/salt are
// cached for later Salt calls.
func (h *httpIdentityProvider) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Email: email, Password: password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	if result.MfaRequired {
		h.rememberUser(email, "")
		return result, fmt.Errorf("%w: one-time code expected for %s", ErrMfaRequired, email)
	}

	h.SetToken(result.SessionToken)
	h.rememberUser(result.User.Email, result.User.Salt)
	return result, nil
}

type mfaRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ConfirmMfa implements [IdentityProvider]. It POSTs the one-time code to
// POST /api/auth/mfa, completing a login that answered mfa_required. On
// success the session token and the user's email/salt are cached.
func (h *httpIdentityProvider) ConfirmMfa(ctx context.Context, code string) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(mfaRequest{Email: h.currentEmail(), Code: code}).
		SetResult(&result).
		Post("/api/auth/mfa")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("confirm mfa request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	h.SetToken(result.SessionToken)
	h.rememberUser(result.User.Email, result.User.Salt)
	return result, nil
}

type saltRequest struct {
	Email string `json:"email"`
}

// Salt implements [IdentityProvider] and keystore.SaltProvider. It returns
// the salt cached at login when available; otherwise it POSTs the cached
// email to POST /api/auth/params and caches the answer. Returns an error
// when no user is known to the adapter yet.
func (h *httpIdentityProvider) Salt(ctx context.Context) (string, error) {
	email, salt := h.currentUser()
	if salt != "" {
		return salt, nil
	}
	if email == "" {
		return "", fmt.Errorf("%w: no user logged in", ErrUnauthorized)
	}

	var user models.User
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(saltRequest{Email: email}).
		SetResult(&user).
		Post("/api/auth/params")
	if err != nil {
		return "", fmt.Errorf("salt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if user.Salt == "" {
		return "", fmt.Errorf("identity provider returned empty salt for %s", email)
	}

	h.rememberUser(email, user.Salt)
	return user.Salt, nil
}

func (h *httpIdentityProvider) rememberUser(email, salt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if email != "" {
		h.email = email
	}
	if salt != "" {
		h.salt = salt
	}
}

func (h *httpIdentityProvider) currentUser() (email, salt string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.email, h.salt
}

func (h *httpIdentityProvider) currentEmail() string {
	email, _ := h.currentUser()
	return email
}
