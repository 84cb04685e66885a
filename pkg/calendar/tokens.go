package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ErrNoCredentials means the user has no usable calendar credentials.
// Downstream this degrades to "no calendar, all time free" — a broken
// participant never halts a negotiation.
var ErrNoCredentials = errors.New("no calendar credentials")

// UserCredentials is the stored credential record for one user.
type UserCredentials struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// CredentialStore reads and persists per-user credentials. Implemented by
// the user service.
type CredentialStore interface {
	Credentials(ctx context.Context, userID string) (UserCredentials, error)
	SaveTokens(ctx context.Context, userID, accessToken string, expiry time.Time) error
}

// WarningSink receives per-user degradation notices. Refresh failures are
// invisible in the product (the participant just looks fully free), so they
// go to an operator surface. Implemented by services.SystemWarningsService.
type WarningSink interface {
	AddWarning(category, message, details, userID string) string
	ClearByUserID(category, userID string) bool
}

// WarningCategoryCalendarAuth mirrors services.WarningCategoryCalendarAuth
// without importing the services package.
const WarningCategoryCalendarAuth = "calendar_auth"

type cachedToken struct {
	token  string
	expiry time.Time
}

// TokenSource is a read-through per-user access-token cache with OAuth
// refresh. A double refresh under concurrency is benign, so there is no
// single-flight guard.
type TokenSource struct {
	store        CredentialStore
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *slog.Logger
	now          func() time.Time
	warnings     WarningSink // optional

	mu    sync.RWMutex
	cache map[string]cachedToken
}

// SetWarningSink attaches an operator warning sink. Call before first use.
func (t *TokenSource) SetWarningSink(sink WarningSink) {
	t.warnings = sink
}

// NewTokenSource creates a token source. tokenURL may be empty when refresh
// is handled elsewhere; expired tokens are then reported as missing.
func NewTokenSource(store CredentialStore, tokenURL, clientID, clientSecret string) *TokenSource {
	return &TokenSource{
		store:        store,
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		logger:       slog.Default().With("component", "token-source"),
		now:          time.Now,
		cache:        make(map[string]cachedToken),
	}
}

const tokenExpirySlack = time.Minute

// Token returns a valid access token for the user, refreshing if needed.
// Missing credentials and refresh failures both surface as ErrNoCredentials.
func (t *TokenSource) Token(ctx context.Context, userID string) (string, error) {
	t.mu.RLock()
	cached, ok := t.cache[userID]
	t.mu.RUnlock()
	if ok && cached.expiry.After(t.now().Add(tokenExpirySlack)) {
		return cached.token, nil
	}

	creds, err := t.store.Credentials(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	if creds.AccessToken == "" && creds.RefreshToken == "" {
		return "", ErrNoCredentials
	}

	if creds.AccessToken != "" && creds.Expiry.After(t.now().Add(tokenExpirySlack)) {
		t.put(userID, creds.AccessToken, creds.Expiry)
		return creds.AccessToken, nil
	}

	if creds.RefreshToken == "" || t.tokenURL == "" {
		return "", ErrNoCredentials
	}

	token, expiry, err := t.refresh(ctx, creds.RefreshToken)
	if err != nil {
		t.logger.Warn("Token refresh failed, treating user as uncredentialed",
			"user_id", userID, "error", err)
		if t.warnings != nil {
			t.warnings.AddWarning(WarningCategoryCalendarAuth,
				"캘린더 토큰 갱신 실패 (재로그인 필요)", err.Error(), userID)
		}
		return "", fmt.Errorf("%w: refresh failed", ErrNoCredentials)
	}
	if t.warnings != nil {
		t.warnings.ClearByUserID(WarningCategoryCalendarAuth, userID)
	}

	// Persist on a background context so a cancelled negotiation does not
	// lose the refreshed token.
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.store.SaveTokens(saveCtx, userID, token, expiry); err != nil {
		t.logger.Error("Failed to persist refreshed token", "user_id", userID, "error", err)
	}

	t.put(userID, token, expiry)
	return token, nil
}

// Invalidate drops the cached token for a user, forcing re-read on next use.
func (t *TokenSource) Invalidate(userID string) {
	t.mu.Lock()
	delete(t.cache, userID)
	t.mu.Unlock()
}

func (t *TokenSource) put(userID, token string, expiry time.Time) {
	t.mu.Lock()
	t.cache[userID] = cachedToken{token: token, expiry: expiry}
	t.mu.Unlock()
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (t *TokenSource) refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", t.clientID)
	form.Set("client_secret", t.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read refresh response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("token endpoint returned HTTP %d", resp.StatusCode)
	}

	var parsed refreshResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", time.Time{}, fmt.Errorf("decode refresh response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("token endpoint returned no access token")
	}

	expiresIn := parsed.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}
	return parsed.AccessToken, t.now().Add(time.Duration(expiresIn) * time.Second), nil
}
