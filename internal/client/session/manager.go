package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"

	"golang.org/x/oauth2"

	"github.com/neatdog/neatdog/internal/client/client"
	"github.com/neatdog/neatdog/internal/client/credstore"
	"github.com/neatdog/neatdog/internal/client/models"
	"github.com/neatdog/neatdog/internal/jwtx"
	"github.com/neatdog/neatdog/internal/logging"
)

// ErrNoRefreshToken is returned by Refresh when the store holds no
// refresh token.
var ErrNoRefreshToken = errors.New("no refresh token available")

// Session is an authenticated snapshot. It is never mutated after being
// published.
type Session struct {
	Token *oauth2.Token
	User  models.User
}

type Manager struct {
	api    *client.Client
	store  credstore.Store
	logger logging.Logger

	mu    sync.Mutex
	state atomic.Pointer[Session]
}

// New returns an unauthenticated Manager. api is rebound so that every
// call made through API() carries the session's access token.
func New(api *client.Client, store credstore.Store, logger logging.Logger) *Manager {
	m := &Manager{store: store, logger: logger}
	m.api = api.WithCredentials(m)
	return m
}

// API returns the transport bound to this session.
func (m *Manager) API() *client.Client { return m.api }

// Credential implements client.CredentialSource.
func (m *Manager) Credential() *oauth2.Token {
	if s := m.state.Load(); s != nil {
		return s.Token
	}
	return nil
}

// Current returns the active session, if any.
func (m *Manager) Current() (Session, bool) {
	if s := m.state.Load(); s != nil {
		return *s, true
	}
	return Session{}, false
}

func (m *Manager) IsAuthenticated() bool { return m.state.Load() != nil }

func (m *Manager) User() (models.User, bool) {
	s, ok := m.Current()
	return s.User, ok
}

func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var resp models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := m.api.Post(ctx, "/auth/login", req, &resp); err != nil {
		return models.User{}, err
	}
	return m.establish(ctx, "login", resp)
}

func (m *Manager) Signup(ctx context.Context, email, password, name string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var resp models.AuthResponse
	req := models.SignupRequest{Email: email, Password: password, Name: name}
	if err := m.api.Post(ctx, "/auth/signup", req, &resp); err != nil {
		return models.User{}, err
	}
	return m.establish(ctx, "signup", resp)
}

// Logout forgets the session and deletes the persisted tokens. Store
// failures are logged; the in-memory state is cleared regardless.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logout(ctx)
}

// Refresh exchanges the persisted refresh token for a new pair.
//
// A failed refresh does not log out: the current session, authenticated or
// not, and the stored tokens are left exactly as they were. Callers that
// want to end the session on failure call Logout themselves.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	refresh, ok, err := m.store.Load(ctx, credstore.KeyRefreshToken)
	if err != nil {
		return storeError("load", credstore.KeyRefreshToken, err)
	}
	if !ok || refresh == "" {
		return ErrNoRefreshToken
	}
	return m.refresh(ctx, refresh)
}

// Restore re-establishes a session from persisted tokens. Without a stored
// access token it does nothing. If the server rejects the stored token a
// single refresh is attempted; when that also fails the session is logged
// out and the failure returned.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	access, ok, err := m.store.Load(ctx, credstore.KeyAccessToken)
	if err != nil {
		return storeError("load", credstore.KeyAccessToken, err)
	}
	if !ok || access == "" {
		return nil
	}

	refresh, _, err := m.store.Load(ctx, credstore.KeyRefreshToken)
	if err != nil {
		return storeError("load", credstore.KeyRefreshToken, err)
	}

	tok := newToken(access, refresh, "bearer")

	var user models.User
	meErr := m.api.WithCredentials(client.StaticCredential{Token: tok}).Get(ctx, "/auth/me", &user)
	if meErr == nil {
		m.state.Store(&Session{Token: tok, User: user})
		m.logger.Info(ctx, "session restored", "user_id", user.ID)
		return nil
	}

	m.logger.Info(ctx, "stored session rejected, refreshing", "error", meErr)
	if refresh == "" {
		m.logout(ctx)
		return meErr
	}
	if err := m.refresh(ctx, refresh); err != nil {
		m.logout(ctx)
		return err
	}
	return nil
}

// EndIfUnauthorized logs the session out when err is an HTTP 401 for a
// request sent with the current access token, and returns err unchanged.
// A 401 for a token that has since been replaced leaves the new session alone.
func (m *Manager) EndIfUnauthorized(ctx context.Context, err error) error {
	if code, ok := client.StatusCode(err); !ok || code != http.StatusUnauthorized {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.state.Load()
	if cur == nil {
		return err
	}
	if !client.SentWith(err, cur.Token) {
		m.logger.Debug(ctx, "ignoring 401 for a replaced credential")
		return err
	}
	m.logger.Info(ctx, "session expired")
	m.logout(ctx)
	return err
}

func (m *Manager) refresh(ctx context.Context, refresh string) error {
	var resp models.AuthResponse
	req := models.RefreshTokenRequest{RefreshToken: refresh}
	if err := m.api.Post(ctx, "/auth/refresh", req, &resp); err != nil {
		return err
	}
	_, err := m.establish(ctx, "refresh", resp)
	return err
}

// establish persists resp's tokens and only then publishes the session.
func (m *Manager) establish(ctx context.Context, via string, resp models.AuthResponse) (models.User, error) {
	tok := newToken(resp.AccessToken, resp.RefreshToken, resp.TokenType)

	if err := m.persist(ctx, tok); err != nil {
		return models.User{}, err
	}

	m.state.Store(&Session{Token: tok, User: resp.User})
	m.logger.Info(ctx, "session established", "via", via, "user_id", resp.User.ID)
	return resp.User, nil
}

func (m *Manager) persist(ctx context.Context, tok *oauth2.Token) error {
	if bs, ok := m.store.(credstore.BatchSaver); ok {
		err := bs.SaveAll(ctx, map[string]string{
			credstore.KeyAccessToken:  tok.AccessToken,
			credstore.KeyRefreshToken: tok.RefreshToken,
		})
		if err != nil {
			return storeError("save", "", err)
		}
		return nil
	}

	if err := m.store.Save(ctx, credstore.KeyAccessToken, tok.AccessToken); err != nil {
		return storeError("save", credstore.KeyAccessToken, err)
	}
	if err := m.store.Save(ctx, credstore.KeyRefreshToken, tok.RefreshToken); err != nil {
		return storeError("save", credstore.KeyRefreshToken, err)
	}
	return nil
}

func (m *Manager) logout(ctx context.Context) {
	m.state.Store(nil)

	for _, key := range []string{credstore.KeyAccessToken, credstore.KeyRefreshToken} {
		if err := m.store.Delete(ctx, key); err != nil {
			m.logger.Warn(ctx, "failed to delete stored credential", "key", key, "error", err)
		}
	}
	m.logger.Info(ctx, "signed out")
}

func newToken(access, refresh, tokenType string) *oauth2.Token {
	tok := &oauth2.Token{AccessToken: access, RefreshToken: refresh, TokenType: tokenType}
	if exp, ok := jwtx.ExpiresAt(access); ok {
		tok.Expiry = exp
	}
	return tok
}

// storeError makes sure store failures surface as *credstore.StoreError.
func storeError(op, key string, err error) error {
	var se *credstore.StoreError
	if errors.As(err, &se) {
		return err
	}
	return &credstore.StoreError{Op: op, Key: key, Err: err}
}
