package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ASTRELLECT/SynVotra/pkg/backend"
	"github.com/ASTRELLECT/SynVotra/pkg/logger"
)

type (
	// Navigator performs a replace-style navigation: the previous
	// route must not be reachable by going back.
	Navigator interface {
		Replace(path string)
	}

	NavigatorFunc func(path string)

	iSessionStore interface {
		Save(token string, role Role, userID string, ttl time.Duration) error
		Read() (*Session, error)
		IsValid() bool
		Clear() error
	}

	iAuthClient interface {
		Authenticate(ctx context.Context, email, password string) (*backend.TokenResponse, error)
		SyncCookie(token string)
	}

	Manager struct {
		store     iSessionStore
		auth      iAuthClient
		nav       Navigator
		entryPath string
		tokenTTL  time.Duration
	}
)

func (f NavigatorFunc) Replace(path string) { f(path) }

func NewManager(store iSessionStore, auth iAuthClient, nav Navigator, entryPath string, tokenTTL time.Duration) *Manager {
	return &Manager{
		store:     store,
		auth:      auth,
		nav:       nav,
		entryPath: entryPath,
		tokenTTL:  tokenTTL,
	}
}

// LandingPath maps a role to its authenticated home route. Unknown
// roles land on the employee dashboard.
func LandingPath(role Role) string {
	switch role {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleManager:
		return "/manager/dashboard"
	default:
		return "/dashboard"
	}
}

// CheckAccess gates a route: an invalid session is sent to the entry
// path, a valid session opening the entry path is sent to its landing
// page. Returns the route the caller ends up on.
func (m *Manager) CheckAccess(currentPath string) string {
	if !m.store.IsValid() {
		if currentPath != m.entryPath {
			m.nav.Replace(m.entryPath)
			return m.entryPath
		}
		return currentPath
	}

	if currentPath == m.entryPath {
		role := RoleEmployee
		if s, err := m.store.Read(); err == nil {
			role = s.Role
		}
		landing := LandingPath(role)
		m.nav.Replace(landing)
		return landing
	}
	return currentPath
}

// Login exchanges credentials for a session, persists it and redirects
// to the role's landing page. A failed login leaves the store untouched
// and surfaces the backend's message as-is.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		logger.Log(ctx).Errorf("session: login failed for %s, %v", email, err)
		return nil, err
	}

	role := ParseRole(resp.Role)
	ttl := m.tokenTTL
	if exp, ok := tokenExpiry(resp.AccessToken); ok {
		// Never outlive the token itself.
		if remaining := time.Until(exp); ttl == 0 || remaining < ttl {
			ttl = remaining
		}
	}

	if err := m.store.Save(resp.AccessToken, role, resp.UserID, ttl); err != nil {
		return nil, err
	}
	m.auth.SyncCookie(resp.AccessToken)
	m.nav.Replace(LandingPath(role))

	s, err := m.store.Read()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Logout destroys the session and returns to the entry path. Safe to
// call with no session present.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(); err != nil {
		logger.Log(ctx).Errorf("session: failed clearing store on logout, %v", err)
		return err
	}
	m.auth.SyncCookie(``)
	m.nav.Replace(m.entryPath)
	return nil
}

// HandleUnauthorized is wired to the backend client's 401 hook: a
// rejected token and a passed expiry normalize to the same outcome.
func (m *Manager) HandleUnauthorized() {
	ctx := context.Background()
	logger.Log(ctx).Info("session: backend rejected the token, ending session")
	if err := m.Logout(ctx); err != nil {
		logger.Log(ctx).Errorf("session: failed logging out after 401, %v", err)
	}
}

// tokenExpiry extracts the exp claim when the access token is a JWT.
// The signature is not verified; the client holds no key and only uses
// the claim to avoid presenting a token the server will refuse anyway.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
