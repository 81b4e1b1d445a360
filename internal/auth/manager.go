package auth

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL bounds how long a cached token is served. The provider's
// expires_in shortens it when smaller, so a token is never served past its
// real lifetime.
const DefaultTTL = time.Hour

// Login is the slice of the identity provider the cache needs.
type Login interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
}

// Manager caches the bot service account's access token and user id,
// refreshing through a password login when the token is missing or expired.
// Refresh is collapsed through a singleflight group so concurrent expiry
// performs a single login.
type Manager struct {
	login    Login
	email    string
	password string
	ttl      time.Duration
	now      func() time.Time

	sf singleflight.Group

	mu        sync.Mutex
	token     string
	userID    string
	expiresAt time.Time
}

func NewManager(login Login, email, password string) *Manager {
	return &Manager{
		login:    login,
		email:    email,
		password: password,
		ttl:      DefaultTTL,
		now:      time.Now,
	}
}

// Token returns a valid bearer token, logging in if needed.
func (m *Manager) Token(ctx context.Context) (string, error) {
	if tok, ok := m.cached(); ok {
		return tok, nil
	}
	if err := m.refresh(ctx); err != nil {
		return "", err
	}
	tok, _ := m.cached()
	return tok, nil
}

// UserID forces a valid token first, then returns the bot identity.
func (m *Manager) UserID(ctx context.Context) (string, error) {
	if _, err := m.Token(ctx); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userID, nil
}

func (m *Manager) cached() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token != "" && m.now().Before(m.expiresAt) {
		return m.token, true
	}
	return "", false
}

func (m *Manager) refresh(ctx context.Context) error {
	_, err, _ := m.sf.Do("refresh", func() (any, error) {
		// A concurrent flight may have refreshed while we waited for the lock.
		if _, ok := m.cached(); ok {
			return nil, nil
		}

		sess, err := m.login.SignInWithPassword(ctx, m.email, m.password)
		if err != nil {
			return nil, fmt.Errorf("bot login failed: %w", err)
		}

		ttl := m.ttl
		if sess.ExpiresIn > 0 {
			if d := time.Duration(sess.ExpiresIn) * time.Second; d < ttl {
				ttl = d
			}
		}

		m.mu.Lock()
		m.token = sess.AccessToken
		m.userID = sess.UserID
		m.expiresAt = m.now().Add(ttl)
		m.mu.Unlock()

		log.Printf("bot token refreshed, valid for %s", ttl)
		return nil, nil
	})
	return err
}
