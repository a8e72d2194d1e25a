// ABOUTME: Client session management over durable storage
// ABOUTME: Authentication state is derived from the access token's expiry claim

package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stephenolajire/Ronkz-Couture/models"
	"github.com/stephenolajire/Ronkz-Couture/storage"
)

// session tracks authentication state for one Store. The token lives in
// durable storage; isAuthenticated is a cached derivation refreshed by
// CheckAuth, never polled.
type session struct {
	storage storage.Storage

	mu            sync.Mutex
	authenticated bool
}

// accessToken returns the stored token, or "" when anonymous.
func (s *session) accessToken() string {
	token, _ := s.storage.Get(storage.KeyAccessToken)
	return token
}

// checkAuth re-derives authentication from the stored token's exp claim.
// The token is decoded without signature verification: the client only
// needs the expiry, the server enforces authenticity.
func (s *session) checkAuth() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.accessToken()
	if token == "" {
		s.authenticated = false
		return false
	}

	exp, err := tokenExpiry(token)
	if err != nil {
		slog.Warn("Stored access token is not decodable", "error", err)
		s.authenticated = false
		return false
	}
	s.authenticated = time.Now().Before(exp)
	return s.authenticated
}

func (s *session) isAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// save persists a freshly issued session and re-derives auth state.
func (s *session) save(access, refresh string, user *models.User) error {
	if err := s.storage.Set(storage.KeyAccessToken, access); err != nil {
		return err
	}
	if err := s.storage.Set(storage.KeyRefreshToken, refresh); err != nil {
		return err
	}
	if user != nil {
		encoded, err := json.Marshal(user)
		if err != nil {
			return err
		}
		if err := s.storage.Set(storage.KeyUser, string(encoded)); err != nil {
			return err
		}
	}
	s.checkAuth()
	return nil
}

// clear removes all session keys. Identity codes survive a logout: the
// anonymous cart belongs to the browser profile, not the account.
func (s *session) clear() {
	for _, key := range []string{storage.KeyAccessToken, storage.KeyRefreshToken, storage.KeyUser} {
		if err := s.storage.Delete(key); err != nil {
			slog.Warn("Failed to clear session key", "key", key, "error", err)
		}
	}
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
}

// user returns the stored profile, if any.
func (s *session) user() *models.User {
	raw, ok := s.storage.Get(storage.KeyUser)
	if !ok || raw == "" {
		return nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}

// tokenExpiry extracts the exp claim from a JWT without verifying it.
func tokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, jwt.ErrTokenRequiredClaimMissing
	}
	return exp.Time, nil
}
