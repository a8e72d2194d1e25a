// ABOUTME: Tests for store lifecycle, identity codes, and filter state
// ABOUTME: Shared test helpers for the rest of the package live here

package store

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stephenolajire/Ronkz-Couture/config"
	"github.com/stephenolajire/Ronkz-Couture/models"
	"github.com/stephenolajire/Ronkz-Couture/storage"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:         baseURL,
		HTTPTimeout:     5 * time.Second,
		MaxRetries:      2,
		RetryBaseDelay:  time.Millisecond,
		CategoriesStale: 30 * time.Minute,
		CategoriesGC:    time.Hour,
		ProductsStale:   5 * time.Minute,
		ProductsGC:      10 * time.Minute,
		CartStale:       5 * time.Minute,
		CartGC:          10 * time.Minute,
	}
}

// newTestStore builds a store against an in-memory storage and the given
// test server, and tears the cache sweeper down with the test.
func newTestStore(t *testing.T, server *httptest.Server) *Store {
	t.Helper()
	s := newStore(testConfig(server.URL), storage.NewMemory())
	t.Cleanup(s.cache.Close)
	return s
}

// signedToken mints an HS256 token whose exp claim is now+ttl. The
// session layer never verifies signatures, only reads expiry.
func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{"exp": time.Now().Add(ttl).Unix(), "user_id": 7}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestInit_SecondCallFails(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg := testConfig("http://localhost:1")
	cfg.StatePath = filepath.Join(t.TempDir(), "state.json")

	if _, err := Init(cfg); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if _, err := Init(cfg); err != ErrAlreadyInitialized {
		t.Errorf("second Init error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestCurrent_BeforeInitFails(t *testing.T) {
	Reset()

	if _, err := Current(); err != ErrNotInitialized {
		t.Errorf("Current error = %v, want ErrNotInitialized", err)
	}
}

func TestCurrent_ReturnsInitializedStore(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg := testConfig("http://localhost:1")
	cfg.StatePath = filepath.Join(t.TempDir(), "state.json")

	want, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	got, err := Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if got != want {
		t.Error("Current returned a different store than Init")
	}
}

func TestCartCode_StableAcrossCalls(t *testing.T) {
	s := newStore(testConfig("http://localhost:1"), storage.NewMemory())
	defer s.cache.Close()

	first, err := s.CartCode()
	if err != nil {
		t.Fatalf("CartCode failed: %v", err)
	}
	if !strings.HasPrefix(first, "cart_") {
		t.Errorf("cart code %q missing cart_ prefix", first)
	}

	second, err := s.CartCode()
	if err != nil {
		t.Fatalf("CartCode failed: %v", err)
	}
	if second != first {
		t.Errorf("cart code changed between calls: %q then %q", first, second)
	}
}

func TestCustomIdentity_IndependentOfCartCode(t *testing.T) {
	s := newStore(testConfig("http://localhost:1"), storage.NewMemory())
	defer s.cache.Close()

	cart, _ := s.CartCode()
	custom, err := s.CustomIdentity()
	if err != nil {
		t.Fatalf("CustomIdentity failed: %v", err)
	}
	if !strings.HasPrefix(custom, "custom_") {
		t.Errorf("custom identity %q missing custom_ prefix", custom)
	}
	if custom == cart {
		t.Error("custom identity collided with cart code")
	}
}

func TestIdentities_SurviveLogout(t *testing.T) {
	s := newStore(testConfig("http://localhost:1"), storage.NewMemory())
	defer s.cache.Close()

	cart, _ := s.CartCode()
	custom, _ := s.CustomIdentity()

	s.Logout()

	if got, _ := s.CartCode(); got != cart {
		t.Errorf("cart code after logout = %q, want %q", got, cart)
	}
	if got, _ := s.CustomIdentity(); got != custom {
		t.Errorf("custom identity after logout = %q, want %q", got, custom)
	}
}

func TestUpdateFilters_PartialMerge(t *testing.T) {
	s := newStore(testConfig("http://localhost:1"), storage.NewMemory())
	defer s.cache.Close()

	s.UpdateFilters(func(f *models.ProductFilter) { f.Category = "gowns" })
	s.UpdateFilters(func(f *models.ProductFilter) { f.Search = "silk" })

	got := s.Filters()
	if got.Category != "gowns" || got.Search != "silk" {
		t.Errorf("filters = %+v, want category gowns and search silk", got)
	}

	s.ClearFilters()
	if !s.Filters().IsZero() {
		t.Errorf("filters after clear = %+v, want zero", s.Filters())
	}
}
