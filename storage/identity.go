// ABOUTME: Client-generated identity codes for anonymous carts and custom orders
// ABOUTME: Created once per client and never regenerated

package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ensureMu serializes first-time identity generation so concurrent
// callers cannot race two fresh codes into the same key.
var ensureMu sync.Mutex

// EnsureIdentity returns the identity code stored under key, generating
// and persisting one on first use. The code has the shape
// prefix_<unix-ms>_<8 hex chars> and, once set, is never replaced.
func EnsureIdentity(s Storage, key, prefix string) (string, error) {
	ensureMu.Lock()
	defer ensureMu.Unlock()

	if code, ok := s.Get(key); ok && code != "" {
		return code, nil
	}

	code := newIdentityCode(prefix)
	if err := s.Set(key, code); err != nil {
		return "", fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return code, nil
}

func newIdentityCode(prefix string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), random)
}
