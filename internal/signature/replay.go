package signature

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// ReplayGuard remembers accepted signatures for a fixed window.
type ReplayGuard struct {
	seen *cache.Cache
}

// NewReplayGuard creates a guard that forgets signatures after window.
func NewReplayGuard(window time.Duration) *ReplayGuard {
	return &ReplayGuard{
		seen: cache.New(window, 2*window),
	}
}

// Observe records signatureHex and returns ErrReplay if it was already recorded.
func (r *ReplayGuard) Observe(signatureHex string) error {
	// Add fails when the key is present, which makes check-and-set atomic.
	if err := r.seen.Add(strings.ToLower(signatureHex), struct{}{}, cache.DefaultExpiration); err != nil {
		return ErrReplay
	}
	return nil
}
