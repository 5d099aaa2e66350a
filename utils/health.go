package utils

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// HealthStatus represents current status of external dependencies.
type HealthStatus struct {
	GoogleAuth bool      `json:"googleAuth"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor periodically verifies the Google token source still
// yields a valid token and updates in-memory state.
func StartHealthMonitor(ctx context.Context, ts oauth2.TokenSource) {
	check := func() {
		ok := false
		if ts != nil {
			tok, err := ts.Token()
			ok = err == nil && tok.Valid()
		}
		mu.Lock()
		currentHealth = HealthStatus{GoogleAuth: ok, CheckedAt: time.Now()}
		mu.Unlock()
	}
	check()

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				check()
			}
		}
	}()
}
