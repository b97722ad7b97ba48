package main

import (
	"context"
	"time"

	"github.com/ericogr/ringside/internal/game"
	"github.com/ericogr/ringside/internal/logging"
	"github.com/ericogr/ringside/internal/service"
)

const idleScanInterval = time.Minute

// startIdleScanner periodically discards matches nobody has touched for
// longer than ttl. It stops when ctx is done.
func startIdleScanner(ctx context.Context, repo interface {
	FindIdleMatches(time.Time) ([]game.Match, error)
	DeleteMatch(string) error
}, pub service.Publisher, ttl time.Duration) {
	interval := idleScanInterval
	if ttl < interval {
		interval = ttl
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := service.ExpireIdleMatches(repo, pub, ttl); err != nil {
					logging.Error("idle scanner failed", err, nil)
				}
			}
		}
	}()
}
