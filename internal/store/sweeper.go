package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunSweeper evicts idle sessions every interval until ctx is cancelled.
func RunSweeper(ctx context.Context, st Store, interval, ttl time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Sweep(now, ttl); n > 0 {
				log.Debug().Int("evicted", n).Msg("swept idle sessions")
			}
		}
	}
}
