package session

import (
	"context"
	"sync"
	"time"
)

// ExpiryWatcher invalidates the session once the token's expiry
// passes. The watcher is idle until Start is called.
type ExpiryWatcher struct {
	manager *Manager

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiryWatcher creates a watcher over manager.
func NewExpiryWatcher(manager *Manager) *ExpiryWatcher {
	return &ExpiryWatcher{manager: manager}
}

// Start stops any previously running watcher, then launches a
// background goroutine that checks the token expiry every interval.
// If interval is zero or negative it defaults to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (w *ExpiryWatcher) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	w.Stop()

	w.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				w.check()
			}
		}
	}()
}

func (w *ExpiryWatcher) check() {
	claims, ok := w.manager.SessionClaims()
	if !ok {
		return
	}
	if claims.Expired(w.manager.now()) {
		w.manager.Invalidate()
	}
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the watcher is not running.
func (w *ExpiryWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
