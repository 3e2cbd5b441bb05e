package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/models"
)

func TestExpiryWatcher_InvalidatesExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, _ := newTestManager(t, ctrl)
	ctx := context.Background()

	// clock under test control
	var clockMu sync.Mutex
	current := time.Now()
	m.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return current
	}

	token := mintToken(t, "op@colisops.test", models.RoleOperator, current.Add(time.Minute))
	mockAdapter.EXPECT().Login(ctx, "op@colisops.test", "secret").Return(token, nil)
	mockAdapter.EXPECT().SetToken(token)
	mockAdapter.EXPECT().GetUser(ctx, "op@colisops.test").Return(operatorUser("op@colisops.test"), nil)
	mockAdapter.EXPECT().ClearToken()

	_, err := m.Login(ctx, "op@colisops.test", "secret")
	require.NoError(t, err)

	w := NewExpiryWatcher(m)
	w.Start(ctx, 5*time.Millisecond)
	defer w.Stop()

	// still valid: the watcher must leave the session alone
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, StateAuthenticated, m.State())

	clockMu.Lock()
	current = current.Add(2 * time.Minute)
	clockMu.Unlock()

	assert.Eventually(t, func() bool {
		return m.State() == StateUnauthenticated
	}, time.Second, 5*time.Millisecond)
}

func TestExpiryWatcher_StopIsSafeWhenNotRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestManager(t, ctrl)
	w := NewExpiryWatcher(m)

	w.Stop()
	w.Stop()
}

func TestExpiryWatcher_CtxCancelStopsGoroutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestManager(t, ctrl)
	w := NewExpiryWatcher(m)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx, time.Millisecond)
	cancel()

	// Stop must not hang after the context already ended the goroutine
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}
