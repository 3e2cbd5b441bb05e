package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/internal/mock"
	"github.com/oelbekkali/colisops/internal/store"
	"github.com/oelbekkali/colisops/models"
)

func newTestManager(t *testing.T, ctrl *gomock.Controller) (*Manager, *mock.MockBackendAdapter, store.CredentialStore) {
	t.Helper()

	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	credentials, err := store.NewFileCredentialStore(":memory:")
	require.NoError(t, err)

	m := NewManager(mockAdapter, credentials, logger.Nop())

	return m, mockAdapter, credentials
}

func operatorUser(email string) models.User {
	return models.User{
		Email: email,
		Role:  models.RoleEntity{ID: 2, Name: models.RoleOperator},
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestManager_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, credentials := newTestManager(t, ctrl)
	ctx := context.Background()

	token := mintToken(t, "op@colisops.test", models.RoleOperator, time.Now().Add(time.Hour))
	profile := operatorUser("op@colisops.test")

	mockAdapter.EXPECT().Login(ctx, "op@colisops.test", "secret").Return(token, nil)
	mockAdapter.EXPECT().SetToken(token)
	mockAdapter.EXPECT().GetUser(ctx, "op@colisops.test").Return(profile, nil)

	user, err := m.Login(ctx, "op@colisops.test", "secret")
	require.NoError(t, err)

	assert.Equal(t, profile, user)
	assert.Equal(t, StateAuthenticated, m.State())

	current, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, profile.Email, current.Email)

	// token and profile persisted together
	assert.Equal(t, token, credentials.Token())
	saved, ok := credentials.ReadUser()
	require.True(t, ok)
	assert.Equal(t, profile.Email, saved.Email)
}

func TestManager_Login_RoleMismatchRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, credentials := newTestManager(t, ctrl)
	ctx := context.Background()

	// token claims ADMIN, profile says OPERATEUR
	token := mintToken(t, "op@colisops.test", models.RoleAdmin, time.Now().Add(time.Hour))

	mockAdapter.EXPECT().Login(ctx, "op@colisops.test", "secret").Return(token, nil)
	mockAdapter.EXPECT().SetToken(token)
	mockAdapter.EXPECT().GetUser(ctx, "op@colisops.test").Return(operatorUser("op@colisops.test"), nil)
	mockAdapter.EXPECT().ClearToken()

	_, err := m.Login(ctx, "op@colisops.test", "secret")
	assert.ErrorIs(t, err, ErrRoleMismatch)

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, credentials.Token(), "nothing may be persisted on a mismatch")
	_, ok := credentials.ReadUser()
	assert.False(t, ok)
}

func TestManager_Login_BackendRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, credentials := newTestManager(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "op@colisops.test", "wrong").Return("", assert.AnError)
	mockAdapter.EXPECT().ClearToken()

	_, err := m.Login(ctx, "op@colisops.test", "wrong")
	assert.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, credentials.Token())
}

func TestManager_Login_UndecodableToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, _ := newTestManager(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "op@colisops.test", "secret").Return("garbage", nil)
	mockAdapter.EXPECT().ClearToken()

	_, err := m.Login(ctx, "op@colisops.test", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, StateUnauthenticated, m.State())
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func TestManager_Bootstrap_RestoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, credentials := newTestManager(t, ctrl)
	ctx := context.Background()

	token := mintToken(t, "op@colisops.test", models.RoleOperator, time.Now().Add(time.Hour))
	require.NoError(t, credentials.SaveToken(token))

	mockAdapter.EXPECT().SetToken(token)
	mockAdapter.EXPECT().GetUser(ctx, "op@colisops.test").Return(operatorUser("op@colisops.test"), nil)

	require.NoError(t, m.Bootstrap(ctx))

	assert.Equal(t, StateAuthenticated, m.State())
	current, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "op@colisops.test", current.Email)
}

func TestManager_Bootstrap_NoSavedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestManager(t, ctrl)

	require.NoError(t, m.Bootstrap(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestManager_Bootstrap_ExpiredTokenClearsWithoutFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, credentials := newTestManager(t, ctrl)

	token := mintToken(t, "op@colisops.test", models.RoleOperator, time.Now().Add(-time.Hour))
	require.NoError(t, credentials.SaveToken(token))

	// no GetUser expected: an expired token never reaches the backend
	mockAdapter.EXPECT().ClearToken()

	require.NoError(t, m.Bootstrap(context.Background()))

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, credentials.Token())
}

func TestManager_Bootstrap_ProfileFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, credentials := newTestManager(t, ctrl)
	ctx := context.Background()

	token := mintToken(t, "op@colisops.test", models.RoleOperator, time.Now().Add(time.Hour))
	require.NoError(t, credentials.SaveToken(token))

	mockAdapter.EXPECT().SetToken(token)
	mockAdapter.EXPECT().GetUser(ctx, "op@colisops.test").Return(models.User{}, assert.AnError)
	mockAdapter.EXPECT().ClearToken()

	err := m.Bootstrap(ctx)
	assert.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, credentials.Token())
}

// ── Logout / Invalidate ──────────────────────────────────────────────────────

func TestManager_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, credentials := newTestManager(t, ctrl)
	ctx := context.Background()

	token := mintToken(t, "op@colisops.test", models.RoleOperator, time.Now().Add(time.Hour))
	mockAdapter.EXPECT().Login(ctx, "op@colisops.test", "secret").Return(token, nil)
	mockAdapter.EXPECT().SetToken(token)
	mockAdapter.EXPECT().GetUser(ctx, "op@colisops.test").Return(operatorUser("op@colisops.test"), nil)
	mockAdapter.EXPECT().ClearToken().Times(2)

	_, err := m.Login(ctx, "op@colisops.test", "secret")
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx))
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, credentials.Token())
	_, ok := m.CurrentUser()
	assert.False(t, ok)

	// a second logout is a no-op, not an error
	require.NoError(t, m.Logout(ctx))
}

func TestManager_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, credentials := newTestManager(t, ctrl)
	ctx := context.Background()

	token := mintToken(t, "op@colisops.test", models.RoleOperator, time.Now().Add(time.Hour))
	mockAdapter.EXPECT().Login(ctx, "op@colisops.test", "secret").Return(token, nil)
	mockAdapter.EXPECT().SetToken(token)
	mockAdapter.EXPECT().GetUser(ctx, "op@colisops.test").Return(operatorUser("op@colisops.test"), nil)
	mockAdapter.EXPECT().ClearToken()

	_, err := m.Login(ctx, "op@colisops.test", "secret")
	require.NoError(t, err)

	m.Invalidate()
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, credentials.Token())

	// invalidating an inactive session does nothing
	m.Invalidate()
}
