package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(newTestStore(t))
}

func TestRegisterAndDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "pw1", u.HashedPassword)

	_, err = svc.Register(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	ok, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Login(ctx, "a@x.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Login(ctx, "nobody@x.com", "pw1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	token, err := svc.CreateSession(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	u, err := svc.UserBySession(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, reg.ID, u.ID)

	// new login replaces the previous session
	token2, err := svc.CreateSession(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, token, token2)

	stale, err := svc.UserBySession(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, stale)

	require.NoError(t, svc.DestroySession(ctx, reg.ID))

	gone, err := svc.UserBySession(ctx, token2)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCreateSessionUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.CreateSession(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestDestroySessionNoops(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.DestroySession(ctx, 0))
	assert.NoError(t, svc.DestroySession(ctx, 12345))
}

func TestPasswordResetFlow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RequestPasswordReset(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Register(ctx, "a@x.com", "old-pw")
	require.NoError(t, err)

	token, err := svc.RequestPasswordReset(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.UpdatePassword(ctx, token, "new-pw"))

	ok, err := svc.Login(ctx, "a@x.com", "new-pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Login(ctx, "a@x.com", "old-pw")
	require.NoError(t, err)
	assert.False(t, ok)

	// token is single-use
	err = svc.UpdatePassword(ctx, token, "another-pw")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUpdatePasswordNoops(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	token, err := svc.RequestPasswordReset(ctx, "a@x.com")
	require.NoError(t, err)

	assert.NoError(t, svc.UpdatePassword(ctx, "", "x"))
	assert.NoError(t, svc.UpdatePassword(ctx, token, ""))

	// neither call consumed the token or touched the password
	ok, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, svc.UpdatePassword(ctx, token, "new-pw"))
}

func TestUpdatePasswordUnknownToken(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdatePassword(context.Background(), "no-such-token", "pw")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// stubStore lets tests observe store traffic and inject failures.
type stubStore struct {
	findErr   error
	findCalls int
	created   int
}

func (s *stubStore) Create(ctx context.Context, email, hashedPassword string) (*User, error) {
	s.created++
	return &User{ID: 1, Email: email, HashedPassword: hashedPassword}, nil
}

func (s *stubStore) FindBy(ctx context.Context, c Criteria) (*User, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	return nil, ErrNotFound
}

func (s *stubStore) UpdateBy(ctx context.Context, id uint, changes map[string]any) error {
	return nil
}

func TestUserBySessionEmptyIDSkipsStore(t *testing.T) {
	stub := &stubStore{}
	svc := NewService(stub)

	u, err := svc.UserBySession(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Zero(t, stub.findCalls)
}

func TestRegisterPropagatesStoreFailures(t *testing.T) {
	boom := errors.New("connection reset")
	stub := &stubStore{findErr: boom}
	svc := NewService(stub)

	// a transient store failure must not be read as "email available"
	_, err := svc.Register(context.Background(), "a@x.com", "pw1")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, stub.created)
}

func TestLoginPropagatesStoreFailures(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewService(&stubStore{findErr: boom})

	ok, err := svc.Login(context.Background(), "a@x.com", "pw1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}
