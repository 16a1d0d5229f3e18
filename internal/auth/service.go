package auth

import (
	"context"
	"errors"
	"fmt"
)

// Service implements registration, login validation, session lifecycle and
// the password-reset flow on top of a CredentialStore.
type Service struct {
	store  CredentialStore
	hasher *Hasher
}

func NewService(store CredentialStore) *Service {
	return &Service{store: store, hasher: NewHasher()}
}

// Register creates a user unless the email is already taken. Only a clean
// "no such user" from the store means the email is available; any other
// store failure aborts the registration.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	_, err := s.store.FindBy(ctx, Criteria{Email: &email})
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case errors.Is(err, ErrNotFound):
		// email available
	default:
		return nil, fmt.Errorf("register lookup: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return s.store.Create(ctx, email, hash)
}

// Login reports whether the credentials are valid. An unknown email is
// false, not an error.
func (s *Service) Login(ctx context.Context, email, password string) (bool, error) {
	u, err := s.store.FindBy(ctx, Criteria{Email: &email})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("login lookup: %w", err)
	}
	return s.hasher.Verify(password, u.HashedPassword), nil
}

// CreateSession issues a new session id for the user and persists it,
// replacing any previous session. An unknown email yields "".
func (s *Service) CreateSession(ctx context.Context, email string) (string, error) {
	u, err := s.store.FindBy(ctx, Criteria{Email: &email})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("session lookup: %w", err)
	}

	token := NewToken()
	if err := s.store.UpdateBy(ctx, u.ID, map[string]any{"session_id": token}); err != nil {
		return "", err
	}
	return token, nil
}

// UserBySession resolves a session id to its user. An empty id never
// consults the store.
func (s *Service) UserBySession(ctx context.Context, sessionID string) (*User, error) {
	if sessionID == "" {
		return nil, nil
	}
	u, err := s.store.FindBy(ctx, Criteria{SessionID: &sessionID})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// DestroySession clears the user's session id. Unknown or zero ids are
// no-ops.
func (s *Service) DestroySession(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	u, err := s.store.FindBy(ctx, Criteria{ID: &userID})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return s.store.UpdateBy(ctx, u.ID, map[string]any{"session_id": nil})
}

// RequestPasswordReset issues and persists a single-use reset token.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	u, err := s.store.FindBy(ctx, Criteria{Email: &email})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("reset lookup: %w", err)
	}

	token := NewToken()
	if err := s.store.UpdateBy(ctx, u.ID, map[string]any{"reset_token": token}); err != nil {
		return "", err
	}
	return token, nil
}

// UpdatePassword consumes a reset token: the new hash is stored and the
// token cleared in the same update, so the token cannot be replayed.
func (s *Service) UpdatePassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return nil
	}

	u, err := s.store.FindBy(ctx, Criteria{ResetToken: &resetToken})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("reset token lookup: %w", err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdateBy(ctx, u.ID, map[string]any{
		"hashed_password": hash,
		"reset_token":     nil,
	})
}
