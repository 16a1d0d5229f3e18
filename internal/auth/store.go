package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Criteria is a typed lookup filter; nil fields are ignored. At least one
// field must be set.
type Criteria struct {
	ID         *uint
	Email      *string
	SessionID  *string
	ResetToken *string
}

func (c Criteria) empty() bool {
	return c.ID == nil && c.Email == nil && c.SessionID == nil && c.ResetToken == nil
}

// updatableColumns is the set of attributes UpdateBy accepts. Anything else
// is caller misuse and gets ErrUnknownAttribute.
var updatableColumns = map[string]struct{}{
	"email":           {},
	"hashed_password": {},
	"session_id":      {},
	"reset_token":     {},
}

// CredentialStore persists user records. It owns no authentication rules.
type CredentialStore interface {
	Create(ctx context.Context, email, hashedPassword string) (*User, error)
	FindBy(ctx context.Context, c Criteria) (*User, error)
	UpdateBy(ctx context.Context, id uint, changes map[string]any) error
}

// Store is the gorm-backed CredentialStore. The *gorm.DB is constructed and
// closed by the caller; Store never opens connections of its own.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Create inserts a new record and returns it with the assigned id. Email
// uniqueness is not checked here; that is the caller's responsibility.
func (s *Store) Create(ctx context.Context, email, hashedPassword string) (*User, error) {
	u := User{Email: email, HashedPassword: hashedPassword}
	if err := s.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindBy returns the first record matching all set criteria fields.
func (s *Store) FindBy(ctx context.Context, c Criteria) (*User, error) {
	if c.empty() {
		return nil, ErrInvalidQuery
	}

	q := s.DB.WithContext(ctx).Model(&User{})
	if c.ID != nil {
		q = q.Where("id = ?", *c.ID)
	}
	if c.Email != nil {
		q = q.Where("email = ?", *c.Email)
	}
	if c.SessionID != nil {
		q = q.Where("session_id = ?", *c.SessionID)
	}
	if c.ResetToken != nil {
		q = q.Where("reset_token = ?", *c.ResetToken)
	}

	var u User
	if err := q.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateBy applies all changes to the record with the given id in a single
// committed update. A nil value clears the column.
func (s *Store) UpdateBy(ctx context.Context, id uint, changes map[string]any) error {
	for col := range changes {
		if _, ok := updatableColumns[col]; !ok {
			return ErrUnknownAttribute
		}
	}
	if len(changes) == 0 {
		return nil
	}

	if _, err := s.FindBy(ctx, Criteria{ID: &id}); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(changes).Error
}
