package auth

import "time"

// User is the credential record. SessionID and ResetToken are pointers so
// that "no active session" / "no outstanding reset" persist as NULL.
type User struct {
	ID             uint      `gorm:"primaryKey"`
	Email          string    `gorm:"index;not null"`
	HashedPassword string    `gorm:"not null"`
	SessionID      *string   `gorm:"index"`
	ResetToken     *string   `gorm:"index"`
	CreatedAt      time.Time `gorm:"not null"`
}
