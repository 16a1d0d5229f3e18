package db

import (
	"vouch/internal/auth"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

// AutoMigrate creates the users table. Note: users.email deliberately has
// no unique constraint; registration enforces uniqueness check-then-create.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&auth.User{})
}
