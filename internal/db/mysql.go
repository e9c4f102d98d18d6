package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. The handle is created
// once at process start and shared across all requests; a failure here
// is fatal to startup.
func NewMySQL(dsn string) (*gorm.DB, error) {
	// TranslateError surfaces unique-index violations as
	// gorm.ErrDuplicatedKey instead of a driver-specific error.
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return gormDB, nil
}
