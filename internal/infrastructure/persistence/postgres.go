package persistence

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"travelbooking-service/internal/interface/repository"
)

// NewPostgresDB opens the PostgreSQL connection and migrates the schema.
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey, which the repositories map into the domain error
// taxonomy; the indexes themselves remain the authority for natural-key
// uniqueness under concurrent writers.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the four tables along with their unique
// indexes and the cascading customer foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&repository.Customers{},
		&repository.Flights{},
		&repository.Bookings{},
		&repository.TravelAgentBookings{},
	)
}
