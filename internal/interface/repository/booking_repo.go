package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
)

// GormBookingRepository implements the BookingRepository interface
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GORM booking repository
func NewGormBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &GormBookingRepository{
		db: db,
	}
}

// Bookings GORM model for database mapping. The composite unique index on
// (flight_id, order_date) is the authority for natural-key uniqueness; the
// customer foreign key cascades deletes from the owning customer.
type Bookings struct {
	ID         uint       `gorm:"primaryKey"`
	FlightID   uint       `gorm:"column:flight_id;not null;uniqueIndex:idx_bookings_flight_order"`
	CustomerID uint       `gorm:"column:customer_id;not null;index"`
	OrderDate  time.Time  `gorm:"column:order_date;type:date;not null;uniqueIndex:idx_bookings_flight_order"`
	Customer   *Customers `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default table name
func (Bookings) TableName() string {
	return "bookings"
}

func toBookingEntity(m *Bookings) *entity.Booking {
	b := &entity.Booking{
		ID:         m.ID,
		FlightID:   m.FlightID,
		CustomerID: m.CustomerID,
		OrderDate:  m.OrderDate,
	}
	if m.Customer != nil {
		b.Customer = toCustomerEntity(m.Customer)
	}
	return b
}

func toBookingModel(b *entity.Booking) *Bookings {
	return &Bookings{
		ID:         b.ID,
		FlightID:   b.FlightID,
		CustomerID: b.CustomerID,
		OrderDate:  entity.DateOf(b.OrderDate),
	}
}

func toBookingEntities(models []Bookings) []entity.Booking {
	bookings := make([]entity.Booking, 0, len(models))
	for i := range models {
		bookings = append(bookings, *toBookingEntity(&models[i]))
	}
	return bookings
}

// FindAll returns every booking ordered by flight id
func (r *GormBookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	var models []Bookings
	result := dbFrom(ctx, r.db).Order("flight_id ASC").Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toBookingEntities(models), nil
}

// FindByID finds a booking by id
func (r *GormBookingRepository) FindByID(ctx context.Context, id uint) (*entity.Booking, error) {
	var model Bookings
	result := dbFrom(ctx, r.db).First(&model, id)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toBookingEntity(&model), nil
}

// FindByCustomerID finds the first booking owned by the given customer
func (r *GormBookingRepository) FindByCustomerID(ctx context.Context, customerID uint) (*entity.Booking, error) {
	var model Bookings
	result := dbFrom(ctx, r.db).Where("customer_id = ?", customerID).First(&model)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toBookingEntity(&model), nil
}

// FindByFlightIDAndOrderDate looks a booking up by its natural key
func (r *GormBookingRepository) FindByFlightIDAndOrderDate(ctx context.Context, flightID uint, orderDate time.Time) (*entity.Booking, error) {
	var model Bookings
	result := dbFrom(ctx, r.db).
		Where("flight_id = ? AND order_date = ?", flightID, entity.DateOf(orderDate)).
		First(&model)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toBookingEntity(&model), nil
}

// FindAllByFlightID returns the bookings for the given flight
func (r *GormBookingRepository) FindAllByFlightID(ctx context.Context, flightID uint) ([]entity.Booking, error) {
	var models []Bookings
	result := dbFrom(ctx, r.db).Where("flight_id = ?", flightID).Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toBookingEntities(models), nil
}

// FindAllByOrderDate returns the bookings placed for the given order date
func (r *GormBookingRepository) FindAllByOrderDate(ctx context.Context, orderDate time.Time) ([]entity.Booking, error) {
	var models []Bookings
	result := dbFrom(ctx, r.db).Where("order_date = ?", entity.DateOf(orderDate)).Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toBookingEntities(models), nil
}

// Create persists the booking and populates its id
func (r *GormBookingRepository) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	model := toBookingModel(booking)
	model.ID = 0
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return nil, mapError(err)
	}
	created := toBookingEntity(model)
	created.Customer = booking.Customer
	return created, nil
}

// Update replaces the stored record with the same id, inserting when absent
func (r *GormBookingRepository) Update(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	model := toBookingModel(booking)
	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return nil, mapError(err)
	}
	return toBookingEntity(model), nil
}

// Delete removes the record matching the booking's id
func (r *GormBookingRepository) Delete(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	if booking.ID == 0 {
		return booking, nil
	}
	if err := dbFrom(ctx, r.db).Delete(&Bookings{}, booking.ID).Error; err != nil {
		return nil, mapError(err)
	}
	return booking, nil
}
