package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
)

// GormTravelAgentBookingRepository implements the
// TravelAgentBookingRepository interface
type GormTravelAgentBookingRepository struct {
	db *gorm.DB
}

// NewGormTravelAgentBookingRepository creates a new GORM travel agent
// booking repository
func NewGormTravelAgentBookingRepository(db *gorm.DB) repository.TravelAgentBookingRepository {
	return &GormTravelAgentBookingRepository{
		db: db,
	}
}

// TravelAgentBookings GORM model for database mapping
type TravelAgentBookings struct {
	ID         uint       `gorm:"primaryKey"`
	FlightID   uint       `gorm:"column:flight_id;not null;uniqueIndex:idx_ta_bookings_flight_order"`
	TaxiID     uint       `gorm:"column:taxi_id;not null"`
	HotelID    uint       `gorm:"column:hotel_id;not null"`
	CustomerID uint       `gorm:"column:customer_id;not null;index"`
	OrderDate  time.Time  `gorm:"column:order_date;type:date;not null;uniqueIndex:idx_ta_bookings_flight_order"`
	Customer   *Customers `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default table name
func (TravelAgentBookings) TableName() string {
	return "travel_agent_bookings"
}

func toTravelAgentBookingEntity(m *TravelAgentBookings) *entity.TravelAgentBooking {
	b := &entity.TravelAgentBooking{
		ID:         m.ID,
		FlightID:   m.FlightID,
		TaxiID:     m.TaxiID,
		HotelID:    m.HotelID,
		CustomerID: m.CustomerID,
		OrderDate:  m.OrderDate,
	}
	if m.Customer != nil {
		b.Customer = toCustomerEntity(m.Customer)
	}
	return b
}

func toTravelAgentBookingModel(b *entity.TravelAgentBooking) *TravelAgentBookings {
	return &TravelAgentBookings{
		ID:         b.ID,
		FlightID:   b.FlightID,
		TaxiID:     b.TaxiID,
		HotelID:    b.HotelID,
		CustomerID: b.CustomerID,
		OrderDate:  entity.DateOf(b.OrderDate),
	}
}

func toTravelAgentBookingEntities(models []TravelAgentBookings) []entity.TravelAgentBooking {
	bookings := make([]entity.TravelAgentBooking, 0, len(models))
	for i := range models {
		bookings = append(bookings, *toTravelAgentBookingEntity(&models[i]))
	}
	return bookings
}

// FindAll returns every travel agent booking ordered by flight id
func (r *GormTravelAgentBookingRepository) FindAll(ctx context.Context) ([]entity.TravelAgentBooking, error) {
	var models []TravelAgentBookings
	result := dbFrom(ctx, r.db).Order("flight_id ASC").Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toTravelAgentBookingEntities(models), nil
}

// FindByID finds a travel agent booking by id
func (r *GormTravelAgentBookingRepository) FindByID(ctx context.Context, id uint) (*entity.TravelAgentBooking, error) {
	var model TravelAgentBookings
	result := dbFrom(ctx, r.db).First(&model, id)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toTravelAgentBookingEntity(&model), nil
}

// FindByCustomerID finds the first travel agent booking owned by the customer
func (r *GormTravelAgentBookingRepository) FindByCustomerID(ctx context.Context, customerID uint) (*entity.TravelAgentBooking, error) {
	var model TravelAgentBookings
	result := dbFrom(ctx, r.db).Where("customer_id = ?", customerID).First(&model)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toTravelAgentBookingEntity(&model), nil
}

// FindByFlightIDAndOrderDate looks a travel agent booking up by its natural key
func (r *GormTravelAgentBookingRepository) FindByFlightIDAndOrderDate(ctx context.Context, flightID uint, orderDate time.Time) (*entity.TravelAgentBooking, error) {
	var model TravelAgentBookings
	result := dbFrom(ctx, r.db).
		Where("flight_id = ? AND order_date = ?", flightID, entity.DateOf(orderDate)).
		First(&model)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toTravelAgentBookingEntity(&model), nil
}

// FindAllByFlightID returns the travel agent bookings for the given flight
func (r *GormTravelAgentBookingRepository) FindAllByFlightID(ctx context.Context, flightID uint) ([]entity.TravelAgentBooking, error) {
	var models []TravelAgentBookings
	result := dbFrom(ctx, r.db).Where("flight_id = ?", flightID).Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toTravelAgentBookingEntities(models), nil
}

// FindAllByOrderDate returns the travel agent bookings for the given order date
func (r *GormTravelAgentBookingRepository) FindAllByOrderDate(ctx context.Context, orderDate time.Time) ([]entity.TravelAgentBooking, error) {
	var models []TravelAgentBookings
	result := dbFrom(ctx, r.db).Where("order_date = ?", entity.DateOf(orderDate)).Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toTravelAgentBookingEntities(models), nil
}

// Create persists the travel agent booking and populates its id
func (r *GormTravelAgentBookingRepository) Create(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error) {
	model := toTravelAgentBookingModel(booking)
	model.ID = 0
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return nil, mapError(err)
	}
	created := toTravelAgentBookingEntity(model)
	created.Customer = booking.Customer
	return created, nil
}

// Update replaces the stored record with the same id, inserting when absent
func (r *GormTravelAgentBookingRepository) Update(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error) {
	model := toTravelAgentBookingModel(booking)
	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return nil, mapError(err)
	}
	return toTravelAgentBookingEntity(model), nil
}

// Delete removes the record matching the booking's id
func (r *GormTravelAgentBookingRepository) Delete(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error) {
	if booking.ID == 0 {
		return booking, nil
	}
	if err := dbFrom(ctx, r.db).Delete(&TravelAgentBookings{}, booking.ID).Error; err != nil {
		return nil, mapError(err)
	}
	return booking, nil
}
