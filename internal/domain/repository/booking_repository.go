package repository

import (
	"context"
	"time"

	"travelbooking-service/internal/domain/entity"
)

// BookingRepository defines the interface for booking persistence operations
type BookingRepository interface {
	// FindAll returns every booking ordered by flight id.
	FindAll(ctx context.Context) ([]entity.Booking, error)
	FindByID(ctx context.Context, id uint) (*entity.Booking, error)
	// FindByCustomerID returns the first booking owned by the customer, or
	// entity.ErrNotFound.
	FindByCustomerID(ctx context.Context, customerID uint) (*entity.Booking, error)
	// FindByFlightIDAndOrderDate looks a booking up by its natural key. The
	// order date is matched at day granularity.
	FindByFlightIDAndOrderDate(ctx context.Context, flightID uint, orderDate time.Time) (*entity.Booking, error)
	FindAllByFlightID(ctx context.Context, flightID uint) ([]entity.Booking, error)
	FindAllByOrderDate(ctx context.Context, orderDate time.Time) ([]entity.Booking, error)
	Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
	Delete(ctx context.Context, booking *entity.Booking) (*entity.Booking, error)
}
