package repository

import (
	"context"
	"time"

	"travelbooking-service/internal/domain/entity"
)

// TravelAgentBookingRepository defines the interface for travel agent
// booking persistence operations
type TravelAgentBookingRepository interface {
	// FindAll returns every travel agent booking ordered by flight id.
	FindAll(ctx context.Context) ([]entity.TravelAgentBooking, error)
	FindByID(ctx context.Context, id uint) (*entity.TravelAgentBooking, error)
	FindByCustomerID(ctx context.Context, customerID uint) (*entity.TravelAgentBooking, error)
	FindByFlightIDAndOrderDate(ctx context.Context, flightID uint, orderDate time.Time) (*entity.TravelAgentBooking, error)
	FindAllByFlightID(ctx context.Context, flightID uint) ([]entity.TravelAgentBooking, error)
	FindAllByOrderDate(ctx context.Context, orderDate time.Time) ([]entity.TravelAgentBooking, error)
	Create(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error)
	Update(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error)
	Delete(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error)
}
