package repository

import (
	"context"

	"travelbooking-service/internal/domain/entity"
)

// FlightRepository defines the interface for flight persistence operations
type FlightRepository interface {
	// FindAll returns every flight ordered by flight number.
	FindAll(ctx context.Context) ([]entity.Flight, error)
	FindByID(ctx context.Context, id uint) (*entity.Flight, error)
	FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error)
	FindAllByDeparture(ctx context.Context, departure string) ([]entity.Flight, error)
	FindAllByDestination(ctx context.Context, destination string) ([]entity.Flight, error)
	Create(ctx context.Context, flight *entity.Flight) (*entity.Flight, error)
	Update(ctx context.Context, flight *entity.Flight) (*entity.Flight, error)
	Delete(ctx context.Context, flight *entity.Flight) (*entity.Flight, error)
}
