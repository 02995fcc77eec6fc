package usecase

import (
	"context"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
	"travelbooking-service/pkg/logger"
)

// FlightService orchestrates flight validation and persistence.
type FlightService struct {
	repo      repository.FlightRepository
	validator *FlightValidator
	tx        repository.Transactor
	logger    logger.Logger
}

// NewFlightService creates a new flight service
func NewFlightService(
	repo repository.FlightRepository,
	validator *FlightValidator,
	tx repository.Transactor,
	logger logger.Logger,
) *FlightService {
	return &FlightService{
		repo:      repo,
		validator: validator,
		tx:        tx,
		logger:    logger,
	}
}

// FindAll returns every flight ordered by flight number
func (s *FlightService) FindAll(ctx context.Context) ([]entity.Flight, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns the flight with the given id
func (s *FlightService) FindByID(ctx context.Context, id uint) (*entity.Flight, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByFlightNumber returns the first flight with the given flight number
func (s *FlightService) FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	return s.repo.FindByFlightNumber(ctx, flightNumber)
}

// FindAllByDeparture returns the flights leaving from the given airport
func (s *FlightService) FindAllByDeparture(ctx context.Context, departure string) ([]entity.Flight, error) {
	return s.repo.FindAllByDeparture(ctx, departure)
}

// FindAllByDestination returns the flights arriving at the given airport
func (s *FlightService) FindAllByDestination(ctx context.Context, destination string) ([]entity.Flight, error) {
	return s.repo.FindAllByDestination(ctx, destination)
}

// Create validates the flight and writes it to the store
func (s *FlightService) Create(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	s.logger.Info("Creating flight", "flightNumber", flight.FlightNumber,
		"departure", flight.Departure, "destination", flight.Destination)

	var created *entity.Flight
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, flight); err != nil {
			return err
		}
		out, err := s.repo.Create(ctx, flight)
		if err != nil {
			return translateDuplicate(err, "flightNumber", uniqueFlightNumberMessage)
		}
		created = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update validates the flight, excluding its own record from the uniqueness
// check, then replaces the stored record.
func (s *FlightService) Update(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	s.logger.Info("Updating flight", "id", flight.ID)

	var updated *entity.Flight
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, flight); err != nil {
			return err
		}
		out, err := s.repo.Update(ctx, flight)
		if err != nil {
			return translateDuplicate(err, "flightNumber", uniqueFlightNumberMessage)
		}
		updated = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the flight; a call without an id is a logged no-op
func (s *FlightService) Delete(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	if flight.ID == 0 {
		s.logger.Info("No flight id supplied, skipping delete")
		return nil, nil
	}
	s.logger.Info("Deleting flight", "id", flight.ID)

	var deleted *entity.Flight
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		out, err := s.repo.Delete(ctx, flight)
		if err != nil {
			return err
		}
		deleted = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
