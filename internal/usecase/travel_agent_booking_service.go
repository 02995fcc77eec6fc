package usecase

import (
	"context"
	"errors"
	"time"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
	"travelbooking-service/pkg/logger"
)

// TravelAgentBookingService orchestrates travel agent booking validation and
// persistence. Like BookingService it resolves and attaches the owning
// customer at create time only.
type TravelAgentBookingService struct {
	repo         repository.TravelAgentBookingRepository
	customerRepo repository.CustomerRepository
	validator    *TravelAgentBookingValidator
	tx           repository.Transactor
	logger       logger.Logger
}

// NewTravelAgentBookingService creates a new travel agent booking service
func NewTravelAgentBookingService(
	repo repository.TravelAgentBookingRepository,
	customerRepo repository.CustomerRepository,
	validator *TravelAgentBookingValidator,
	tx repository.Transactor,
	logger logger.Logger,
) *TravelAgentBookingService {
	return &TravelAgentBookingService{
		repo:         repo,
		customerRepo: customerRepo,
		validator:    validator,
		tx:           tx,
		logger:       logger,
	}
}

// FindAll returns every travel agent booking ordered by flight id
func (s *TravelAgentBookingService) FindAll(ctx context.Context) ([]entity.TravelAgentBooking, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns the travel agent booking with the given id
func (s *TravelAgentBookingService) FindByID(ctx context.Context, id uint) (*entity.TravelAgentBooking, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByCustomerID returns the first travel agent booking owned by the customer
func (s *TravelAgentBookingService) FindByCustomerID(ctx context.Context, customerID uint) (*entity.TravelAgentBooking, error) {
	return s.repo.FindByCustomerID(ctx, customerID)
}

// FindAllByFlightID returns the travel agent bookings for the given flight
func (s *TravelAgentBookingService) FindAllByFlightID(ctx context.Context, flightID uint) ([]entity.TravelAgentBooking, error) {
	return s.repo.FindAllByFlightID(ctx, flightID)
}

// FindAllByOrderDate returns the travel agent bookings for the given order date
func (s *TravelAgentBookingService) FindAllByOrderDate(ctx context.Context, orderDate time.Time) ([]entity.TravelAgentBooking, error) {
	return s.repo.FindAllByOrderDate(ctx, orderDate)
}

// Create validates the booking, resolves and attaches the owning customer,
// then writes the booking to the store.
func (s *TravelAgentBookingService) Create(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error) {
	s.logger.Info("Creating travel agent booking", "flightId", booking.FlightID,
		"taxiId", booking.TaxiID, "hotelId", booking.HotelID, "customerId", booking.CustomerID)

	var created *entity.TravelAgentBooking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, booking); err != nil {
			return err
		}
		customer, err := s.customerRepo.FindByID(ctx, booking.CustomerID)
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrCustomerNotFound
		}
		if err != nil {
			return err
		}
		booking.Customer = customer

		out, err := s.repo.Create(ctx, booking)
		if err != nil {
			return translateDuplicate(err, "flightId", uniqueBookingMessage)
		}
		created = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update validates the booking, excluding its own record from the
// uniqueness check, then replaces the stored record without re-resolving
// the customer relationship.
func (s *TravelAgentBookingService) Update(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error) {
	s.logger.Info("Updating travel agent booking", "id", booking.ID)

	var updated *entity.TravelAgentBooking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, booking); err != nil {
			return err
		}
		out, err := s.repo.Update(ctx, booking)
		if err != nil {
			return translateDuplicate(err, "flightId", uniqueBookingMessage)
		}
		updated = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the travel agent booking; a call without an id is a logged
// no-op
func (s *TravelAgentBookingService) Delete(ctx context.Context, booking *entity.TravelAgentBooking) (*entity.TravelAgentBooking, error) {
	if booking.ID == 0 {
		s.logger.Info("No travel agent booking id supplied, skipping delete")
		return nil, nil
	}
	s.logger.Info("Deleting travel agent booking", "id", booking.ID)

	var deleted *entity.TravelAgentBooking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		out, err := s.repo.Delete(ctx, booking)
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
