package usecase

import (
	"context"
	"errors"
	"time"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
	"travelbooking-service/pkg/logger"
)

// BookingService orchestrates booking validation and persistence. Creating a
// booking resolves the owning customer and attaches it to the record; update
// leaves the relationship untouched.
type BookingService struct {
	repo         repository.BookingRepository
	customerRepo repository.CustomerRepository
	validator    *BookingValidator
	tx           repository.Transactor
	logger       logger.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(
	repo repository.BookingRepository,
	customerRepo repository.CustomerRepository,
	validator *BookingValidator,
	tx repository.Transactor,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:         repo,
		customerRepo: customerRepo,
		validator:    validator,
		tx:           tx,
		logger:       logger,
	}
}

// FindAll returns every booking ordered by flight id
func (s *BookingService) FindAll(ctx context.Context) ([]entity.Booking, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns the booking with the given id
func (s *BookingService) FindByID(ctx context.Context, id uint) (*entity.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByCustomerID returns the first booking owned by the given customer
func (s *BookingService) FindByCustomerID(ctx context.Context, customerID uint) (*entity.Booking, error) {
	return s.repo.FindByCustomerID(ctx, customerID)
}

// FindAllByFlightID returns the bookings for the given flight
func (s *BookingService) FindAllByFlightID(ctx context.Context, flightID uint) ([]entity.Booking, error) {
	return s.repo.FindAllByFlightID(ctx, flightID)
}

// FindAllByOrderDate returns the bookings placed for the given order date
func (s *BookingService) FindAllByOrderDate(ctx context.Context, orderDate time.Time) ([]entity.Booking, error) {
	return s.repo.FindAllByOrderDate(ctx, orderDate)
}

// Create validates the booking, resolves the owning customer by customer id
// and attaches it, then writes the booking to the store.
func (s *BookingService) Create(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	s.logger.Info("Creating booking", "flightId", booking.FlightID, "customerId", booking.CustomerID)

	var created *entity.Booking
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
// uniqueness check, then replaces the stored record. The customer
// relationship is fixed at create time and is not re-resolved here.
func (s *BookingService) Update(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	s.logger.Info("Updating booking", "id", booking.ID)

	var updated *entity.Booking
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

// Delete removes the booking; a call without an id is a logged no-op
func (s *BookingService) Delete(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	if booking.ID == 0 {
		s.logger.Info("No booking id supplied, skipping delete")
		return nil, nil
	}
	s.logger.Info("Deleting booking", "id", booking.ID)

	var deleted *entity.Booking
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
