package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
)

// TravelAgentBookingValidator checks candidate travel agent bookings against
// the field constraints and the (flight id, order date) uniqueness rule.
type TravelAgentBookingValidator struct {
	validate *validator.Validate
	repo     repository.TravelAgentBookingRepository
}

// NewTravelAgentBookingValidator creates a new travel agent booking validator
func NewTravelAgentBookingValidator(validate *validator.Validate, repo repository.TravelAgentBookingRepository) *TravelAgentBookingValidator {
	return &TravelAgentBookingValidator{
		validate: validate,
		repo:     repo,
	}
}

// Validate returns entity.ValidationErrors when any field constraint fails
// and an entity.UniqueConstraintError when the compound natural key collides
// with a different stored travel agent booking.
func (v *TravelAgentBookingValidator) Validate(ctx context.Context, booking *entity.TravelAgentBooking) error {
	if errs := checkFields(v.validate, booking, bookingMessages); len(errs) > 0 {
		return errs
	}

	taken, err := v.bookingAlreadyExists(ctx, booking.FlightID, booking.OrderDate, booking.ID)
	if err != nil {
		return err
	}
	if taken {
		return &entity.UniqueConstraintError{Field: "flightId", Message: uniqueBookingMessage}
	}
	return nil
}

func (v *TravelAgentBookingValidator) bookingAlreadyExists(ctx context.Context, flightID uint, orderDate time.Time, id uint) (bool, error) {
	existing, err := v.repo.FindByFlightIDAndOrderDate(ctx, flightID, orderDate)
	if errors.Is(err, entity.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if id != 0 {
		withID, err := v.repo.FindByID(ctx, id)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return false, err
		}
		if withID != nil && withID.FlightID == flightID &&
			entity.DateOf(withID.OrderDate).Equal(entity.DateOf(orderDate)) {
			return false, nil
		}
	}
	return existing != nil, nil
}
