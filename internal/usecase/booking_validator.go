package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
)

const uniqueBookingMessage = "That flight is already booked for that order date, please use a unique combination"

var bookingMessages = map[string]string{
	"orderDate": "Order dates can not be in the past. Please choose one from the future",
}

// BookingValidator checks candidate bookings against the field constraints
// and the (flight id, order date) uniqueness rule.
type BookingValidator struct {
	validate *validator.Validate
	repo     repository.BookingRepository
}

// NewBookingValidator creates a new booking validator
func NewBookingValidator(validate *validator.Validate, repo repository.BookingRepository) *BookingValidator {
	return &BookingValidator{
		validate: validate,
		repo:     repo,
	}
}

// Validate returns entity.ValidationErrors when any field constraint fails
// and an entity.UniqueConstraintError when the compound natural key collides
// with a different stored booking.
func (v *BookingValidator) Validate(ctx context.Context, booking *entity.Booking) error {
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

// bookingAlreadyExists reports whether (flightID, orderDate) belongs to a
// booking other than the one identified by id. Both halves of the compound
// key must match the record found by id for the conflict to be dismissed as
// a self-update.
func (v *BookingValidator) bookingAlreadyExists(ctx context.Context, flightID uint, orderDate time.Time, id uint) (bool, error) {
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
