package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
)

const uniqueFlightNumberMessage = "That flight number is already used, please use a unique flight number"

var flightMessages = map[string]string{
	"flightNumber": "Please use a flight number of 5 uppercase letters or digits",
	"departure":    "Please set a departure of 3 uppercase letters",
	"destination":  "Please set a destination of 3 uppercase letters",
}

// FlightValidator checks candidate flights against the field constraints,
// the departure/destination rule and the flight number uniqueness rule.
type FlightValidator struct {
	validate *validator.Validate
	repo     repository.FlightRepository
}

// NewFlightValidator creates a new flight validator
func NewFlightValidator(validate *validator.Validate, repo repository.FlightRepository) *FlightValidator {
	return &FlightValidator{
		validate: validate,
		repo:     repo,
	}
}

// Validate runs the field constraints first, then rejects flights whose
// destination equals their departure, and only then checks flight number
// uniqueness. The destination rule lives here rather than on the entity
// because it relates two fields.
func (v *FlightValidator) Validate(ctx context.Context, flight *entity.Flight) error {
	errs := checkFields(v.validate, flight, flightMessages)
	if flight.Departure != "" && flight.Departure == flight.Destination {
		errs = append(errs, entity.FieldError{
			Field:   "destination",
			Message: "The destination must differ from the departure",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	taken, err := v.flightNumberAlreadyExists(ctx, flight.FlightNumber, flight.ID)
	if err != nil {
		return err
	}
	if taken {
		return &entity.UniqueConstraintError{Field: "flightNumber", Message: uniqueFlightNumberMessage}
	}
	return nil
}

// flightNumberAlreadyExists reports whether the flight number is registered
// to a flight other than the one identified by id.
func (v *FlightValidator) flightNumberAlreadyExists(ctx context.Context, flightNumber string, id uint) (bool, error) {
	existing, err := v.repo.FindByFlightNumber(ctx, flightNumber)
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
		if withID != nil && withID.FlightNumber == flightNumber {
			return false, nil
		}
	}
	return existing != nil, nil
}
