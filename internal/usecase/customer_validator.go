package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
)

const uniqueEmailMessage = "That email is already used, please use a unique email"

var customerMessages = map[string]string{
	"firstName":   "Please use a name without numbers or specials, at most 25 characters",
	"lastName":    "Please use a name without numbers or specials, at most 25 characters",
	"email":       "The email address must be in the format of name@domain.com",
	"phoneNumber": "The phone number must be 10 digits with an optional leading zero",
}

// CustomerValidator checks candidate customers against the field constraints
// and the email uniqueness rule.
type CustomerValidator struct {
	validate *validator.Validate
	repo     repository.CustomerRepository
}

// NewCustomerValidator creates a new customer validator
func NewCustomerValidator(validate *validator.Validate, repo repository.CustomerRepository) *CustomerValidator {
	return &CustomerValidator{
		validate: validate,
		repo:     repo,
	}
}

// Validate returns entity.ValidationErrors when any field constraint fails,
// an entity.UniqueConstraintError when the email belongs to a different
// stored customer, and nil when the candidate is acceptable. Field failures
// take priority; the uniqueness check only runs on a clean candidate.
func (v *CustomerValidator) Validate(ctx context.Context, customer *entity.Customer) error {
	if errs := checkFields(v.validate, customer, customerMessages); len(errs) > 0 {
		return errs
	}

	taken, err := v.emailAlreadyExists(ctx, customer.Email, customer.ID)
	if err != nil {
		return err
	}
	if taken {
		return &entity.UniqueConstraintError{Field: "email", Message: uniqueEmailMessage}
	}
	return nil
}

// emailAlreadyExists reports whether the email is registered to a customer
// other than the one identified by id. An update keeping its own email is
// not a conflict, so the record found by email is compared against the
// record found by id.
func (v *CustomerValidator) emailAlreadyExists(ctx context.Context, email string, id uint) (bool, error) {
	existing, err := v.repo.FindByEmail(ctx, email)
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
		if withID != nil && withID.Email == email {
			return false, nil
		}
	}
	return existing != nil, nil
}
