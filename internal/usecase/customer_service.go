package usecase

import (
	"context"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
	"travelbooking-service/pkg/logger"
)

// CustomerService orchestrates customer validation and persistence. Reads
// pass straight through to the repository; writes run inside one transaction
// spanning the validation reads and the write.
type CustomerService struct {
	repo      repository.CustomerRepository
	validator *CustomerValidator
	tx        repository.Transactor
	logger    logger.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	repo repository.CustomerRepository,
	validator *CustomerValidator,
	tx repository.Transactor,
	logger logger.Logger,
) *CustomerService {
	return &CustomerService{
		repo:      repo,
		validator: validator,
		tx:        tx,
		logger:    logger,
	}
}

// FindAll returns every customer ordered by name
func (s *CustomerService) FindAll(ctx context.Context) ([]entity.Customer, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns the customer with the given id
func (s *CustomerService) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByEmail returns the first customer with the given email
func (s *CustomerService) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return s.repo.FindByEmail(ctx, email)
}

// FindAllByFirstName returns the customers with the given first name
func (s *CustomerService) FindAllByFirstName(ctx context.Context, firstName string) ([]entity.Customer, error) {
	return s.repo.FindAllByFirstName(ctx, firstName)
}

// FindAllByLastName returns the customers with the given last name
func (s *CustomerService) FindAllByLastName(ctx context.Context, lastName string) ([]entity.Customer, error) {
	return s.repo.FindAllByLastName(ctx, lastName)
}

// Create validates the customer and writes it to the store. Validation
// failures are propagated unchanged; a unique-index rejection from the store
// surfaces as the same conflict error as the pre-check.
func (s *CustomerService) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	s.logger.Info("Creating customer", "firstName", customer.FirstName, "lastName", customer.LastName)

	var created *entity.Customer
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, customer); err != nil {
			return err
		}
		out, err := s.repo.Create(ctx, customer)
		if err != nil {
			return translateDuplicate(err, "email", uniqueEmailMessage)
		}
		created = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update validates the customer, excluding its own record from the
// uniqueness check, then replaces the stored record.
func (s *CustomerService) Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	s.logger.Info("Updating customer", "id", customer.ID)

	var updated *entity.Customer
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, customer); err != nil {
			return err
		}
		out, err := s.repo.Update(ctx, customer)
		if err != nil {
			return translateDuplicate(err, "email", uniqueEmailMessage)
		}
		updated = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the customer. Without an id there is nothing to delete and
// the call is a logged no-op. The store cascades the delete to the
// customer's bookings.
func (s *CustomerService) Delete(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if customer.ID == 0 {
		s.logger.Info("No customer id supplied, skipping delete")
		return nil, nil
	}
	s.logger.Info("Deleting customer", "id", customer.ID)

	var deleted *entity.Customer
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		out, err := s.repo.Delete(ctx, customer)
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
