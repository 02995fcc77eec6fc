package repository

import (
	"context"

	"travelbooking-service/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations
type CustomerRepository interface {
	// FindAll returns every customer ordered by last name, then first name.
	FindAll(ctx context.Context) ([]entity.Customer, error)
	// FindByID returns entity.ErrNotFound when no customer has the id.
	FindByID(ctx context.Context, id uint) (*entity.Customer, error)
	// FindByEmail returns the first customer with the email, or entity.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindAllByFirstName(ctx context.Context, firstName string) ([]entity.Customer, error)
	FindAllByLastName(ctx context.Context, lastName string) ([]entity.Customer, error)
	// Create persists the customer and populates its id.
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	// Update replaces the stored record with the same id, inserting when absent.
	Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	// Delete removes the record matching the customer's id. Dependent booking
	// rows are removed by the store's cascade rule.
	Delete(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
}
