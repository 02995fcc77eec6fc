package repository

import (
	"context"

	"gorm.io/gorm"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
)

// GormCustomerRepository implements the CustomerRepository interface
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &GormCustomerRepository{
		db: db,
	}
}

// Customers GORM model for database mapping
type Customers struct {
	ID          uint   `gorm:"primaryKey"`
	FirstName   string `gorm:"column:first_name;size:25;not null"`
	LastName    string `gorm:"column:last_name;size:25;not null"`
	Email       string `gorm:"column:email;not null;uniqueIndex"`
	PhoneNumber string `gorm:"column:phone_number;size:11;not null"`
}

// TableName overrides the default table name
func (Customers) TableName() string {
	return "customers"
}

func toCustomerEntity(m *Customers) *entity.Customer {
	return &entity.Customer{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
	}
}

func toCustomerModel(c *entity.Customer) *Customers {
	return &Customers{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
}

func toCustomerEntities(models []Customers) []entity.Customer {
	customers := make([]entity.Customer, 0, len(models))
	for i := range models {
		customers = append(customers, *toCustomerEntity(&models[i]))
	}
	return customers
}

// FindAll returns every customer ordered by last name, then first name
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]entity.Customer, error) {
	var models []Customers
	result := dbFrom(ctx, r.db).Order("last_name ASC, first_name ASC").Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toCustomerEntities(models), nil
}

// FindByID finds a customer by id
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var model Customers
	result := dbFrom(ctx, r.db).First(&model, id)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toCustomerEntity(&model), nil
}

// FindByEmail finds the first customer with the given email
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var model Customers
	result := dbFrom(ctx, r.db).Where("email = ?", email).First(&model)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toCustomerEntity(&model), nil
}

// FindAllByFirstName returns the customers with the given first name
func (r *GormCustomerRepository) FindAllByFirstName(ctx context.Context, firstName string) ([]entity.Customer, error) {
	var models []Customers
	result := dbFrom(ctx, r.db).Where("first_name = ?", firstName).Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toCustomerEntities(models), nil
}

// FindAllByLastName returns the customers with the given last name
func (r *GormCustomerRepository) FindAllByLastName(ctx context.Context, lastName string) ([]entity.Customer, error) {
	var models []Customers
	result := dbFrom(ctx, r.db).Where("last_name = ?", lastName).Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toCustomerEntities(models), nil
}

// Create persists the customer and populates its id
func (r *GormCustomerRepository) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	model := toCustomerModel(customer)
	model.ID = 0
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return nil, mapError(err)
	}
	return toCustomerEntity(model), nil
}

// Update replaces the stored record with the same id, inserting when absent
func (r *GormCustomerRepository) Update(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	model := toCustomerModel(customer)
	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return nil, mapError(err)
	}
	return toCustomerEntity(model), nil
}

// Delete removes the record matching the customer's id. Deleting without an
// id is never attempted.
func (r *GormCustomerRepository) Delete(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if customer.ID == 0 {
		return customer, nil
	}
	if err := dbFrom(ctx, r.db).Delete(&Customers{}, customer.ID).Error; err != nil {
		return nil, mapError(err)
	}
	return customer, nil
}
