package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/pkg/logger"
)

func newCustomerService(env *testEnv) *CustomerService {
	validate := NewValidate()
	return NewCustomerService(
		env.customers,
		NewCustomerValidator(validate, env.customers),
		env.tx,
		logger.NewNop(),
	)
}

func newBookingService(env *testEnv) *BookingService {
	validate := NewValidate()
	return NewBookingService(
		env.bookings,
		env.customers,
		NewBookingValidator(validate, env.bookings),
		env.tx,
		logger.NewNop(),
	)
}

func TestCustomerService_CreateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	svc := newCustomerService(env)

	created, err := svc.Create(context.Background(), validCustomer())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}

	found, err := svc.FindByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected customer %d, got %d", created.ID, found.ID)
	}
}

func TestCustomerService_CreateRejectsInvalidFields(t *testing.T) {
	env := newTestEnv(t)
	svc := newCustomerService(env)

	_, err := svc.Create(context.Background(), &entity.Customer{Email: "bad"})
	fieldErrors(t, err)

	customers, err := svc.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("invalid customer was stored: %+v", customers)
	}
}

func TestCustomerService_CreateDuplicateEmailConflicts(t *testing.T) {
	env := newTestEnv(t)
	svc := newCustomerService(env)

	if _, err := svc.Create(context.Background(), validCustomer()); err != nil {
		t.Fatalf("create: %v", err)
	}
	second := validCustomer()
	second.FirstName = "Adeline"
	_, err := svc.Create(context.Background(), second)
	conflict := conflictError(t, err)
	if conflict.Field != "email" {
		t.Fatalf("unexpected conflict field: %q", conflict.Field)
	}
}

func TestCustomerService_UpdateKeepingOwnEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newCustomerService(env)

	created, err := svc.Create(context.Background(), validCustomer())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created.PhoneNumber = "07700900999"
	updated, err := svc.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PhoneNumber != "07700900999" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestCustomerService_UpdateOntoOtherEmailConflicts(t *testing.T) {
	env := newTestEnv(t)
	svc := newCustomerService(env)

	if _, err := svc.Create(context.Background(), validCustomer()); err != nil {
		t.Fatalf("create first: %v", err)
	}
	other := validCustomer()
	other.Email = "alan@example.com"
	second, err := svc.Create(context.Background(), other)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	second.Email = "ada@example.com"
	_, err = svc.Update(context.Background(), second)
	conflictError(t, err)
}

func TestCustomerService_DeleteWithoutIDIsNoop(t *testing.T) {
	env := newTestEnv(t)
	svc := newCustomerService(env)

	deleted, err := svc.Delete(context.Background(), &entity.Customer{})
	if err != nil {
		t.Fatalf("delete without id: %v", err)
	}
	if deleted != nil {
		t.Fatalf("expected nil result for a no-op delete, got %+v", deleted)
	}
}

func TestCustomerService_DeleteRemovesBookings(t *testing.T) {
	env := newTestEnv(t)
	customerSvc := newCustomerService(env)
	bookingSvc := newBookingService(env)

	customer, err := customerSvc.Create(context.Background(), validCustomer())
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if _, err := bookingSvc.Create(context.Background(), &entity.Booking{
		FlightID:   10,
		CustomerID: customer.ID,
		OrderDate:  time.Now().AddDate(0, 0, 7),
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := customerSvc.Delete(context.Background(), customer); err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	bookings, err := bookingSvc.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all bookings: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected bookings to cascade, %d left", len(bookings))
	}
}

func TestBookingService_CreateAttachesCustomer(t *testing.T) {
	env := newTestEnv(t)
	customerSvc := newCustomerService(env)
	svc := newBookingService(env)

	customer, err := customerSvc.Create(context.Background(), validCustomer())
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	created, err := svc.Create(context.Background(), &entity.Booking{
		FlightID:   10,
		CustomerID: customer.ID,
		OrderDate:  time.Now().AddDate(0, 0, 7),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if created.Customer == nil || created.Customer.Email != "ada@example.com" {
		t.Fatalf("expected the owning customer attached, got %+v", created.Customer)
	}
}

func TestBookingService_CreateUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	svc := newBookingService(env)

	_, err := svc.Create(context.Background(), &entity.Booking{
		FlightID:   10,
		CustomerID: 42,
		OrderDate:  time.Now().AddDate(0, 0, 7),
	})
	if !errors.Is(err, entity.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	bookings, err := svc.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("booking stored despite missing customer: %+v", bookings)
	}
}

func TestBookingService_CreateDuplicateNaturalKeyConflicts(t *testing.T) {
	env := newTestEnv(t)
	customerSvc := newCustomerService(env)
	svc := newBookingService(env)

	customer, err := customerSvc.Create(context.Background(), validCustomer())
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	orderDate := time.Now().AddDate(0, 0, 7)
	if _, err := svc.Create(context.Background(), &entity.Booking{
		FlightID: 10, CustomerID: customer.ID, OrderDate: orderDate,
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	_, err = svc.Create(context.Background(), &entity.Booking{
		FlightID: 10, CustomerID: customer.ID, OrderDate: orderDate,
	})
	conflict := conflictError(t, err)
	if conflict.Field != "flightId" {
		t.Fatalf("unexpected conflict field: %q", conflict.Field)
	}
}

func TestBookingService_UpdateMovesOrderDate(t *testing.T) {
	env := newTestEnv(t)
	customerSvc := newCustomerService(env)
	svc := newBookingService(env)

	customer, err := customerSvc.Create(context.Background(), validCustomer())
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	orderDate := time.Now().AddDate(0, 0, 7)
	created, err := svc.Create(context.Background(), &entity.Booking{
		FlightID: 10, CustomerID: customer.ID, OrderDate: orderDate,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	created.OrderDate = orderDate.AddDate(0, 0, 3)
	created.Customer = nil
	updated, err := svc.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !entity.DateOf(updated.OrderDate).Equal(entity.DateOf(orderDate.AddDate(0, 0, 3))) {
		t.Fatalf("order date not moved: %v", updated.OrderDate)
	}
}

func TestTranslateDuplicate(t *testing.T) {
	err := translateDuplicate(entity.ErrDuplicateKey, "email", uniqueEmailMessage)
	conflict := conflictError(t, err)
	if conflict.Field != "email" || conflict.Message != uniqueEmailMessage {
		t.Fatalf("unexpected conflict: %+v", conflict)
	}

	other := errors.New("connection reset")
	if got := translateDuplicate(other, "email", uniqueEmailMessage); !errors.Is(got, other) {
		t.Fatalf("non-duplicate errors must pass through, got %v", got)
	}
}
