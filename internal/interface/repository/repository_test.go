package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"travelbooking-service/internal/domain/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	// One connection so every statement sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(&Customers{}, &Flights{}, &Bookings{}, &TravelAgentBookings{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, repo *GormCustomerRepository, first, last, email string) *entity.Customer {
	t.Helper()
	created, err := repo.Create(context.Background(), &entity.Customer{
		FirstName:   first,
		LastName:    last,
		Email:       email,
		PhoneNumber: "07700900123",
	})
	if err != nil {
		t.Fatalf("seed customer %s: %v", email, err)
	}
	return created
}

func TestCustomerRepository_CreateAssignsID(t *testing.T) {
	db := newTestDB(t)
	repo := &GormCustomerRepository{db: db}

	created := seedCustomer(t, repo, "Ada", "Lovelace", "ada@example.com")
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}

	found, err := repo.FindByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != created.ID || found.FirstName != "Ada" {
		t.Fatalf("round trip mismatch: %+v", found)
	}
}

func TestCustomerRepository_FindAllOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := &GormCustomerRepository{db: db}

	seedCustomer(t, repo, "Grace", "Hopper", "grace@example.com")
	seedCustomer(t, repo, "Alan", "Turing", "alan@example.com")
	seedCustomer(t, repo, "Ada", "Hopper", "ada@example.com")

	customers, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(customers) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(customers))
	}
	// Ordered by last name then first name.
	if customers[0].FirstName != "Ada" || customers[1].FirstName != "Grace" || customers[2].LastName != "Turing" {
		t.Fatalf("unexpected order: %+v", customers)
	}
}

func TestCustomerRepository_FindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &GormCustomerRepository{db: db}

	_, err := repo.FindByID(context.Background(), 42)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomerRepository_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	repo := &GormCustomerRepository{db: db}

	seedCustomer(t, repo, "Ada", "Lovelace", "ada@example.com")
	_, err := repo.Create(context.Background(), &entity.Customer{
		FirstName:   "Adeline",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "07700900124",
	})
	if !errors.Is(err, entity.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestCustomerRepository_UpdateReplacesRecord(t *testing.T) {
	db := newTestDB(t)
	repo := &GormCustomerRepository{db: db}

	created := seedCustomer(t, repo, "Ada", "Lovelace", "ada@example.com")
	created.PhoneNumber = "07700900999"
	updated, err := repo.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PhoneNumber != "07700900999" {
		t.Fatalf("update not applied: %+v", updated)
	}

	found, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find after update: %v", err)
	}
	if found.PhoneNumber != "07700900999" {
		t.Fatalf("stored record not replaced: %+v", found)
	}
}

func TestCustomerRepository_DeleteWithoutIDIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := &GormCustomerRepository{db: db}

	seedCustomer(t, repo, "Ada", "Lovelace", "ada@example.com")
	if _, err := repo.Delete(context.Background(), &entity.Customer{}); err != nil {
		t.Fatalf("delete without id: %v", err)
	}

	customers, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("no-op delete removed a record, %d left", len(customers))
	}
}

func TestFlightRepository_FindAllOrderedByFlightNumber(t *testing.T) {
	db := newTestDB(t)
	repo := &GormFlightRepository{db: db}

	for _, f := range []entity.Flight{
		{FlightNumber: "ZZ999", Departure: "LON", Destination: "PAR"},
		{FlightNumber: "AB123", Departure: "LON", Destination: "NYC"},
		{FlightNumber: "MM555", Departure: "PAR", Destination: "LON"},
	} {
		flight := f
		if _, err := repo.Create(context.Background(), &flight); err != nil {
			t.Fatalf("seed flight %s: %v", f.FlightNumber, err)
		}
	}

	flights, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(flights) != 3 || flights[0].FlightNumber != "AB123" || flights[2].FlightNumber != "ZZ999" {
		t.Fatalf("unexpected order: %+v", flights)
	}
}

func TestFlightRepository_FilterByDepartureAndDestination(t *testing.T) {
	db := newTestDB(t)
	repo := &GormFlightRepository{db: db}

	for _, f := range []entity.Flight{
		{FlightNumber: "AB123", Departure: "LON", Destination: "PAR"},
		{FlightNumber: "CD456", Departure: "LON", Destination: "NYC"},
		{FlightNumber: "EF789", Departure: "PAR", Destination: "NYC"},
	} {
		flight := f
		if _, err := repo.Create(context.Background(), &flight); err != nil {
			t.Fatalf("seed flight %s: %v", f.FlightNumber, err)
		}
	}

	fromLon, err := repo.FindAllByDeparture(context.Background(), "LON")
	if err != nil {
		t.Fatalf("find by departure: %v", err)
	}
	if len(fromLon) != 2 {
		t.Fatalf("expected 2 flights from LON, got %d", len(fromLon))
	}

	toNyc, err := repo.FindAllByDestination(context.Background(), "NYC")
	if err != nil {
		t.Fatalf("find by destination: %v", err)
	}
	if len(toNyc) != 2 {
		t.Fatalf("expected 2 flights to NYC, got %d", len(toNyc))
	}
}

func TestBookingRepository_NaturalKeyLookupUsesCalendarDay(t *testing.T) {
	db := newTestDB(t)
	customerRepo := &GormCustomerRepository{db: db}
	repo := &GormBookingRepository{db: db}

	customer := seedCustomer(t, customerRepo, "Ada", "Lovelace", "ada@example.com")
	orderDate := time.Now().AddDate(0, 0, 7)
	created, err := repo.Create(context.Background(), &entity.Booking{
		FlightID:   10,
		CustomerID: customer.ID,
		OrderDate:  orderDate,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// A lookup with a different clock time on the same day must match.
	found, err := repo.FindByFlightIDAndOrderDate(context.Background(), 10, orderDate.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("find by natural key: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected booking %d, got %d", created.ID, found.ID)
	}

	_, err = repo.FindByFlightIDAndOrderDate(context.Background(), 10, orderDate.AddDate(0, 0, 1))
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for the next day, got %v", err)
	}
}

func TestBookingRepository_DuplicateCompoundKeyRejected(t *testing.T) {
	db := newTestDB(t)
	customerRepo := &GormCustomerRepository{db: db}
	repo := &GormBookingRepository{db: db}

	customer := seedCustomer(t, customerRepo, "Ada", "Lovelace", "ada@example.com")
	other := seedCustomer(t, customerRepo, "Alan", "Turing", "alan@example.com")
	orderDate := time.Now().AddDate(0, 0, 7)

	if _, err := repo.Create(context.Background(), &entity.Booking{
		FlightID: 10, CustomerID: customer.ID, OrderDate: orderDate,
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// Same flight and day for a different customer still violates the key.
	_, err := repo.Create(context.Background(), &entity.Booking{
		FlightID: 10, CustomerID: other.ID, OrderDate: orderDate,
	})
	if !errors.Is(err, entity.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestBookingRepository_CustomerDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	customerRepo := &GormCustomerRepository{db: db}
	repo := &GormBookingRepository{db: db}

	customer := seedCustomer(t, customerRepo, "Ada", "Lovelace", "ada@example.com")
	orderDate := time.Now().AddDate(0, 0, 7)
	for i := uint(1); i <= 2; i++ {
		if _, err := repo.Create(context.Background(), &entity.Booking{
			FlightID: i, CustomerID: customer.ID, OrderDate: orderDate,
		}); err != nil {
			t.Fatalf("create booking %d: %v", i, err)
		}
	}

	if _, err := customerRepo.Delete(context.Background(), customer); err != nil {
		t.Fatalf("delete customer: %v", err)
	}

	bookings, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all bookings: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected cascade delete to remove bookings, %d left", len(bookings))
	}
}

func TestTravelAgentBookingRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	customerRepo := &GormCustomerRepository{db: db}
	repo := &GormTravelAgentBookingRepository{db: db}

	customer := seedCustomer(t, customerRepo, "Ada", "Lovelace", "ada@example.com")
	orderDate := time.Now().AddDate(0, 0, 14)
	created, err := repo.Create(context.Background(), &entity.TravelAgentBooking{
		FlightID:   7,
		TaxiID:     3,
		HotelID:    5,
		CustomerID: customer.ID,
		OrderDate:  orderDate,
	})
	if err != nil {
		t.Fatalf("create travel agent booking: %v", err)
	}

	found, err := repo.FindByFlightIDAndOrderDate(context.Background(), 7, orderDate)
	if err != nil {
		t.Fatalf("find by natural key: %v", err)
	}
	if found.ID != created.ID || found.TaxiID != 3 || found.HotelID != 5 {
		t.Fatalf("round trip mismatch: %+v", found)
	}
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	repo := &GormCustomerRepository{db: db}
	tx := NewGormTransactor(db)

	wantErr := errors.New("boom")
	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := repo.Create(ctx, &entity.Customer{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PhoneNumber: "07700900123",
		}); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the work error back, got %v", err)
	}

	customers, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected rollback, %d customers stored", len(customers))
	}
}
