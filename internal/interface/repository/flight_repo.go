package repository

import (
	"context"

	"gorm.io/gorm"

	"travelbooking-service/internal/domain/entity"
	"travelbooking-service/internal/domain/repository"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID           uint   `gorm:"primaryKey"`
	FlightNumber string `gorm:"column:flight_number;size:5;not null;uniqueIndex"`
	Departure    string `gorm:"column:departure;size:3;not null"`
	Destination  string `gorm:"column:destination;size:3;not null"`
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

func toFlightEntity(m *Flights) *entity.Flight {
	return &entity.Flight{
		ID:           m.ID,
		FlightNumber: m.FlightNumber,
		Departure:    m.Departure,
		Destination:  m.Destination,
	}
}

func toFlightModel(f *entity.Flight) *Flights {
	return &Flights{
		ID:           f.ID,
		FlightNumber: f.FlightNumber,
		Departure:    f.Departure,
		Destination:  f.Destination,
	}
}

func toFlightEntities(models []Flights) []entity.Flight {
	flights := make([]entity.Flight, 0, len(models))
	for i := range models {
		flights = append(flights, *toFlightEntity(&models[i]))
	}
	return flights
}

// FindAll returns every flight ordered by flight number
func (r *GormFlightRepository) FindAll(ctx context.Context) ([]entity.Flight, error) {
	var models []Flights
	result := dbFrom(ctx, r.db).Order("flight_number ASC").Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toFlightEntities(models), nil
}

// FindByID finds a flight by id
func (r *GormFlightRepository) FindByID(ctx context.Context, id uint) (*entity.Flight, error) {
	var model Flights
	result := dbFrom(ctx, r.db).First(&model, id)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toFlightEntity(&model), nil
}

// FindByFlightNumber finds the first flight with the given flight number
func (r *GormFlightRepository) FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	var model Flights
	result := dbFrom(ctx, r.db).Where("flight_number = ?", flightNumber).First(&model)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toFlightEntity(&model), nil
}

// FindAllByDeparture returns the flights leaving from the given airport
func (r *GormFlightRepository) FindAllByDeparture(ctx context.Context, departure string) ([]entity.Flight, error) {
	var models []Flights
	result := dbFrom(ctx, r.db).Where("departure = ?", departure).Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toFlightEntities(models), nil
}

// FindAllByDestination returns the flights arriving at the given airport
func (r *GormFlightRepository) FindAllByDestination(ctx context.Context, destination string) ([]entity.Flight, error) {
	var models []Flights
	result := dbFrom(ctx, r.db).Where("destination = ?", destination).Find(&models)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	return toFlightEntities(models), nil
}

// Create persists the flight and populates its id
func (r *GormFlightRepository) Create(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	model := toFlightModel(flight)
	model.ID = 0
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return nil, mapError(err)
	}
	return toFlightEntity(model), nil
}

// Update replaces the stored record with the same id, inserting when absent
func (r *GormFlightRepository) Update(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	model := toFlightModel(flight)
	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return nil, mapError(err)
	}
	return toFlightEntity(model), nil
}

// Delete removes the record matching the flight's id
func (r *GormFlightRepository) Delete(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	if flight.ID == 0 {
		return flight, nil
	}
	if err := dbFrom(ctx, r.db).Delete(&Flights{}, flight.ID).Error; err != nil {
		return nil, mapError(err)
	}
	return flight, nil
}
