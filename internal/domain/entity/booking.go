package entity

import "time"

// Booking represents a flight booking owned by a customer. The pair
// (FlightID, OrderDate) is the natural key: one booking per flight per order
// date system-wide. FlightID is a soft reference checked at the boundary;
// CustomerID is a hard reference resolved by the service at create time.
type Booking struct {
	ID         uint      `json:"id"`
	FlightID   uint      `json:"flightId" validate:"required"`
	CustomerID uint      `json:"customerId" validate:"required"`
	OrderDate  time.Time `json:"orderDate" validate:"required,futuredate"`

	Customer *Customer `json:"customer,omitempty"`
}
