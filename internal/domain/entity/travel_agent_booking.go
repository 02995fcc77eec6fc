package entity

import "time"

// TravelAgentBooking is a composite booking bundling flight, taxi and hotel
// references. Shares the (FlightID, OrderDate) natural key with Booking.
// TaxiID and HotelID are soft references to externally validated resources.
type TravelAgentBooking struct {
	ID         uint      `json:"id"`
	FlightID   uint      `json:"flightId" validate:"required"`
	TaxiID     uint      `json:"taxiId" validate:"required"`
	HotelID    uint      `json:"hotelId" validate:"required"`
	CustomerID uint      `json:"customerId" validate:"required"`
	OrderDate  time.Time `json:"orderDate" validate:"required,futuredate"`

	Customer *Customer `json:"customer,omitempty"`
}
