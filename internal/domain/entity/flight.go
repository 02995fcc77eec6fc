package entity

// Flight represents a flight record. FlightNumber is the natural key.
// Departure and destination are three-letter uppercase airport codes; the
// two must differ, which is checked by the flight validator rather than a
// field constraint.
type Flight struct {
	ID           uint   `json:"id"`
	FlightNumber string `json:"flightNumber" validate:"required,flightnumber"`
	Departure    string `json:"departure" validate:"required,airportcode"`
	Destination  string `json:"destination" validate:"required,airportcode"`
}
