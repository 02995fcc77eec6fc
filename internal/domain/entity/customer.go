package entity

// Customer represents a customer record. Email is the natural key and is
// unique across all stored customers. A customer owns its bookings; deleting
// the customer cascades to them.
type Customer struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"firstName" validate:"required,max=25,personname"`
	LastName    string `json:"lastName" validate:"required,max=25,personname"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,ukphone"`
}
