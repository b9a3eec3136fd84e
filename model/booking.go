package model

// BookingRequest is the payload sent to POST /bookings. Service, package and
// add-ons carry resolved display names, not catalog ids.
type BookingRequest struct {
	Service     string   `json:"service"`
	Package     string   `json:"package"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	AddOns      []string `json:"addOns"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Pincode     string   `json:"pincode"`
	Notes       string   `json:"notes,omitempty"`
	TotalAmount int      `json:"totalAmount"`
	Status      string   `json:"status"`
}

// BookingRecord is a booking as the backend returns it on admin listings.
type BookingRecord struct {
	Id          string   `json:"_id"`
	Service     string   `json:"service"`
	Package     string   `json:"package"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	AddOns      []string `json:"addOns"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	City        string   `json:"city"`
	TotalAmount int      `json:"totalAmount"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
}
