package domain

import "time"

// Farmer is a cooperative member who delivers produce.
type Farmer struct {
	MemberID  string    `json:"member_id"`
	DNI       string    `json:"dni"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a goods type accepted at the weighing station.
// DeliveryTimeFactor is the hours needed to process the reference quantity
// (500 kg) of this product.
type Product struct {
	Code               string    `json:"code"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	ContainerType      string    `json:"container_type"`
	StoredQuantityKg   float64   `json:"stored_quantity_kg"`
	DeliveryTimeFactor float64   `json:"delivery_time_factor"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Representative is the contact person of a buyer company.
type Representative struct {
	DNI      string `json:"dni"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// Company is a buyer the cooperative sells to.
type Company struct {
	CIF            string         `json:"cif"`
	LegalName      string         `json:"legal_name"`
	PostalAddress  string         `json:"postal_address"`
	Town           string         `json:"town"`
	Phone          string         `json:"phone"`
	Representative Representative `json:"representative"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Weighing is a completed delivery measured at the station.
type Weighing struct {
	WeighingID    string    `json:"weighing_id"`
	MemberID      string    `json:"member_id"`
	ProductCode   string    `json:"product_code"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
	YieldCategory string    `json:"yield_category"`
	QuantityKg    float64   `json:"quantity_kg"`
	CreatedAt     time.Time `json:"created_at"`
}

// WindowSettings is the persisted singleton operating window. When absent,
// callers fall back to the configured default window.
type WindowSettings struct {
	OpensAt   MinuteOfDay `json:"opens_at"`
	ClosesAt  MinuteOfDay `json:"closes_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Window returns the settings row as an operating window value.
func (s WindowSettings) Window() OperatingWindow {
	return OperatingWindow{OpensAt: s.OpensAt, ClosesAt: s.ClosesAt}
}
