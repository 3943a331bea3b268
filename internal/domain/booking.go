package domain

import "time"

// BookingStatus tracks the lifecycle of a planned delivery.
type BookingStatus string

const (
	StatusPlanned   BookingStatus = "planned"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is one appointment already placed on a day. The allocator only
// reads bookings; it never mutates them.
type Booking struct {
	ID          string        `json:"id"`
	MemberID    string        `json:"member_id"`
	ProductCode string        `json:"product_code"`
	QuantityKg  float64       `json:"quantity_kg"`
	StartsAt    MinuteOfDay   `json:"starts_at"`
	SlotCount   int           `json:"slot_count"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

func NewBooking(id, memberID, productCode string, quantityKg float64, startsAt MinuteOfDay, slotCount int) Booking {
	return Booking{
		ID:          id,
		MemberID:    memberID,
		ProductCode: productCode,
		QuantityKg:  quantityKg,
		StartsAt:    startsAt,
		SlotCount:   slotCount,
		Status:      StatusPlanned,
		CreatedAt:   time.Now().UTC(),
	}
}

// EndsAt is derived: start plus the booked slot run.
func (b Booking) EndsAt() MinuteOfDay {
	return b.StartsAt.AddSlots(b.SlotCount)
}
