package model

import "time"

type Booking struct {
	DTO
	ListingId uint     `gorm:"not null;index" json:"listingId"`
	Listing   *Listing `gorm:"foreignKey:ListingId" json:"listing,omitempty"`
	UserId    uint     `gorm:"not null;index" json:"userId"`
	User      *User    `gorm:"foreignKey:UserId" json:"user,omitempty"`

	Quantity int     `gorm:"not null;default:1" json:"quantity"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Status   string  `gorm:"size:50;not null;default:pending" json:"status"`

	PaymentId         *string    `gorm:"size:255" json:"paymentId"`
	PaymentScreenshot *string    `json:"paymentScreenshot"`
	PaymentVerified   bool       `gorm:"not null;default:false" json:"paymentVerified"`
	PaymentStatus     string     `gorm:"size:50;not null;default:pending" json:"paymentStatus"`
	PaymentVerifiedAt *time.Time `json:"paymentVerifiedAt"`
	PaymentNotes      *string    `json:"paymentNotes"`
}

type Bookings []Booking

type CreateBookingInput struct {
	ListingId         uint    `validate:"required" json:"listingId"`
	Quantity          int     `validate:"required,min=1,max=5" json:"quantity"`
	PaymentId         *string `json:"paymentId"`
	PaymentScreenshot *string `json:"paymentScreenshot"`
}

type UpdateBookingInput struct {
	Status *string `validate:"omitempty,oneof=pending waitlist accepted rejected cancelled" json:"status,omitempty"`
}

type PaymentProofInput struct {
	PaymentId         string `validate:"required" json:"paymentId"`
	PaymentScreenshot string `validate:"required" json:"paymentScreenshot"`
}

type BookingStatusInput struct {
	Status string `validate:"required,oneof=accepted rejected waitlist" json:"status"`
}

type VerifyPaymentInput struct {
	PaymentStatus string  `validate:"required,oneof=pending verified fake" json:"paymentStatus"`
	Notes         *string `json:"notes"`
}

// BookingDetail is a booking joined with the user and listing it points at,
// used by the admin overview.
type BookingDetail struct {
	Booking
	UserEmail   string `json:"userEmail"`
	UserName    string `json:"userName"`
	ListingName string `json:"listingName"`
	ListingType string `json:"listingType"`
}
