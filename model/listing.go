package model

type Listing struct {
	DTO
	OwnerId     uint     `gorm:"not null;index" json:"ownerId"`
	Owner       *User    `gorm:"foreignKey:OwnerId" json:"owner,omitempty"`
	Type        string   `gorm:"size:50;not null" validate:"required,oneof=hostel coaching library tiffin" json:"type"`
	Name        string   `gorm:"size:255;not null" validate:"required,min=2,max=255" json:"name"`
	Slug        string   `gorm:"uniqueIndex;size:255" json:"slug"`
	Description *string  `json:"description"`
	Price       float64  `gorm:"not null" validate:"required,gt=0" json:"price"`
	Location    *string  `gorm:"size:500" json:"location"`
	Features    []string `gorm:"serializer:json" json:"features"`
	ImageUrl    *string  `json:"imageUrl"`

	Faculty  []Faculty `gorm:"foreignKey:ListingId;constraint:OnDelete:CASCADE" json:"faculty,omitempty"`
	Bookings []Booking `gorm:"foreignKey:ListingId;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}

type Listings []Listing

type CreateListingInput struct {
	Type        string   `validate:"required,oneof=hostel coaching library tiffin" json:"type"`
	Name        string   `validate:"required,min=2,max=255" json:"name"`
	Description *string  `json:"description"`
	Price       float64  `validate:"required,gt=0" json:"price"`
	Location    *string  `json:"location"`
	Features    []string `json:"features"`
}

type UpdateListingInput struct {
	Name        *string  `validate:"omitempty,min=2,max=255" json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `validate:"omitempty,gt=0" json:"price,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Features    []string `json:"features,omitempty"`
	ImageUrl    *string  `json:"imageUrl,omitempty"`
}

// AdminListingItem is one row of the admin listing overview with
// per-listing booking counts.
type AdminListingItem struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Price           float64 `json:"price"`
	Location        *string `json:"location"`
	OwnerEmail      string  `json:"ownerEmail"`
	OwnerName       string  `json:"ownerName"`
	TotalBookings   int64   `json:"totalBookings"`
	PendingBookings int64   `json:"pendingBookings"`
}

type BookingStats struct {
	TotalBookings    int64   `json:"totalBookings"`
	PendingBookings  int64   `json:"pendingBookings"`
	AcceptedBookings int64   `json:"acceptedBookings"`
	RejectedBookings int64   `json:"rejectedBookings"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

type EnrolledUser struct {
	ID            uint    `json:"id"`
	Email         string  `json:"email"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	PhoneNumber   *string `json:"phoneNumber"`
	BookingId     uint    `json:"bookingId"`
	BookingStatus string  `json:"bookingStatus"`
	BookingAmount float64 `json:"bookingAmount"`
	EnrolledAt    string  `json:"enrolledAt"`
	PaymentId     *string `json:"paymentId"`
}
