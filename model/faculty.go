package model

type Faculty struct {
	DTO
	ListingId uint    `gorm:"not null;index" json:"listingId"`
	Name      string  `gorm:"size:255;not null" validate:"required,min=2,max=255" json:"name"`
	Subject   *string `gorm:"size:255" json:"subject"`
	ImageUrl  *string `json:"imageUrl"`
}

type Faculties []Faculty

type CreateFacultyInput struct {
	ListingId uint    `validate:"required" json:"listingId"`
	Name      string  `validate:"required,min=2,max=255" json:"name"`
	Subject   *string `json:"subject"`
	ImageUrl  *string `json:"imageUrl"`
}

type UpdateFacultyInput struct {
	Name     *string `validate:"omitempty,min=2,max=255" json:"name,omitempty"`
	Subject  *string `json:"subject,omitempty"`
	ImageUrl *string `json:"imageUrl,omitempty"`
}
