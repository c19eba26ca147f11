package model

import "time"

type User struct {
	DTO
	Email            string     `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password         string     `gorm:"not null" validate:"required,min=6,max=72" json:"-"`
	Role             string     `gorm:"size:50;not null;default:student" json:"role"`
	IsApprovedLister bool       `gorm:"not null;default:false" json:"isApprovedLister"`
	IsVerifiedEmail  bool       `gorm:"not null;default:false" json:"isVerifiedEmail"`
	IsActive         bool       `gorm:"not null;default:true" json:"isActive"`
	FirstName        *string    `json:"firstName"`
	LastName         *string    `json:"lastName"`
	PhoneNumber      *string    `gorm:"size:20" json:"phoneNumber"`
	Address          *string    `gorm:"size:500" json:"address"`
	City             *string    `gorm:"size:100" json:"city"`
	State            *string    `gorm:"size:100" json:"state"`
	Pincode          *string    `gorm:"size:10" json:"pincode"`
	ProfileImage     *string    `json:"profileImage"`
	LastLogin        *time.Time `json:"lastLogin"`

	Listings []Listing `gorm:"foreignKey:OwnerId" json:"listings,omitempty"`
}

type Users []User

type SignupInput struct {
	Email     string  `validate:"required,email" json:"email"`
	Password  string  `validate:"required,min=6,max=72" json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `validate:"omitempty,oneof=student hostel coaching library tiffin" json:"role"`
}

type SigninInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}

type UpdateProfileInput struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Pincode     *string `json:"pincode,omitempty"`
}

type ApproveListerInput struct {
	IsApprovedLister bool `json:"isApprovedLister"`
}

type UpdateRoleInput struct {
	Role string `validate:"required,oneof=student hostel coaching library tiffin admin" json:"role"`
}
