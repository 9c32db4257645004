package dto

import (
	"github.com/foodbridge/food-donation-api/internal/models"
)

// UserDTO represents a user identity in API responses
type UserDTO struct {
	ID       uint64          `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// ProfileDTO represents a donor or NGO profile in API responses
type ProfileDTO struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
}

// CurrentUserDTO bundles the identity with its profile
type CurrentUserDTO struct {
	UserDTO
	Profile *ProfileDTO `json:"profile,omitempty"`
}

// NGOListItemDTO is the minimal NGO shape for the donor's NGO picker
type NGOListItemDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// ToDonorProfileDTO converts a Donor model to ProfileDTO
func ToDonorProfileDTO(donor models.Donor) ProfileDTO {
	return ProfileDTO{
		ID:     donor.ID,
		Name:   donor.Name,
		Email:  donor.Email,
		Phone:  donor.Phone,
		Street: donor.Street,
		City:   donor.City,
	}
}

// ToNGOProfileDTO converts an NGO model to ProfileDTO
func ToNGOProfileDTO(ngo models.NGO) ProfileDTO {
	return ProfileDTO{
		ID:     ngo.ID,
		Name:   ngo.Name,
		Email:  ngo.Email,
		Phone:  ngo.Phone,
		Street: ngo.Street,
		City:   ngo.City,
	}
}

// ToNGOListItemDTO converts an NGO model to its list shape
func ToNGOListItemDTO(ngo models.NGO) NGOListItemDTO {
	return NGOListItemDTO{
		ID:   ngo.ID,
		Name: ngo.Name,
	}
}
