package dto

import (
	"time"

	"github.com/foodbridge/food-donation-api/internal/models"
)

// DonationDTO represents a donation in API responses
type DonationDTO struct {
	ID           uint64                `json:"id"`
	DonorID      uint64                `json:"donor_id"`
	NGOID        *uint64               `json:"ngo_id"`
	FoodType     string                `json:"food_type"`
	DonationDate time.Time             `json:"donation_date"`
	ExpiryDate   time.Time             `json:"expiry_date"`
	Quantity     float64               `json:"quantity"`
	Status       models.DonationStatus `json:"status"`
	DonorName    string                `json:"donor_name,omitempty"`
	NGOName      string                `json:"ngo_name,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// DonationListResponse wraps a donation listing
type DonationListResponse struct {
	Donations []DonationDTO `json:"donations"`
}

// ToDonationDTO converts a Donation model to DonationDTO
func ToDonationDTO(donation models.Donation) DonationDTO {
	d := DonationDTO{
		ID:           donation.ID,
		DonorID:      donation.DonorID,
		NGOID:        donation.NGOID,
		FoodType:     donation.FoodType,
		DonationDate: donation.DonationDate,
		ExpiryDate:   donation.ExpiryDate,
		Quantity:     donation.Quantity,
		Status:       donation.Status,
		CreatedAt:    donation.CreatedAt,
	}

	// Names are present only when the relation was preloaded
	if donation.Donor.ID != 0 {
		d.DonorName = donation.Donor.Name
	}
	if donation.NGO != nil && donation.NGO.ID != 0 {
		d.NGOName = donation.NGO.Name
	}

	return d
}

// ToDonationListResponse converts a slice of donations
func ToDonationListResponse(donations []models.Donation) DonationListResponse {
	items := make([]DonationDTO, len(donations))
	for i, donation := range donations {
		items[i] = ToDonationDTO(donation)
	}
	return DonationListResponse{Donations: items}
}
