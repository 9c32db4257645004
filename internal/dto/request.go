package dto

import (
	"time"

	"github.com/foodbridge/food-donation-api/internal/models"
)

// RequestDTO represents a food request in API responses
type RequestDTO struct {
	ID          uint64               `json:"id"`
	NGOID       uint64               `json:"ngo_id"`
	FoodType    string               `json:"food_type"`
	Quantity    float64              `json:"quantity"`
	RequestDate time.Time            `json:"request_date"`
	Status      models.RequestStatus `json:"status"`
	DonationID  *uint64              `json:"donation_id"`
	NGOName     string               `json:"ngo_name,omitempty"`
	Donation    *DonationDTO         `json:"donation,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// RequestListResponse wraps a request listing
type RequestListResponse struct {
	Requests []RequestDTO `json:"requests"`
}

// ToRequestDTO converts a Request model to RequestDTO
func ToRequestDTO(request models.Request) RequestDTO {
	r := RequestDTO{
		ID:          request.ID,
		NGOID:       request.NGOID,
		FoodType:    request.FoodType,
		Quantity:    request.Quantity,
		RequestDate: request.RequestDate,
		Status:      request.Status,
		DonationID:  request.DonationID,
		CreatedAt:   request.CreatedAt,
	}

	if request.NGO.ID != 0 {
		r.NGOName = request.NGO.Name
	}
	if request.Donation != nil && request.Donation.ID != 0 {
		donation := ToDonationDTO(*request.Donation)
		r.Donation = &donation
	}

	return r
}

// ToRequestListResponse converts a slice of requests
func ToRequestListResponse(requests []models.Request) RequestListResponse {
	items := make([]RequestDTO, len(requests))
	for i, request := range requests {
		items[i] = ToRequestDTO(request)
	}
	return RequestListResponse{Requests: items}
}
