package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/foodbridge/food-donation-api/internal/models"
	"github.com/foodbridge/food-donation-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrRequestNotPending = errors.New("request has already been fulfilled")
)

// RequestService handles the request lifecycle.
type RequestService struct {
	requestRepo repository.RequestRepository
}

// NewRequestService creates a new RequestService.
func NewRequestService(requestRepo repository.RequestRepository) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
	}
}

// CreateRequestInput represents input for creating a request.
type CreateRequestInput struct {
	NGOID    uint64
	FoodType string
	Quantity float64
}

// CreateRequest records a new pending request dated today.
func (s *RequestService) CreateRequest(input CreateRequestInput) (*models.Request, error) {
	if err := validateFoodType(input.FoodType); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	request := &models.Request{
		NGOID:       input.NGOID,
		FoodType:    input.FoodType,
		Quantity:    input.Quantity,
		RequestDate: truncateToDate(time.Now()),
		Status:      models.RequestStatusPending,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return request, nil
}

// ListNGORequests returns an NGO's requests, newest first.
func (s *RequestService) ListNGORequests(ngoID uint64) ([]models.Request, error) {
	requests, err := s.requestRepo.ListByNGO(ngoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// ListOpenRequests returns pending requests across all NGOs, newest first, so
// donors can pick one to fulfill.
func (s *RequestService) ListOpenRequests() ([]models.Request, error) {
	requests, err := s.requestRepo.ListPending()
	if err != nil {
		return nil, fmt.Errorf("failed to list open requests: %w", err)
	}
	return requests, nil
}

// FulfillRequestInput represents input for fulfilling a request.
type FulfillRequestInput struct {
	DonorID      uint64
	RequestID    uint64
	FoodType     string
	DonationDate time.Time
	ExpiryDate   time.Time
	Quantity     float64
}

// FulfillRequest creates a donation pre-assigned to the requesting NGO and
// marks the request fulfilled. Both writes commit together or not at all.
func (s *RequestService) FulfillRequest(input FulfillRequestInput) (*models.Request, error) {
	if err := validateFoodType(input.FoodType); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if input.ExpiryDate.Before(input.DonationDate) {
		return nil, ErrInvalidDateRange
	}

	request, err := s.requestRepo.FindByID(input.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}
	if request.Status != models.RequestStatusPending {
		return nil, ErrRequestNotPending
	}

	// The receiving NGO is the request's owner; the fulfillment donation is
	// born Assigned so it never appears in the claimable pool.
	ngoID := request.NGOID
	donation := &models.Donation{
		DonorID:      input.DonorID,
		NGOID:        &ngoID,
		FoodType:     input.FoodType,
		DonationDate: input.DonationDate,
		ExpiryDate:   input.ExpiryDate,
		Quantity:     input.Quantity,
		Status:       models.DonationStatusAssigned,
	}

	if err := s.requestRepo.FulfillWithDonation(request.ID, donation); err != nil {
		if errors.Is(err, repository.ErrRequestNotPending) {
			return nil, ErrRequestNotPending
		}
		return nil, fmt.Errorf("failed to fulfill request: %w", err)
	}

	return s.requestRepo.FindByID(request.ID, "NGO", "Donation")
}
