package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/foodbridge/food-donation-api/internal/constants"
	"github.com/foodbridge/food-donation-api/internal/models"
	"github.com/foodbridge/food-donation-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrInvalidDateRange = errors.New("expiry date cannot be before donation date")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrFoodTypeRequired = errors.New("food type is required")
	ErrFoodTypeTooLong  = errors.New("food type is too long")
	ErrAlreadyClaimed   = errors.New("donation is already assigned to another NGO")
	ErrNGONotFound      = errors.New("NGO not found")
)

// DonationService handles the donation lifecycle.
type DonationService struct {
	donationRepo repository.DonationRepository
	ngoRepo      repository.NGORepository
}

// NewDonationService creates a new DonationService.
func NewDonationService(donationRepo repository.DonationRepository, ngoRepo repository.NGORepository) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		ngoRepo:      ngoRepo,
	}
}

// CreateDonationInput represents input for creating a donation.
type CreateDonationInput struct {
	DonorID      uint64
	FoodType     string
	DonationDate time.Time
	ExpiryDate   time.Time
	Quantity     float64
	NGOID        *uint64
}

// CreateDonation validates and records a new donation. A donation targeted at
// an NGO starts out Assigned; otherwise it is Available for claiming.
func (s *DonationService) CreateDonation(input CreateDonationInput) (*models.Donation, error) {
	if err := validateFoodType(input.FoodType); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if input.ExpiryDate.Before(input.DonationDate) {
		return nil, ErrInvalidDateRange
	}

	status := models.DonationStatusAvailable
	if input.NGOID != nil {
		if _, err := s.ngoRepo.FindByID(*input.NGOID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNGONotFound
			}
			return nil, fmt.Errorf("failed to verify NGO: %w", err)
		}
		status = models.DonationStatusAssigned
	}

	donation := &models.Donation{
		DonorID:      input.DonorID,
		NGOID:        input.NGOID,
		FoodType:     input.FoodType,
		DonationDate: input.DonationDate,
		ExpiryDate:   input.ExpiryDate,
		Quantity:     input.Quantity,
		Status:       status,
	}

	if err := s.donationRepo.Create(donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	return donation, nil
}

// ClaimDonation transitions a donation from Available to Assigned for the
// given NGO. Re-claiming a donation the NGO already holds succeeds; a donation
// held by another NGO fails with ErrAlreadyClaimed.
func (s *DonationService) ClaimDonation(donationID, ngoID uint64) (*models.Donation, error) {
	claimed, err := s.donationRepo.Claim(donationID, ngoID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim donation: %w", err)
	}

	if !claimed {
		// Zero affected rows: unknown id, lost race, or a re-claim the driver
		// reported as a no-op because nothing changed. The donation is
		// terminal once assigned, so a plain read settles which one.
		donation, err := s.donationRepo.FindByID(donationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDonationNotFound
			}
			return nil, fmt.Errorf("failed to find donation: %w", err)
		}
		if donation.NGOID == nil || *donation.NGOID != ngoID {
			return nil, ErrAlreadyClaimed
		}
		return donation, nil
	}

	return s.donationRepo.FindByID(donationID, "Donor", "NGO")
}

// ListAvailableDonations returns unexpired donations an NGO can claim, plus
// the ones it has already claimed, soonest expiry first.
func (s *DonationService) ListAvailableDonations(ngoID uint64) ([]models.Donation, error) {
	today := truncateToDate(time.Now())
	donations, err := s.donationRepo.ListAvailable(ngoID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list available donations: %w", err)
	}
	return donations, nil
}

// ListDonorDonations returns a donor's donation history, newest first.
func (s *DonationService) ListDonorDonations(donorID uint64) ([]models.Donation, error) {
	donations, err := s.donationRepo.ListByDonor(donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

// truncateToDate drops the time-of-day portion.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func validateFoodType(foodType string) error {
	if foodType == "" {
		return ErrFoodTypeRequired
	}
	if len(foodType) > constants.MaxFoodTypeLength {
		return ErrFoodTypeTooLong
	}
	return nil
}
