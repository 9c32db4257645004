package repository

import (
	"errors"
	"fmt"

	"github.com/foodbridge/food-donation-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrRequestNotPending is returned when the fulfillment transaction finds
	// the request already fulfilled (or otherwise no longer pending).
	ErrRequestNotPending = errors.New("request repository: request is not pending")
)

// GormRequestRepository is a GORM implementation of RequestRepository
type GormRequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &GormRequestRepository{db: db}
}

// Create creates a new request
func (r *GormRequestRepository) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

// FindByID finds a request by ID with optional preloading
func (r *GormRequestRepository) FindByID(id uint64, preload ...string) (*models.Request, error) {
	var request models.Request
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&request, id).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

// ListByNGO lists an NGO's requests, newest first
func (r *GormRequestRepository) ListByNGO(ngoID uint64) ([]models.Request, error) {
	var requests []models.Request
	if err := r.db.Preload("Donation").
		Where("ngo_id = ?", ngoID).
		Order("request_date DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListPending lists all pending requests across NGOs, newest first
func (r *GormRequestRepository) ListPending() ([]models.Request, error) {
	var requests []models.Request
	if err := r.db.Preload("NGO").
		Where("status = ?", models.RequestStatusPending).
		Order("request_date DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FulfillWithDonation creates the donation and marks the request fulfilled in
// one transaction. Either both rows land or neither does, so readers can never
// observe a fulfilled request without its donation or the reverse.
func (r *GormRequestRepository) FulfillWithDonation(requestID uint64, donation *models.Donation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return fmt.Errorf("failed to create donation: %w", err)
		}

		result := tx.Model(&models.Request{}).
			Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
			Updates(map[string]interface{}{
				"status":      models.RequestStatusFulfilled,
				"donation_id": donation.ID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Rolls back the donation insert above.
			return ErrRequestNotPending
		}

		return nil
	})
}
