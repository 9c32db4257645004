package repository

import (
	"time"

	"github.com/foodbridge/food-donation-api/internal/models"
	"gorm.io/gorm"
)

// GormDonationRepository is a GORM implementation of DonationRepository
type GormDonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &GormDonationRepository{db: db}
}

// Create creates a new donation
func (r *GormDonationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

// FindByID finds a donation by ID with optional preloading
func (r *GormDonationRepository) FindByID(id uint64, preload ...string) (*models.Donation, error) {
	var donation models.Donation
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&donation, id).Error; err != nil {
		return nil, err
	}

	return &donation, nil
}

// ListByDonor lists a donor's donations, newest first
func (r *GormDonationRepository) ListByDonor(donorID uint64) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.Preload("NGO").
		Where("donor_id = ?", donorID).
		Order("donation_date DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// ListAvailable lists unexpired available donations plus any donation already
// assigned to the given NGO, soonest expiry first.
func (r *GormDonationRepository) ListAvailable(ngoID uint64, today time.Time) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.Preload("Donor").
		Where("(status = ? AND expiry_date >= ?) OR ngo_id = ?",
			models.DonationStatusAvailable, today, ngoID).
		Order("expiry_date ASC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// Claim assigns an available donation to an NGO with a single conditional
// UPDATE. Two NGOs racing on the same donation cannot both match the
// predicate, so the storage engine decides the winner; a read-then-write
// sequence here would admit both.
func (r *GormDonationRepository) Claim(donationID, ngoID uint64) (bool, error) {
	result := r.db.Model(&models.Donation{}).
		Where("id = ? AND (status = ? OR ngo_id = ?)",
			donationID, models.DonationStatusAvailable, ngoID).
		Updates(map[string]interface{}{
			"ngo_id": ngoID,
			"status": models.DonationStatusAssigned,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
