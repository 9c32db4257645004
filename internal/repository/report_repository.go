package repository

import (
	"time"

	"github.com/foodbridge/food-donation-api/internal/models"
	"gorm.io/gorm"
)

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// FoodTypeStats returns per-food-type totals, largest total first
func (r *GormReportRepository) FoodTypeStats() ([]FoodTypeStat, error) {
	var stats []FoodTypeStat
	err := r.db.Model(&models.Donation{}).
		Select("food_type, " +
			"COUNT(id) AS total_donations, " +
			"SUM(quantity) AS total_quantity, " +
			"AVG(quantity) AS avg_quantity, " +
			"MIN(donation_date) AS first_donation, " +
			"MAX(donation_date) AS last_donation").
		Group("food_type").
		Order("total_quantity DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// DonationsSince returns donations on or after the given date
func (r *GormReportRepository) DonationsSince(since time.Time) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.Where("donation_date >= ?", since).
		Order("donation_date ASC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// NGODistribution returns per-NGO received totals, largest first
func (r *GormReportRepository) NGODistribution() ([]NGODistributionRow, error) {
	var rows []NGODistributionRow
	err := r.db.Model(&models.NGO{}).
		Select("ngos.name AS ngo_name, " +
			"COUNT(donations.id) AS donations_received, " +
			"SUM(donations.quantity) AS total_quantity").
		Joins("JOIN donations ON donations.ngo_id = ngos.id").
		Group("ngos.id, ngos.name").
		Order("total_quantity DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopDonors returns the highest-volume donors
func (r *GormReportRepository) TopDonors(limit int) ([]TopDonorRow, error) {
	var rows []TopDonorRow
	err := r.db.Model(&models.Donor{}).
		Select("donors.name AS donor_name, " +
			"COUNT(donations.id) AS donation_count, " +
			"SUM(donations.quantity) AS total_donated").
		Joins("JOIN donations ON donations.donor_id = donors.id").
		Group("donors.id, donors.name").
		Order("total_donated DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
