package repository

import (
	"github.com/foodbridge/food-donation-api/internal/models"
	"gorm.io/gorm"
)

// GormDonorRepository is a GORM implementation of DonorRepository
type GormDonorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new DonorRepository
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &GormDonorRepository{db: db}
}

// Create creates a new donor profile
func (r *GormDonorRepository) Create(donor *models.Donor) error {
	return r.db.Create(donor).Error
}

// FindByID finds a donor by ID
func (r *GormDonorRepository) FindByID(id uint64) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.First(&donor, id).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

// FindByUserID finds the donor profile owned by a user
func (r *GormDonorRepository) FindByUserID(userID uint64) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.Where("user_id = ?", userID).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

// GormNGORepository is a GORM implementation of NGORepository
type GormNGORepository struct {
	db *gorm.DB
}

// NewNGORepository creates a new NGORepository
func NewNGORepository(db *gorm.DB) NGORepository {
	return &GormNGORepository{db: db}
}

// Create creates a new NGO profile
func (r *GormNGORepository) Create(ngo *models.NGO) error {
	return r.db.Create(ngo).Error
}

// FindByID finds an NGO by ID
func (r *GormNGORepository) FindByID(id uint64) (*models.NGO, error) {
	var ngo models.NGO
	if err := r.db.First(&ngo, id).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

// FindByUserID finds the NGO profile owned by a user
func (r *GormNGORepository) FindByUserID(userID uint64) (*models.NGO, error) {
	var ngo models.NGO
	if err := r.db.Where("user_id = ?", userID).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

// ListAll lists every NGO ordered by name
func (r *GormNGORepository) ListAll() ([]models.NGO, error) {
	var ngos []models.NGO
	if err := r.db.Order("name ASC").Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}
