package repository

import (
	"time"

	"github.com/foodbridge/food-donation-api/internal/models"
)

// UserRepository defines the interface for identity data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateWithDonorProfile creates a user and their donor profile
	// within a single transaction.
	CreateWithDonorProfile(user *models.User, donor *models.Donor) error

	// CreateWithNGOProfile creates a user and their NGO profile
	// within a single transaction.
	CreateWithNGOProfile(user *models.User, ngo *models.NGO) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// DonorRepository defines the interface for donor profile data access
type DonorRepository interface {
	// Create creates a new donor profile
	Create(donor *models.Donor) error

	// FindByID finds a donor by ID
	FindByID(id uint64) (*models.Donor, error)

	// FindByUserID finds the donor profile owned by a user
	FindByUserID(userID uint64) (*models.Donor, error)
}

// NGORepository defines the interface for NGO profile data access
type NGORepository interface {
	// Create creates a new NGO profile
	Create(ngo *models.NGO) error

	// FindByID finds an NGO by ID
	FindByID(id uint64) (*models.NGO, error)

	// FindByUserID finds the NGO profile owned by a user
	FindByUserID(userID uint64) (*models.NGO, error)

	// ListAll lists every NGO ordered by name
	ListAll() ([]models.NGO, error)
}

// DonationRepository defines the interface for donation data access
type DonationRepository interface {
	// Create creates a new donation
	Create(donation *models.Donation) error

	// FindByID finds a donation by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Donation, error)

	// ListByDonor lists a donor's donations, newest first
	ListByDonor(donorID uint64) ([]models.Donation, error)

	// ListAvailable lists unexpired available donations plus any donation
	// already assigned to the given NGO, soonest expiry first
	ListAvailable(ngoID uint64, today time.Time) ([]models.Donation, error)

	// Claim atomically assigns an available donation to an NGO. The predicate
	// also matches a donation the NGO already holds, so a re-claim by the
	// holder counts as claimed. Returns whether a row was updated.
	Claim(donationID, ngoID uint64) (bool, error)
}

// RequestRepository defines the interface for request data access
type RequestRepository interface {
	// Create creates a new request
	Create(request *models.Request) error

	// FindByID finds a request by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Request, error)

	// ListByNGO lists an NGO's requests, newest first
	ListByNGO(ngoID uint64) ([]models.Request, error)

	// ListPending lists all pending requests across NGOs, newest first
	ListPending() ([]models.Request, error)

	// FulfillWithDonation creates the donation and marks the request
	// fulfilled within a single transaction. The request must still be
	// pending when the update runs.
	FulfillWithDonation(requestID uint64, donation *models.Donation) error
}

// FoodTypeStat aggregates donations for one food type
type FoodTypeStat struct {
	FoodType       string    `json:"food_type"`
	TotalDonations int64     `json:"total_donations"`
	TotalQuantity  float64   `json:"total_quantity"`
	AvgQuantity    float64   `json:"avg_quantity"`
	FirstDonation  time.Time `json:"first_donation"`
	LastDonation   time.Time `json:"last_donation"`
}

// NGODistributionRow aggregates donations received by one NGO
type NGODistributionRow struct {
	NGOName           string  `json:"ngo_name"`
	DonationsReceived int64   `json:"donations_received"`
	TotalQuantity     float64 `json:"total_quantity"`
}

// TopDonorRow aggregates donations given by one donor
type TopDonorRow struct {
	DonorName     string  `json:"donor_name"`
	DonationCount int64   `json:"donation_count"`
	TotalDonated  float64 `json:"total_donated"`
}

// ReportRepository defines read-only aggregation queries
type ReportRepository interface {
	// FoodTypeStats returns per-food-type totals, largest total first
	FoodTypeStats() ([]FoodTypeStat, error)

	// DonationsSince returns donations on or after the given date
	DonationsSince(since time.Time) ([]models.Donation, error)

	// NGODistribution returns per-NGO received totals, largest first
	NGODistribution() ([]NGODistributionRow, error)

	// TopDonors returns the highest-volume donors
	TopDonors(limit int) ([]TopDonorRow, error)
}
