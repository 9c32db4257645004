package models

import "time"

type DonationStatus string

const (
	DonationStatusAvailable DonationStatus = "Available"
	DonationStatusAssigned  DonationStatus = "Assigned"
)

type Donation struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	DonorID      uint64         `gorm:"not null" json:"donor_id"`
	NGOID        *uint64        `gorm:"column:ngo_id" json:"ngo_id"`
	FoodType     string         `gorm:"type:varchar(100);not null" json:"food_type"`
	DonationDate time.Time      `gorm:"not null" json:"donation_date"`
	ExpiryDate   time.Time      `gorm:"not null" json:"expiry_date"`
	Quantity     float64        `gorm:"not null" json:"quantity"`
	Status       DonationStatus `gorm:"type:varchar(50);not null;default:'Available'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relations
	Donor Donor `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	NGO   *NGO  `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
}
