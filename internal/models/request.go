package models

import "time"

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusFulfilled RequestStatus = "Fulfilled"
	// RequestStatusCancelled is reserved in the schema; no operation produces it.
	RequestStatusCancelled RequestStatus = "Cancelled"
)

type Request struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	NGOID       uint64        `gorm:"column:ngo_id;not null" json:"ngo_id"`
	FoodType    string        `gorm:"type:varchar(100);not null" json:"food_type"`
	Quantity    float64       `gorm:"not null" json:"quantity"`
	RequestDate time.Time     `gorm:"not null" json:"request_date"`
	Status      RequestStatus `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`
	DonationID  *uint64       `json:"donation_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	NGO      NGO       `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
	Donation *Donation `gorm:"foreignKey:DonationID" json:"donation,omitempty"`
}
