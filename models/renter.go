package models

import (
	"time"
)

// Accepted identity document types
const (
	IDTypeNationalID = "national_id"
	IDTypePassport   = "passport"
	IDTypeAlienID    = "alien_id"
	IDTypeMilitaryID = "military_id"
)

// Renter is one KYC intake submission. Records are created by the booking
// workflow and never updated afterwards; resubmitting the form creates a
// second record.
type Renter struct {
	ID          string `json:"id" gorm:"primaryKey;size:191"`
	IsCorporate bool   `json:"is_corporate" gorm:"not null;default:false"`

	// Exactly one of (FirstName, LastName) or OrganizationName is populated,
	// governed by IsCorporate.
	FirstName        string `json:"first_name" gorm:"size:100"`
	LastName         string `json:"last_name" gorm:"size:100"`
	OrganizationName string `json:"organization_name" gorm:"size:255"`

	Phone string `json:"phone" gorm:"not null;size:30"`
	Email string `json:"email" gorm:"size:255"`

	IDType     string `json:"id_type" gorm:"not null;size:20"`
	IDNumber   string `json:"id_number" gorm:"not null;size:50"`
	KraPin     string `json:"kra_pin" gorm:"size:30"`
	IDFrontURL string `json:"id_front_url" gorm:"size:500"`
	IDBackURL  string `json:"id_back_url" gorm:"size:500"`
	PhotoURL   string `json:"photo_url" gorm:"size:500"`

	LicenseNumber     string     `json:"license_number" gorm:"not null;size:50"`
	LicenseFrontURL   string     `json:"license_front_url" gorm:"size:500"`
	LicenseExpiration *time.Time `json:"license_expiration"`
	DOB               *time.Time `json:"dob"`

	ResidentialAddress string `json:"residential_address" gorm:"size:500"`
	WorkAddress        string `json:"work_address" gorm:"size:500"`

	PickupDate time.Time `json:"pickup_date" gorm:"not null"`
	ReturnDate time.Time `json:"return_date" gorm:"not null"`

	// Weak reference to the booked vehicle; empty when no vehicle was selected.
	SelectedVehicleID string `json:"selected_vehicle_id" gorm:"size:191"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidIDType(idType string) bool {
	switch idType {
	case IDTypeNationalID, IDTypePassport, IDTypeAlienID, IDTypeMilitaryID:
		return true
	}
	return false
}
