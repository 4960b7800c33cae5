package models

import (
	"time"
)

// Vehicle statuses
const (
	VehicleStatusAvailable   = "Available"
	VehicleStatusBooked      = "Booked"
	VehicleStatusMaintenance = "Maintenance"
)

// Transmission types
const (
	TransmissionAutomatic = "Automatic"
	TransmissionManual    = "Manual"
)

// Fuel types
const (
	FuelTypePetrol   = "Petrol"
	FuelTypeDiesel   = "Diesel"
	FuelTypeHybrid   = "Hybrid"
	FuelTypeElectric = "Electric"
)

type Vehicle struct {
	ID            string      `json:"id" gorm:"primaryKey;size:191"`
	Make          string      `json:"make" gorm:"not null;size:100"`
	ModelName     string      `json:"model_name" gorm:"not null;size:100"`
	Year          int         `json:"year" gorm:"not null"`
	Registration  string      `json:"registration" gorm:"uniqueIndex;not null;size:20"`
	Seats         int         `json:"seats" gorm:"not null"`
	Transmission  string      `json:"transmission" gorm:"not null;size:20"`
	FuelType      string      `json:"fuel_type" gorm:"not null;size:20"`
	Color         string      `json:"color" gorm:"not null;size:50"`
	DailyPrice    float64     `json:"daily_price" gorm:"not null"`
	Status        string      `json:"status" gorm:"not null;default:'Available';size:20"`
	MainImageURL  string      `json:"main_image_url" gorm:"size:500"`
	GalleryImages StringSlice `json:"gallery_images"`
	BookedByID    *string     `json:"booked_by_id" gorm:"size:191"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// IsValidVehicleStatus reports whether status is one of the recognized values.
func IsValidVehicleStatus(status string) bool {
	switch status {
	case VehicleStatusAvailable, VehicleStatusBooked, VehicleStatusMaintenance:
		return true
	}
	return false
}

func IsValidTransmission(transmission string) bool {
	switch transmission {
	case TransmissionAutomatic, TransmissionManual:
		return true
	}
	return false
}

func IsValidFuelType(fuelType string) bool {
	switch fuelType {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeHybrid, FuelTypeElectric:
		return true
	}
	return false
}
