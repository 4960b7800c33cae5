package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"carhire-api/models"
)

type VehicleController struct {
	db *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{db: db}
}

// AvailableVehicle is the listing projection shown on the booking form.
type AvailableVehicle struct {
	ID         string  `json:"id"`
	Make       string  `json:"make"`
	ModelName  string  `json:"model_name"`
	Year       int     `json:"year"`
	DailyPrice float64 `json:"daily_price"`
}

type CreateVehicleRequest struct {
	Make          string             `json:"make" binding:"required"`
	ModelName     string             `json:"model_name" binding:"required"`
	Year          int                `json:"year" binding:"required"`
	Registration  string             `json:"registration" binding:"required"`
	Seats         int                `json:"seats" binding:"required"`
	Transmission  string             `json:"transmission" binding:"required"`
	FuelType      string             `json:"fuel_type" binding:"required"`
	Color         string             `json:"color" binding:"required"`
	DailyPrice    float64            `json:"daily_price" binding:"required"`
	MainImageURL  string             `json:"main_image_url"`
	GalleryImages models.StringSlice `json:"gallery_images"`
}

type UpdateVehicleStatusRequest struct {
	Status string `json:"status"`
}

// GetAvailableVehicles returns the bookable fleet, ordered by make.
func (vc *VehicleController) GetAvailableVehicles(c *gin.Context) {
	var vehicles []AvailableVehicle
	err := vc.db.Model(&models.Vehicle{}).
		Select("id", "make", "model_name", "year", "daily_price").
		Where("status = ?", models.VehicleStatusAvailable).
		Order("make asc").
		Find(&vehicles).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "vehicles": vehicles})
}

// UpdateVehicleStatus flips a single vehicle between Available, Booked and
// Maintenance.
func (vc *VehicleController) UpdateVehicleStatus(c *gin.Context) {
	vehicleID := c.Param("id")

	var req UpdateVehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}
	if !models.IsValidVehicleStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	if err := vc.db.Model(&vehicle).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": vehicle})
}

// GetVehicles lists the whole fleet for the back office.
func (vc *VehicleController) GetVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := vc.db.Order("make asc, model_name asc").Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicles"})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidTransmission(req.Transmission) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transmission value"})
		return
	}
	if !models.IsValidFuelType(req.FuelType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fuel type value"})
		return
	}

	var existing models.Vehicle
	if err := vc.db.Where("registration = ?", req.Registration).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Registration already exists"})
		return
	}

	vehicle := models.Vehicle{
		ID:            uuid.New().String(),
		Make:          req.Make,
		ModelName:     req.ModelName,
		Year:          req.Year,
		Registration:  req.Registration,
		Seats:         req.Seats,
		Transmission:  req.Transmission,
		FuelType:      req.FuelType,
		Color:         req.Color,
		DailyPrice:    req.DailyPrice,
		Status:        models.VehicleStatusAvailable,
		MainImageURL:  req.MainImageURL,
		GalleryImages: req.GalleryImages,
	}

	if err := vc.db.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	vehicleID := c.Param("id")

	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"make":           req.Make,
		"model_name":     req.ModelName,
		"year":           req.Year,
		"registration":   req.Registration,
		"seats":          req.Seats,
		"transmission":   req.Transmission,
		"fuel_type":      req.FuelType,
		"color":          req.Color,
		"daily_price":    req.DailyPrice,
		"main_image_url": req.MainImageURL,
	}

	if err := vc.db.Model(&vehicle).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle updated successfully"})
}

func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	vehicleID := c.Param("id")

	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if err := vc.db.Delete(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
