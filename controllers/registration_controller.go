package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"carhire-api/models"
	"carhire-api/repositories"
	"carhire-api/utils"
)

// MediaUploader is what the submission workflow needs from the media service.
type MediaUploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader, prefix string) string
}

// BookingMailer sends the post-submission confirmation. Optional; may be nil.
type BookingMailer interface {
	SendBookingConfirmation(renter *models.Renter, vehicle *models.Vehicle) error
}

type RegistrationController struct {
	db       *gorm.DB
	bookings *repositories.BookingRepository
	media    MediaUploader
	mailer   BookingMailer
	log      *zap.Logger
}

func NewRegistrationController(db *gorm.DB, media MediaUploader, mailer BookingMailer, log *zap.Logger) *RegistrationController {
	return &RegistrationController{
		db:       db,
		bookings: repositories.NewBookingRepository(db),
		media:    media,
		mailer:   mailer,
		log:      log,
	}
}

// SubmitRegistration handles the multipart KYC intake form: parse, validate,
// upload attachments, persist the renter and book the selected vehicle.
func (rc *RegistrationController) SubmitRegistration(c *gin.Context) {
	field := func(name string) string {
		return strings.TrimSpace(c.PostForm(name))
	}

	isCorporate := field("isCorporate") == "true"
	firstName := field("firstName")
	lastName := field("lastName")
	organizationName := field("organizationName")
	phone := field("phone")
	email := field("email")
	licenseNumber := field("licenseNumber")
	idType := field("idType")
	idNumber := field("idNumber")
	kraPin := field("kraPin")
	residentialAddress := field("residentialAddress")
	workAddress := field("workAddress")
	selectedVehicle := field("selectedCar")

	// Optional dates (year/month/day triples)
	var dob, licenseExpiration *time.Time
	if d, ok := utils.ParseDateParts(field("dobYear"), field("dobMonth"), field("dobDay")); ok {
		dob = &d
	}
	if d, ok := utils.ParseDateParts(field("expYear"), field("expMonth"), field("expDay")); ok {
		licenseExpiration = &d
	}

	pickupDate, pickupOK := utils.ParseDateParts(field("pickupYear"), field("pickupMonth"), field("pickupDay"))
	if pickupOK {
		pickupDate = utils.WithClockTime(pickupDate, field("pickupTime"))
	}

	returnDate, returnOK := utils.ParseDateParts(field("returnYear"), field("returnMonth"), field("returnDay"))
	if returnOK {
		returnDate = utils.WithClockTime(returnDate, field("returnTime"))
	}

	// Server-side validation; the browser form runs the same rules but is not
	// a security boundary.
	if isCorporate {
		if organizationName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Organization name is required"})
			return
		}
		firstName, lastName = "", ""
	} else {
		if firstName == "" || lastName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "First and last name are required"})
			return
		}
		organizationName = ""
	}

	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}
	if email != "" && !utils.IsValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}
	if licenseNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "License number is required"})
		return
	}
	if !models.IsValidIDType(idType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID Type is required"})
		return
	}
	if idNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID Number is required"})
		return
	}

	if !pickupOK || !returnOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pickup and return date/time are required"})
		return
	}
	if !returnDate.After(pickupDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Return date/time must be after pickup date/time"})
		return
	}
	if pickupDate.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pickup date/time must be in the future"})
		return
	}

	// The four attachments upload concurrently; each degrades to "" on its
	// own without blocking the others.
	ctx := c.Request.Context()
	var licenseFrontURL, idFrontURL, idBackURL, photoURL string

	var wg sync.WaitGroup
	upload := func(formName, prefix string, dest *string) {
		file := rc.formFile(c, formName)
		wg.Add(1)
		go func() {
			defer wg.Done()
			*dest = rc.media.Upload(ctx, file, prefix)
		}()
	}

	upload("licenseFront", "license-front", &licenseFrontURL)
	upload("idFront", "id-front", &idFrontURL)
	upload("idBack", "id-back", &idBackURL)
	upload("photo", "photo", &photoURL)
	wg.Wait()

	renter := models.Renter{
		ID:                 uuid.New().String(),
		IsCorporate:        isCorporate,
		FirstName:          firstName,
		LastName:           lastName,
		OrganizationName:   organizationName,
		Phone:              phone,
		Email:              email,
		IDType:             idType,
		IDNumber:           idNumber,
		KraPin:             kraPin,
		IDFrontURL:         idFrontURL,
		IDBackURL:          idBackURL,
		PhotoURL:           photoURL,
		LicenseNumber:      licenseNumber,
		LicenseFrontURL:    licenseFrontURL,
		LicenseExpiration:  licenseExpiration,
		DOB:                dob,
		ResidentialAddress: residentialAddress,
		WorkAddress:        workAddress,
		PickupDate:         pickupDate,
		ReturnDate:         returnDate,
		SelectedVehicleID:  selectedVehicle,
	}

	if err := rc.bookings.CreateWithBooking(&renter); err != nil {
		if err == repositories.ErrVehicleNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Selected vehicle not found"})
			return
		}
		rc.log.Error("registration submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed"})
		return
	}

	rc.sendConfirmation(&renter)

	c.JSON(http.StatusOK, gin.H{"success": true, "renter_id": renter.ID})
}

// GetRegistrations lists submissions for the back office, newest first.
func (rc *RegistrationController) GetRegistrations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := rc.db.Model(&models.Renter{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}

	var renters []models.Renter
	if err := rc.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&renters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}

	utils.SendPaginated(c, renters, page, limit, total)
}

func (rc *RegistrationController) formFile(c *gin.Context, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}

func (rc *RegistrationController) sendConfirmation(renter *models.Renter) {
	if rc.mailer == nil || renter.Email == "" {
		return
	}

	vehicle, err := rc.bookings.SelectedVehicle(renter)
	if err != nil {
		rc.log.Warn("could not load booked vehicle for confirmation email",
			zap.String("renter_id", renter.ID), zap.Error(err))
	}

	if err := rc.mailer.SendBookingConfirmation(renter, vehicle); err != nil {
		rc.log.Warn("confirmation email failed",
			zap.String("renter_id", renter.ID), zap.Error(err))
	}
}
