package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carhire-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vehicle{}, &models.Renter{}, &models.Admin{}))
	return db
}

func seedVehicle(t *testing.T, db *gorm.DB, make, status string) models.Vehicle {
	t.Helper()

	vehicle := models.Vehicle{
		ID:           uuid.New().String(),
		Make:         make,
		ModelName:    "Test Model",
		Year:         2020,
		Registration: uuid.New().String()[:8],
		Seats:        5,
		Transmission: models.TransmissionAutomatic,
		FuelType:     models.FuelTypePetrol,
		Color:        "White",
		DailyPrice:   5000,
		Status:       status,
	}
	require.NoError(t, db.Create(&vehicle).Error)
	return vehicle
}

// stubUploader records upload prefixes and serves deterministic URLs.
type stubUploader struct {
	mu       sync.Mutex
	prefixes []string
}

func (s *stubUploader) Upload(ctx context.Context, file *multipart.FileHeader, prefix string) string {
	if file == nil || file.Size == 0 {
		return ""
	}
	s.mu.Lock()
	s.prefixes = append(s.prefixes, prefix)
	s.mu.Unlock()
	return "https://media.example/" + prefix
}

type formFile struct {
	field string
	name  string
	data  []byte
}

func multipartBody(t *testing.T, fields map[string]string, files []formFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func dateFields(prefix string, date time.Time) map[string]string {
	return map[string]string{
		prefix + "Year":  strconv.Itoa(date.Year()),
		prefix + "Month": strconv.Itoa(int(date.Month())),
		prefix + "Day":   strconv.Itoa(date.Day()),
	}
}

// validFormFields is a complete individual submission with a rental period
// starting the day after tomorrow.
func validFormFields() map[string]string {
	pickup := time.Now().Add(48 * time.Hour)
	ret := pickup.Add(48 * time.Hour)

	fields := map[string]string{
		"isCorporate":        "false",
		"firstName":          "Amina",
		"lastName":           "Odhiambo",
		"phone":              "+254700000001",
		"email":              "amina@example.com",
		"licenseNumber":      "DL-998877",
		"idType":             models.IDTypeNationalID,
		"idNumber":           "12345678",
		"residentialAddress": "Westlands, Nairobi",
		"pickupTime":         "10:00",
		"returnTime":         "10:00",
	}
	for k, v := range dateFields("pickup", pickup) {
		fields[k] = v
	}
	for k, v := range dateFields("return", ret) {
		fields[k] = v
	}
	return fields
}

func init() {
	gin.SetMode(gin.TestMode)
}
