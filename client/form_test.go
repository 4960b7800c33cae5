package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureRental() (time.Time, time.Time) {
	pickup := time.Now().Add(48 * time.Hour)
	return pickup, pickup.Add(48 * time.Hour)
}

func filledForm() Form {
	pickup, ret := futureRental()
	return Form{
		FirstName:     "Amina",
		LastName:      "Odhiambo",
		Phone:         "+254700000001",
		IDType:        "national_id",
		IDNumber:      "12345678",
		LicenseNumber: "DL-998877",
		PickupDate:    pickup,
		ReturnDate:    ret,
	}
}

func TestErrorsSuppressedUntilSubmitAttempt(t *testing.T) {
	fc := NewFormController(nil)

	// Everything is empty, but no submit attempt has happened yet.
	assert.Nil(t, fc.Errors())
	assert.False(t, fc.SubmitAttempted())

	_, err := fc.Submit(context.Background(), New("http://unused.local", nil))
	require.ErrorIs(t, err, ErrInvalidForm)

	assert.True(t, fc.SubmitAttempted())
	errs := fc.Errors()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "rentalPeriod")
}

func TestStepProgressionGatedByValidation(t *testing.T) {
	fc := NewFormController(nil)

	require.True(t, fc.Next()) // client type step has nothing to validate
	assert.Equal(t, StepDetails, fc.Step())

	// Details incomplete: stuck
	assert.False(t, fc.Next())
	assert.Equal(t, StepDetails, fc.Step())

	fc.Form.FirstName = "Amina"
	fc.Form.LastName = "Odhiambo"
	fc.Form.Phone = "+254700000001"
	require.True(t, fc.Next())
	assert.Equal(t, StepDocuments, fc.Step())

	fc.Back()
	assert.Equal(t, StepDetails, fc.Step())
}

func TestCorporateValidation(t *testing.T) {
	fc := NewFormController(nil)
	fc.Form = filledForm()
	fc.Form.IsCorporate = true
	fc.Form.FirstName = ""
	fc.Form.LastName = ""

	_, err := fc.Submit(context.Background(), New("http://unused.local", nil))
	require.ErrorIs(t, err, ErrInvalidForm)
	assert.Contains(t, fc.Errors(), "organizationName")

	fc.Form.OrganizationName = "Acme Logistics Ltd"
	assert.Empty(t, fc.Errors())
}

func TestRentalPeriodValidation(t *testing.T) {
	fc := NewFormController(nil)
	fc.Form = filledForm()
	fc.Form.ReturnDate = fc.Form.PickupDate.Add(-time.Hour)

	_, err := fc.Submit(context.Background(), New("http://unused.local", nil))
	require.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, "Return date/time must be after pickup date/time", fc.Errors()["rentalPeriod"])

	fc.Form.PickupDate = time.Now().Add(-time.Hour)
	fc.Form.ReturnDate = time.Now().Add(48 * time.Hour)
	_, err = fc.Submit(context.Background(), New("http://unused.local", nil))
	require.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, "Pickup date/time must be in the future", fc.Errors()["rentalPeriod"])
}

func TestSubmitPostsWireFormatAndRemovesVehicle(t *testing.T) {
	var received map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		received = map[string]string{}
		for name, values := range r.MultipartForm.Value {
			received[name] = values[0]
		}

		require.NotNil(t, r.MultipartForm.File["licenseFront"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "renter_id": "r-1"})
	}))
	defer server.Close()

	vehicles := []Vehicle{
		{ID: "v-1", Make: "Toyota"},
		{ID: "v-2", Make: "Mazda"},
	}
	fc := NewFormController(vehicles)
	fc.Form = filledForm()
	fc.Form.SelectedVehicleID = "v-1"
	fc.Form.LicenseFront = &Attachment{Name: "license.jpg", Data: []byte("img")}

	renterID, err := fc.Submit(context.Background(), New(server.URL, server.Client()))
	require.NoError(t, err)
	assert.Equal(t, "r-1", renterID)

	// Wire format: split date fields plus HH:MM time fields
	assert.Equal(t, "false", received["isCorporate"])
	assert.Equal(t, "Amina", received["firstName"])
	assert.Equal(t, "v-1", received["selectedCar"])
	assert.NotEmpty(t, received["pickupYear"])
	assert.NotEmpty(t, received["pickupMonth"])
	assert.NotEmpty(t, received["pickupDay"])
	assert.Equal(t, fc.Form.PickupDate.Format("15:04"), received["pickupTime"])
	assert.NotEmpty(t, received["returnYear"])

	// Optimistic removal of the booked vehicle
	require.Len(t, fc.Vehicles(), 1)
	assert.Equal(t, "v-2", fc.Vehicles()[0].ID)
}

func TestSubmitFailureKeepsState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Submission failed"})
	}))
	defer server.Close()

	vehicles := []Vehicle{{ID: "v-1", Make: "Toyota"}}
	fc := NewFormController(vehicles)
	fc.Form = filledForm()
	fc.Form.SelectedVehicleID = "v-1"

	_, err := fc.Submit(context.Background(), New(server.URL, server.Client()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Submission failed")

	// Vehicle list and form state stay intact for retry
	assert.Len(t, fc.Vehicles(), 1)
	assert.Equal(t, "Amina", fc.Form.FirstName)
}

func TestAvailableVehicles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/vehicles/available", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"vehicles": []Vehicle{
				{ID: "v-1", Make: "Mazda", ModelName: "Demio", Year: 2018, DailyPrice: 3500},
			},
		})
	}))
	defer server.Close()

	vehicles, err := New(server.URL, server.Client()).AvailableVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Mazda", vehicles[0].Make)
}
