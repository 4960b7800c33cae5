// Package client is the programmatic counterpart of the browser booking form:
// it fetches the available fleet, carries the multi-step registration form
// state, and submits the multipart intake payload.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Vehicle is the listing projection served by the availability endpoint.
type Vehicle struct {
	ID         string  `json:"id"`
	Make       string  `json:"make"`
	ModelName  string  `json:"model_name"`
	Year       int     `json:"year"`
	DailyPrice float64 `json:"daily_price"`
}

// Attachment is one document image to upload with the form.
type Attachment struct {
	Name string
	Data []byte
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// AvailableVehicles fetches the bookable fleet.
func (c *Client) AvailableVehicles(ctx context.Context) ([]Vehicle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/vehicles/available", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vehicle listing failed: %s", readError(resp.Body))
	}

	var payload struct {
		Success  bool      `json:"success"`
		Vehicles []Vehicle `json:"vehicles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Vehicles, nil
}

// SubmitRegistration posts the form as multipart/form-data and returns the
// created renter id.
func (c *Client) SubmitRegistration(ctx context.Context, form *Form) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writeForm(writer, form); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/registrations", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("submission failed: %s", readError(resp.Body))
	}

	var payload struct {
		Success  bool   `json:"success"`
		RenterID string `json:"renter_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	return payload.RenterID, nil
}

// UpdateVehicleStatus flips a vehicle's availability status.
func (c *Client) UpdateVehicleStatus(ctx context.Context, vehicleID, status string) error {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/v1/vehicles/%s/status", c.baseURL, vehicleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status update failed: %s", readError(resp.Body))
	}

	return nil
}

// writeForm emits the wire format the intake endpoint parses: plain text
// fields, dates split into year/month/day triples, HH:MM time fields, and up
// to four file parts.
func writeForm(w *multipart.Writer, form *Form) error {
	fields := map[string]string{
		"isCorporate":        strconv.FormatBool(form.IsCorporate),
		"firstName":          form.FirstName,
		"lastName":           form.LastName,
		"organizationName":   form.OrganizationName,
		"phone":              form.Phone,
		"email":              form.Email,
		"licenseNumber":      form.LicenseNumber,
		"idType":             form.IDType,
		"idNumber":           form.IDNumber,
		"kraPin":             form.KraPin,
		"residentialAddress": form.ResidentialAddress,
		"workAddress":        form.WorkAddress,
		"selectedCar":        form.SelectedVehicleID,
	}

	for name, value := range fields {
		if value == "" && name != "isCorporate" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}

	writeDate := func(prefix string, date time.Time) error {
		if date.IsZero() {
			return nil
		}
		parts := map[string]string{
			prefix + "Year":  strconv.Itoa(date.Year()),
			prefix + "Month": strconv.Itoa(int(date.Month())),
			prefix + "Day":   strconv.Itoa(date.Day()),
		}
		for name, value := range parts {
			if err := w.WriteField(name, value); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeDate("dob", form.DOB); err != nil {
		return err
	}
	if err := writeDate("exp", form.LicenseExpiration); err != nil {
		return err
	}
	if err := writeDate("pickup", form.PickupDate); err != nil {
		return err
	}
	if err := writeDate("return", form.ReturnDate); err != nil {
		return err
	}

	if !form.PickupDate.IsZero() {
		if err := w.WriteField("pickupTime", form.PickupDate.Format("15:04")); err != nil {
			return err
		}
	}
	if !form.ReturnDate.IsZero() {
		if err := w.WriteField("returnTime", form.ReturnDate.Format("15:04")); err != nil {
			return err
		}
	}

	attachments := map[string]*Attachment{
		"licenseFront": form.LicenseFront,
		"idFront":      form.IDFront,
		"idBack":       form.IDBack,
		"photo":        form.Photo,
	}

	for name, attachment := range attachments {
		if attachment == nil {
			continue
		}
		part, err := w.CreateFormFile(name, attachment.Name)
		if err != nil {
			return err
		}
		if _, err := part.Write(attachment.Data); err != nil {
			return err
		}
	}

	return nil
}

func readError(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Error == "" {
		return "unexpected server response"
	}
	return payload.Error
}
