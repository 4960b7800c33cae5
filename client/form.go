package client

import (
	"context"
	"errors"
	"time"
)

// Step is one screen of the multi-step registration form.
type Step int

const (
	StepClientType Step = iota
	StepDetails
	StepDocuments
	StepRental
)

// Accepted identity document types, mirroring the server enum.
var idTypes = map[string]bool{
	"national_id": true,
	"passport":    true,
	"alien_id":    true,
	"military_id": true,
}

// Form holds every field the registration collects. Zero-value dates mean
// "not filled in yet".
type Form struct {
	IsCorporate      bool
	FirstName        string
	LastName         string
	OrganizationName string

	Phone string
	Email string

	IDType   string
	IDNumber string
	KraPin   string

	LicenseNumber     string
	LicenseExpiration time.Time
	DOB               time.Time

	ResidentialAddress string
	WorkAddress        string

	PickupDate time.Time
	ReturnDate time.Time

	SelectedVehicleID string

	LicenseFront *Attachment
	IDFront      *Attachment
	IDBack       *Attachment
	Photo        *Attachment
}

// ErrInvalidForm is returned by Submit when validation fails; the field
// messages are available via Errors().
var ErrInvalidForm = errors.New("form has validation errors")

// FormController drives the form through its steps and gates inline error
// display behind the first submit attempt, the same way the browser form
// behaves.
type FormController struct {
	Form Form

	step            Step
	submitAttempted bool
	vehicles        []Vehicle

	now func() time.Time
}

func NewFormController(vehicles []Vehicle) *FormController {
	return &FormController{
		vehicles: vehicles,
		now:      time.Now,
	}
}

func (fc *FormController) Step() Step {
	return fc.step
}

// Vehicles returns the locally cached selectable fleet.
func (fc *FormController) Vehicles() []Vehicle {
	return fc.vehicles
}

// SubmitAttempted reports whether the user has tried to submit yet.
func (fc *FormController) SubmitAttempted() bool {
	return fc.submitAttempted
}

// Next advances to the following step when the current step validates.
func (fc *FormController) Next() bool {
	if len(fc.stepErrors(fc.step)) > 0 {
		return false
	}
	if fc.step < StepRental {
		fc.step++
	}
	return true
}

func (fc *FormController) Back() {
	if fc.step > StepClientType {
		fc.step--
	}
}

// Errors returns field-level validation messages. Until the first submit
// attempt it always returns nil so half-filled steps don't flash errors.
func (fc *FormController) Errors() map[string]string {
	if !fc.submitAttempted {
		return nil
	}
	return fc.validate()
}

// Submit validates the whole form and posts it. On success the booked vehicle
// disappears from the cached availability list.
func (fc *FormController) Submit(ctx context.Context, api *Client) (string, error) {
	fc.submitAttempted = true

	if len(fc.validate()) > 0 {
		return "", ErrInvalidForm
	}

	renterID, err := api.SubmitRegistration(ctx, &fc.Form)
	if err != nil {
		// Form state stays intact so the user can retry.
		return "", err
	}

	fc.removeVehicle(fc.Form.SelectedVehicleID)
	return renterID, nil
}

func (fc *FormController) removeVehicle(vehicleID string) {
	if vehicleID == "" {
		return
	}

	remaining := fc.vehicles[:0]
	for _, v := range fc.vehicles {
		if v.ID != vehicleID {
			remaining = append(remaining, v)
		}
	}
	fc.vehicles = remaining
}

func (fc *FormController) validate() map[string]string {
	errs := map[string]string{}
	for step := StepClientType; step <= StepRental; step++ {
		for field, msg := range fc.stepErrors(step) {
			errs[field] = msg
		}
	}
	return errs
}

// stepErrors mirrors the server-side rules; this duplication is a UX
// convenience, not a security boundary.
func (fc *FormController) stepErrors(step Step) map[string]string {
	errs := map[string]string{}
	f := &fc.Form

	switch step {
	case StepClientType:
		// Nothing to validate; the choice defaults to individual.

	case StepDetails:
		if f.IsCorporate {
			if f.OrganizationName == "" {
				errs["organizationName"] = "Organization name is required"
			}
		} else {
			if f.FirstName == "" {
				errs["firstName"] = "First name is required"
			}
			if f.LastName == "" {
				errs["lastName"] = "Last name is required"
			}
		}
		if f.Phone == "" {
			errs["phone"] = "Phone number is required"
		}

	case StepDocuments:
		if !idTypes[f.IDType] {
			errs["idType"] = "ID Type is required"
		}
		if f.IDNumber == "" {
			errs["idNumber"] = "ID Number is required"
		}
		if f.LicenseNumber == "" {
			errs["licenseNumber"] = "License number is required"
		}

	case StepRental:
		switch {
		case f.PickupDate.IsZero() || f.ReturnDate.IsZero():
			errs["rentalPeriod"] = "Pickup and return date/time are required"
		case !f.ReturnDate.After(f.PickupDate):
			errs["rentalPeriod"] = "Return date/time must be after pickup date/time"
		case f.PickupDate.Before(fc.now()):
			errs["rentalPeriod"] = "Pickup date/time must be in the future"
		}
	}

	return errs
}
