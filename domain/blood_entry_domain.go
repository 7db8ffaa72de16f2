package domain

import (
	"time"
)

const (
	BloodEntryStatusScheduled = "scheduled"
	BloodEntryStatusCompleted = "completed"
	BloodEntryStatusCancelled = "cancelled"

	// Whole blood shelf life in days, counted from the scheduled donation time.
	BloodShelfLifeDays = 42
)

var (
	MessageSuccessCreateBloodEntry = "donation scheduled successfully"
	MessageSuccessGetBloodEntries  = "donations retrieved successfully"
	MessageSuccessGetBloodEntry    = "donation retrieved successfully"
	MessageSuccessUpdateBloodEntry = "donation updated successfully"
	MessageSuccessDeleteBloodEntry = "donation deleted successfully"

	MessageFailedCreateBloodEntry = "failed to schedule donation"
	MessageFailedGetBloodEntries  = "failed to retrieve donations"
	MessageFailedGetBloodEntry    = "failed to retrieve donation"
	MessageFailedUpdateBloodEntry = "failed to update donation"
	MessageFailedDeleteBloodEntry = "failed to delete donation"

	ErrBloodEntryNotFound           = NewNotFoundError("Donation not found")
	ErrBloodEntryNotScheduled       = NewValidationError("Donation is no longer scheduled")
	ErrInvalidBloodEntryStatus      = NewValidationError("Invalid donation status")
	ErrInvalidScheduledAt           = NewValidationError("scheduledAt must be an RFC3339 timestamp")
	ErrDonorBloodTypeUnknown        = NewValidationError("bloodType is required when the donor has none on file")
	ErrUnauthorizedBloodEntryAccess = NewUnauthorizedError("unauthorized access to donation")
)

// BloodEntryExpiry is the time a donation scheduled at t stops being usable.
func BloodEntryExpiry(t time.Time) time.Time {
	return t.AddDate(0, 0, BloodShelfLifeDays)
}

type (
	CreateBloodEntryRequest struct {
		MedicalCenterID string `json:"medicalCenterId" validate:"required,uuid"`
		BloodType       string `json:"bloodType" validate:"omitempty,bloodtype"`
		Units           int    `json:"units" validate:"omitempty,min=1,max=4"`
		ScheduledAt     string `json:"scheduledAt" validate:"required"`
	}

	UpdateBloodEntryStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=completed cancelled"`
	}

	BloodEntry struct {
		ID              string         `json:"id"`
		UserID          string         `json:"userId"`
		Donor           *User          `json:"donor,omitempty"`
		MedicalCenterID string         `json:"medicalCenterId"`
		MedicalCenter   *MedicalCenter `json:"medicalCenter,omitempty"`
		BloodType       string         `json:"bloodType"`
		Units           int            `json:"units"`
		ScheduledAt     time.Time      `json:"scheduledAt"`
		ExpiresAt       time.Time      `json:"expiresAt"`
		Status          string         `json:"status"`
		CreatedAt       time.Time      `json:"createdAt"`
		UpdatedAt       time.Time      `json:"updatedAt"`
	}
)
