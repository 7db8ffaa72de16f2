package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegisterCenter  = "medical center registered successfully, awaiting approval"
	MessageSuccessGetCenters      = "medical centers retrieved successfully"
	MessageSuccessGetCenter       = "medical center retrieved successfully"
	MessageSuccessUpdateCenter    = "medical center updated successfully"
	MessageSuccessUpdateInventory = "inventory updated successfully"
	MessageSuccessUploadImage     = "image uploaded successfully"
	MessageSuccessApproveCenter   = "medical center approved successfully"
	MessageSuccessDeleteCenter    = "medical center deleted successfully"

	MessageFailedRegisterCenter  = "failed to register medical center"
	MessageFailedGetCenters      = "failed to retrieve medical centers"
	MessageFailedGetCenter       = "failed to retrieve medical center"
	MessageFailedUpdateCenter    = "failed to update medical center"
	MessageFailedUpdateInventory = "failed to update inventory"
	MessageFailedUploadImage     = "failed to upload image"
	MessageFailedApproveCenter   = "failed to approve medical center"
	MessageFailedDeleteCenter    = "failed to delete medical center"

	ErrMedicalCenterNotFound    = NewNotFoundError("Medical center not found")
	ErrCenterNotApproved        = NewUnauthorizedError("Medical center not approved yet")
	ErrCenterAlreadyApproved    = NewValidationError("Medical center already approved")
	ErrCenterEmailAlreadyExists = NewValidationError("Email already registered")
	ErrInventoryUpdateEmpty     = NewValidationError("availableBloodTypes or neededBloodTypes is required")
	ErrImageRequired            = NewValidationError("image is required")
	ErrCenterNotAcceptingDonors = NewValidationError("Medical center is not approved for donations")
	ErrUnauthorizedCenterAccess = NewUnauthorizedError("unauthorized access to medical center")
)

type (
	RegisterCenterRequest struct {
		Name                string              `json:"name" validate:"required,min=2"`
		Email               string              `json:"email" validate:"required,email"`
		Password            string              `json:"password" validate:"required,min=6"`
		Phone               string              `json:"phone" validate:"required"`
		Address             string              `json:"address" validate:"required"`
		Description         string              `json:"description" validate:"omitempty"`
		LocationID          string              `json:"locationId" validate:"omitempty,uuid"`
		AvailableBloodTypes []BloodTypeQuantity `json:"availableBloodTypes"`
		NeededBloodTypes    []BloodTypeQuantity `json:"neededBloodTypes"`
	}

	UpdateCenterRequest struct {
		Name        string `json:"name" validate:"omitempty,min=2"`
		Phone       string `json:"phone" validate:"omitempty"`
		Address     string `json:"address" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		LocationID  string `json:"locationId" validate:"omitempty,uuid"`
	}

	// Nil slices leave the corresponding list untouched; an empty slice clears it.
	UpdateInventoryRequest struct {
		AvailableBloodTypes []BloodTypeQuantity `json:"availableBloodTypes"`
		NeededBloodTypes    []BloodTypeQuantity `json:"neededBloodTypes"`
	}

	UploadImageRequest struct {
		Image *multipart.FileHeader `form:"image"`
	}

	MedicalCenter struct {
		ID                  string              `json:"id"`
		Name                string              `json:"name"`
		Email               string              `json:"email"`
		Phone               string              `json:"phone"`
		Address             string              `json:"address"`
		Description         string              `json:"description,omitempty"`
		ImageURL            string              `json:"imageUrl,omitempty"`
		IsApproved          bool                `json:"isApproved"`
		LocationID          string              `json:"locationId,omitempty"`
		Location            *Location           `json:"location,omitempty"`
		AvailableBloodTypes []BloodTypeQuantity `json:"availableBloodTypes"`
		NeededBloodTypes    []BloodTypeQuantity `json:"neededBloodTypes"`
		CreatedAt           time.Time           `json:"createdAt"`
		UpdatedAt           time.Time           `json:"updatedAt"`
	}
)
