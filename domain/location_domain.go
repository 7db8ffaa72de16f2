package domain

import (
	"time"
)

var (
	MessageSuccessCreateLocation = "location created successfully"
	MessageSuccessGetLocations   = "locations retrieved successfully"
	MessageSuccessGetLocation    = "location retrieved successfully"
	MessageSuccessDeleteLocation = "location deleted successfully"

	MessageFailedCreateLocation = "failed to create location"
	MessageFailedGetLocations   = "failed to retrieve locations"
	MessageFailedGetLocation    = "failed to retrieve location"
	MessageFailedDeleteLocation = "failed to delete location"

	ErrLocationNotFound = NewNotFoundError("Location not found")
)

type (
	CreateLocationRequest struct {
		Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	}

	Location struct {
		ID        string    `json:"id"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		CreatedAt time.Time `json:"createdAt"`
	}
)
