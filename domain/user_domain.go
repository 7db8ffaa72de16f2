package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetUser       = "user retrieved successfully"
	MessageSuccessGetUsers      = "users retrieved successfully"
	MessageSuccessUpdateUser    = "user updated successfully"
	MessageSuccessUploadPicture = "profile picture uploaded successfully"
	MessageSuccessDeleteUser    = "user deleted successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetUser       = "failed to retrieve user"
	MessageFailedGetUsers      = "failed to retrieve users"
	MessageFailedUpdateUser    = "failed to update user"
	MessageFailedUploadPicture = "failed to upload profile picture"
	MessageFailedDeleteUser    = "failed to delete user"

	ErrUserNotFound       = NewNotFoundError("User not found")
	ErrEmailAlreadyExists = NewValidationError("Email already registered")
	ErrInvalidCredentials = NewUnauthorizedError("Invalid email or password")
	ErrInvalidBloodType   = NewValidationError("Invalid blood type")
	ErrPictureRequired    = NewValidationError("picture is required")
)

type (
	RegisterUserRequest struct {
		Name      string `json:"name" validate:"required,min=2"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=6"`
		Phone     string `json:"phone" validate:"required"`
		BloodType string `json:"bloodType" validate:"omitempty,bloodtype"`
		Address   string `json:"address" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token         string         `json:"token"`
		Role          string         `json:"role"`
		User          *User          `json:"user,omitempty"`
		MedicalCenter *MedicalCenter `json:"medicalCenter,omitempty"`
	}

	UpdateUserRequest struct {
		Name      string `json:"name" validate:"omitempty,min=2"`
		Phone     string `json:"phone" validate:"omitempty"`
		BloodType string `json:"bloodType" validate:"omitempty,bloodtype"`
		Address   string `json:"address" validate:"omitempty"`
	}

	UploadPictureRequest struct {
		Picture *multipart.FileHeader `form:"picture"`
	}

	User struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Email          string    `json:"email"`
		Phone          string    `json:"phone"`
		BloodType      string    `json:"bloodType,omitempty"`
		Address        string    `json:"address,omitempty"`
		Role           string    `json:"role"`
		ProfilePicture string    `json:"profilePicture,omitempty"`
		CreatedAt      time.Time `json:"createdAt"`
		UpdatedAt      time.Time `json:"updatedAt"`
	}
)
