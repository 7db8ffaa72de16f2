package domain

import (
	"time"
)

const (
	BloodRequestStatusPending  = "Pending"
	BloodRequestStatusApproved = "Approved"
	BloodRequestStatusRejected = "Rejected"

	RequestTypeIndividual = "Individual"
	RequestTypeHospital   = "Hospital"

	UrgencyNormal    = "Normal"
	UrgencyUrgent    = "Urgent"
	UrgencyEmergency = "Emergency"
)

var (
	MessageSuccessCreateBloodRequest  = "Blood request created successfully"
	MessageSuccessGetBloodRequests    = "Blood requests retrieved successfully"
	MessageSuccessApproveBloodRequest = "Blood request approved successfully"
	MessageSuccessRejectBloodRequest  = "Blood request rejected successfully"
	MessageSuccessDeleteBloodRequest  = "Blood request deleted successfully"

	MessageFailedCreateBloodRequest  = "Failed to create blood request"
	MessageFailedGetBloodRequests    = "Failed to retrieve blood requests"
	MessageFailedApproveBloodRequest = "Failed to approve blood request"
	MessageFailedRejectBloodRequest  = "Failed to reject blood request"
	MessageFailedDeleteBloodRequest  = "Failed to delete blood request"

	ErrCenterIDRequired            = NewValidationError("centerId is required")
	ErrBloodRequestNotFound        = NewNotFoundError("Blood request not found")
	ErrBloodTypeNotInStock         = NewValidationError("Blood type not found in center stock")
	ErrInvalidUnitsNeeded          = NewValidationError("Invalid unitsNeeded in blood request")
	ErrBloodRequestAlreadyApproved = NewValidationError("Blood request already approved")
)

type (
	CreateBloodRequestRequest struct {
		RequestType  string `json:"requestType" validate:"required,oneof=Individual Hospital"`
		PatientName  string `json:"patientName" validate:"required_if=RequestType Individual"`
		HospitalName string `json:"hospitalName" validate:"required_if=RequestType Hospital"`
		BloodType    string `json:"bloodType" validate:"required,bloodtype"`
		UnitsNeeded  int    `json:"unitsNeeded" validate:"required,min=1"`
		Urgency      string `json:"urgency" validate:"omitempty,oneof=Normal Urgent Emergency"`
		ContactPhone string `json:"contactPhone" validate:"required"`
		Reason       string `json:"reason" validate:"omitempty"`
		UserEmail    string `json:"userEmail" validate:"omitempty,email"`
	}

	ApproveBloodRequestRequest struct {
		CenterID string `json:"centerId"`
	}

	RejectBloodRequestRequest struct {
		CenterID        string `json:"centerId"`
		RejectionReason string `json:"rejectionReason"`
	}

	BloodRequest struct {
		ID              string     `json:"id"`
		RequestType     string     `json:"requestType"`
		PatientName     string     `json:"patientName,omitempty"`
		HospitalName    string     `json:"hospitalName,omitempty"`
		BloodType       string     `json:"bloodType"`
		UnitsNeeded     int        `json:"unitsNeeded"`
		Urgency         string     `json:"urgency"`
		ContactPhone    string     `json:"contactPhone"`
		Reason          string     `json:"reason,omitempty"`
		UserEmail       string     `json:"userEmail,omitempty"`
		Status          string     `json:"status"`
		ApprovedBy      string     `json:"approvedBy,omitempty"`
		ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
		RejectionReason string     `json:"rejectionReason,omitempty"`
		CreatedAt       time.Time  `json:"createdAt"`
		UpdatedAt       time.Time  `json:"updatedAt"`
	}
)
