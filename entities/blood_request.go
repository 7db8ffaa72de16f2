package entities

import (
	"github.com/google/uuid"
	"time"
)

type BloodRequest struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RequestType     string     `json:"requestType"` // Individual, Hospital
	PatientName     string     `json:"patientName,omitempty"`
	HospitalName    string     `json:"hospitalName,omitempty"`
	BloodType       string     `json:"bloodType"`
	UnitsNeeded     int        `json:"unitsNeeded"`
	Urgency         string     `json:"urgency"` // Normal, Urgent, Emergency
	ContactPhone    string     `json:"contactPhone"`
	Reason          string     `json:"reason,omitempty"`
	UserEmail       string     `json:"userEmail,omitempty"`
	Status          string     `gorm:"index;default:Pending" json:"status"` // Pending, Approved, Rejected
	ApprovedBy      *uuid.UUID `gorm:"type:uuid" json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejectionReason,omitempty"`

	Approver *MedicalCenter `gorm:"foreignKey:ApprovedBy;constraint:OnDelete:SET NULL"`
	Timestamp
}
