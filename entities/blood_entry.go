package entities

import (
	"github.com/google/uuid"
	"time"
)

type BloodEntry struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;index" json:"userId"`
	MedicalCenterID uuid.UUID  `gorm:"type:uuid;index" json:"medicalCenterId"`
	BloodType       string     `json:"bloodType"`
	Units           int        `json:"units"`
	ScheduledAt     time.Time  `json:"scheduledAt"`
	ExpiresAt       time.Time  `json:"expiresAt"`
	Status          string     `gorm:"index" json:"status"` // scheduled, completed, cancelled
	RemindedAt      *time.Time `json:"remindedAt,omitempty"`

	User          *User          `gorm:"foreignKey:UserID"`
	MedicalCenter *MedicalCenter `gorm:"foreignKey:MedicalCenterID;constraint:OnDelete:CASCADE"`
	Timestamp
}
