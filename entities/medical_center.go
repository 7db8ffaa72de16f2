package entities

import (
	"github.com/google/uuid"
)

type MedicalCenter struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `json:"name"`
	Email       string     `gorm:"uniqueIndex" json:"email"`
	Password    string     `json:"-"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	IsApproved  bool       `gorm:"default:false" json:"isApproved"`
	LocationID  *uuid.UUID `gorm:"type:uuid" json:"locationId,omitempty"`

	Location            *Location             `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	AvailableBloodTypes []*AvailableBloodType `gorm:"foreignKey:MedicalCenterID;constraint:OnDelete:CASCADE"`
	NeededBloodTypes    []*NeededBloodType    `gorm:"foreignKey:MedicalCenterID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// AvailableBloodType is one line of a center's on-hand inventory.
type AvailableBloodType struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MedicalCenterID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_available_center_type" json:"medicalCenterId"`
	Type            string    `gorm:"uniqueIndex:idx_available_center_type" json:"type"`
	Quantity        int       `json:"quantity"`
	Timestamp
}

type NeededBloodType struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MedicalCenterID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_needed_center_type" json:"medicalCenterId"`
	Type            string    `gorm:"uniqueIndex:idx_needed_center_type" json:"type"`
	Quantity        int       `json:"quantity"`
	Timestamp
}
