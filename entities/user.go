package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	Password       string    `json:"-"`
	Phone          string    `json:"phone"`
	BloodType      *string   `json:"bloodType,omitempty"`
	Address        string    `json:"address,omitempty"`
	Role           string    `gorm:"default:user" json:"role"` // user, admin
	ProfilePicture string    `json:"profilePicture,omitempty"`

	BloodEntries  []*BloodEntry   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notifications []*Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
