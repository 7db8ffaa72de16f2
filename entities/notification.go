package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	Message string    `gorm:"type:text" json:"message"`
	IsRead  bool      `gorm:"default:false" json:"isRead"`
	Link    string    `json:"link,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
