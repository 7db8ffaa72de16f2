package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp with time zone" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone" json:"updatedAt"`
}
