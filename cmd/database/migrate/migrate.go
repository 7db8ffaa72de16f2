package migration

import (
	"fmt"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/rs/zerolog/log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() backs every primary key default
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("error creating uuid-ossp extension: %w", err)
	}

	models := []struct {
		name  string
		model interface{}
	}{
		{"location", &entities.Location{}},
		{"user", &entities.User{}},
		{"medical center", &entities.MedicalCenter{}},
		{"available blood type", &entities.AvailableBloodType{}},
		{"needed blood type", &entities.NeededBloodType{}},
		{"blood entry", &entities.BloodEntry{}},
		{"blood request", &entities.BloodRequest{}},
		{"notification", &entities.Notification{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s database: %w", m.name, err)
		}
	}

	log.Info().Msg("database migration complete")
	return nil
}
