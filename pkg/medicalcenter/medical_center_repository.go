package medicalcenter

import (
	"context"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MedicalCenterRepository interface {
		CreateMedicalCenter(ctx context.Context, center *entities.MedicalCenter) error
		GetMedicalCenterByID(ctx context.Context, id string) (*entities.MedicalCenter, error)
		GetMedicalCenterByEmail(ctx context.Context, email string) (*entities.MedicalCenter, error)
		GetMedicalCenters(ctx context.Context, approved bool, bloodType string) ([]*entities.MedicalCenter, error)
		UpdateMedicalCenter(ctx context.Context, id string, updates map[string]interface{}) error
		ReplaceInventory(ctx context.Context, centerID uuid.UUID, available []*entities.AvailableBloodType, needed []*entities.NeededBloodType) error
		ApproveMedicalCenter(ctx context.Context, id string) (int64, error)
		DeleteMedicalCenter(ctx context.Context, id string) error
	}

	medicalCenterRepository struct {
		db *gorm.DB
	}
)

func NewMedicalCenterRepository(db *gorm.DB) MedicalCenterRepository {
	return &medicalCenterRepository{db: db}
}

func (r *medicalCenterRepository) CreateMedicalCenter(ctx context.Context, center *entities.MedicalCenter) error {
	return r.db.WithContext(ctx).Create(center).Error
}

func (r *medicalCenterRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("AvailableBloodTypes", func(db *gorm.DB) *gorm.DB { return db.Order("type ASC") }).
		Preload("NeededBloodTypes", func(db *gorm.DB) *gorm.DB { return db.Order("type ASC") }).
		Preload("Location")
}

func (r *medicalCenterRepository) GetMedicalCenterByID(ctx context.Context, id string) (*entities.MedicalCenter, error) {
	var center entities.MedicalCenter
	if err := r.preloaded(ctx).Where("id = ?", id).First(&center).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *medicalCenterRepository) GetMedicalCenterByEmail(ctx context.Context, email string) (*entities.MedicalCenter, error) {
	var center entities.MedicalCenter
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&center).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *medicalCenterRepository) GetMedicalCenters(ctx context.Context, approved bool, bloodType string) ([]*entities.MedicalCenter, error) {
	var centers []*entities.MedicalCenter

	query := r.preloaded(ctx).Where("is_approved = ?", approved)
	if bloodType != "" {
		query = query.Where(
			"id IN (?)",
			r.db.WithContext(ctx).Model(&entities.AvailableBloodType{}).
				Select("medical_center_id").
				Where("type = ? AND quantity > 0", bloodType),
		)
	}

	if err := query.Order("created_at DESC").Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *medicalCenterRepository) UpdateMedicalCenter(ctx context.Context, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&entities.MedicalCenter{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceInventory makes the stored lists equal to the given ones. A nil slice
// leaves that list untouched. Rows for types that stay are updated in place.
func (r *medicalCenterRepository) ReplaceInventory(ctx context.Context, centerID uuid.UUID, available []*entities.AvailableBloodType, needed []*entities.NeededBloodType) error {
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "medical_center_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if available != nil {
			types := make([]string, 0, len(available))
			for _, item := range available {
				types = append(types, item.Type)
			}
			if err := deleteMissing(tx, &entities.AvailableBloodType{}, centerID, types); err != nil {
				return err
			}
			if len(available) > 0 {
				if err := tx.Clauses(upsert).Create(&available).Error; err != nil {
					return err
				}
			}
		}

		if needed != nil {
			types := make([]string, 0, len(needed))
			for _, item := range needed {
				types = append(types, item.Type)
			}
			if err := deleteMissing(tx, &entities.NeededBloodType{}, centerID, types); err != nil {
				return err
			}
			if len(needed) > 0 {
				if err := tx.Clauses(upsert).Create(&needed).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func deleteMissing(tx *gorm.DB, model interface{}, centerID uuid.UUID, keep []string) error {
	q := tx.Where("medical_center_id = ?", centerID)
	if len(keep) > 0 {
		q = q.Where("type NOT IN ?", keep)
	}
	return q.Delete(model).Error
}

func (r *medicalCenterRepository) ApproveMedicalCenter(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.MedicalCenter{}).
		Where("id = ? AND is_approved = ?", id, false).
		Update("is_approved", true)
	return res.RowsAffected, res.Error
}

func (r *medicalCenterRepository) DeleteMedicalCenter(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MedicalCenter{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
