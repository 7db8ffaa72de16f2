package bloodentry

import (
	"context"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"gorm.io/gorm"
	"time"
)

type (
	BloodEntryRepository interface {
		CreateBloodEntry(ctx context.Context, entry *entities.BloodEntry) error
		GetBloodEntryByID(ctx context.Context, id string) (*entities.BloodEntry, error)
		GetUserBloodEntries(ctx context.Context, userID string) ([]*entities.BloodEntry, error)
		GetCenterBloodEntries(ctx context.Context, centerID string) ([]*entities.BloodEntry, error)
		UpdateBloodEntryStatus(ctx context.Context, id string, status string) (int64, error)
		DeleteBloodEntry(ctx context.Context, id string) error

		GetEntriesToRemind(ctx context.Context, from, to time.Time) ([]*entities.BloodEntry, error)
		MarkReminded(ctx context.Context, id string, remindedAt time.Time) (bool, error)
	}

	bloodEntryRepository struct {
		db *gorm.DB
	}
)

func NewBloodEntryRepository(db *gorm.DB) BloodEntryRepository {
	return &bloodEntryRepository{db: db}
}

func (r *bloodEntryRepository) CreateBloodEntry(ctx context.Context, entry *entities.BloodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *bloodEntryRepository) GetBloodEntryByID(ctx context.Context, id string) (*entities.BloodEntry, error) {
	var entry entities.BloodEntry
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("MedicalCenter").
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *bloodEntryRepository) GetUserBloodEntries(ctx context.Context, userID string) ([]*entities.BloodEntry, error) {
	var entries []*entities.BloodEntry
	if err := r.db.WithContext(ctx).
		Preload("MedicalCenter").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *bloodEntryRepository) GetCenterBloodEntries(ctx context.Context, centerID string) ([]*entities.BloodEntry, error) {
	var entries []*entities.BloodEntry
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("medical_center_id = ?", centerID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateBloodEntryStatus only moves entries that are still scheduled and
// reports how many rows changed.
func (r *bloodEntryRepository) UpdateBloodEntryStatus(ctx context.Context, id string, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.BloodEntry{}).
		Where("id = ? AND status = ?", id, domain.BloodEntryStatusScheduled).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *bloodEntryRepository) DeleteBloodEntry(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.BloodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bloodEntryRepository) GetEntriesToRemind(ctx context.Context, from, to time.Time) ([]*entities.BloodEntry, error) {
	var entries []*entities.BloodEntry
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("MedicalCenter").
		Where("status = ? AND reminded_at IS NULL", domain.BloodEntryStatusScheduled).
		Where("scheduled_at BETWEEN ? AND ?", from, to).
		Order("scheduled_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// MarkReminded claims an entry for reminding. It reports false when another
// run already stamped it.
func (r *bloodEntryRepository) MarkReminded(ctx context.Context, id string, remindedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.BloodEntry{}).
		Where("id = ? AND reminded_at IS NULL", id).
		Update("reminded_at", remindedAt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
