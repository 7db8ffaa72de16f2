package report

import (
	"context"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"gorm.io/gorm"
)

type (
	// GroupCount is one row of a GROUP BY key, COUNT/SUM query.
	GroupCount struct {
		Key   string
		Total int64
	}

	ReportRepository interface {
		CountUsers(ctx context.Context) (int64, error)
		CountCenters(ctx context.Context, approved bool) (int64, error)
		CountBloodEntriesByStatus(ctx context.Context) ([]GroupCount, error)
		CountBloodRequestsByStatus(ctx context.Context) ([]GroupCount, error)
		SumAvailableUnitsByType(ctx context.Context) ([]GroupCount, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) CountCenters(ctx context.Context, approved bool) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.MedicalCenter{}).
		Where("is_approved = ?", approved).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) CountBloodEntriesByStatus(ctx context.Context) ([]GroupCount, error) {
	var rows []GroupCount
	if err := r.db.WithContext(ctx).
		Model(&entities.BloodEntry{}).
		Select("status AS key, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) CountBloodRequestsByStatus(ctx context.Context) ([]GroupCount, error) {
	var rows []GroupCount
	if err := r.db.WithContext(ctx).
		Model(&entities.BloodRequest{}).
		Select("status AS key, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SumAvailableUnitsByType only counts stock held by approved centers.
func (r *reportRepository) SumAvailableUnitsByType(ctx context.Context) ([]GroupCount, error) {
	var rows []GroupCount
	if err := r.db.WithContext(ctx).
		Model(&entities.AvailableBloodType{}).
		Select("available_blood_types.type AS key, COALESCE(SUM(available_blood_types.quantity), 0) AS total").
		Joins("JOIN medical_centers ON medical_centers.id = available_blood_types.medical_center_id").
		Where("medical_centers.is_approved = ?", true).
		Group("available_blood_types.type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
