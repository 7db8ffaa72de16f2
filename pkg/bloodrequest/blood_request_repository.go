package bloodrequest

import (
	"context"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"gorm.io/gorm"
	"time"
)

type (
	BloodRequestRepository interface {
		CreateBloodRequest(ctx context.Context, request *entities.BloodRequest) error
		GetBloodRequestByID(ctx context.Context, id string) (*entities.BloodRequest, error)
		GetBloodRequests(ctx context.Context) ([]*entities.BloodRequest, error)
		ApproveBloodRequest(ctx context.Context, id string, centerID uuid.UUID, bloodType string, units int, approvedAt time.Time) error
		RejectBloodRequest(ctx context.Context, id string, centerID uuid.UUID, reason string, rejectedAt time.Time) error
		DeleteBloodRequest(ctx context.Context, id string) error
	}

	bloodRequestRepository struct {
		db *gorm.DB
	}
)

func NewBloodRequestRepository(db *gorm.DB) BloodRequestRepository {
	return &bloodRequestRepository{db: db}
}

func (r *bloodRequestRepository) CreateBloodRequest(ctx context.Context, request *entities.BloodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *bloodRequestRepository) GetBloodRequestByID(ctx context.Context, id string) (*entities.BloodRequest, error) {
	var request entities.BloodRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *bloodRequestRepository) GetBloodRequests(ctx context.Context) ([]*entities.BloodRequest, error) {
	var requests []*entities.BloodRequest
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ApproveBloodRequest flips the request to Approved and takes units out of the
// center's stock in one transaction. The status update only matches a request
// that is not already Approved, and the stock update is evaluated by the
// database so concurrent approvals cannot overwrite each other's decrement.
func (r *bloodRequestRepository) ApproveBloodRequest(ctx context.Context, id string, centerID uuid.UUID, bloodType string, units int, approvedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.BloodRequest{}).
			Where("id = ? AND status <> ?", id, domain.BloodRequestStatusApproved).
			Updates(map[string]interface{}{
				"status":           domain.BloodRequestStatusApproved,
				"approved_by":      centerID,
				"approved_at":      approvedAt,
				"rejection_reason": "",
				"updated_at":       approvedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&entities.BloodRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return domain.ErrBloodRequestAlreadyApproved
		}

		res = tx.Model(&entities.AvailableBloodType{}).
			Where("medical_center_id = ? AND type = ? AND quantity >= 0", centerID, bloodType).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("GREATEST(quantity - ?, 0)", units),
				"updated_at": approvedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrBloodTypeNotInStock
		}
		return nil
	})
}

func (r *bloodRequestRepository) RejectBloodRequest(ctx context.Context, id string, centerID uuid.UUID, reason string, rejectedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&entities.BloodRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           domain.BloodRequestStatusRejected,
			"approved_by":      centerID,
			"approved_at":      rejectedAt,
			"rejection_reason": reason,
			"updated_at":       rejectedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bloodRequestRepository) DeleteBloodRequest(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.BloodRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
