package bloodentry

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/haidar-allaw/red-cross-sub000/pkg/medicalcenter"
	"github.com/haidar-allaw/red-cross-sub000/pkg/user"
	"gorm.io/gorm"
	"time"
)

type (
	BloodEntryService interface {
		CreateBloodEntry(ctx context.Context, req domain.CreateBloodEntryRequest, userID string) (*domain.BloodEntry, error)
		GetUserBloodEntries(ctx context.Context, userID string) ([]*domain.BloodEntry, error)
		GetCenterBloodEntries(ctx context.Context, centerID string) ([]*domain.BloodEntry, error)
		GetBloodEntryByID(ctx context.Context, id string, callerID string, role string) (*domain.BloodEntry, error)
		UpdateBloodEntryStatus(ctx context.Context, id string, req domain.UpdateBloodEntryStatusRequest, callerID string, role string) (*domain.BloodEntry, error)
		DeleteBloodEntry(ctx context.Context, id string) error
	}

	CenterFinder interface {
		GetMedicalCenterByID(ctx context.Context, id string) (*entities.MedicalCenter, error)
	}

	DonorFinder interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	bloodEntryService struct {
		bloodEntryRepository BloodEntryRepository
		centerFinder         CenterFinder
		donorFinder          DonorFinder
	}
)

func NewBloodEntryService(bloodEntryRepository BloodEntryRepository, centerFinder CenterFinder, donorFinder DonorFinder) BloodEntryService {
	return &bloodEntryService{
		bloodEntryRepository: bloodEntryRepository,
		centerFinder:         centerFinder,
		donorFinder:          donorFinder,
	}
}

func (s *bloodEntryService) CreateBloodEntry(ctx context.Context, req domain.CreateBloodEntryRequest, userID string) (*domain.BloodEntry, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, domain.ErrInvalidScheduledAt
	}

	donorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	donor, err := s.donorFinder.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	centerID, err := uuid.Parse(req.MedicalCenterID)
	if err != nil {
		return nil, domain.ErrMedicalCenterNotFound
	}
	center, err := s.centerFinder.GetMedicalCenterByID(ctx, req.MedicalCenterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMedicalCenterNotFound
		}
		return nil, err
	}
	if !center.IsApproved {
		return nil, domain.ErrCenterNotAcceptingDonors
	}

	bloodType := req.BloodType
	if bloodType == "" {
		if donor.BloodType == nil || *donor.BloodType == "" {
			return nil, domain.ErrDonorBloodTypeUnknown
		}
		bloodType = *donor.BloodType
	}
	if !domain.IsValidBloodType(bloodType) {
		return nil, domain.ErrInvalidBloodType
	}

	units := req.Units
	if units == 0 {
		units = 1
	}

	entry := &entities.BloodEntry{
		ID:              uuid.New(),
		UserID:          donorID,
		MedicalCenterID: centerID,
		BloodType:       bloodType,
		Units:           units,
		ScheduledAt:     scheduledAt,
		ExpiresAt:       domain.BloodEntryExpiry(scheduledAt),
		Status:          domain.BloodEntryStatusScheduled,
	}

	if err := s.bloodEntryRepository.CreateBloodEntry(ctx, entry); err != nil {
		return nil, err
	}

	entry.User = donor
	entry.MedicalCenter = center
	return ToDomain(entry), nil
}

func (s *bloodEntryService) GetUserBloodEntries(ctx context.Context, userID string) ([]*domain.BloodEntry, error) {
	entries, err := s.bloodEntryRepository.GetUserBloodEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDomainList(entries), nil
}

func (s *bloodEntryService) GetCenterBloodEntries(ctx context.Context, centerID string) ([]*domain.BloodEntry, error) {
	entries, err := s.bloodEntryRepository.GetCenterBloodEntries(ctx, centerID)
	if err != nil {
		return nil, err
	}
	return toDomainList(entries), nil
}

func (s *bloodEntryService) GetBloodEntryByID(ctx context.Context, id string, callerID string, role string) (*domain.BloodEntry, error) {
	entry, err := s.getEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(entry, callerID, role) {
		return nil, domain.ErrUnauthorizedBloodEntryAccess
	}
	return ToDomain(entry), nil
}

func (s *bloodEntryService) UpdateBloodEntryStatus(ctx context.Context, id string, req domain.UpdateBloodEntryStatusRequest, callerID string, role string) (*domain.BloodEntry, error) {
	if req.Status != domain.BloodEntryStatusCompleted && req.Status != domain.BloodEntryStatusCancelled {
		return nil, domain.ErrInvalidBloodEntryStatus
	}

	entry, err := s.getEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleAdmin:
	case domain.RoleCenter:
		if entry.MedicalCenterID.String() != callerID {
			return nil, domain.ErrUnauthorizedBloodEntryAccess
		}
	case domain.RoleUser:
		// Donors can only call off their own appointment.
		if entry.UserID.String() != callerID || req.Status != domain.BloodEntryStatusCancelled {
			return nil, domain.ErrUnauthorizedBloodEntryAccess
		}
	default:
		return nil, domain.ErrUnauthorizedBloodEntryAccess
	}

	if entry.Status != domain.BloodEntryStatusScheduled {
		return nil, domain.ErrBloodEntryNotScheduled
	}

	affected, err := s.bloodEntryRepository.UpdateBloodEntryStatus(ctx, id, req.Status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrBloodEntryNotScheduled
	}

	entry.Status = req.Status
	return ToDomain(entry), nil
}

func (s *bloodEntryService) DeleteBloodEntry(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrBloodEntryNotFound
	}
	if err := s.bloodEntryRepository.DeleteBloodEntry(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBloodEntryNotFound
		}
		return err
	}
	return nil
}

func (s *bloodEntryService) getEntry(ctx context.Context, id string) (*entities.BloodEntry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrBloodEntryNotFound
	}
	entry, err := s.bloodEntryRepository.GetBloodEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBloodEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func canView(entry *entities.BloodEntry, callerID string, role string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCenter:
		return entry.MedicalCenterID.String() == callerID
	default:
		return entry.UserID.String() == callerID
	}
}

func toDomainList(entries []*entities.BloodEntry) []*domain.BloodEntry {
	result := make([]*domain.BloodEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, ToDomain(entry))
	}
	return result
}

func ToDomain(entry *entities.BloodEntry) *domain.BloodEntry {
	result := &domain.BloodEntry{
		ID:              entry.ID.String(),
		UserID:          entry.UserID.String(),
		MedicalCenterID: entry.MedicalCenterID.String(),
		BloodType:       entry.BloodType,
		Units:           entry.Units,
		ScheduledAt:     entry.ScheduledAt,
		ExpiresAt:       entry.ExpiresAt,
		Status:          entry.Status,
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
	}
	if entry.User != nil {
		result.Donor = user.ToDomain(entry.User)
	}
	if entry.MedicalCenter != nil {
		result.MedicalCenter = medicalcenter.ToDomain(entry.MedicalCenter)
	}
	return result
}
