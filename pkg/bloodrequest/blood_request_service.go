package bloodrequest

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"time"
)

type (
	BloodRequestService interface {
		CreateBloodRequest(ctx context.Context, req domain.CreateBloodRequestRequest) (*domain.BloodRequest, error)
		GetBloodRequests(ctx context.Context) ([]*domain.BloodRequest, error)
		GetBloodRequestsByCenter(ctx context.Context, centerID string) ([]*domain.BloodRequest, error)
		ApproveBloodRequest(ctx context.Context, requestID string, req domain.ApproveBloodRequestRequest) (*domain.BloodRequest, error)
		RejectBloodRequest(ctx context.Context, requestID string, req domain.RejectBloodRequestRequest) (*domain.BloodRequest, error)
		DeleteBloodRequest(ctx context.Context, id string) error
	}

	// CenterFinder loads a medical center together with its inventory.
	CenterFinder interface {
		GetMedicalCenterByID(ctx context.Context, id string) (*entities.MedicalCenter, error)
	}

	// DecisionNotifier is told about every approve/reject outcome.
	DecisionNotifier interface {
		NotifyBloodRequestDecision(ctx context.Context, request *entities.BloodRequest, center *entities.MedicalCenter)
	}

	bloodRequestService struct {
		bloodRequestRepository BloodRequestRepository
		centerFinder           CenterFinder
		notifier               DecisionNotifier
		now                    func() time.Time
	}
)

func NewBloodRequestService(bloodRequestRepository BloodRequestRepository, centerFinder CenterFinder, notifier DecisionNotifier) BloodRequestService {
	return &bloodRequestService{
		bloodRequestRepository: bloodRequestRepository,
		centerFinder:           centerFinder,
		notifier:               notifier,
		now:                    time.Now,
	}
}

func (s *bloodRequestService) CreateBloodRequest(ctx context.Context, req domain.CreateBloodRequestRequest) (*domain.BloodRequest, error) {
	if !domain.IsValidBloodType(req.BloodType) {
		return nil, domain.ErrInvalidBloodType
	}
	if req.UnitsNeeded <= 0 {
		return nil, domain.ErrInvalidUnitsNeeded
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = domain.UrgencyNormal
	}

	request := &entities.BloodRequest{
		ID:           uuid.New(),
		RequestType:  req.RequestType,
		BloodType:    req.BloodType,
		UnitsNeeded:  req.UnitsNeeded,
		Urgency:      urgency,
		ContactPhone: req.ContactPhone,
		Reason:       req.Reason,
		UserEmail:    req.UserEmail,
		Status:       domain.BloodRequestStatusPending,
	}
	// Only the name matching the request type is kept.
	if req.RequestType == domain.RequestTypeHospital {
		request.HospitalName = req.HospitalName
	} else {
		request.PatientName = req.PatientName
	}

	if err := s.bloodRequestRepository.CreateBloodRequest(ctx, request); err != nil {
		return nil, err
	}

	return toDomain(request), nil
}

func (s *bloodRequestService) GetBloodRequests(ctx context.Context) ([]*domain.BloodRequest, error) {
	requests, err := s.bloodRequestRepository.GetBloodRequests(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.BloodRequest, 0, len(requests))
	for _, request := range requests {
		result = append(result, toDomain(request))
	}
	return result, nil
}

// GetBloodRequestsByCenter returns every request. Blood requests carry no
// center reference until they are decided, so there is nothing to filter on.
func (s *bloodRequestService) GetBloodRequestsByCenter(ctx context.Context, centerID string) ([]*domain.BloodRequest, error) {
	if centerID == "" {
		return nil, domain.ErrCenterIDRequired
	}
	return s.GetBloodRequests(ctx)
}

func (s *bloodRequestService) ApproveBloodRequest(ctx context.Context, requestID string, req domain.ApproveBloodRequestRequest) (*domain.BloodRequest, error) {
	if req.CenterID == "" {
		return nil, domain.ErrCenterIDRequired
	}

	request, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	center, centerUUID, err := s.getCenter(ctx, req.CenterID)
	if err != nil {
		return nil, err
	}

	if request.Status == domain.BloodRequestStatusApproved {
		return nil, domain.ErrBloodRequestAlreadyApproved
	}

	stock := make([]domain.BloodTypeQuantity, 0, len(center.AvailableBloodTypes))
	for _, item := range center.AvailableBloodTypes {
		stock = append(stock, domain.BloodTypeQuantity{Type: item.Type, Quantity: item.Quantity})
	}
	if _, ok := domain.FindBloodType(domain.SanitizeBloodTypes(stock), request.BloodType); !ok {
		return nil, domain.ErrBloodTypeNotInStock
	}

	if request.UnitsNeeded <= 0 {
		return nil, domain.ErrInvalidUnitsNeeded
	}

	approvedAt := s.now()
	if err := s.bloodRequestRepository.ApproveBloodRequest(ctx, requestID, centerUUID, request.BloodType, request.UnitsNeeded, approvedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBloodRequestNotFound
		}
		return nil, err
	}

	request.Status = domain.BloodRequestStatusApproved
	request.ApprovedBy = &centerUUID
	request.ApprovedAt = &approvedAt
	request.RejectionReason = ""
	request.UpdatedAt = approvedAt

	log.Info().
		Str("request_id", requestID).
		Str("center_id", req.CenterID).
		Str("blood_type", request.BloodType).
		Int("units", request.UnitsNeeded).
		Msg("blood request approved")

	s.notifier.NotifyBloodRequestDecision(ctx, request, center)
	return toDomain(request), nil
}

func (s *bloodRequestService) RejectBloodRequest(ctx context.Context, requestID string, req domain.RejectBloodRequestRequest) (*domain.BloodRequest, error) {
	if req.CenterID == "" {
		return nil, domain.ErrCenterIDRequired
	}

	request, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	center, centerUUID, err := s.getCenter(ctx, req.CenterID)
	if err != nil {
		return nil, err
	}

	rejectedAt := s.now()
	if err := s.bloodRequestRepository.RejectBloodRequest(ctx, requestID, centerUUID, req.RejectionReason, rejectedAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBloodRequestNotFound
		}
		return nil, err
	}

	request.Status = domain.BloodRequestStatusRejected
	request.ApprovedBy = &centerUUID
	request.ApprovedAt = &rejectedAt
	request.RejectionReason = req.RejectionReason
	request.UpdatedAt = rejectedAt

	s.notifier.NotifyBloodRequestDecision(ctx, request, center)
	return toDomain(request), nil
}

func (s *bloodRequestService) DeleteBloodRequest(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrBloodRequestNotFound
	}
	if err := s.bloodRequestRepository.DeleteBloodRequest(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBloodRequestNotFound
		}
		return err
	}
	return nil
}

func (s *bloodRequestService) getRequest(ctx context.Context, id string) (*entities.BloodRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrBloodRequestNotFound
	}
	request, err := s.bloodRequestRepository.GetBloodRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBloodRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

func (s *bloodRequestService) getCenter(ctx context.Context, id string) (*entities.MedicalCenter, uuid.UUID, error) {
	centerUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, uuid.Nil, domain.ErrMedicalCenterNotFound
	}
	center, err := s.centerFinder.GetMedicalCenterByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, domain.ErrMedicalCenterNotFound
		}
		return nil, uuid.Nil, err
	}
	return center, centerUUID, nil
}

func toDomain(request *entities.BloodRequest) *domain.BloodRequest {
	result := &domain.BloodRequest{
		ID:              request.ID.String(),
		RequestType:     request.RequestType,
		PatientName:     request.PatientName,
		HospitalName:    request.HospitalName,
		BloodType:       request.BloodType,
		UnitsNeeded:     request.UnitsNeeded,
		Urgency:         request.Urgency,
		ContactPhone:    request.ContactPhone,
		Reason:          request.Reason,
		UserEmail:       request.UserEmail,
		Status:          request.Status,
		ApprovedAt:      request.ApprovedAt,
		RejectionReason: request.RejectionReason,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
	if request.ApprovedBy != nil {
		result.ApprovedBy = request.ApprovedBy.String()
	}
	return result
}
