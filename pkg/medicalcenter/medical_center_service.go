package medicalcenter

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/mailing"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/storage"
	"github.com/haidar-allaw/red-cross-sub000/pkg/jwt"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"strings"
)

type (
	MedicalCenterService interface {
		RegisterMedicalCenter(ctx context.Context, req domain.RegisterCenterRequest) (*domain.MedicalCenter, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		GetMedicalCenters(ctx context.Context, bloodType string) ([]*domain.MedicalCenter, error)
		GetPendingMedicalCenters(ctx context.Context) ([]*domain.MedicalCenter, error)
		GetMedicalCenterByID(ctx context.Context, id string) (*domain.MedicalCenter, error)
		UpdateMedicalCenter(ctx context.Context, id string, req domain.UpdateCenterRequest) (*domain.MedicalCenter, error)
		UpdateInventory(ctx context.Context, id string, req domain.UpdateInventoryRequest) (*domain.MedicalCenter, error)
		UploadImage(ctx context.Context, id string, req domain.UploadImageRequest) (*domain.MedicalCenter, error)
		ApproveMedicalCenter(ctx context.Context, id string) (*domain.MedicalCenter, error)
		DeleteMedicalCenter(ctx context.Context, id string) error
	}

	medicalCenterService struct {
		medicalCenterRepository MedicalCenterRepository
		jwtService              jwt.JWTService
		s3                      storage.AwsS3
		mailer                  mailing.Mailer
		appURL                  string
	}
)

func NewMedicalCenterService(
	medicalCenterRepository MedicalCenterRepository,
	jwtService jwt.JWTService,
	s3 storage.AwsS3,
	mailer mailing.Mailer,
	appURL string,
) MedicalCenterService {
	return &medicalCenterService{
		medicalCenterRepository: medicalCenterRepository,
		jwtService:              jwtService,
		s3:                      s3,
		mailer:                  mailer,
		appURL:                  appURL,
	}
}

func (s *medicalCenterService) RegisterMedicalCenter(ctx context.Context, req domain.RegisterCenterRequest) (*domain.MedicalCenter, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.medicalCenterRepository.GetMedicalCenterByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrCenterEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	center := &entities.MedicalCenter{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       email,
		Password:    hashed,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		IsApproved:  false,
	}
	if req.LocationID != "" {
		locationID, err := uuid.Parse(req.LocationID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		center.LocationID = &locationID
	}
	center.AvailableBloodTypes = toAvailable(center.ID, domain.SanitizeBloodTypes(req.AvailableBloodTypes))
	center.NeededBloodTypes = toNeeded(center.ID, domain.SanitizeBloodTypes(req.NeededBloodTypes))

	if err := s.medicalCenterRepository.CreateMedicalCenter(ctx, center); err != nil {
		return nil, err
	}

	return ToDomain(center), nil
}

func (s *medicalCenterService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	center, err := s.medicalCenterRepository.GetMedicalCenterByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(center.Password, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !center.IsApproved {
		return nil, domain.ErrCenterNotApproved
	}

	return &domain.LoginResponse{
		Token:         s.jwtService.GenerateTokenUser(center.ID.String(), domain.RoleCenter),
		Role:          domain.RoleCenter,
		MedicalCenter: ToDomain(center),
	}, nil
}

func (s *medicalCenterService) GetMedicalCenters(ctx context.Context, bloodType string) ([]*domain.MedicalCenter, error) {
	if bloodType != "" && !domain.IsValidBloodType(bloodType) {
		return nil, domain.ErrInvalidBloodType
	}
	centers, err := s.medicalCenterRepository.GetMedicalCenters(ctx, true, bloodType)
	if err != nil {
		return nil, err
	}
	return toDomainList(centers), nil
}

func (s *medicalCenterService) GetPendingMedicalCenters(ctx context.Context) ([]*domain.MedicalCenter, error) {
	centers, err := s.medicalCenterRepository.GetMedicalCenters(ctx, false, "")
	if err != nil {
		return nil, err
	}
	return toDomainList(centers), nil
}

func (s *medicalCenterService) GetMedicalCenterByID(ctx context.Context, id string) (*domain.MedicalCenter, error) {
	center, err := s.getCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDomain(center), nil
}

func (s *medicalCenterService) UpdateMedicalCenter(ctx context.Context, id string, req domain.UpdateCenterRequest) (*domain.MedicalCenter, error) {
	if _, err := s.getCenter(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.LocationID != "" {
		locationID, err := uuid.Parse(req.LocationID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		updates["location_id"] = locationID
	}

	if len(updates) > 0 {
		if err := s.medicalCenterRepository.UpdateMedicalCenter(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrMedicalCenterNotFound
			}
			return nil, err
		}
	}

	return s.GetMedicalCenterByID(ctx, id)
}

func (s *medicalCenterService) UpdateInventory(ctx context.Context, id string, req domain.UpdateInventoryRequest) (*domain.MedicalCenter, error) {
	if req.AvailableBloodTypes == nil && req.NeededBloodTypes == nil {
		return nil, domain.ErrInventoryUpdateEmpty
	}

	center, err := s.getCenter(ctx, id)
	if err != nil {
		return nil, err
	}

	var available []*entities.AvailableBloodType
	if req.AvailableBloodTypes != nil {
		available = toAvailable(center.ID, domain.SanitizeBloodTypes(req.AvailableBloodTypes))
	}
	var needed []*entities.NeededBloodType
	if req.NeededBloodTypes != nil {
		needed = toNeeded(center.ID, domain.SanitizeBloodTypes(req.NeededBloodTypes))
	}

	if err := s.medicalCenterRepository.ReplaceInventory(ctx, center.ID, available, needed); err != nil {
		return nil, err
	}

	return s.GetMedicalCenterByID(ctx, id)
}

func (s *medicalCenterService) UploadImage(ctx context.Context, id string, req domain.UploadImageRequest) (*domain.MedicalCenter, error) {
	if req.Image == nil {
		return nil, domain.ErrImageRequired
	}

	center, err := s.getCenter(ctx, id)
	if err != nil {
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("center-%s", center.ID.String()),
		req.Image,
		"centers",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	if err := s.medicalCenterRepository.UpdateMedicalCenter(ctx, id, map[string]interface{}{
		"image_url": s.s3.GetPublicLinkKey(objectKey),
	}); err != nil {
		return nil, err
	}

	return s.GetMedicalCenterByID(ctx, id)
}

func (s *medicalCenterService) ApproveMedicalCenter(ctx context.Context, id string) (*domain.MedicalCenter, error) {
	center, err := s.getCenter(ctx, id)
	if err != nil {
		return nil, err
	}

	affected, err := s.medicalCenterRepository.ApproveMedicalCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrCenterAlreadyApproved
	}
	center.IsApproved = true

	if err := s.mailer.SendMail(center.Email, "Your medical center has been approved", mailing.CenterApprovedBody(center.Name, s.appURL)); err != nil {
		log.Warn().Err(err).Str("center_id", id).Msg("failed to send center approval email")
	}

	return ToDomain(center), nil
}

func (s *medicalCenterService) DeleteMedicalCenter(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrMedicalCenterNotFound
	}
	if err := s.medicalCenterRepository.DeleteMedicalCenter(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMedicalCenterNotFound
		}
		return err
	}
	return nil
}

func (s *medicalCenterService) getCenter(ctx context.Context, id string) (*entities.MedicalCenter, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrMedicalCenterNotFound
	}
	center, err := s.medicalCenterRepository.GetMedicalCenterByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMedicalCenterNotFound
		}
		return nil, err
	}
	return center, nil
}

func toAvailable(centerID uuid.UUID, items []domain.BloodTypeQuantity) []*entities.AvailableBloodType {
	result := make([]*entities.AvailableBloodType, 0, len(items))
	for _, item := range items {
		result = append(result, &entities.AvailableBloodType{
			ID:              uuid.New(),
			MedicalCenterID: centerID,
			Type:            item.Type,
			Quantity:        item.Quantity,
		})
	}
	return result
}

func toNeeded(centerID uuid.UUID, items []domain.BloodTypeQuantity) []*entities.NeededBloodType {
	result := make([]*entities.NeededBloodType, 0, len(items))
	for _, item := range items {
		result = append(result, &entities.NeededBloodType{
			ID:              uuid.New(),
			MedicalCenterID: centerID,
			Type:            item.Type,
			Quantity:        item.Quantity,
		})
	}
	return result
}

func toDomainList(centers []*entities.MedicalCenter) []*domain.MedicalCenter {
	result := make([]*domain.MedicalCenter, 0, len(centers))
	for _, center := range centers {
		result = append(result, ToDomain(center))
	}
	return result
}

// ToDomain maps a center row, with whatever associations were preloaded, to its API shape.
func ToDomain(center *entities.MedicalCenter) *domain.MedicalCenter {
	result := &domain.MedicalCenter{
		ID:                  center.ID.String(),
		Name:                center.Name,
		Email:               center.Email,
		Phone:               center.Phone,
		Address:             center.Address,
		Description:         center.Description,
		ImageURL:            center.ImageURL,
		IsApproved:          center.IsApproved,
		AvailableBloodTypes: make([]domain.BloodTypeQuantity, 0, len(center.AvailableBloodTypes)),
		NeededBloodTypes:    make([]domain.BloodTypeQuantity, 0, len(center.NeededBloodTypes)),
		CreatedAt:           center.CreatedAt,
		UpdatedAt:           center.UpdatedAt,
	}
	if center.LocationID != nil {
		result.LocationID = center.LocationID.String()
	}
	if center.Location != nil {
		result.Location = &domain.Location{
			ID:        center.Location.ID.String(),
			Latitude:  center.Location.Latitude,
			Longitude: center.Location.Longitude,
			CreatedAt: center.Location.CreatedAt,
		}
	}
	for _, item := range center.AvailableBloodTypes {
		result.AvailableBloodTypes = append(result.AvailableBloodTypes, domain.BloodTypeQuantity{Type: item.Type, Quantity: item.Quantity})
	}
	for _, item := range center.NeededBloodTypes {
		result.NeededBloodTypes = append(result.NeededBloodTypes, domain.BloodTypeQuantity{Type: item.Type, Quantity: item.Quantity})
	}
	return result
}
