package user

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/storage"
	"github.com/haidar-allaw/red-cross-sub000/pkg/jwt"
	"gorm.io/gorm"
	"strings"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (*domain.User, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		GetUserByID(ctx context.Context, id string) (*domain.User, error)
		GetUsers(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (*domain.User, error)
		UploadProfilePicture(ctx context.Context, id string, req domain.UploadPictureRequest) (*domain.User, error)
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if req.BloodType != "" && !domain.IsValidBloodType(req.BloodType) {
		return nil, domain.ErrInvalidBloodType
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     domain.RoleUser,
	}
	if req.BloodType != "" {
		bloodType := req.BloodType
		user.BloodType = &bloodType
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return ToDomain(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		Role:  user.Role,
		User:  ToDomain(user),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDomain(user), nil
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]*domain.User, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.User, 0, len(users))
	for _, user := range users {
		result = append(result, ToDomain(user))
	}
	return result, count, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (*domain.User, error) {
	if _, err := s.getUser(ctx, id); err != nil {
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
	if req.BloodType != "" {
		if !domain.IsValidBloodType(req.BloodType) {
			return nil, domain.ErrInvalidBloodType
		}
		updates["blood_type"] = req.BloodType
	}

	if len(updates) > 0 {
		if err := s.userRepository.UpdateUser(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrUserNotFound
			}
			return nil, err
		}
	}

	return s.GetUserByID(ctx, id)
}

func (s *userService) UploadProfilePicture(ctx context.Context, id string, req domain.UploadPictureRequest) (*domain.User, error) {
	if req.Picture == nil {
		return nil, domain.ErrPictureRequired
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("user-%s", user.ID.String()),
		req.Picture,
		"users",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	if err := s.userRepository.UpdateUser(ctx, id, map[string]interface{}{
		"profile_picture": s.s3.GetPublicLinkKey(objectKey),
	}); err != nil {
		return nil, err
	}

	return s.GetUserByID(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrUserNotFound
	}
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) getUser(ctx context.Context, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func ToDomain(user *entities.User) *domain.User {
	result := &domain.User{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		Address:        user.Address,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
	if user.BloodType != nil {
		result.BloodType = *user.BloodType
	}
	return result
}
