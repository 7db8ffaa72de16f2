package user

import (
	"context"
	"mime/multipart"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepo) GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockUserRepo) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateTokenUser(userId string, role string) string {
	args := m.Called(userId, role)
	return args.String(0)
}

func (m *MockJWT) ValidateTokenUser(token string) (*gojwt.Token, error) {
	args := m.Called(token)
	return nil, args.Error(1)
}

func (m *MockJWT) GetUserIDByToken(token string) (string, string, error) {
	args := m.Called(token)
	return args.String(0), args.String(1), args.Error(2)
}

type MockS3 struct {
	mock.Mock
}

func (m *MockS3) UploadFile(name string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	args := m.Called(name, file, folder)
	return args.String(0), args.Error(1)
}

func (m *MockS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example/" + objectKey
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewUserService(repo, new(MockJWT), new(MockS3))
		repo.On("GetUserByEmail", ctx, "donor@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("CreateUser", ctx, mock.AnythingOfType("*entities.User")).Return(nil)

		res, err := svc.Register(ctx, domain.RegisterUserRequest{
			Name:      "Donor",
			Email:     "Donor@Example.com",
			Password:  "secret1",
			Phone:     "03",
			BloodType: "O-",
		})
		require.NoError(t, err)
		assert.Equal(t, "donor@example.com", res.Email)
		assert.Equal(t, "O-", res.BloodType)
		assert.Equal(t, domain.RoleUser, res.Role)

		created := repo.Calls[1].Arguments.Get(1).(*entities.User)
		assert.True(t, utils.CheckPassword(created.Password, "secret1"))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewUserService(repo, new(MockJWT), new(MockS3))
		repo.On("GetUserByEmail", ctx, "donor@example.com").Return(&entities.User{}, nil)

		_, err := svc.Register(ctx, domain.RegisterUserRequest{Email: "donor@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	u := &entities.User{ID: uuid.New(), Email: "donor@example.com", Password: hashed, Role: domain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepo)
		jwtService := new(MockJWT)
		svc := NewUserService(repo, jwtService, new(MockS3))
		repo.On("GetUserByEmail", ctx, "donor@example.com").Return(u, nil)
		jwtService.On("GenerateTokenUser", u.ID.String(), domain.RoleAdmin).Return("signed")

		res, err := svc.Login(ctx, domain.LoginRequest{Email: "donor@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "signed", res.Token)
		assert.Equal(t, domain.RoleAdmin, res.Role)
		assert.Nil(t, res.MedicalCenter)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewUserService(repo, new(MockJWT), new(MockS3))
		repo.On("GetUserByEmail", ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, domain.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	u := &entities.User{ID: uuid.New(), Name: "Old"}
	id := u.ID.String()

	repo := new(MockUserRepo)
	svc := NewUserService(repo, new(MockJWT), new(MockS3))
	repo.On("GetUserByID", ctx, id).Return(u, nil)
	repo.On("UpdateUser", ctx, id, map[string]interface{}{"name": "New", "blood_type": "B+"}).Return(nil)

	_, err := svc.UpdateUser(ctx, id, domain.UpdateUserRequest{Name: "New", BloodType: "B+"})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	_, err = svc.UpdateUser(ctx, id, domain.UpdateUserRequest{BloodType: "Q"})
	assert.ErrorIs(t, err, domain.ErrInvalidBloodType)
}

func TestGetUserByID_InvalidID(t *testing.T) {
	svc := NewUserService(new(MockUserRepo), new(MockJWT), new(MockS3))

	_, err := svc.GetUserByID(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUploadProfilePicture(t *testing.T) {
	ctx := context.Background()
	u := &entities.User{ID: uuid.New()}
	id := u.ID.String()
	file := &multipart.FileHeader{Filename: "me.jpg"}

	repo := new(MockUserRepo)
	s3 := new(MockS3)
	svc := NewUserService(repo, new(MockJWT), s3)

	_, err := svc.UploadProfilePicture(ctx, id, domain.UploadPictureRequest{})
	assert.ErrorIs(t, err, domain.ErrPictureRequired)

	repo.On("GetUserByID", ctx, id).Return(u, nil)
	s3.On("UploadFile", "user-"+id, file, "users").Return("", storage.ErrFileTypeNotAllowed).Once()

	_, err = svc.UploadProfilePicture(ctx, id, domain.UploadPictureRequest{Picture: file})
	assert.ErrorIs(t, err, storage.ErrFileTypeNotAllowed)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	s3.On("UploadFile", "user-"+id, file, "users").Return("users/user-"+id+".jpg", nil).Once()
	repo.On("UpdateUser", ctx, id, map[string]interface{}{"profile_picture": "https://cdn.example/users/user-" + id + ".jpg"}).Return(nil)

	_, err = svc.UploadProfilePicture(ctx, id, domain.UploadPictureRequest{Picture: file})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()
	repo := new(MockUserRepo)
	svc := NewUserService(repo, new(MockJWT), new(MockS3))
	repo.On("DeleteUser", ctx, id).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, id), domain.ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, "nope"), domain.ErrUserNotFound)
}
