package bloodrequest

import (
	"context"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/stretchr/testify/mock"
	"time"
)

type MockBloodRequestRepo struct {
	mock.Mock
}

func (m *MockBloodRequestRepo) CreateBloodRequest(ctx context.Context, request *entities.BloodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockBloodRequestRepo) GetBloodRequestByID(ctx context.Context, id string) (*entities.BloodRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepo) GetBloodRequests(ctx context.Context) ([]*entities.BloodRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepo) ApproveBloodRequest(ctx context.Context, id string, centerID uuid.UUID, bloodType string, units int, approvedAt time.Time) error {
	args := m.Called(ctx, id, centerID, bloodType, units, approvedAt)
	return args.Error(0)
}

func (m *MockBloodRequestRepo) RejectBloodRequest(ctx context.Context, id string, centerID uuid.UUID, reason string, rejectedAt time.Time) error {
	args := m.Called(ctx, id, centerID, reason, rejectedAt)
	return args.Error(0)
}

func (m *MockBloodRequestRepo) DeleteBloodRequest(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCenterFinder struct {
	mock.Mock
}

func (m *MockCenterFinder) GetMedicalCenterByID(ctx context.Context, id string) (*entities.MedicalCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MedicalCenter), args.Error(1)
}

type MockDecisionNotifier struct {
	mock.Mock
}

func (m *MockDecisionNotifier) NotifyBloodRequestDecision(ctx context.Context, request *entities.BloodRequest, center *entities.MedicalCenter) {
	m.Called(ctx, request, center)
}
