package bloodentry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockBloodEntryRepo struct {
	mock.Mock
}

func (m *MockBloodEntryRepo) CreateBloodEntry(ctx context.Context, entry *entities.BloodEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBloodEntryRepo) GetBloodEntryByID(ctx context.Context, id string) (*entities.BloodEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BloodEntry), args.Error(1)
}

func (m *MockBloodEntryRepo) GetUserBloodEntries(ctx context.Context, userID string) ([]*entities.BloodEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.BloodEntry), args.Error(1)
}

func (m *MockBloodEntryRepo) GetCenterBloodEntries(ctx context.Context, centerID string) ([]*entities.BloodEntry, error) {
	args := m.Called(ctx, centerID)
	return args.Get(0).([]*entities.BloodEntry), args.Error(1)
}

func (m *MockBloodEntryRepo) UpdateBloodEntryStatus(ctx context.Context, id string, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBloodEntryRepo) DeleteBloodEntry(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBloodEntryRepo) GetEntriesToRemind(ctx context.Context, from, to time.Time) ([]*entities.BloodEntry, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]*entities.BloodEntry), args.Error(1)
}

func (m *MockBloodEntryRepo) MarkReminded(ctx context.Context, id string, remindedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, remindedAt)
	return args.Bool(0), args.Error(1)
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

type MockDonorFinder struct {
	mock.Mock
}

func (m *MockDonorFinder) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type fixture struct {
	repo    *MockBloodEntryRepo
	centers *MockCenterFinder
	donors  *MockDonorFinder
	svc     BloodEntryService
}

func newFixture() *fixture {
	f := &fixture{
		repo:    new(MockBloodEntryRepo),
		centers: new(MockCenterFinder),
		donors:  new(MockDonorFinder),
	}
	f.svc = NewBloodEntryService(f.repo, f.centers, f.donors)
	return f
}

func strPtr(s string) *string {
	return &s
}

func TestCreateBloodEntry(t *testing.T) {
	ctx := context.Background()
	donor := &entities.User{ID: uuid.New(), BloodType: strPtr("A-")}
	center := &entities.MedicalCenter{ID: uuid.New(), IsApproved: true}
	donorID := donor.ID.String()
	centerID := center.ID.String()

	t.Run("DefaultsFromDonor", func(t *testing.T) {
		f := newFixture()
		f.donors.On("GetUserByID", ctx, donorID).Return(donor, nil)
		f.centers.On("GetMedicalCenterByID", ctx, centerID).Return(center, nil)
		f.repo.On("CreateBloodEntry", ctx, mock.AnythingOfType("*entities.BloodEntry")).Return(nil)

		res, err := f.svc.CreateBloodEntry(ctx, domain.CreateBloodEntryRequest{
			MedicalCenterID: centerID,
			ScheduledAt:     "2024-03-01T09:00:00Z",
		}, donorID)
		require.NoError(t, err)

		assert.Equal(t, "A-", res.BloodType)
		assert.Equal(t, 1, res.Units)
		assert.Equal(t, domain.BloodEntryStatusScheduled, res.Status)
		assert.Equal(t, time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC), res.ExpiresAt.UTC())
		assert.NotNil(t, res.Donor)
		assert.NotNil(t, res.MedicalCenter)
	})

	t.Run("ExplicitBloodType", func(t *testing.T) {
		f := newFixture()
		f.donors.On("GetUserByID", ctx, donorID).Return(&entities.User{ID: donor.ID}, nil)
		f.centers.On("GetMedicalCenterByID", ctx, centerID).Return(center, nil)
		f.repo.On("CreateBloodEntry", ctx, mock.AnythingOfType("*entities.BloodEntry")).Return(nil)

		res, err := f.svc.CreateBloodEntry(ctx, domain.CreateBloodEntryRequest{
			MedicalCenterID: centerID,
			BloodType:       "AB+",
			Units:           2,
			ScheduledAt:     "2024-03-01T09:00:00Z",
		}, donorID)
		require.NoError(t, err)
		assert.Equal(t, "AB+", res.BloodType)
		assert.Equal(t, 2, res.Units)
	})

	t.Run("DonorWithoutBloodType", func(t *testing.T) {
		f := newFixture()
		f.donors.On("GetUserByID", ctx, donorID).Return(&entities.User{ID: donor.ID}, nil)
		f.centers.On("GetMedicalCenterByID", ctx, centerID).Return(center, nil)

		_, err := f.svc.CreateBloodEntry(ctx, domain.CreateBloodEntryRequest{
			MedicalCenterID: centerID,
			ScheduledAt:     "2024-03-01T09:00:00Z",
		}, donorID)
		assert.ErrorIs(t, err, domain.ErrDonorBloodTypeUnknown)
		f.repo.AssertNotCalled(t, "CreateBloodEntry", mock.Anything, mock.Anything)
	})

	t.Run("CenterNotApproved", func(t *testing.T) {
		f := newFixture()
		f.donors.On("GetUserByID", ctx, donorID).Return(donor, nil)
		f.centers.On("GetMedicalCenterByID", ctx, centerID).Return(&entities.MedicalCenter{ID: center.ID}, nil)

		_, err := f.svc.CreateBloodEntry(ctx, domain.CreateBloodEntryRequest{
			MedicalCenterID: centerID,
			ScheduledAt:     "2024-03-01T09:00:00Z",
		}, donorID)
		assert.ErrorIs(t, err, domain.ErrCenterNotAcceptingDonors)
	})

	t.Run("CenterMissing", func(t *testing.T) {
		f := newFixture()
		f.donors.On("GetUserByID", ctx, donorID).Return(donor, nil)
		f.centers.On("GetMedicalCenterByID", ctx, centerID).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.CreateBloodEntry(ctx, domain.CreateBloodEntryRequest{
			MedicalCenterID: centerID,
			ScheduledAt:     "2024-03-01T09:00:00Z",
		}, donorID)
		assert.ErrorIs(t, err, domain.ErrMedicalCenterNotFound)
	})

	t.Run("BadTimestamp", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.CreateBloodEntry(ctx, domain.CreateBloodEntryRequest{
			MedicalCenterID: centerID,
			ScheduledAt:     "tomorrow",
		}, donorID)
		assert.ErrorIs(t, err, domain.ErrInvalidScheduledAt)
	})
}

func TestUpdateBloodEntryStatus(t *testing.T) {
	ctx := context.Background()
	donorID := uuid.New()
	centerID := uuid.New()
	otherID := uuid.New().String()

	scheduled := func() *entities.BloodEntry {
		return &entities.BloodEntry{
			ID:              uuid.New(),
			UserID:          donorID,
			MedicalCenterID: centerID,
			Status:          domain.BloodEntryStatusScheduled,
		}
	}

	cases := []struct {
		name     string
		status   string
		callerID string
		role     string
		wantErr  error
	}{
		{"CenterCompletes", domain.BloodEntryStatusCompleted, centerID.String(), domain.RoleCenter, nil},
		{"DonorCancels", domain.BloodEntryStatusCancelled, donorID.String(), domain.RoleUser, nil},
		{"AdminCompletes", domain.BloodEntryStatusCompleted, otherID, domain.RoleAdmin, nil},
		{"DonorCannotComplete", domain.BloodEntryStatusCompleted, donorID.String(), domain.RoleUser, domain.ErrUnauthorizedBloodEntryAccess},
		{"OtherCenter", domain.BloodEntryStatusCancelled, otherID, domain.RoleCenter, domain.ErrUnauthorizedBloodEntryAccess},
		{"OtherDonor", domain.BloodEntryStatusCancelled, otherID, domain.RoleUser, domain.ErrUnauthorizedBloodEntryAccess},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			entry := scheduled()
			id := entry.ID.String()
			f.repo.On("GetBloodEntryByID", ctx, id).Return(entry, nil)
			f.repo.On("UpdateBloodEntryStatus", ctx, id, tc.status).Return(int64(1), nil)

			res, err := f.svc.UpdateBloodEntryStatus(ctx, id, domain.UpdateBloodEntryStatusRequest{Status: tc.status}, tc.callerID, tc.role)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				f.repo.AssertNotCalled(t, "UpdateBloodEntryStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, res.Status)
		})
	}

	t.Run("TerminalStatus", func(t *testing.T) {
		f := newFixture()
		entry := scheduled()
		entry.Status = domain.BloodEntryStatusCompleted
		id := entry.ID.String()
		f.repo.On("GetBloodEntryByID", ctx, id).Return(entry, nil)

		_, err := f.svc.UpdateBloodEntryStatus(ctx, id, domain.UpdateBloodEntryStatusRequest{Status: domain.BloodEntryStatusCancelled}, centerID.String(), domain.RoleCenter)
		assert.ErrorIs(t, err, domain.ErrBloodEntryNotScheduled)
	})

	t.Run("LostRace", func(t *testing.T) {
		f := newFixture()
		entry := scheduled()
		id := entry.ID.String()
		f.repo.On("GetBloodEntryByID", ctx, id).Return(entry, nil)
		f.repo.On("UpdateBloodEntryStatus", ctx, id, domain.BloodEntryStatusCompleted).Return(int64(0), nil)

		_, err := f.svc.UpdateBloodEntryStatus(ctx, id, domain.UpdateBloodEntryStatusRequest{Status: domain.BloodEntryStatusCompleted}, centerID.String(), domain.RoleCenter)
		assert.ErrorIs(t, err, domain.ErrBloodEntryNotScheduled)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpdateBloodEntryStatus(ctx, uuid.New().String(), domain.UpdateBloodEntryStatusRequest{Status: domain.BloodEntryStatusScheduled}, otherID, domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrInvalidBloodEntryStatus)
	})
}

func TestGetBloodEntryByID_Visibility(t *testing.T) {
	ctx := context.Background()
	entry := &entities.BloodEntry{ID: uuid.New(), UserID: uuid.New(), MedicalCenterID: uuid.New()}
	id := entry.ID.String()

	f := newFixture()
	f.repo.On("GetBloodEntryByID", ctx, id).Return(entry, nil)

	_, err := f.svc.GetBloodEntryByID(ctx, id, entry.UserID.String(), domain.RoleUser)
	assert.NoError(t, err)

	_, err = f.svc.GetBloodEntryByID(ctx, id, entry.MedicalCenterID.String(), domain.RoleCenter)
	assert.NoError(t, err)

	_, err = f.svc.GetBloodEntryByID(ctx, id, uuid.New().String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedBloodEntryAccess)

	_, err = f.svc.GetBloodEntryByID(ctx, "not-a-uuid", entry.UserID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrBloodEntryNotFound)
}

func TestDeleteBloodEntry(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	f := newFixture()
	f.repo.On("DeleteBloodEntry", ctx, id).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, f.svc.DeleteBloodEntry(ctx, id), domain.ErrBloodEntryNotFound)
}
