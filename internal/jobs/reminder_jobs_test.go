package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReminderStore struct {
	mock.Mock
}

func (m *MockReminderStore) GetEntriesToRemind(ctx context.Context, from, to time.Time) ([]*entities.BloodEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BloodEntry), args.Error(1)
}

func (m *MockReminderStore) MarkReminded(ctx context.Context, id string, remindedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, remindedAt)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID string, message string, link string) (*domain.Notification, error) {
	args := m.Called(ctx, userID, message, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendMail(toEmail string, subject string, body string) error {
	args := m.Called(toEmail, subject, body)
	return args.Error(0)
}

func newRunner(now time.Time) (*JobRunner, *MockReminderStore, *MockNotifier, *MockMailer) {
	store := new(MockReminderStore)
	notifier := new(MockNotifier)
	mailer := new(MockMailer)
	jr := NewJobRunner(store, notifier, mailer)
	jr.now = func() time.Time { return now }
	return jr, store, notifier, mailer
}

func TestRemindUpcomingDonations(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	withEmail := &entities.BloodEntry{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		ScheduledAt:   now.Add(5 * time.Hour),
		User:          &entities.User{Name: "Lina", Email: "lina@example.com"},
		MedicalCenter: &entities.MedicalCenter{Name: "Beirut Center"},
	}
	withoutEmail := &entities.BloodEntry{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ScheduledAt: now.Add(20 * time.Hour),
	}

	jr, store, notifier, mailer := newRunner(now)
	store.On("GetEntriesToRemind", ctx, now, now.Add(ReminderWindow)).
		Return([]*entities.BloodEntry{withEmail, withoutEmail}, nil)
	notifier.On("Notify", ctx, withEmail.UserID.String(), mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "Beirut Center")
	}), "/bloodEntries/"+withEmail.ID.String()).Return(&domain.Notification{}, nil)
	notifier.On("Notify", ctx, withoutEmail.UserID.String(), mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "the medical center")
	}), "/bloodEntries/"+withoutEmail.ID.String()).Return(&domain.Notification{}, nil)
	mailer.On("SendMail", "lina@example.com", "Upcoming blood donation", mock.AnythingOfType("string")).
		Return(errors.New("smtp down"))
	store.On("MarkReminded", ctx, withEmail.ID.String(), now).Return(true, nil)
	store.On("MarkReminded", ctx, withoutEmail.ID.String(), now).Return(true, nil)

	sent, err := jr.RemindUpcomingDonations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
	mailer.AssertNumberOfCalls(t, "SendMail", 1)
}

func TestRemindUpcomingDonations_StampFailureSendsNothing(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	entry := &entities.BloodEntry{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ScheduledAt: now.Add(time.Hour),
		User:        &entities.User{Name: "Omar", Email: "omar@example.com"},
	}

	jr, store, notifier, mailer := newRunner(now)
	store.On("GetEntriesToRemind", ctx, now, now.Add(ReminderWindow)).Return([]*entities.BloodEntry{entry}, nil)
	store.On("MarkReminded", ctx, entry.ID.String(), now).Return(false, errors.New("db down"))

	sent, err := jr.RemindUpcomingDonations(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendMail", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemindUpcomingDonations_AlreadyClaimedSkipped(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	entry := &entities.BloodEntry{ID: uuid.New(), UserID: uuid.New(), ScheduledAt: now.Add(time.Hour)}

	jr, store, notifier, _ := newRunner(now)
	store.On("GetEntriesToRemind", ctx, now, now.Add(ReminderWindow)).Return([]*entities.BloodEntry{entry}, nil)
	store.On("MarkReminded", ctx, entry.ID.String(), now).Return(false, nil)

	sent, err := jr.RemindUpcomingDonations(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemindUpcomingDonations_NotifyFailureNotCounted(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	entry := &entities.BloodEntry{ID: uuid.New(), UserID: uuid.New(), ScheduledAt: now.Add(time.Hour)}

	jr, store, notifier, _ := newRunner(now)
	store.On("GetEntriesToRemind", ctx, now, now.Add(ReminderWindow)).Return([]*entities.BloodEntry{entry}, nil)
	store.On("MarkReminded", ctx, entry.ID.String(), now).Return(true, nil)
	notifier.On("Notify", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	sent, err := jr.RemindUpcomingDonations(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	store.AssertNumberOfCalls(t, "MarkReminded", 1)
}

func TestRemindUpcomingDonations_QueryError(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	jr, store, _, _ := newRunner(now)
	store.On("GetEntriesToRemind", ctx, now, now.Add(ReminderWindow)).Return(nil, errors.New("timeout"))

	_, err := jr.RemindUpcomingDonations(ctx)
	assert.EqualError(t, err, "timeout")
}

func TestRunWithRecovery(t *testing.T) {
	jr, _, _, _ := newRunner(time.Now())

	assert.NotPanics(t, func() {
		jr.runWithRecovery("panicky", func() { panic("boom") })
	})
}
