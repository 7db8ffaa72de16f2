package notification

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/broker"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils/mailing"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		Notify(ctx context.Context, userID string, message string, link string) (*domain.Notification, error)
		NotifyBloodRequestDecision(ctx context.Context, request *entities.BloodRequest, center *entities.MedicalCenter)
		GetNotifications(ctx context.Context, userID string) ([]*domain.Notification, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
		MarkAllAsRead(ctx context.Context, userID string) (int64, error)
		DeleteNotification(ctx context.Context, id string, userID string) error
		ClearNotifications(ctx context.Context, userID string) (int64, error)
	}

	// UserFinder resolves the requester behind a blood request's contact email.
	UserFinder interface {
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		userFinder             UserFinder
		mailer                 mailing.Mailer
		publisher              broker.Publisher
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	userFinder UserFinder,
	mailer mailing.Mailer,
	publisher broker.Publisher,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userFinder:             userFinder,
		mailer:                 mailer,
		publisher:              publisher,
	}
}

func (s *notificationService) Notify(ctx context.Context, userID string, message string, link string) (*domain.Notification, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	notification := &entities.Notification{
		ID:      uuid.New(),
		UserID:  uid,
		Message: message,
		Link:    link,
	}
	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}

	result := toDomain(notification)
	if err := s.publisher.Publish(ctx, domain.NotificationChannel(userID), result); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to publish notification")
	}
	return result, nil
}

// NotifyBloodRequestDecision tells the requester about an approve/reject
// outcome. Failures are logged; the decision itself has already been stored.
func (s *notificationService) NotifyBloodRequestDecision(ctx context.Context, request *entities.BloodRequest, center *entities.MedicalCenter) {
	if request.UserEmail == "" {
		return
	}

	centerName := ""
	if center != nil {
		centerName = center.Name
	}

	requester, err := s.userFinder.GetUserByEmail(ctx, request.UserEmail)
	switch {
	case err == nil:
		message := fmt.Sprintf("Your blood request for %d unit(s) of %s was %s", request.UnitsNeeded, request.BloodType, request.Status)
		if centerName != "" {
			message += " by " + centerName
		}
		if _, err := s.Notify(ctx, requester.ID.String(), message, "/bloodRequests/"+request.ID.String()); err != nil {
			log.Warn().Err(err).Str("request_id", request.ID.String()).Msg("failed to store blood request notification")
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn().Err(err).Str("request_id", request.ID.String()).Msg("failed to look up requester")
	}

	subject := fmt.Sprintf("Blood request %s", request.Status)
	body := mailing.BloodRequestDecisionBody(request.Status, request.BloodType, request.UnitsNeeded, centerName, request.RejectionReason)
	if err := s.mailer.SendMail(request.UserEmail, subject, body); err != nil {
		log.Warn().Err(err).Str("request_id", request.ID.String()).Msg("failed to send blood request decision email")
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepository.GetUserNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Notification, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, toDomain(notification))
	}
	return result, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotificationNotFound
	}
	if err := s.notificationRepository.MarkAsRead(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepository.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotificationNotFound
	}
	if err := s.notificationRepository.DeleteNotification(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) ClearNotifications(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepository.ClearNotifications(ctx, userID)
}

func toDomain(notification *entities.Notification) *domain.Notification {
	return &domain.Notification{
		ID:        notification.ID.String(),
		UserID:    notification.UserID.String(),
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		Link:      notification.Link,
		CreatedAt: notification.CreatedAt,
	}
}
