package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/presenters"
	"github.com/haidar-allaw/red-cross-sub000/pkg/notification"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		MarkAllAsRead(c *fiber.Ctx) error
		DeleteNotification(c *fiber.Ctx) error
		ClearNotifications(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	notifications, err := h.notificationService.GetNotifications(c.Context(), userID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, notifications, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.MarkAsRead(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.Fail(c, domain.MessageFailedMarkNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkNotification)
}

func (h *notificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	updated, err := h.notificationService.MarkAllAsRead(c.Context(), userID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedMarkNotification, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"updated": updated}, fiber.StatusOK, domain.MessageSuccessMarkAllRead)
}

func (h *notificationHandler) DeleteNotification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.DeleteNotification(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNotification)
}

func (h *notificationHandler) ClearNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	deleted, err := h.notificationService.ClearNotifications(c.Context(), userID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedClearNotifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"deleted": deleted}, fiber.StatusOK, domain.MessageSuccessClearNotifications)
}
