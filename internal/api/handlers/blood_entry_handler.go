package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/presenters"
	"github.com/haidar-allaw/red-cross-sub000/pkg/bloodentry"
)

type (
	BloodEntryHandler interface {
		CreateBloodEntry(c *fiber.Ctx) error
		GetUserBloodEntries(c *fiber.Ctx) error
		GetCenterBloodEntries(c *fiber.Ctx) error
		GetBloodEntryByID(c *fiber.Ctx) error
		UpdateBloodEntryStatus(c *fiber.Ctx) error
		DeleteBloodEntry(c *fiber.Ctx) error
	}

	bloodEntryHandler struct {
		bloodEntryService bloodentry.BloodEntryService
		validator         *validator.Validate
	}
)

func NewBloodEntryHandler(bloodEntryService bloodentry.BloodEntryService, validator *validator.Validate) BloodEntryHandler {
	return &bloodEntryHandler{
		bloodEntryService: bloodEntryService,
		validator:         validator,
	}
}

func (h *bloodEntryHandler) CreateBloodEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateBloodEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBloodEntry, err)
	}

	entry, err := h.bloodEntryService.CreateBloodEntry(c.Context(), *req, userID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedCreateBloodEntry, err)
	}

	return presenters.SuccessResponse(c, entry, fiber.StatusCreated, domain.MessageSuccessCreateBloodEntry)
}

func (h *bloodEntryHandler) GetUserBloodEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	entries, err := h.bloodEntryService.GetUserBloodEntries(c.Context(), userID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetBloodEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetBloodEntries)
}

func (h *bloodEntryHandler) GetCenterBloodEntries(c *fiber.Ctx) error {
	centerID := c.Locals("user_id").(string)

	entries, err := h.bloodEntryService.GetCenterBloodEntries(c.Context(), centerID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetBloodEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetBloodEntries)
}

func (h *bloodEntryHandler) GetBloodEntryByID(c *fiber.Ctx) error {
	callerID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)

	entry, err := h.bloodEntryService.GetBloodEntryByID(c.Context(), c.Params("id"), callerID, role)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetBloodEntry, err)
	}

	return presenters.SuccessResponse(c, entry, fiber.StatusOK, domain.MessageSuccessGetBloodEntry)
}

func (h *bloodEntryHandler) UpdateBloodEntryStatus(c *fiber.Ctx) error {
	callerID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)

	req := new(domain.UpdateBloodEntryStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBloodEntry, err)
	}

	entry, err := h.bloodEntryService.UpdateBloodEntryStatus(c.Context(), c.Params("id"), *req, callerID, role)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateBloodEntry, err)
	}

	return presenters.SuccessResponse(c, entry, fiber.StatusOK, domain.MessageSuccessUpdateBloodEntry)
}

func (h *bloodEntryHandler) DeleteBloodEntry(c *fiber.Ctx) error {
	if err := h.bloodEntryService.DeleteBloodEntry(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteBloodEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBloodEntry)
}
