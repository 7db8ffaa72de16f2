package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/presenters"
	"github.com/haidar-allaw/red-cross-sub000/pkg/medicalcenter"
	"strings"
)

type (
	MedicalCenterHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		GetMedicalCenters(c *fiber.Ctx) error
		GetMedicalCenterByID(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		UpdateMedicalCenter(c *fiber.Ctx) error
		UpdateInventory(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
		GetPendingMedicalCenters(c *fiber.Ctx) error
		ApproveMedicalCenter(c *fiber.Ctx) error
		DeleteMedicalCenter(c *fiber.Ctx) error
	}

	medicalCenterHandler struct {
		medicalCenterService medicalcenter.MedicalCenterService
		validator            *validator.Validate
	}
)

func NewMedicalCenterHandler(medicalCenterService medicalcenter.MedicalCenterService, validator *validator.Validate) MedicalCenterHandler {
	return &medicalCenterHandler{
		medicalCenterService: medicalCenterService,
		validator:            validator,
	}
}

func (h *medicalCenterHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterCenterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterCenter, err)
	}

	res, err := h.medicalCenterService.RegisterMedicalCenter(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedRegisterCenter, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterCenter)
}

func (h *medicalCenterHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.medicalCenterService.Login(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *medicalCenterHandler) GetMedicalCenters(c *fiber.Ctx) error {
	// an unescaped "+" in the query string arrives as a space
	bloodType := strings.ReplaceAll(c.Query("bloodType"), " ", "+")

	centers, err := h.medicalCenterService.GetMedicalCenters(c.Context(), bloodType)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetCenters, err)
	}

	return presenters.SuccessResponse(c, centers, fiber.StatusOK, domain.MessageSuccessGetCenters)
}

func (h *medicalCenterHandler) GetMedicalCenterByID(c *fiber.Ctx) error {
	center, err := h.medicalCenterService.GetMedicalCenterByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetCenter, err)
	}

	return presenters.SuccessResponse(c, center, fiber.StatusOK, domain.MessageSuccessGetCenter)
}

func (h *medicalCenterHandler) Me(c *fiber.Ctx) error {
	centerID := c.Locals("user_id").(string)

	center, err := h.medicalCenterService.GetMedicalCenterByID(c.Context(), centerID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetCenter, err)
	}

	return presenters.SuccessResponse(c, center, fiber.StatusOK, domain.MessageSuccessGetCenter)
}

func (h *medicalCenterHandler) UpdateMedicalCenter(c *fiber.Ctx) error {
	centerID := c.Locals("user_id").(string)

	req := new(domain.UpdateCenterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCenter, err)
	}

	center, err := h.medicalCenterService.UpdateMedicalCenter(c.Context(), centerID, *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateCenter, err)
	}

	return presenters.SuccessResponse(c, center, fiber.StatusOK, domain.MessageSuccessUpdateCenter)
}

func (h *medicalCenterHandler) UpdateInventory(c *fiber.Ctx) error {
	centerID := c.Locals("user_id").(string)

	req := new(domain.UpdateInventoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	center, err := h.medicalCenterService.UpdateInventory(c.Context(), centerID, *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateInventory, err)
	}

	return presenters.SuccessResponse(c, center, fiber.StatusOK, domain.MessageSuccessUpdateInventory)
}

func (h *medicalCenterHandler) UploadImage(c *fiber.Ctx) error {
	centerID := c.Locals("user_id").(string)

	req := domain.UploadImageRequest{}
	req.Image, _ = c.FormFile("image")

	center, err := h.medicalCenterService.UploadImage(c.Context(), centerID, req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, center, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func (h *medicalCenterHandler) GetPendingMedicalCenters(c *fiber.Ctx) error {
	centers, err := h.medicalCenterService.GetPendingMedicalCenters(c.Context())
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetCenters, err)
	}

	return presenters.SuccessResponse(c, centers, fiber.StatusOK, domain.MessageSuccessGetCenters)
}

func (h *medicalCenterHandler) ApproveMedicalCenter(c *fiber.Ctx) error {
	center, err := h.medicalCenterService.ApproveMedicalCenter(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedApproveCenter, err)
	}

	return presenters.SuccessResponse(c, center, fiber.StatusOK, domain.MessageSuccessApproveCenter)
}

func (h *medicalCenterHandler) DeleteMedicalCenter(c *fiber.Ctx) error {
	if err := h.medicalCenterService.DeleteMedicalCenter(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteCenter, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCenter)
}
