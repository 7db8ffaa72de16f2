package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/presenters"
	"github.com/haidar-allaw/red-cross-sub000/pkg/bloodrequest"
)

type (
	BloodRequestHandler interface {
		CreateBloodRequest(c *fiber.Ctx) error
		GetBloodRequests(c *fiber.Ctx) error
		GetBloodRequestsByCenter(c *fiber.Ctx) error
		ApproveBloodRequest(c *fiber.Ctx) error
		RejectBloodRequest(c *fiber.Ctx) error
		DeleteBloodRequest(c *fiber.Ctx) error
	}

	bloodRequestHandler struct {
		bloodRequestService bloodrequest.BloodRequestService
		validator           *validator.Validate
	}
)

func NewBloodRequestHandler(bloodRequestService bloodrequest.BloodRequestService, validator *validator.Validate) BloodRequestHandler {
	return &bloodRequestHandler{
		bloodRequestService: bloodRequestService,
		validator:           validator,
	}
}

func (h *bloodRequestHandler) CreateBloodRequest(c *fiber.Ctx) error {
	req := new(domain.CreateBloodRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBloodRequest, err)
	}

	request, err := h.bloodRequestService.CreateBloodRequest(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedCreateBloodRequest, err)
	}

	return presenters.SuccessResponse(c, request, fiber.StatusCreated, domain.MessageSuccessCreateBloodRequest)
}

func (h *bloodRequestHandler) GetBloodRequests(c *fiber.Ctx) error {
	requests, err := h.bloodRequestService.GetBloodRequests(c.Context())
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetBloodRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetBloodRequests)
}

func (h *bloodRequestHandler) GetBloodRequestsByCenter(c *fiber.Ctx) error {
	requests, err := h.bloodRequestService.GetBloodRequestsByCenter(c.Context(), c.Params("centerId"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetBloodRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetBloodRequests)
}

func (h *bloodRequestHandler) ApproveBloodRequest(c *fiber.Ctx) error {
	req := new(domain.ApproveBloodRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := checkCenterCaller(c, req.CenterID); err != nil {
		return presenters.Fail(c, domain.MessageFailedApproveBloodRequest, err)
	}

	request, err := h.bloodRequestService.ApproveBloodRequest(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedApproveBloodRequest, err)
	}

	return presenters.SuccessResponse(c, request, fiber.StatusOK, domain.MessageSuccessApproveBloodRequest)
}

func (h *bloodRequestHandler) RejectBloodRequest(c *fiber.Ctx) error {
	req := new(domain.RejectBloodRequestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := checkCenterCaller(c, req.CenterID); err != nil {
		return presenters.Fail(c, domain.MessageFailedRejectBloodRequest, err)
	}

	request, err := h.bloodRequestService.RejectBloodRequest(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedRejectBloodRequest, err)
	}

	return presenters.SuccessResponse(c, request, fiber.StatusOK, domain.MessageSuccessRejectBloodRequest)
}

func (h *bloodRequestHandler) DeleteBloodRequest(c *fiber.Ctx) error {
	if err := h.bloodRequestService.DeleteBloodRequest(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteBloodRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBloodRequest)
}

// checkCenterCaller stops a center from deciding on behalf of another one.
// Admins may act for any center. An empty centerId is left for the service
// to reject.
func checkCenterCaller(c *fiber.Ctx, centerID string) error {
	role, _ := c.Locals("role").(string)
	if role != domain.RoleCenter || centerID == "" {
		return nil
	}
	if userID, _ := c.Locals("user_id").(string); userID != centerID {
		return domain.ErrUnauthorizedCenterAccess
	}
	return nil
}
