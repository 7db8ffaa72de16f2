package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/presenters"
	"github.com/haidar-allaw/red-cross-sub000/pkg/location"
)

type (
	LocationHandler interface {
		CreateLocation(c *fiber.Ctx) error
		GetLocations(c *fiber.Ctx) error
		GetLocationByID(c *fiber.Ctx) error
		DeleteLocation(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) CreateLocation(c *fiber.Ctx) error {
	req := new(domain.CreateLocationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateLocation, err)
	}

	loc, err := h.locationService.CreateLocation(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedCreateLocation, err)
	}

	return presenters.SuccessResponse(c, loc, fiber.StatusCreated, domain.MessageSuccessCreateLocation)
}

func (h *locationHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.locationService.GetLocations(c.Context())
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, locations, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetLocationByID(c *fiber.Ctx) error {
	loc, err := h.locationService.GetLocationByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetLocation, err)
	}

	return presenters.SuccessResponse(c, loc, fiber.StatusOK, domain.MessageSuccessGetLocation)
}

func (h *locationHandler) DeleteLocation(c *fiber.Ctx) error {
	if err := h.locationService.DeleteLocation(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLocation)
}
