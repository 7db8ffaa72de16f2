package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/presenters"
	"github.com/haidar-allaw/red-cross-sub000/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBloodRequestService struct {
	mock.Mock
}

func (m *MockBloodRequestService) CreateBloodRequest(ctx context.Context, req domain.CreateBloodRequestRequest) (*domain.BloodRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestService) GetBloodRequests(ctx context.Context) ([]*domain.BloodRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestService) GetBloodRequestsByCenter(ctx context.Context, centerID string) ([]*domain.BloodRequest, error) {
	args := m.Called(ctx, centerID)
	return args.Get(0).([]*domain.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestService) ApproveBloodRequest(ctx context.Context, requestID string, req domain.ApproveBloodRequestRequest) (*domain.BloodRequest, error) {
	args := m.Called(ctx, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestService) RejectBloodRequest(ctx context.Context, requestID string, req domain.RejectBloodRequestRequest) (*domain.BloodRequest, error) {
	args := m.Called(ctx, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestService) DeleteBloodRequest(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newBloodRequestApp mounts the handler behind a stub that sets the caller
// locals the auth middleware would normally provide.
func newBloodRequestApp(svc *MockBloodRequestService, callerID, role string) *fiber.App {
	utils.InitValidator()
	h := NewBloodRequestHandler(svc, utils.Validate)

	app := fiber.New(fiber.Config{ErrorHandler: presenters.FiberErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("user_id", callerID)
			c.Locals("role", role)
		}
		return c.Next()
	})
	app.Post("/bloodRequests/create", h.CreateBloodRequest)
	app.Get("/bloodRequests/getAll", h.GetBloodRequests)
	app.Patch("/bloodRequests/:id/approve", h.ApproveBloodRequest)
	app.Patch("/bloodRequests/:id/reject", h.RejectBloodRequest)
	app.Delete("/bloodRequests/:id", h.DeleteBloodRequest)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, presenters.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var res presenters.Response
	require.NoError(t, json.Unmarshal(raw, &res))
	return resp.StatusCode, res
}

func TestCreateBloodRequestHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockBloodRequestService)
		app := newBloodRequestApp(svc, "", "")
		svc.On("CreateBloodRequest", mock.Anything, mock.MatchedBy(func(req domain.CreateBloodRequestRequest) bool {
			return req.BloodType == "O+" && req.UnitsNeeded == 2
		})).Return(&domain.BloodRequest{ID: "r1", Status: domain.BloodRequestStatusPending}, nil)

		code, res := send(t, app, fiber.MethodPost, "/bloodRequests/create",
			`{"requestType":"Individual","patientName":"Rami","bloodType":"O+","unitsNeeded":2,"contactPhone":"70123456"}`)
		assert.Equal(t, fiber.StatusCreated, code)
		assert.True(t, res.Status)
		assert.Equal(t, domain.MessageSuccessCreateBloodRequest, res.Message)
	})

	t.Run("MissingPatientName", func(t *testing.T) {
		svc := new(MockBloodRequestService)
		app := newBloodRequestApp(svc, "", "")

		code, res := send(t, app, fiber.MethodPost, "/bloodRequests/create",
			`{"requestType":"Individual","bloodType":"O+","unitsNeeded":2,"contactPhone":"70123456"}`)
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, map[string]interface{}{"PatientName": "required_if"}, res.Error)
		svc.AssertNotCalled(t, "CreateBloodRequest", mock.Anything, mock.Anything)
	})

	t.Run("UnknownBloodType", func(t *testing.T) {
		svc := new(MockBloodRequestService)
		app := newBloodRequestApp(svc, "", "")

		code, _ := send(t, app, fiber.MethodPost, "/bloodRequests/create",
			`{"requestType":"Hospital","hospitalName":"AUBMC","bloodType":"C+","unitsNeeded":1,"contactPhone":"01"}`)
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestApproveBloodRequestHandler(t *testing.T) {
	const centerID = "6f1c3a52-8a0e-4d8b-9a57-1d2f5e4c7b90"

	t.Run("Approved", func(t *testing.T) {
		svc := new(MockBloodRequestService)
		app := newBloodRequestApp(svc, centerID, domain.RoleCenter)
		svc.On("ApproveBloodRequest", mock.Anything, "r1", domain.ApproveBloodRequestRequest{CenterID: centerID}).
			Return(&domain.BloodRequest{ID: "r1", Status: domain.BloodRequestStatusApproved}, nil)

		code, res := send(t, app, fiber.MethodPatch, "/bloodRequests/r1/approve", `{"centerId":"`+centerID+`"}`)
		assert.Equal(t, fiber.StatusOK, code)
		assert.True(t, res.Status)
	})

	t.Run("OtherCenter", func(t *testing.T) {
		svc := new(MockBloodRequestService)
		app := newBloodRequestApp(svc, "someone-else", domain.RoleCenter)

		code, res := send(t, app, fiber.MethodPatch, "/bloodRequests/r1/approve", `{"centerId":"`+centerID+`"}`)
		assert.Equal(t, fiber.StatusUnauthorized, code)
		assert.Equal(t, domain.ErrUnauthorizedCenterAccess.Error(), res.Error)
		svc.AssertNotCalled(t, "ApproveBloodRequest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AdminForAnyCenter", func(t *testing.T) {
		svc := new(MockBloodRequestService)
		app := newBloodRequestApp(svc, "admin-1", domain.RoleAdmin)
		svc.On("ApproveBloodRequest", mock.Anything, "r1", domain.ApproveBloodRequestRequest{CenterID: centerID}).
			Return(&domain.BloodRequest{ID: "r1"}, nil)

		code, _ := send(t, app, fiber.MethodPatch, "/bloodRequests/r1/approve", `{"centerId":"`+centerID+`"}`)
		assert.Equal(t, fiber.StatusOK, code)
	})

	errorCases := []struct {
		name string
		err  error
		want int
	}{
		{"MissingCenter", domain.ErrCenterIDRequired, fiber.StatusBadRequest},
		{"NotInStock", domain.ErrBloodTypeNotInStock, fiber.StatusBadRequest},
		{"UnknownRequest", domain.ErrBloodRequestNotFound, fiber.StatusNotFound},
		{"UnknownCenter", domain.ErrMedicalCenterNotFound, fiber.StatusNotFound},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockBloodRequestService)
			app := newBloodRequestApp(svc, "admin-1", domain.RoleAdmin)
			svc.On("ApproveBloodRequest", mock.Anything, "r1", mock.Anything).Return(nil, tc.err)

			code, res := send(t, app, fiber.MethodPatch, "/bloodRequests/r1/approve", `{}`)
			assert.Equal(t, tc.want, code)
			assert.Equal(t, domain.MessageFailedApproveBloodRequest, res.Message)
			assert.Equal(t, tc.err.Error(), res.Error)
		})
	}
}

func TestRejectBloodRequestHandler(t *testing.T) {
	svc := new(MockBloodRequestService)
	app := newBloodRequestApp(svc, "admin-1", domain.RoleAdmin)
	req := domain.RejectBloodRequestRequest{CenterID: "c1", RejectionReason: "no stock"}
	svc.On("RejectBloodRequest", mock.Anything, "r1", req).
		Return(&domain.BloodRequest{ID: "r1", Status: domain.BloodRequestStatusRejected, RejectionReason: "no stock"}, nil)

	code, res := send(t, app, fiber.MethodPatch, "/bloodRequests/r1/reject", `{"centerId":"c1","rejectionReason":"no stock"}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, domain.MessageSuccessRejectBloodRequest, res.Message)
}

func TestDeleteBloodRequestHandler(t *testing.T) {
	svc := new(MockBloodRequestService)
	app := newBloodRequestApp(svc, "admin-1", domain.RoleAdmin)
	svc.On("DeleteBloodRequest", mock.Anything, "r1").Return(domain.ErrBloodRequestNotFound)

	code, _ := send(t, app, fiber.MethodDelete, "/bloodRequests/r1", "")
	assert.Equal(t, fiber.StatusNotFound, code)
}
