package presenters

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/rs/zerolog/log"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes a failure payload. Internal error text is logged and
// never sent for 5xx responses.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}

	if statusCode >= fiber.StatusInternalServerError {
		if err != nil {
			log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg(message)
		}
		res.Error = domain.MessageInternalServerError
		return c.Status(statusCode).JSON(res)
	}

	var validationErrors validator.ValidationErrors
	switch {
	case err == nil:
	case errors.As(err, &validationErrors):
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = fe.Tag()
		}
		res.Error = fields
	default:
		res.Error = err.Error()
	}

	return c.Status(statusCode).JSON(res)
}

// StatusCode maps an error returned by a service to the HTTP status it is
// reported with.
func StatusCode(err error) int {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fiber.StatusBadRequest
	}

	switch domain.KindOf(err) {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// Fail reports err with the status its category maps to.
func Fail(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusCode(err), message, err)
}

// FiberErrorHandler keeps router-level failures (unknown route, panics
// recovered by middleware) in the same JSON shape as handler responses.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return ErrorResponse(c, code, errorMessage(code, fe), err)
}

func errorMessage(code int, fe *fiber.Error) string {
	if code >= fiber.StatusInternalServerError || fe == nil {
		return domain.MessageInternalServerError
	}
	return fe.Message
}
