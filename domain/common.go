package domain

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleCenter = "center"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageInternalServerError  = "internal server error"

	ErrParseUUID      = NewValidationError("failed to parse UUID")
	ErrUserNotAllowed = NewUnauthorizedError("user not allowed")
	ErrTokenNotFound  = NewUnauthorizedError("failed to token not found")
	ErrTokenInvalid   = NewUnauthorizedError("token invalid")
	ErrTokenExpired   = NewUnauthorizedError("token expired")
)

// Pagination defaults shared by list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// NormalizePage clamps page/limit query values to sane defaults.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
