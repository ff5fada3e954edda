package models

// APIError is the body of every non-OAuth error response.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// API error codes
const (
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrTooManyRequests  = "TOO_MANY_REQUESTS"

	// Order placement rolled back; the cart is left untouched.
	ErrOrderTransactionFailed = "ORDER_TRANSACTION_FAILED"
)

// OAuth2 error codes (RFC 6749 section 5.2, RFC 6750 section 3.1)
const (
	ErrInvalidRequest        = "invalid_request"
	ErrInvalidClient         = "invalid_client"
	ErrInvalidGrant          = "invalid_grant"
	ErrUnauthorizedClient    = "unauthorized_client"
	ErrUnsupportedGrantType  = "unsupported_grant_type"
	ErrInvalidToken          = "invalid_token"
	ErrServerError           = "server_error"
	ErrAuthorizationRequired = "authorization_required"
)

// NewAPIError builds an APIError. At most one details map is used.
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	apiErr := APIError{Code: code, Message: message}
	if len(details) > 0 {
		apiErr.Details = details[0]
	}
	return apiErr
}

// OAuth2Error is the error body of the token endpoint and bearer authentication.
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

func NewOAuth2Error(code, description string) OAuth2Error {
	return OAuth2Error{Error: code, ErrorDescription: description}
}
