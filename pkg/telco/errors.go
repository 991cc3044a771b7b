package telco

import "errors"

const (
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeNetworkError = "NETWORK_ERROR"
	ErrorCodeServerError  = "SERVER_ERROR"
)

var (
	ErrTimeout      = errors.New(ErrorCodeTimeout)
	ErrNetworkError = errors.New(ErrorCodeNetworkError)
	ErrServerError  = errors.New(ErrorCodeServerError)
)

// Provider fault codes carried in REST error bodies.
const (
	CodeAuthenticationFailed = 20003
	CodeNumberUnavailable    = 21452
)

// Error is a fault reported by the provider's REST API. The provider attaches
// a machine-readable code and a human-readable message to every non-2xx
// response body.
type Error struct {
	Status  int    `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// IsAuthError reports whether err is a provider fault caused by invalid or
// revoked credentials.
func IsAuthError(err error) bool {
	var restErr *Error
	if !errors.As(err, &restErr) {
		return false
	}
	return restErr.Status == 401 || restErr.Code == CodeAuthenticationFailed
}

// AsRestError extracts the provider fault from err, if there is one.
func AsRestError(err error) (*Error, bool) {
	var restErr *Error
	if errors.As(err, &restErr) {
		return restErr, true
	}
	return nil, false
}
