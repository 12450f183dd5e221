package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection reset, unreachable host, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request deadline expired
	ErrTypeTimeout
	// ErrTypeCanceled indicates the caller canceled the request
	ErrTypeCanceled
	// ErrTypeConnectionRefused indicates the API host refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeAuth indicates the API rejected the key (401/403)
	ErrTypeAuth
	// ErrTypeHTTP indicates any other non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates the payload did not have the expected shape
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeCanceled:
		return "Canceled"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// CatalogError represents an error that occurred while talking to the catalog API
type CatalogError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	URL        string    // Request URL (for context)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// ClassifyTransportError analyzes an error returned by the HTTP transport
// and returns a more specific error type.
func ClassifyTransportError(err error, rawURL string) *CatalogError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &CatalogError{Type: ErrTypeCanceled, Message: "Request canceled", URL: rawURL, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &CatalogError{Type: ErrTypeTimeout, Message: "Request timed out", URL: rawURL, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &CatalogError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			URL:     rawURL,
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			return &CatalogError{Type: ErrTypeConnectionRefused, Message: "API host refused connection", URL: rawURL, Err: err}
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH):
			return &CatalogError{Type: ErrTypeNetwork, Message: "Host unreachable", URL: rawURL, Err: err}
		case errors.Is(opErr.Err, syscall.ENETUNREACH):
			return &CatalogError{Type: ErrTypeNetwork, Message: "Network unreachable", URL: rawURL, Err: err}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil && urlErr.Err != err {
		return ClassifyTransportError(urlErr.Err, rawURL)
	}

	return &CatalogError{Type: ErrTypeNetwork, Message: "Network error occurred", URL: rawURL, Err: err}
}

// NewNetworkError creates a transport-level error with automatic classification
func NewNetworkError(message, rawURL string, err error) *CatalogError {
	classified := ClassifyTransportError(err, rawURL)
	if classified == nil {
		return &CatalogError{Type: ErrTypeNetwork, Message: message, URL: rawURL}
	}
	classified.Message = message
	return classified
}

// NewStatusError creates an auth or HTTP error from a non-2xx status code
func NewStatusError(statusCode int, rawURL string) *CatalogError {
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return &CatalogError{
			Type:       ErrTypeAuth,
			Message:    "API key rejected (check api.key or PLANTDECK_API_KEY)",
			StatusCode: statusCode,
			URL:        rawURL,
		}
	}
	return &CatalogError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		URL:        rawURL,
	}
}

// NewParseError creates a payload shape error
func NewParseError(message string, err error) *CatalogError {
	return &CatalogError{Type: ErrTypeParse, Message: message, Err: err}
}

func errorType(err error) (ErrorType, bool) {
	var catErr *CatalogError
	if errors.As(err, &catErr) {
		return catErr.Type, true
	}
	return 0, false
}

// IsNetworkError checks if an error is a transport error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	if !ok {
		return false
	}
	switch t {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS:
		return true
	}
	return false
}

// IsCanceled checks if an error came from a canceled request
func IsCanceled(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeCanceled
}

// IsAuthError checks if an error is an authentication error
func IsAuthError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeAuth
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// GetShortErrorMessage returns a concise message for CLI output.
// The interactive browser never shows it; it uses static messages instead.
func GetShortErrorMessage(err error) string {
	var catErr *CatalogError
	if !errors.As(err, &catErr) {
		return err.Error()
	}

	switch catErr.Type {
	case ErrTypeTimeout:
		return "Catalog API not responding (timeout)"
	case ErrTypeCanceled:
		return "Request canceled"
	case ErrTypeConnectionRefused:
		return "Catalog API refused connection"
	case ErrTypeDNS:
		return "Cannot resolve catalog API hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeAuth:
		return "API key rejected - check credentials"
	case ErrTypeHTTP:
		return fmt.Sprintf("Catalog API error (HTTP %d)", catErr.StatusCode)
	case ErrTypeParse:
		return "Unexpected response from catalog API"
	default:
		return catErr.Message
	}
}
