package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// WithRequestID stores the request id so errors created further down carry it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext extracts the request id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeNotFound          ErrorType = "NOT_FOUND"
	ErrorTypeInvalidIdentifier ErrorType = "INVALID_IDENTIFIER"
	ErrorTypeValidation        ErrorType = "VALIDATION"
	ErrorTypeMalformedRequest  ErrorType = "MALFORMED_REQUEST"
	ErrorTypeInternal          ErrorType = "INTERNAL"
	ErrorTypeDatabaseError     ErrorType = "DATABASE_ERROR"
)

var httpStatusByType = map[ErrorType]int{
	ErrorTypeNotFound:          http.StatusNotFound,
	ErrorTypeInvalidIdentifier: http.StatusBadRequest,
	ErrorTypeValidation:        http.StatusBadRequest,
	ErrorTypeMalformedRequest:  http.StatusUnprocessableEntity,
	ErrorTypeInternal:          http.StatusInternalServerError,
	ErrorTypeDatabaseError:     http.StatusInternalServerError,
}

// Layer names where in the request path an error was raised.
type Layer string

const (
	LayerRepository Layer = "repository"
	LayerDomain     Layer = "domain"
	LayerHandler    Layer = "handler"
	LayerRoute      Layer = "route"
)

// PlatformError is an error tagged with its type, origin layer and a stable code.
// Codes are fixed per call site so clients can match on them; when none is
// given a random one is assigned.
type PlatformError struct {
	UUID      string
	Type      ErrorType
	Message   string
	Err       error
	Context   map[string]any
	RequestID string
	Layer     Layer
	Timestamp time.Time
}

func (e *PlatformError) Error() string {
	prefix := fmt.Sprintf("[%s][%s][%s] %s", e.Layer, e.Type, e.UUID, e.Message)
	if e.Err == nil {
		return prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

func (e *PlatformError) GetErrorType() ErrorType {
	return e.Type
}

func (e *PlatformError) GetRequestID() string {
	return e.RequestID
}

func (e *PlatformError) GetUUID() string {
	return e.UUID
}

// HTTPStatus is the response status for this error's type.
func (e *PlatformError) HTTPStatus() int {
	return ErrorTypeToHTTPStatus(e.Type)
}

// NewError creates a PlatformError bound to the request id in ctx.
func NewError(ctx context.Context, layer Layer, errorType ErrorType, message string, err error, code string) *PlatformError {
	return NewErrorWithContext(ctx, layer, errorType, message, err, code, nil)
}

// NewErrorWithContext is NewError with extra structured fields for the error log.
func NewErrorWithContext(ctx context.Context, layer Layer, errorType ErrorType, message string, err error, code string, fields map[string]any) *PlatformError {
	if code == "" {
		code = uuid.NewString()
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return &PlatformError{
		UUID:      code,
		Type:      errorType,
		Message:   message,
		Err:       err,
		Context:   maps.Clone(fields),
		RequestID: RequestIDFromContext(ctx),
		Layer:     layer,
		Timestamp: time.Now().UTC(),
	}
}

// AsError re-tags err for layer. Platform errors keep their type and code and
// get message prepended; anything else becomes INTERNAL.
func AsError(ctx context.Context, layer Layer, err error, message string) *PlatformError {
	if err == nil {
		return nil
	}
	var platformErr *PlatformError
	if !errors.As(err, &platformErr) {
		return NewError(ctx, layer, ErrorTypeInternal, message, err, "")
	}
	return NewError(ctx, layer, platformErr.Type, message+": "+platformErr.Message, platformErr, platformErr.UUID)
}

// ErrorTypeToHTTPStatus maps error types to HTTP status codes. Unknown types are 500.
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	if status, ok := httpStatusByType[errorType]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsErrorType reports whether err wraps a PlatformError of the given type.
func IsErrorType(err error, errorType ErrorType) bool {
	var platformErr *PlatformError
	return errors.As(err, &platformErr) && platformErr.Type == errorType
}

// LogError logs client errors at warn and server errors at error level.
func LogError(logger zerolog.Logger, err *PlatformError) {
	if err == nil {
		return
	}

	event := logger.Warn()
	if err.HTTPStatus() >= http.StatusInternalServerError {
		event = logger.Error()
	}

	event = event.
		Str("error_uuid", err.UUID).
		Str("error_type", string(err.Type)).
		Str("layer", string(err.Layer)).
		Time("timestamp_utc", err.Timestamp)
	if err.RequestID != "" {
		event = event.Str("request_id", err.RequestID)
	}
	if len(err.Context) > 0 {
		event = event.Fields(err.Context)
	}
	if err.Err != nil {
		event = event.Err(err.Err)
	}
	event.Msg(err.Message)
}
