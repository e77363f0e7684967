package letters

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Origin identifies which layer detected a failure.
type Origin string

const (
	// OriginLocal marks filesystem, configuration, or validation failures
	// detected before any network call was attempted.
	OriginLocal Origin = "local"

	// OriginNetwork marks transport failures: unreachable host or timeout.
	OriginNetwork Origin = "network"

	// OriginServer marks non-success HTTP responses from the API.
	OriginServer Origin = "server"
)

// Error is a classified failure. Exactly one Origin is set per failure;
// the optional fields carry whatever the failing layer could supply.
type Error struct {
	Origin     Origin `json:"origin"`
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	HTTPStatus int    `json:"http_status,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Field      string `json:"field,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Origin, e.Message)
}

// Format renders the multi-line block written to stderr: the origin and
// message on the first line, then only the optional fields that are present,
// in code, http_status, detail, field order.
func (e *Error) Format() string {
	parts := []string{fmt.Sprintf("[%s] %s", e.Origin, e.Message)}

	if e.Code != "" {
		parts = append(parts, "  code: "+e.Code)
	}

	if e.HTTPStatus != 0 {
		parts = append(parts, fmt.Sprintf("  http_status: %d", e.HTTPStatus))
	}

	if e.Detail != "" {
		parts = append(parts, "  detail: "+e.Detail)
	}

	if e.Field != "" {
		parts = append(parts, "  field: "+e.Field)
	}

	return strings.Join(parts, "\n")
}

// LocalError builds a local-origin error. Pass an empty detail when there is
// no OS-level context to attach.
func LocalError(message, detail string) *Error {
	return &Error{Origin: OriginLocal, Message: message, Detail: detail}
}

// NetworkError builds a network-origin error.
func NetworkError(message, detail string) *Error {
	return &Error{Origin: OriginNetwork, Message: message, Detail: detail}
}

// apiErrorBody mirrors the error JSON the API returns on non-success
// statuses. All fields are optional.
type apiErrorBody struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Field  string `json:"field"`
}

// ParseServerError classifies a non-2xx response. A JSON body contributes
// message, code, detail, and field; anything else yields the raw status with
// the reason phrase as detail.
func ParseServerError(statusCode int, body []byte) *Error {
	var parsed apiErrorBody

	err := json.Unmarshal(body, &parsed)
	if err != nil {
		return &Error{
			Origin:     OriginServer,
			Message:    fmt.Sprintf("HTTP %d with non-JSON response", statusCode),
			HTTPStatus: statusCode,
			Detail:     http.StatusText(statusCode),
		}
	}

	message := parsed.Error
	if message == "" {
		message = fmt.Sprintf("HTTP %d", statusCode)
	}

	return &Error{
		Origin:     OriginServer,
		Message:    message,
		Code:       parsed.Code,
		HTTPStatus: statusCode,
		Detail:     parsed.Detail,
		Field:      parsed.Field,
	}
}

// IsLocal checks if the error was classified as a local failure.
func IsLocal(err error) bool {
	return hasOrigin(err, OriginLocal)
}

// IsNetwork checks if the error was classified as a transport failure.
func IsNetwork(err error) bool {
	return hasOrigin(err, OriginNetwork)
}

// IsServer checks if the error was classified as a server rejection.
func IsServer(err error) bool {
	return hasOrigin(err, OriginServer)
}

func hasOrigin(err error, origin Origin) bool {
	clsErr := &Error{}
	if errors.As(err, &clsErr) {
		return clsErr.Origin == origin
	}

	return false
}
