package apierr

import (
	"fmt"
	"net/http"
)

// Kind enumerates every recognized failure classification: the five domain
// kinds raised by handlers and middleware, the three framework-native signals
// raised by the router and body binding, and the unclassified catch-all.
//
// Declaration order encodes dispatch precedence. KindRouteMiss must come
// before KindNotFound: a route miss means no handler ever ran, so no domain
// kind can be present, and checking it first is what keeps the two 404 paths
// distinct. The remaining domain kinds are raised by disjoint code paths and
// carry no ordering dependency among themselves.
type Kind int

const (
	// KindRouteMiss signals that no route matched the request path at all.
	KindRouteMiss Kind = iota
	// KindNotFound is raised by a handler that located no matching record.
	KindNotFound
	// KindUnauthorized is raised when credentials are missing or invalid.
	KindUnauthorized
	// KindValidation is raised on semantically invalid input. It is the only
	// kind whose message may be overridden by the raise site.
	KindValidation
	// KindInternalServer is raised on unrecoverable server-side failures.
	KindInternalServer
	// KindTokenExpired is raised when an otherwise valid token has expired.
	KindTokenExpired
	// KindMethodNotAllowed signals a known path hit with the wrong verb.
	KindMethodNotAllowed
	// KindBodyParse signals that the request body failed to deserialize.
	// The underlying cause, when known, is surfaced in the message.
	KindBodyParse
	// KindUnclassified is the catch-all for failures matching nothing above.
	KindUnclassified
)

// String returns the symbolic name of the kind, for logs.
func (k Kind) String() string {
	switch k {
	case KindRouteMiss:
		return "routeMiss"
	case KindNotFound:
		return "notFound"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindInternalServer:
		return "internalServer"
	case KindTokenExpired:
		return "tokenExpired"
	case KindMethodNotAllowed:
		return "methodNotAllowed"
	case KindBodyParse:
		return "bodyParse"
	default:
		return "unclassified"
	}
}

// Error is the value carried through the request-failure channel from raise
// site to dispatcher. It is constructed once, passed opaquely, consumed
// exactly once by Dispatch, and never mutated or reused.
type Error struct {
	// Kind is the failure classification; it fixes the HTTP status.
	Kind Kind
	// Message is the client-facing text; empty means the kind's default.
	Message string
	// Cause is the underlying error for body-parse failures, nil otherwise.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.render().Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.render().Message)
}

// Unwrap exposes the root cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Unauthorized reports missing or unverifiable credentials (HTTP 401).
func Unauthorized() *Error { return &Error{Kind: KindUnauthorized} }

// TokenExpired reports a credential that verified but is past its expiry
// (HTTP 401, distinct message so clients can trigger a refresh).
func TokenExpired() *Error { return &Error{Kind: KindTokenExpired} }

// Validation reports semantically invalid input (HTTP 400). A non-empty msg
// replaces the default "validationError" text.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// NotFound reports that a handler located no matching record (HTTP 404).
func NotFound() *Error { return &Error{Kind: KindNotFound} }

// Internal reports an unrecoverable server-side failure (HTTP 500).
func Internal() *Error { return &Error{Kind: KindInternalServer} }

// RouteMiss is the framework signal for an unmatched request path. Raised
// only by the router's no-route fallback.
func RouteMiss() *Error { return &Error{Kind: KindRouteMiss} }

// MethodNotAllowed is the framework signal for a known path hit with an
// unsupported verb. Raised only by the router's no-method fallback.
func MethodNotAllowed() *Error { return &Error{Kind: KindMethodNotAllowed} }

// BodyParse wraps a request-body deserialization failure. cause may be nil
// when the underlying reason is unknown; when present its text is echoed to
// the client as a best-effort enrichment.
func BodyParse(cause error) *Error { return &Error{Kind: KindBodyParse, Cause: cause} }

// HTTPStatus returns the HTTP status code fixed for the kind. The mapping is
// total: every kind, including the catch-all, has exactly one status.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindRouteMiss, KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized, KindTokenExpired:
		return http.StatusUnauthorized
	case KindValidation, KindBodyParse:
		return http.StatusBadRequest
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// defaultMessage returns the per-kind client-facing text used when the raise
// site supplied none.
func defaultMessage(k Kind) string {
	switch k {
	case KindRouteMiss, KindNotFound:
		return "notFound"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validationError"
	case KindTokenExpired:
		return "tokenExpired"
	case KindMethodNotAllowed:
		return "methodNotAllowed"
	case KindBodyParse:
		return "badRequest"
	default:
		return "internalServerError"
	}
}

// render produces the error envelope for this failure. It is pure: no I/O,
// no failure modes, and byte-identical output for repeated calls.
func (e *Error) render() Envelope {
	if e.Kind == KindBodyParse && e.Cause != nil {
		return Failure("validationError - " + e.Cause.Error())
	}
	if e.Message != "" {
		return Failure(e.Message)
	}
	return Failure(defaultMessage(e.Kind))
}

// Render converts the failure into its terminal HTTP status and envelope.
func (e *Error) Render() (int, Envelope) {
	return e.Kind.HTTPStatus(), e.render()
}
