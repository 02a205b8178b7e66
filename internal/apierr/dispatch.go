package apierr

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// Dispatcher is the single chokepoint translating raised failures into HTTP
// responses. It holds no per-request state and no locks; each Dispatch call
// operates solely on the failure value passed to it, so one instance is
// shared safely across all in-flight requests.
//
// The logger is an injected capability rather than the process-wide global:
// tests pass zerolog.Nop() or a buffer-backed logger to observe the log
// side effect without real output.
type Dispatcher struct {
	log zerolog.Logger
}

// NewDispatcher returns a Dispatcher that logs every incoming failure to log.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Dispatch maps an arbitrary raised failure to exactly one terminal HTTP
// response. The full untransformed failure is logged at error severity
// before the response is constructed.
//
// Classification is first-match-wins in the precedence encoded by the Kind
// enumeration: route miss, explicit not-found, unauthorized, validation,
// internal, token expired, method not allowed, body parse (with the cause
// text echoed when available), and finally the unclassified catch-all.
// Dispatch never fails: anything that is not a recognized *Error renders as
// a 500 "internalServerError".
func (d *Dispatcher) Dispatch(failure error) (int, Envelope) {
	d.log.Error().Err(failure).Msg("request rejected")

	var e *Error
	if !errors.As(failure, &e) || e == nil {
		return http.StatusInternalServerError, Failure(defaultMessage(KindUnclassified))
	}
	if e.Kind == KindBodyParse && e.Cause != nil {
		d.log.Error().Err(e.Cause).Msg("body deserialize failure")
	}
	return e.Render()
}
