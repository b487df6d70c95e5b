package domain

import "strings"

// RequestState selects which bookings a list query returns.
type RequestState string

const (
	StateAll         RequestState = "ALL"
	StateCurrent     RequestState = "CURRENT"
	StatePast        RequestState = "PAST"
	StateFuture      RequestState = "FUTURE"
	StateWaiting     RequestState = "WAITING"
	StateRejected    RequestState = "REJECTED"
	StateUnsupported RequestState = "UNSUPPORTED_STATUS"
)

// NormalizeRequestState upper-cases user input; empty input means ALL.
// Unknown values are kept so they can be echoed back in the error.
func NormalizeRequestState(raw string) RequestState {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if v == "" {
		return StateAll
	}
	return RequestState(v)
}

func (s RequestState) Supported() bool {
	switch s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return true
	}
	return false
}
