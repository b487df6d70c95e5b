package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestState(t *testing.T) {
	cases := map[string]RequestState{
		"":                   StateAll,
		"ALL":                StateAll,
		"current":            StateCurrent,
		" Past ":             StatePast,
		"FUTURE":             StateFuture,
		"waiting":            StateWaiting,
		"REJECTED":           StateRejected,
		"UNSUPPORTED_STATUS": StateUnsupported,
		"approved":           RequestState("APPROVED"),
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeRequestState(in), "input %q", in)
	}
}

func TestRequestState_Supported(t *testing.T) {
	for _, s := range []RequestState{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected} {
		assert.True(t, s.Supported(), s)
	}
	assert.False(t, StateUnsupported.Supported())
	assert.False(t, RequestState("APPROVED").Supported())
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrForbidden, ErrNotFound)
	assert.NotErrorIs(t, ErrNotFound, ErrForbidden)

	err := Errorf(ErrForbidden, "Item id %d does not belong to user id %d", 1, 2)
	assert.EqualError(t, err, "Item id 1 does not belong to user id 2")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, err, ErrNotFound)

	wrapped := fmt.Errorf("approve: %w", Errorf(ErrNotAvailable, "busy"))
	assert.ErrorIs(t, wrapped, ErrNotAvailable)
}

func TestPage(t *testing.T) {
	assert.Equal(t, 10, Page{From: 1, Size: 10}.Offset())
	assert.Equal(t, 0, Page{From: 0, Size: 5}.Offset())
	assert.NoError(t, Page{From: 0, Size: 1}.Validate())
	assert.ErrorIs(t, Page{From: -1, Size: 1}.Validate(), ErrValidation)
	assert.ErrorIs(t, Page{From: 0, Size: 0}.Validate(), ErrValidation)
}

func TestBookingWindowClassification(t *testing.T) {
	now := mustTime("2030-01-10T12:00:00Z")
	b := Booking{StartTime: now, EndTime: now}
	assert.True(t, b.IsCurrent(now))
	assert.False(t, b.IsPast(now))
	assert.False(t, b.IsFuture(now))

	past := Booking{StartTime: now.AddDate(0, 0, -2), EndTime: now.AddDate(0, 0, -1)}
	assert.True(t, past.IsPast(now))
	assert.False(t, past.IsCurrent(now))

	future := Booking{StartTime: now.AddDate(0, 0, 1), EndTime: now.AddDate(0, 0, 2)}
	assert.True(t, future.IsFuture(now))
}
