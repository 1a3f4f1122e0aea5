package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberhub/internal/httperr"
)

func TestParse(t *testing.T) {
	for _, raw := range []string{"PENDING", "CONFIRMED", "COMPLETED", "CANCELED", "NO_SHOW"} {
		st, ok := Parse(raw)
		require.True(t, ok, raw)
		assert.Equal(t, raw, string(st))
	}

	_, ok := Parse("pending")
	assert.False(t, ok, "statuses are case sensitive")

	_, ok = Parse("DONE")
	assert.False(t, ok)
}

func TestOperatorTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusNoShow, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusPending, false},

		{StatusCompleted, StatusCanceled, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusNoShow, StatusCompleted, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestValidateOperatorTransitionTerminal(t *testing.T) {
	for _, from := range []Status{StatusCompleted, StatusCanceled, StatusNoShow} {
		err := ValidateOperatorTransition(from, StatusConfirmed)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "booking_finalized"), from)
	}
}

func TestValidateOperatorTransitionInvalid(t *testing.T) {
	err := ValidateOperatorTransition(StatusPending, StatusCompleted)
	require.Error(t, err)

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "invalid_status_transition", be.Code)
	assert.Contains(t, be.Message, "CONFIRMED")
	assert.Contains(t, be.Message, "CANCELED")
}

func TestValidateClientCancel(t *testing.T) {
	assert.NoError(t, ValidateClientCancel(StatusPending))
	assert.NoError(t, ValidateClientCancel(StatusConfirmed))

	for _, from := range []Status{StatusCompleted, StatusCanceled, StatusNoShow} {
		err := ValidateClientCancel(from)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "booking_finalized"), from)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCanceled.Terminal())
	assert.True(t, StatusNoShow.Terminal())
}
