package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_AllowedPairs(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusUpcoming},
		{StatusPending, StatusCanceled},
		{StatusUpcoming, StatusCompleted},
		{StatusUpcoming, StatusCanceled},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			got, err := Transition(tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}
}

func TestTransition_RejectsEverythingElse(t *testing.T) {
	all := []Status{StatusPending, StatusUpcoming, StatusCompleted, StatusCanceled}

	allowed := map[[2]Status]bool{
		{StatusPending, StatusUpcoming}:   true,
		{StatusPending, StatusCanceled}:   true,
		{StatusUpcoming, StatusCompleted}: true,
		{StatusUpcoming, StatusCanceled}:  true,
	}

	for _, from := range all {
		for _, to := range all {
			if allowed[[2]Status{from, to}] {
				continue
			}

			got, err := Transition(from, to)
			require.Error(t, err, "%s -> %s should be rejected", from, to)
			assert.Equal(t, from, got)

			var ite *InvalidTransitionError
			require.True(t, errors.As(err, &ite))
			assert.Equal(t, from, ite.From)
			assert.Equal(t, to, ite.To)
		}
	}
}

func TestTransition_TerminalStatesHaveNoExit(t *testing.T) {
	targets := []Status{StatusPending, StatusUpcoming, StatusCompleted, StatusCanceled}

	for _, terminal := range []Status{StatusCompleted, StatusCanceled} {
		assert.True(t, IsTerminal(terminal))
		assert.Empty(t, AllowedNext(terminal))

		for _, to := range targets {
			_, err := Transition(terminal, to)
			assert.Error(t, err, "%s -> %s", terminal, to)
		}
	}
}

func TestInvalidTransitionError_NamesAllowedStates(t *testing.T) {
	_, err := Transition(StatusPending, StatusCompleted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pending")
	assert.Contains(t, err.Error(), "completed")
	assert.Contains(t, err.Error(), "upcoming")
	assert.Contains(t, err.Error(), "canceled")
}

func TestBlocks(t *testing.T) {
	assert.True(t, Blocks(StatusPending))
	assert.True(t, Blocks(StatusUpcoming))
	assert.True(t, Blocks(StatusCompleted))
	assert.False(t, Blocks(StatusCanceled))
}
