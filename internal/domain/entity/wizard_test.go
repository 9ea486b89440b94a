package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransition_HungerToHome(t *testing.T) {
	step, err := Transition(StepHungerSelect, Event{Kind: EventHungerSelected, Value: "High"})
	require.NoError(t, err)
	require.Equal(t, StepPreparing, step)

	step, err = Transition(step, Event{Kind: EventTimerElapsed})
	require.NoError(t, err)
	require.Equal(t, StepHome, step)
}

func TestTransition_UnknownHungerLevel(t *testing.T) {
	step, err := Transition(StepHungerSelect, Event{Kind: EventHungerSelected, Value: "Starving"})
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, StepHungerSelect, step)
}

func TestTransition_NewUserLoginChain(t *testing.T) {
	events := []struct {
		event Event
		want  Step
	}{
		{Event{Kind: EventOpenLogin}, StepIdentify},
		{Event{Kind: EventContactSubmitted, Value: "+91 98765 43210"}, StepOtpVerify},
		{Event{Kind: EventCodeVerified}, StepProfile},
		{Event{Kind: EventProfileCompleted}, StepIngredientPrefs},
		{Event{Kind: EventContinue}, StepUnderstanding},
		{Event{Kind: EventTimerElapsed}, StepMatching},
		{Event{Kind: EventTimerElapsed}, StepHome},
	}

	step := StepHome
	for _, e := range events {
		next, err := Transition(step, e.event)
		require.NoError(t, err, "from %s on %s", step, e.event.Kind)
		require.Equal(t, e.want, next)
		step = next
	}
}

func TestTransition_ReturningUser(t *testing.T) {
	step, err := Transition(StepOtpVerify, Event{Kind: EventCodeVerified, Returning: true})
	require.NoError(t, err)
	require.Equal(t, StepWelcome, step)

	step, err = Transition(step, Event{Kind: EventTimerElapsed})
	require.NoError(t, err)
	require.Equal(t, StepHome, step)
}

func TestTransition_EmptyContact(t *testing.T) {
	step, err := Transition(StepIdentify, Event{Kind: EventContactSubmitted, Value: "   "})
	require.ErrorIs(t, err, ErrEmptyContact)
	require.Equal(t, StepIdentify, step)
}

func TestTransition_SkipGoesHome(t *testing.T) {
	for _, from := range []Step{StepProfile, StepIngredientPrefs} {
		step, err := Transition(from, Event{Kind: EventSkip})
		require.NoError(t, err)
		require.Equal(t, StepHome, step)
	}

	step, err := Transition(StepOtpVerify, Event{Kind: EventSkip})
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, StepOtpVerify, step)
}

func TestTransition_CloseAbandonsChain(t *testing.T) {
	for _, from := range []Step{StepIdentify, StepOtpVerify, StepProfile, StepIngredientPrefs, StepUnderstanding, StepMatching, StepWelcome} {
		step, err := Transition(from, Event{Kind: EventClose})
		require.NoError(t, err)
		require.Equal(t, StepHome, step)
	}

	for _, from := range []Step{StepHungerSelect, StepPreparing, StepHome} {
		step, err := Transition(from, Event{Kind: EventClose})
		require.ErrorIs(t, err, ErrInvalidTransition)
		require.Equal(t, from, step)
	}
}

func TestTransition_TimerOnInteractiveStepIsRejected(t *testing.T) {
	for _, from := range []Step{StepHungerSelect, StepHome, StepIdentify, StepOtpVerify, StepProfile, StepIngredientPrefs} {
		step, err := Transition(from, Event{Kind: EventTimerElapsed})
		require.ErrorIs(t, err, ErrInvalidTransition)
		require.Equal(t, from, step)
	}
}

func TestAutoAdvance(t *testing.T) {
	d, ok := AutoAdvance(StepPreparing)
	require.True(t, ok)
	require.Equal(t, PreparingDelay, d)

	d, ok = AutoAdvance(StepWelcome)
	require.True(t, ok)
	require.Equal(t, WelcomeDelay, d)

	_, ok = AutoAdvance(StepHome)
	require.False(t, ok)
}

func TestValidateCode(t *testing.T) {
	require.NoError(t, ValidateCode("1234"))
	require.ErrorIs(t, ValidateCode("123"), ErrMalformedCode)
	require.ErrorIs(t, ValidateCode("12345"), ErrMalformedCode)
	require.ErrorIs(t, ValidateCode("12a4"), ErrMalformedCode)
	require.ErrorIs(t, ValidateCode(""), ErrMalformedCode)
}

func TestParseHungerLevel(t *testing.T) {
	l, ok := ParseHungerLevel("medium")
	require.True(t, ok)
	require.Equal(t, HungerMedium, l)

	_, ok = ParseHungerLevel("none")
	require.False(t, ok)
}
