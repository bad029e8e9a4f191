package types

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &Error{Kind: ErrKindIO, Msg: ErrSinkUnavailable.Msg, Err: cause}

	assert.True(t, errors.Is(err, ErrSinkUnavailable), "wrapped copy should match sentinel")
	assert.False(t, errors.Is(err, ErrSourceUnavailable))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Equal(t, "save sink unavailable: disk full", err.Error())
}

func Test_ErrorSentinelKinds(t *testing.T) {
	tests := []struct {
		err  *Error
		kind ErrKind
	}{
		{ErrUnsupportedType, ErrKindUnsupported},
		{ErrMalformedValue, ErrKindValue},
		{ErrSinkUnavailable, ErrKindIO},
		{ErrSourceUnavailable, ErrKindIO},
		{ErrSessionClosed, ErrKindState},
		{ErrDuplicateName, ErrKindConflict},
		{ErrKindMismatch, ErrKindValue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.err.Kind, tt.err.Msg)
	}
}

func Test_DefaultLimits(t *testing.T) {
	intLim := DefaultLimits(KindInt)
	require.Equal(t, float64(math.MinInt32), intLim.Min)
	require.Equal(t, float64(math.MaxInt32), intLim.Max)
	require.Equal(t, 1.0, intLim.Step)

	fltLim := DefaultLimits(KindFloat)
	require.Equal(t, -float64(math.MaxFloat32), fltLim.Min)
	require.Equal(t, float64(math.MaxFloat32), fltLim.Max)

	dblLim := DefaultLimits(KindDouble)
	require.Equal(t, -math.MaxFloat64, dblLim.Min)
	require.Equal(t, math.MaxFloat64, dblLim.Max)

	// Non-numeric kinds carry no constraints.
	require.Equal(t, Limits{}, DefaultLimits(KindString))
}

func Test_KindString(t *testing.T) {
	assert.Equal(t, "Bool", KindBool.String())
	assert.Equal(t, "StringList", KindStringList.String())
	assert.Equal(t, "Variant", KindVariant.String())
	assert.Contains(t, Kind(200).String(), "UNKNOWN_KIND")
}

func Test_OutcomeString(t *testing.T) {
	assert.Equal(t, "Committed", OutcomeCommitted.String())
	assert.Equal(t, "Cancelled", OutcomeCancelled.String())
}
