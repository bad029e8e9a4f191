package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/paramkit/param"
	"github.com/joshuapare/paramkit/pkg/types"
)

func Test_SectionOrdering(t *testing.T) {
	s := New()
	require.NoError(t, s.Register("A", param.FromValue("one", param.IntValue(1))))
	require.NoError(t, s.Register("B", param.FromValue("two", param.IntValue(2))))
	require.NoError(t, s.Register("A", param.FromValue("three", param.IntValue(3))))

	secs := s.Sections()
	require.Len(t, secs, 2, "re-registering into A must not create a new section")
	assert.Equal(t, "A", secs[0].Name())
	assert.Equal(t, "B", secs[1].Name())

	a := secs[0].Params()
	require.Len(t, a, 2)
	assert.Equal(t, "one", a[0].Name())
	assert.Equal(t, "three", a[1].Name())
}

func Test_WalkOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.Register("A", param.FromValue("one", param.IntValue(1))))
	require.NoError(t, s.Register("B", param.FromValue("two", param.IntValue(2))))
	require.NoError(t, s.Register("A", param.FromValue("three", param.IntValue(3))))

	var order []string
	err := s.Walk(func(section string, p *param.Param) error {
		order = append(order, section+"/"+p.Name())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A/one", "A/three", "B/two"}, order,
		"walk is section-major in registration order")
}

func Test_DuplicateName(t *testing.T) {
	s := New()
	require.NoError(t, s.Register("A", param.FromValue("dup", param.IntValue(1))))

	err := s.Register("B", param.FromValue("dup", param.IntValue(2)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrDuplicateName))
	assert.Equal(t, 1, s.Len())
}

// Test_CommitTotality verifies commit applies every descriptor with no
// partial state.
func Test_CommitTotality(t *testing.T) {
	s := New()
	slots := make([]int, 3)
	for i, name := range []string{"a", "b", "c"} {
		i := i
		p := param.FromValue(name, param.IntValue(0))
		p.Bind(func(v param.Value) { slots[i] = v.Int() })
		require.NoError(t, s.Register("S", p))
		require.NoError(t, p.Set(param.IntValue(i+10)))
	}

	require.NoError(t, s.Commit())
	assert.Equal(t, []int{10, 11, 12}, slots)
	assert.Equal(t, StateCommitted, s.State())

	outcome, done := s.Outcome()
	assert.True(t, done)
	assert.Equal(t, types.OutcomeCommitted, outcome)
}

func Test_CancelAppliesNothing(t *testing.T) {
	s := New()
	slot := 1
	p := param.FromValue("a", param.IntValue(slot))
	p.Bind(func(v param.Value) { slot = v.Int() })
	require.NoError(t, s.Register("S", p))
	require.NoError(t, p.Set(param.IntValue(99)))

	s.Cancel()
	assert.Equal(t, 1, slot)
	assert.Equal(t, StateCancelled, s.State())

	// Cancelling again is a no-op.
	s.Cancel()
	assert.Equal(t, StateCancelled, s.State())
}

// Test_TerminalStates verifies every mutation after close reports
// ErrSessionClosed and commit/cancel transitions are final.
func Test_TerminalStates(t *testing.T) {
	s := New()
	require.NoError(t, s.Commit())

	assert.True(t, errors.Is(s.Register("S", param.FromValue("x", param.IntValue(0))), types.ErrSessionClosed))
	assert.True(t, errors.Is(s.Commit(), types.ErrSessionClosed))
	assert.True(t, errors.Is(s.OnCommit(func() {}), types.ErrSessionClosed))
	assert.Nil(t, s.Section("S"))

	s.Cancel() // must not move a committed session to cancelled
	assert.Equal(t, StateCommitted, s.State())
}

func Test_CommitHooksRunAfterApply(t *testing.T) {
	s := New()
	applied := false
	p := param.FromValue("a", param.IntValue(0))
	p.Bind(func(param.Value) { applied = true })
	require.NoError(t, s.Register("S", p))

	var sawApplied []bool
	require.NoError(t, s.OnCommit(func() { sawApplied = append(sawApplied, applied) }))
	require.NoError(t, s.OnCommit(func() { sawApplied = append(sawApplied, true) }))

	require.NoError(t, s.Commit())
	assert.Equal(t, []bool{true, true}, sawApplied, "hooks fire after all applies, in order")
}

func Test_Find(t *testing.T) {
	s := New()
	require.NoError(t, s.Register("A", param.FromValue("needle", param.IntValue(7))))

	require.NotNil(t, s.Find("needle"))
	assert.Equal(t, 7, s.Find("needle").Get().Int())
	assert.Nil(t, s.Find("missing"))
}

func Test_OutcomeWhileOpen(t *testing.T) {
	s := New()
	_, done := s.Outcome()
	assert.False(t, done)
}
