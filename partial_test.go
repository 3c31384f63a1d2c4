package weakcall_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moondial/weakcall"
)

func TestPartialBindsLeadingArgs(t *testing.T) {
	t.Parallel()

	p, err := weakcall.NewPartial(sum3, 1, 2)
	require.NoError(t, err)

	got, err := p.Call(4)
	require.NoError(t, err)
	assert.Equal(t, sum3(1, 2, 4), got[0])

	assert.False(t, p.Callback([]any{10}))
}

func TestPartialOverMethod(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	c, err := weakcall.Method(r, "Pair")
	require.NoError(t, err)

	p, err := weakcall.NewPartial(c, 7)
	require.NoError(t, err)

	got, err := p.Call(3)
	require.NoError(t, err)
	assert.Equal(t, r.Pair(7, 3), got[0])
	runtime.KeepAlive(r)
}

func TestPartialStacks(t *testing.T) {
	t.Parallel()

	inner, err := weakcall.NewPartial(sum3, 1)
	require.NoError(t, err)
	outer, err := weakcall.NewPartial(inner, 2)
	require.NoError(t, err)

	got, err := outer.Call(3)
	require.NoError(t, err)
	assert.Equal(t, sum3(1, 2, 3), got[0])
}

func TestPartialLivenessFollowsTarget(t *testing.T) {
	p := deadPartial(t)
	runtime.GC()
	runtime.GC()

	assert.False(t, p.IsAlive())
	assert.True(t, p.Callback([]any{1}))

	_, err := p.Call(1)
	require.ErrorIs(t, err, weakcall.ErrExpired)

	_, err = p.Slot()
	require.ErrorIs(t, err, weakcall.ErrExpired)
}

func deadPartial(t *testing.T) *weakcall.Partial {
	t.Helper()
	r := &recorder{}
	c, err := weakcall.Method(r, "Add")
	require.NoError(t, err)
	p, err := weakcall.NewPartial(c)
	require.NoError(t, err)
	require.True(t, p.IsAlive())
	return p
}

func TestPartialMaxArgsTruncatesCallTimeOnly(t *testing.T) {
	t.Parallel()

	p, err := weakcall.NewPartial(sum3, 1, 2)
	require.NoError(t, err)
	p = p.MaxArgs(1)

	// Bound args always pass; the over-supplied call-time tail is dropped.
	got, err := p.Call(4, 9, 9)
	require.NoError(t, err)
	assert.Equal(t, sum3(1, 2, 4), got[0])
}

func TestPartialSlot(t *testing.T) {
	t.Parallel()

	p, err := weakcall.NewPartial(sum3, 1, 2)
	require.NoError(t, err)

	got, err := p.Slot()
	require.NoError(t, err)

	fn, ok := got.(func(...any) ([]any, error))
	require.True(t, ok)
	out, err := fn(4)
	require.NoError(t, err)
	assert.Equal(t, sum3(1, 2, 4), out[0])
}

func TestPartialEqualityIgnoresBoundArgs(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	c, err := weakcall.Method(r, "Pair")
	require.NoError(t, err)

	p1, err := weakcall.NewPartial(c, 1)
	require.NoError(t, err)
	p2, err := weakcall.NewPartial(c, 2)
	require.NoError(t, err)

	// Equality keys on the wrapped target only, not the captured arguments.
	assert.True(t, p1.Equal(p2))

	// A partial never equals its bare target.
	assert.False(t, p1.Equal(c))
	assert.NotEqual(t, p1.Key(), c.Key())
	runtime.KeepAlive(r)
}

func TestPartialRejectsBadTarget(t *testing.T) {
	t.Parallel()

	_, err := weakcall.NewPartial(42)
	require.ErrorIs(t, err, weakcall.ErrUnsupported)
}
