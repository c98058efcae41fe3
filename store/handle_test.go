package store

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandleNoValueFallsBackToDefault(t *testing.T) {
	st := New()
	h := st.Handle("timeout.ms")

	require.Equal(t, "timeout.ms", h.Name())
	_, present := h.Lookup()
	require.False(t, present)

	require.Equal(t, "30", h.StringOr("30"))
	require.Equal(t, 30, h.IntOr(30))
	require.Equal(t, int64(30), h.Int64Or(30))
	require.Equal(t, 0.25, h.Float64Or(0.25))
	require.True(t, h.BoolOr(true))
	require.Equal(t, time.Second, h.DurationOr(time.Second))
	require.True(t, h.ChangedAt().IsZero())
}

func TestHandleTypedReads(t *testing.T) {
	st := New()
	h := st.Handle("p")

	st.Set("p", "42")
	require.Equal(t, 42, h.IntOr(0))
	require.Equal(t, int64(42), h.Int64Or(0))
	require.Equal(t, 42.0, h.Float64Or(0))

	st.Set("p", "0.5")
	require.Equal(t, 0.5, h.Float64Or(0))
	// No longer an int; falls back.
	require.Equal(t, 7, h.IntOr(7))

	st.Set("p", "on")
	require.True(t, h.BoolOr(false))
	st.Set("p", "no")
	require.False(t, h.BoolOr(true))

	st.Set("p", "800ms")
	require.Equal(t, 800*time.Millisecond, h.DurationOr(0))
}

func TestHandleUnparseableFallsBackToDefault(t *testing.T) {
	st := New()
	h := st.Handle("p")
	st.Set("p", "not a number")

	require.Equal(t, 5, h.IntOr(5))
	require.Equal(t, int64(5), h.Int64Or(5))
	require.Equal(t, 1.5, h.Float64Or(1.5))
	require.True(t, h.BoolOr(true))
	require.Equal(t, time.Minute, h.DurationOr(time.Minute))
	// The raw value is still readable as a string.
	require.Equal(t, "not a number", h.StringOr(""))
}

func TestHandleParseCacheInvalidatedOnChange(t *testing.T) {
	st := New()
	h := st.Handle("p")

	st.Set("p", "1")
	require.Equal(t, 1, h.IntOr(0))
	// Repeated reads hit the cache.
	require.Equal(t, 1, h.IntOr(0))

	st.Set("p", "2")
	require.Equal(t, 2, h.IntOr(0))

	st.Unset("p")
	require.Equal(t, 9, h.IntOr(9))
}

func TestHandleChangedAt(t *testing.T) {
	st := New()
	h := st.Handle("p")
	require.True(t, h.ChangedAt().IsZero())

	before := time.Now().Add(-time.Second)
	st.Set("p", "x")
	ts := h.ChangedAt()
	require.False(t, ts.IsZero())
	require.True(t, ts.After(before))

	st.Unset("p")
	require.False(t, h.ChangedAt().Before(ts))
}

func TestAddCallbackNilIgnored(t *testing.T) {
	st := New()
	h := st.Handle("p")

	h.AddCallback(nil)
	require.Equal(t, 0, h.CallbackCount())

	h.AddCallback(func() {})
	h.AddCallback(nil)
	require.Equal(t, 1, h.CallbackCount())
}

func TestCallbacksFireOncePerUpdate(t *testing.T) {
	st := New()
	h := st.Handle("p")

	var n atomic.Int64
	h.AddCallback(func() { n.Add(1) })

	st.Set("p", "1")
	require.Equal(t, int64(1), n.Load())

	// Same value again still counts as an update.
	st.Set("p", "1")
	require.Equal(t, int64(2), n.Load())

	st.Unset("p")
	require.Equal(t, int64(3), n.Load())

	// Unset without a value is not an update.
	st.Unset("p")
	require.Equal(t, int64(3), n.Load())
}

func TestCallbacksAreIndependent(t *testing.T) {
	st := New()
	h := st.Handle("p")

	var n atomic.Int64
	fn := func() { n.Add(1) }
	// Same function registered twice runs twice; no de-duplication.
	h.AddCallback(fn)
	h.AddCallback(fn)
	require.Equal(t, 2, h.CallbackCount())

	st.Set("p", "x")
	require.Equal(t, int64(2), n.Load())
}

func TestPanickingCallbackDoesNotDisruptOthers(t *testing.T) {
	st := New()
	h := st.Handle("p")

	var n atomic.Int64
	h.AddCallback(func() { panic("boom") })
	h.AddCallback(func() { n.Add(1) })

	require.NotPanics(t, func() { st.Set("p", "x") })
	require.Equal(t, int64(1), n.Load())
}
