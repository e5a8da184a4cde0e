package debounce_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/labelsight/labelsight/pkg/debounce"
)

type recorder struct {
	mu   sync.Mutex
	vals []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals = append(r.vals, v)
}

func (r *recorder) values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.vals))
	copy(out, r.vals)
	return out
}

func TestBurstFiresOnceWithFinalValue(t *testing.T) {
	rec := &recorder{}
	d := debounce.New(50*time.Millisecond, rec.record)
	defer d.Stop()

	for _, v := range []string{"w", "wi", "wid", "widget"} {
		d.Trigger(v)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	require.Equal(t, []string{"widget"}, rec.values())
}

func TestSeparatedTriggersFireSeparately(t *testing.T) {
	rec := &recorder{}
	d := debounce.New(20*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("first")
	time.Sleep(60 * time.Millisecond)
	d.Trigger("second")
	time.Sleep(60 * time.Millisecond)

	require.Equal(t, []string{"first", "second"}, rec.values())
}

func TestPending(t *testing.T) {
	d := debounce.New(40*time.Millisecond, func(string) {})
	defer d.Stop()

	require.False(t, d.Pending())
	d.Trigger("x")
	require.True(t, d.Pending())

	time.Sleep(100 * time.Millisecond)
	require.False(t, d.Pending())
}

func TestFlushFiresImmediately(t *testing.T) {
	rec := &recorder{}
	d := debounce.New(time.Hour, rec.record)
	defer d.Stop()

	d.Trigger("now")
	d.Flush()

	require.Equal(t, []string{"now"}, rec.values())
	require.False(t, d.Pending())
}

func TestStopCancelsPendingFire(t *testing.T) {
	rec := &recorder{}
	d := debounce.New(20*time.Millisecond, rec.record)

	d.Trigger("never")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	require.Empty(t, rec.values())

	d.Trigger("after stop") // no-op
	require.False(t, d.Pending())
}
