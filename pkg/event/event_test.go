package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labelsight/labelsight/pkg/event"
)

func TestListenAndFire(t *testing.T) {
	defer event.Flush()

	var got []interface{}
	event.Listen("test.ping", func(p interface{}) { got = append(got, p) })

	event.Fire("test.ping", 1)
	event.Fire("test.ping", 2)

	require.Equal(t, []interface{}{1, 2}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	defer event.Flush()

	calls := 0
	off := event.Listen("test.ping", func(interface{}) { calls++ })

	event.Fire("test.ping", nil)
	off()
	event.Fire("test.ping", nil)

	require.Equal(t, 1, calls)
}

func TestUnsubscribeRemovesOnlyOwnHandler(t *testing.T) {
	defer event.Flush()

	var first, second int
	offFirst := event.Listen("test.ping", func(interface{}) { first++ })
	event.Listen("test.ping", func(interface{}) { second++ })

	offFirst()
	offFirst() // second call is a no-op
	event.Fire("test.ping", nil)

	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
}

func TestFireWithoutListeners(t *testing.T) {
	defer event.Flush()
	event.Fire("test.nobody", nil) // must not panic
}
