package stream_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablero/internal/stream"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := stream.NewHub()

	sub, cancel := hub.Subscribe("remitos")
	defer cancel()

	hub.Publish("remitos", []string{"a", "b"})

	msg := <-sub
	var got []string
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestHub_CollectionsAreIndependent(t *testing.T) {
	hub := stream.NewHub()

	remitos, cancelR := hub.Subscribe("remitos")
	defer cancelR()
	tickets, cancelT := hub.Subscribe("tickets")
	defer cancelT()

	hub.Publish("tickets", 1)

	select {
	case <-remitos:
		t.Fatal("remitos subscriber received a tickets event")
	default:
	}
	assert.Equal(t, json.RawMessage("1"), <-tickets)
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	hub := stream.NewHub()

	sub, cancel := hub.Subscribe("remitos")
	cancel()

	hub.Publish("remitos", "x")

	select {
	case <-sub:
		t.Fatal("cancelled subscriber still received an event")
	default:
	}
}

func TestHub_SlowSubscriberSkipsEvent(t *testing.T) {
	hub := stream.NewHub()

	sub, cancel := hub.Subscribe("remitos")
	defer cancel()

	// Fill the buffer and one more; the overflow event is dropped, not
	// blocked on.
	for i := 0; i < 32; i++ {
		hub.Publish("remitos", i)
	}

	count := 0
	for {
		select {
		case <-sub:
			count++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 16, count)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := stream.NewHub()
	hub.Publish("remitos", "nadie escucha")
}
