package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/poly/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	q.Push(GameEvent{Type: EventPauseToggle, Frame: 1})
	q.Push(GameEvent{Type: EventMuteToggle, Frame: 2})
	q.Push(GameEvent{Type: EventInspectorToggle, Frame: 3})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending events, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	want := []EventType{EventPauseToggle, EventMuteToggle, EventInspectorToggle}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], ev.Type)
		}
	}

	if q.Consume() != nil {
		t.Error("Expected nil after draining queue")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventCloudRecycled, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != int64(total-parameter.EventQueueSize) {
		t.Errorf("Expected oldest surviving frame %d, got %d", total-parameter.EventQueueSize, events[0].Frame)
	}
	if events[len(events)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, events[len(events)-1].Frame)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers = 4
	const perProducer = 32

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventAssetReloaded})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(events))
	}
}

func TestEventTypeString(t *testing.T) {
	if EventCloudRecycled.String() != "CloudRecycled" {
		t.Errorf("Unexpected name %q", EventCloudRecycled.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected Unknown for unregistered type")
	}
}
