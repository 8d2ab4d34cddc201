package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventTicketAssigned, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventTicketDeleted, func(_ context.Context, e Event) error {
		t.Errorf("handler for another event type must not fire")
		return nil
	})

	event := Event{ID: "e1", Type: EventTicketAssigned, EntityID: 43}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].EntityID != 43 {
		t.Errorf("expected delivery of the published event, got %v", got)
	}
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventUserCreated, func(context.Context, Event) error {
		return errors.New("first handler failed")
	})
	d.Subscribe(EventUserCreated, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserCreated}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !secondCalled {
		t.Errorf("handler errors must not stop delivery to later handlers")
	}
}
