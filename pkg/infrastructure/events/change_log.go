package events

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/vsinha/inventory/pkg/infrastructure/logger"
)

// AllEvents subscribes a handler to every event type
const AllEvents = "*"

// ChangeLog keeps the catalog change history for the session and delivers each
// appended change to subscribers before Append returns.
// It is not safe for concurrent use; the catalog is driven by one user action at a time.
type ChangeLog struct {
	history     []Event
	subscribers map[string][]EventHandler
}

func NewChangeLog() *ChangeLog {
	return &ChangeLog{
		history:     make([]Event, 0),
		subscribers: make(map[string][]EventHandler),
	}
}

// Append stamps event with its sequence number, records it and notifies subscribers
func (l *ChangeLog) Append(event Event) error {
	if event == nil {
		return errors.New("cannot append nil event")
	}

	recorded := &change{
		id:        event.ID(),
		eventType: event.Type(),
		catalog:   event.Catalog(),
		recordID:  event.RecordID(),
		data:      event.Data(),
		at:        event.Timestamp(),
		sequence:  len(l.history) + 1,
	}
	l.history = append(l.history, recorded)

	l.notify(recorded)
	return nil
}

// Since returns the history with the first position changes skipped
func (l *ChangeLog) Since(position int) []Event {
	if position < 0 {
		position = 0
	}
	if position >= len(l.history) {
		return []Event{}
	}
	return l.history[position:]
}

// ForRecord returns the changes to one part or product, oldest first
func (l *ChangeLog) ForRecord(catalog string, id int) []Event {
	return lo.Filter(l.history, func(event Event, _ int) bool {
		return event.Catalog() == catalog && event.RecordID() == id
	})
}

// Subscribe registers handler for eventTypes, or for every type when none are given
func (l *ChangeLog) Subscribe(handler EventHandler, eventTypes ...string) error {
	if handler == nil {
		return errors.New("cannot subscribe nil handler")
	}
	if len(eventTypes) == 0 {
		eventTypes = []string{AllEvents}
	}

	for _, eventType := range eventTypes {
		l.subscribers[eventType] = append(l.subscribers[eventType], handler)
	}
	return nil
}

// Unsubscribe removes handler from every event type
func (l *ChangeLog) Unsubscribe(handler EventHandler) error {
	for eventType, handlers := range l.subscribers {
		l.subscribers[eventType] = lo.Reject(handlers, func(h EventHandler, _ int) bool {
			return h == handler
		})
	}
	return nil
}

func (l *ChangeLog) notify(event Event) {
	handlers := append(append([]EventHandler{}, l.subscribers[event.Type()]...), l.subscribers[AllEvents]...)

	for _, handler := range handlers {
		if !handler.CanHandle(event.Type()) {
			continue
		}
		if err := handler.Handle(event); err != nil {
			logger.Error(context.Background(), "change handler failed",
				logger.String("event_type", event.Type()),
				logger.String("event_id", event.ID()),
				logger.ErrorF(err),
			)
		}
	}
}
