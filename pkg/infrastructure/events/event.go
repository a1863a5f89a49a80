package events

import (
	"time"

	"github.com/google/uuid"
)

// Catalog names carried by every change
const (
	PartsCatalog    = "parts"
	ProductsCatalog = "products"
)

// Event is one committed catalog change
type Event interface {
	ID() string
	Type() string
	Catalog() string
	// RecordID is the id of the part or product that changed
	RecordID() int
	Data() interface{}
	Timestamp() time.Time
	// Sequence is the 1-based position in the session history; 0 until appended
	Sequence() int
}

// EventHandler receives changes from a ChangeLog
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

type change struct {
	id        string
	eventType string
	catalog   string
	recordID  int
	data      interface{}
	at        time.Time
	sequence  int
}

func newChange(eventType, catalog string, recordID int, data interface{}) *change {
	return &change{
		id:        uuid.NewString(),
		eventType: eventType,
		catalog:   catalog,
		recordID:  recordID,
		data:      data,
		at:        time.Now(),
	}
}

func (c *change) ID() string           { return c.id }
func (c *change) Type() string         { return c.eventType }
func (c *change) Catalog() string      { return c.catalog }
func (c *change) RecordID() int        { return c.recordID }
func (c *change) Data() interface{}    { return c.data }
func (c *change) Timestamp() time.Time { return c.at }
func (c *change) Sequence() int        { return c.sequence }

// HandlerFunc adapts a function to an EventHandler that accepts every event type
// it is subscribed to. The returned handler can be passed to Unsubscribe.
func HandlerFunc(fn func(event Event) error) EventHandler {
	return &funcHandler{fn: fn}
}

type funcHandler struct {
	fn func(event Event) error
}

func (h *funcHandler) Handle(event Event) error { return h.fn(event) }
func (h *funcHandler) CanHandle(string) bool    { return true }
