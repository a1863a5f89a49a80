package services

import (
	"errors"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// Confirmer asks the user a yes/no question before a destructive action.
// action is the verb being confirmed, e.g. "delete" or "cancel".
type Confirmer interface {
	Confirm(action string) bool
}

// Notifier shows a message to the user and returns once it has been shown
type Notifier interface {
	Notify(msg Message)
}

// Message is a single user-facing notice
type Message struct {
	Title   string
	Body    string
	IsError bool
}

// ErrorMessage builds the notice shown for a rejected action
func ErrorMessage(err error) Message {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return Message{Title: verr.Message, IsError: true}
	}
	return Message{Title: err.Error(), IsError: true}
}

// AutoConfirm answers every confirmation with the same value
type AutoConfirm bool

func (a AutoConfirm) Confirm(string) bool { return bool(a) }

// DiscardNotifier drops every message
type DiscardNotifier struct{}

func (DiscardNotifier) Notify(Message) {}
