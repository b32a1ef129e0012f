package domain

import "time"

// MessageStatus represents the lifecycle state of a contact message.
type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageRead     MessageStatus = "read"
	MessageAnswered MessageStatus = "answered"
)

// messageTransitions defines the allowed state machine transitions.
// Status only ever advances; nothing leads back to new.
var messageTransitions = map[MessageStatus][]MessageStatus{
	MessageNew:  {MessageRead, MessageAnswered},
	MessageRead: {MessageAnswered},
}

// Valid reports whether s is a known message status.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageNew, MessageRead, MessageAnswered:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s MessageStatus) CanTransitionTo(next MessageStatus) bool {
	for _, allowed := range messageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SourcesFor returns every status from which next can be reached.
func SourcesFor(next MessageStatus) []MessageStatus {
	var out []MessageStatus
	for from, targets := range messageTransitions {
		for _, t := range targets {
			if t == next {
				out = append(out, from)
			}
		}
	}
	return out
}

// Message is a contact-form submission.
type Message struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Body      string        `json:"message"`
	Status    MessageStatus `json:"status"`
	ReplyText string        `json:"reply_text,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

// MessageTransition describes a single conditional status change. The store
// applies it only when the current status is one of From.
type MessageTransition struct {
	From      []MessageStatus
	To        MessageStatus
	ReplyText string
	At        time.Time
}

// ReplyEmail is the outbound mail produced when a message is answered.
type ReplyEmail struct {
	MessageID string
	To        string
	Subject   string
	Text      string
}
