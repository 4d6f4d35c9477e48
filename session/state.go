// Package session holds per-conversation state: the message history, the
// current step and any booking in progress.
package session

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingStep names the field a booking in progress is waiting for.
type BookingStep string

const (
	AwaitingName    BookingStep = "awaiting_name"
	AwaitingPhone   BookingStep = "awaiting_phone"
	AwaitingIssue   BookingStep = "awaiting_issue"
	AwaitingDate    BookingStep = "awaiting_date"
	AwaitingTime    BookingStep = "awaiting_time"
	AwaitingContact BookingStep = "awaiting_contact"
)

// bookingOrder is the order fields are collected in.
var bookingOrder = []BookingStep{
	AwaitingName,
	AwaitingPhone,
	AwaitingIssue,
	AwaitingDate,
	AwaitingTime,
	AwaitingContact,
}

// Booking is a booking being collected one field per turn. Step is the
// field expected next; every field before it is filled.
type Booking struct {
	Step         BookingStep `json:"step"`
	CustomerName string      `json:"customerName,omitempty"`
	PhoneType    string      `json:"phoneType,omitempty"`
	Issue        string      `json:"issue,omitempty"`
	Date         string      `json:"date,omitempty"`
	Time         string      `json:"time,omitempty"`
	Contact      string      `json:"contact,omitempty"`
}

// NewBooking starts a booking at the first step.
func NewBooking() *Booking {
	return &Booking{Step: bookingOrder[0]}
}

// Fill stores value for the current step and advances. It reports true
// once every field has been collected.
func (b *Booking) Fill(value string) (complete bool) {
	switch b.Step {
	case AwaitingName:
		b.CustomerName = value
	case AwaitingPhone:
		b.PhoneType = value
	case AwaitingIssue:
		b.Issue = value
	case AwaitingDate:
		b.Date = value
	case AwaitingTime:
		b.Time = value
	case AwaitingContact:
		b.Contact = value
	}

	for i, s := range bookingOrder {
		if s == b.Step {
			if i == len(bookingOrder)-1 {
				return true
			}
			b.Step = bookingOrder[i+1]
			return false
		}
	}
	return false
}

// State is one chat session.
type State struct {
	ID           string    `json:"id"`
	Messages     []Message `json:"messages"`
	CustomerName string    `json:"customerName,omitempty"`
	CurrentStep  string    `json:"currentStep,omitempty"`
	NeedsHuman   bool      `json:"needsHuman"`
	Booking      *Booking  `json:"booking,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func New() *State {
	now := time.Now()
	return &State{
		ID:        uuid.NewString(),
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *State) AddUserMessage(content string) *Message {
	return s.add(RoleUser, content, "")
}

func (s *State) AddAssistantMessage(content, intent string) *Message {
	return s.add(RoleAssistant, content, intent)
}

func (s *State) add(role Role, content, intent string) *Message {
	msg := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Intent:    intent,
		CreatedAt: time.Now(),
	}
	s.Messages = append(s.Messages, msg)
	s.UpdatedAt = time.Now()
	return &msg
}

// Recent returns up to n of the latest messages, oldest first.
func (s *State) Recent(n int) []Message {
	if n <= 0 || n >= len(s.Messages) {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

// LastUserMessage returns the content of the newest user message.
func (s *State) LastUserMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleUser {
			return s.Messages[i].Content
		}
	}
	return ""
}

// Clone returns a deep copy of the session.
func (s *State) Clone() *State {
	c := *s
	c.Messages = append([]Message(nil), s.Messages...)
	if c.Messages == nil {
		c.Messages = []Message{}
	}
	if s.Booking != nil {
		b := *s.Booking
		c.Booking = &b
	}
	return &c
}
