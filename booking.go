package phonehub

import (
	"fmt"
	"strings"

	"github.com/ourstudio-se/phonehub/session"
	"github.com/ourstudio-se/phonehub/support"
)

// Whole-message replies that abandon a booking in progress.
var cancelPhrases = []string{"cancel", "stop", "never mind", "nevermind", "quit"}

func isCancel(text string) bool {
	t := strings.ToLower(strings.Trim(strings.TrimSpace(text), ".!"))
	for _, p := range cancelPhrases {
		if t == p {
			return true
		}
	}
	return false
}

// startBooking begins collecting booking details with the customer's name.
func (b *Bot) startBooking(st *session.State) string {
	st.CurrentStep = StepAppointment
	st.Booking = session.NewBooking()

	if st.CustomerName != "" {
		return fmt.Sprintf("Let's book your appointment! What name should it be under? Last time it was %s.", st.CustomerName)
	}
	return "Let's book your appointment! What's your name?"
}

// continueBooking stores the answer to the current booking step, asks for
// the next field, and books once every field is in.
func (b *Bot) continueBooking(st *session.State, text string) string {
	st.CurrentStep = StepAppointment
	bk := st.Booking

	if isCancel(text) {
		st.Booking = nil
		return "No problem, I've cancelled the booking. Is there anything else I can help with?"
	}

	switch bk.Step {
	case session.AwaitingName:
		st.CustomerName = text
	case session.AwaitingDate:
		if err := support.ValidateDate(text); err != nil {
			return support.InvalidDateMessage + " What date would you like?"
		}
	case session.AwaitingTime:
		text = strings.ToUpper(text)
		if err := b.desk.ValidateTimeSlot(text); err != nil {
			return b.desk.AvailableTimesMessage() + ". Which one suits you?"
		}
	}

	if !bk.Fill(text) {
		return b.bookingPrompt(st)
	}

	outcome := b.desk.Book(support.BookingRequest{
		CustomerName: bk.CustomerName,
		PhoneType:    bk.PhoneType,
		Issue:        bk.Issue,
		Date:         bk.Date,
		Time:         bk.Time,
		Contact:      bk.Contact,
	})
	st.Booking = nil

	return outcome.Message
}

func (b *Bot) bookingPrompt(st *session.State) string {
	switch st.Booking.Step {
	case session.AwaitingPhone:
		return fmt.Sprintf("Thanks, %s! Which phone model needs attention?", st.Booking.CustomerName)
	case session.AwaitingIssue:
		return "What seems to be the problem with it?"
	case session.AwaitingDate:
		return "What date would you like to come in? Please use YYYY-MM-DD."
	case session.AwaitingTime:
		return "Which time suits you? " + b.desk.AvailableTimesMessage()
	case session.AwaitingContact:
		return "Last thing: what phone number or email can we reach you on?"
	default:
		return "What's your name?"
	}
}
