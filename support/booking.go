package support

import (
	"fmt"
	"strings"
	"time"

	"github.com/ourstudio-se/phonehub/knowledge"
)

// DateLayout is the only accepted booking date format.
const DateLayout = "2006-01-02"

// InvalidDateMessage is returned when a booking date does not parse.
const InvalidDateMessage = "Invalid date format. Please use YYYY-MM-DD."

// BookingRequest carries every field needed to book a repair slot.
type BookingRequest struct {
	CustomerName string `json:"customerName"`
	PhoneType    string `json:"phoneType"`
	Issue        string `json:"issue"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Contact      string `json:"contact"`
}

// BookingOutcome is the result of a booking attempt. Message is always set.
type BookingOutcome struct {
	Booked      bool                   `json:"booked"`
	Appointment *knowledge.Appointment `json:"appointment,omitempty"`
	Message     string                 `json:"message"`
}

// ValidateDate accepts only real calendar dates in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// ValidateTimeSlot accepts only the store's fixed booking slots.
func (d *Desk) ValidateTimeSlot(slot string) error {
	if !d.kb.IsTimeSlot(slot) {
		return fmt.Errorf("%w: %q", ErrUnavailableTime, slot)
	}
	return nil
}

// AvailableTimesMessage lists the bookable slots.
func (d *Desk) AvailableTimesMessage() string {
	return fmt.Sprintf("Available times: %s", join(d.kb.TimeSlots))
}

func (r BookingRequest) missing() []string {
	var fields []string
	if strings.TrimSpace(r.CustomerName) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(r.PhoneType) == "" {
		fields = append(fields, "phone model")
	}
	if strings.TrimSpace(r.Issue) == "" {
		fields = append(fields, "issue description")
	}
	if strings.TrimSpace(r.Contact) == "" {
		fields = append(fields, "contact info")
	}
	return fields
}

// Book validates a booking request and records it. Supplied fields are
// stored and echoed unmodified.
func (d *Desk) Book(req BookingRequest) BookingOutcome {
	if missing := req.missing(); len(missing) > 0 {
		return BookingOutcome{Message: fmt.Sprintf("To book an appointment I still need your %s.", join(missing))}
	}

	if err := ValidateDate(req.Date); err != nil {
		return BookingOutcome{Message: InvalidDateMessage}
	}

	if err := d.ValidateTimeSlot(req.Time); err != nil {
		return BookingOutcome{Message: d.AvailableTimesMessage()}
	}

	appt := d.appointments.Book(knowledge.Appointment{
		CustomerName: req.CustomerName,
		PhoneType:    req.PhoneType,
		ServiceType:  req.Issue,
		Date:         req.Date,
		Time:         req.Time,
		Contact:      req.Contact,
	})

	return BookingOutcome{
		Booked:      true,
		Appointment: &appt,
		Message:     confirmation(appt),
	}
}

func confirmation(a knowledge.Appointment) string {
	var b strings.Builder
	b.WriteString("Appointment Booked Successfully!\n")
	fmt.Fprintf(&b, "Appointment ID: %s\n", a.Reference)
	fmt.Fprintf(&b, "Confirmation Code: %s\n", a.ConfirmationCode)
	fmt.Fprintf(&b, "Customer: %s\n", a.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", a.PhoneType)
	fmt.Fprintf(&b, "Issue: %s\n", a.ServiceType)
	fmt.Fprintf(&b, "Date: %s\n", a.Date)
	fmt.Fprintf(&b, "Time: %s\n", a.Time)
	fmt.Fprintf(&b, "Contact: %s\n\n", a.Contact)
	b.WriteString("Please bring your phone and any accessories. Arrive 10 minutes early.")
	return b.String()
}

// CheckAppointment reports on a previously booked appointment.
func (d *Desk) CheckAppointment(id int) string {
	a, err := d.appointments.Get(id)
	if err != nil {
		return fmt.Sprintf("Appointment ID %d not found", id)
	}
	return fmt.Sprintf("Appointment %s (%s) for %s: %s on %s at %s. Status: %s. Estimated duration: %s.",
		a.Reference, a.ConfirmationCode, a.CustomerName, a.ServiceType, a.Date, a.Time, a.Status, a.EstimatedDuration)
}
