package support

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ourstudio-se/phonehub/knowledge"
)

// InvalidTicketMessage is returned for any unknown or missing ticket id.
const InvalidTicketMessage = "Please provide a valid ticket number. You can find it on your repair receipt."

var (
	ticketPattern = regexp.MustCompile(`(?i)\bTICKET-\d+\b`)
	orderPattern  = regexp.MustCompile(`(?i)\b(?:ORD|REP)\d+\b`)
)

// ExtractTicketID finds a TICKET-<digits> id in free text.
func ExtractTicketID(text string) string {
	return strings.ToUpper(ticketPattern.FindString(text))
}

// ExtractOrderID finds an ORD<digits> or REP<digits> id in free text.
func ExtractOrderID(text string) string {
	return strings.ToUpper(orderPattern.FindString(text))
}

// CheckStatus reports on a repair ticket.
func (d *Desk) CheckStatus(ticketID string) string {
	t, ok := d.kb.Ticket(ticketID)
	if !ok {
		return InvalidTicketMessage
	}

	if t.Completed() {
		return fmt.Sprintf("Repair %s was completed on %s. Your %s with %s is ready for pickup!",
			t.ID, t.CompletedDate, t.Phone, t.Issue)
	}
	return fmt.Sprintf("Repair %s for %s (%s) is %s. Estimated completion: %s.",
		t.ID, t.Phone, t.Issue, t.Status, t.EstimatedCompletion)
}

// TrackReference answers an ORD/REP id from free text. Orders win; a REP
// code that is not an order is looked up as an appointment confirmation
// code.
func (d *Desk) TrackReference(id string) string {
	if _, ok := d.kb.Order(id); ok {
		return d.TrackOrder(id)
	}
	if a, ok := d.appointmentByCode(id); ok {
		return d.CheckAppointment(a.ID)
	}
	return d.TrackOrder(id)
}

func (d *Desk) appointmentByCode(code string) (knowledge.Appointment, bool) {
	digits, ok := strings.CutPrefix(strings.ToUpper(code), "REP")
	if !ok {
		return knowledge.Appointment{}, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return knowledge.Appointment{}, false
	}
	a, err := d.appointments.Get(n)
	if err != nil || !strings.EqualFold(a.ConfirmationCode, code) {
		return knowledge.Appointment{}, false
	}
	return a, true
}

// TrackOrder reports on a sales or repair order.
func (d *Desk) TrackOrder(orderID string) string {
	o, ok := d.kb.Order(orderID)
	if !ok {
		return fmt.Sprintf("Order ID %s not found. Please check the number on your receipt.", orderID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Order %s (%s) for %s is %s.", o.ID, join(o.Items), o.Customer, o.Status)
	if o.TrackingNumber != "" {
		fmt.Fprintf(&b, " Tracking number: %s.", o.TrackingNumber)
	}
	if o.EstimatedDelivery != "" {
		fmt.Fprintf(&b, " Estimated delivery: %s.", o.EstimatedDelivery)
	}
	if o.EstimatedCompletion != "" {
		fmt.Fprintf(&b, " Estimated completion: %s.", o.EstimatedCompletion)
	}
	return b.String()
}
