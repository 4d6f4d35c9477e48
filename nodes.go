package phonehub

import (
	"context"

	"github.com/ourstudio-se/phonehub/intent"
	"github.com/ourstudio-se/phonehub/session"
	"github.com/ourstudio-se/phonehub/support"
)

// Step labels recorded on the session after each turn.
const (
	StepProductInfo     = "product_info"
	StepRepairInfo      = "repair_info"
	StepStatusCheck     = "status_check"
	StepAppointment     = "appointment_booking"
	StepTroubleshooting = "troubleshooting"
	StepWarrantyCheck   = "warranty_check"
	StepContactInfo     = "contact_info"
	StepHumanEscalation = "human_escalation"
	StepGeneralChat     = "general_chat"
)

// dispatch runs the handler for an intent and returns its reply.
func (b *Bot) dispatch(ctx context.Context, in intent.Intent, st *session.State, text string) string {
	switch in {
	case intent.ProductInfo:
		st.CurrentStep = StepProductInfo
		return b.desk.ProductInfo(b.desk.ProductQueryFromText(text))

	case intent.RepairInfo:
		st.CurrentStep = StepRepairInfo
		return b.desk.RepairInfo(b.desk.RepairQueryFromText(text))

	case intent.StatusCheck:
		st.CurrentStep = StepStatusCheck
		return b.status(text)

	case intent.Appointment:
		return b.startBooking(st)

	case intent.Troubleshooting:
		st.CurrentStep = StepTroubleshooting
		return b.desk.Troubleshoot(b.troubleshootingTopic(text))

	case intent.WarrantyCheck:
		st.CurrentStep = StepWarrantyCheck
		return b.desk.WarrantyOverview()

	case intent.ContactInfo:
		st.CurrentStep = StepContactInfo
		return b.desk.ContactInfo()

	case intent.HumanEscalation:
		st.CurrentStep = StepHumanEscalation
		st.NeedsHuman = true
		return b.desk.Escalation()

	default:
		st.CurrentStep = StepGeneralChat
		return b.generalChat(ctx, st)
	}
}

// status answers a ticket lookup, then an order or confirmation code
// lookup, then asks for a ticket number.
func (b *Bot) status(text string) string {
	if id := support.ExtractTicketID(text); id != "" {
		return b.desk.CheckStatus(id)
	}
	if id := support.ExtractOrderID(text); id != "" {
		return b.desk.TrackReference(id)
	}
	return support.InvalidTicketMessage
}

func (b *Bot) troubleshootingTopic(text string) string {
	if g, ok := b.desk.Knowledge().MatchGuide(text); ok {
		return g.Keyword + " issues"
	}
	return "your issue"
}
