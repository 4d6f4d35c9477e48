package support

import (
	"fmt"
	"strings"
)

var fallbackSteps = []string{
	"Restart your phone",
	"Update software",
	"Check for specific error messages",
	"Visit our store for diagnosis",
}

// Troubleshoot returns the first matching checklist for the issue, or a
// generic one.
func (d *Desk) Troubleshoot(issue string) string {
	if g, ok := d.kb.MatchGuide(issue); ok {
		return fmt.Sprintf("Troubleshooting steps for %s:\n%s", issue, numbered(g.Steps))
	}
	return fmt.Sprintf("For %s, try these general steps:\n%s", issue, numbered(fallbackSteps))
}

// Warranty returns the policy for one product type.
func (d *Desk) Warranty(productType string) string {
	if policy, ok := d.kb.WarrantyFor(productType); ok {
		return policy
	}
	return "Please contact support for warranty information"
}

// WarrantyOverview lists every warranty policy plus the repair FAQ answer.
func (d *Desk) WarrantyOverview() string {
	var b strings.Builder
	b.WriteString("Warranty coverage:")
	for _, w := range d.kb.Warranty {
		fmt.Fprintf(&b, "\n- %s: %s", productLabel(w.Product), w.Policy)
	}
	if f, ok := d.kb.Topic("warranty"); ok {
		fmt.Fprintf(&b, "\n\n%s", f.Answer)
	}
	return b.String()
}

func productLabel(key string) string {
	label := strings.ReplaceAll(key, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// ContactInfo lists the ways to reach the store and its opening hours.
func (d *Desk) ContactInfo() string {
	s := d.kb.Store

	var b strings.Builder
	fmt.Fprintf(&b, "%s contact details:\n", s.Name)
	fmt.Fprintf(&b, "Phone: %s\n", s.Phone)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Live Chat: %s\n", s.LiveChat)
	fmt.Fprintf(&b, "Address: %s\n\n", s.Address)
	b.WriteString("Opening hours:")
	for _, h := range s.Hours {
		fmt.Fprintf(&b, "\n%s: %s", h.Day, h.Open)
	}
	return b.String()
}

// Escalation is the hand-off message shown when a customer asks for a person.
func (d *Desk) Escalation() string {
	s := d.kb.Store

	var b strings.Builder
	b.WriteString("I'm connecting you to a human agent now.\n\n")
	b.WriteString("In the meantime:\n")
	fmt.Fprintf(&b, "- Call: %s\n", s.Phone)
	fmt.Fprintf(&b, "- Email: %s\n", s.Email)
	fmt.Fprintf(&b, "- Live Chat: %s\n\n", s.LiveChat)
	fmt.Fprintf(&b, "Estimated wait time: %s.\n", s.EscalationWait)
	b.WriteString("Please have your ticket/order number ready.")
	return b.String()
}

// FAQ answers one policy topic.
func (d *Desk) FAQ(topic string) string {
	f, ok := d.kb.Topic(topic)
	if !ok {
		return fmt.Sprintf("Topic '%s' not found. Available topics: %s", topic, join(d.kb.TopicKeys()))
	}
	return fmt.Sprintf("Q: %s\nA: %s", f.Question, f.Answer)
}

// FAQTopics lists the FAQ topic keys.
func (d *Desk) FAQTopics() []string {
	return d.kb.TopicKeys()
}
