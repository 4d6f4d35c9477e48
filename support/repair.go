package support

import (
	"fmt"
	"strings"

	"github.com/ourstudio-se/phonehub/knowledge"
)

// Urgency selects the repair turnaround.
type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyUrgent   Urgency = "urgent"
)

// Turnaround returns the promised turnaround for the urgency.
func (u Urgency) Turnaround() string {
	if u == UrgencyUrgent {
		return "1-2 days"
	}
	return "3-5 business days"
}

// RepairWarranty is printed on every repair estimate.
const RepairWarranty = "90 days on all repairs"

// RepairQuery describes a phone and what is wrong with it.
type RepairQuery struct {
	PhoneType string  `json:"phoneType"`
	Issue     string  `json:"issue"`
	Urgency   Urgency `json:"urgency,omitempty"`
}

// Quote is a priced repair estimate.
type Quote struct {
	PhoneType  string `json:"phoneType"`
	Issue      string `json:"issue"`
	Repair     string `json:"repair"`
	Brand      string `json:"brand"`
	Cost       int    `json:"cost"`
	BenchTime  string `json:"benchTime"`
	Turnaround string `json:"turnaround"`
	Warranty   string `json:"warranty"`
}

// BrandBucket maps a phone description onto a repair price column.
func BrandBucket(phoneType string) string {
	lower := strings.ToLower(phoneType)
	switch {
	case strings.Contains(lower, "iphone"):
		return "iPhone"
	case strings.Contains(lower, "samsung"):
		return "Samsung"
	default:
		return knowledge.OtherBrand
	}
}

// RepairQuote prices a repair. It reports false when the issue text names
// no known repair kind.
func (d *Desk) RepairQuote(q RepairQuery) (Quote, bool) {
	r, ok := d.kb.MatchRepair(q.Issue)
	if !ok {
		return Quote{}, false
	}

	brand := BrandBucket(q.PhoneType)
	return Quote{
		PhoneType:  q.PhoneType,
		Issue:      q.Issue,
		Repair:     r.Name,
		Brand:      brand,
		Cost:       r.PriceFor(brand),
		BenchTime:  r.Time,
		Turnaround: q.Urgency.Turnaround(),
		Warranty:   RepairWarranty,
	}, true
}

// RepairInfo returns a repair estimate, or directs the customer to the
// store when the issue is not one we price.
func (d *Desk) RepairInfo(q RepairQuery) string {
	quote, ok := d.RepairQuote(q)
	if !ok {
		return fmt.Sprintf("We can repair %s with %s. Please visit our store for exact pricing.", q.PhoneType, q.Issue)
	}

	var b strings.Builder
	b.WriteString("Repair Estimate:\n")
	fmt.Fprintf(&b, "Phone: %s\n", quote.PhoneType)
	fmt.Fprintf(&b, "Issue: %s\n", quote.Issue)
	fmt.Fprintf(&b, "Estimated Cost: $%d\n", quote.Cost)
	fmt.Fprintf(&b, "Repair Time: %s in store\n", quote.BenchTime)
	fmt.Fprintf(&b, "Turnaround Time: %s\n", quote.Turnaround)
	fmt.Fprintf(&b, "Warranty: %s", quote.Warranty)
	return b.String()
}

var urgentWords = []string{"urgent", "asap", "today", "emergency"}

// RepairQueryFromText pulls the phone, issue and urgency out of a message.
// Unknown phones become "Phone"; unknown issues become "general repair".
func (d *Desk) RepairQueryFromText(text string) RepairQuery {
	lower := strings.ToLower(text)

	q := RepairQuery{
		PhoneType: "Phone",
		Issue:     "general repair",
		Urgency:   UrgencyStandard,
	}

	if pq := d.ProductQueryFromText(text); pq.Model != "" {
		q.PhoneType = pq.Model
	} else if pq.Brand != "" {
		q.PhoneType = pq.Brand
	}

	if r, ok := d.kb.MatchRepair(lower); ok {
		q.Issue = strings.ToLower(r.Name)
	}

	for _, w := range urgentWords {
		if strings.Contains(lower, w) {
			q.Urgency = UrgencyUrgent
			break
		}
	}

	return q
}
