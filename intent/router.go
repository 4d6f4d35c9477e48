// Package intent classifies customer messages by keyword.
package intent

import "strings"

// Intent is the category a message is routed to.
type Intent string

const (
	ProductInfo     Intent = "product_info"
	RepairInfo      Intent = "repair_info"
	StatusCheck     Intent = "status_check"
	Appointment     Intent = "appointment"
	Troubleshooting Intent = "troubleshooting"
	WarrantyCheck   Intent = "warranty_check"
	ContactInfo     Intent = "contact_info"
	HumanEscalation Intent = "human_escalation"
	GeneralChat     Intent = "general_chat"
)

// Rule routes a message to Intent when any keyword occurs in it.
type Rule struct {
	Intent   Intent   `json:"intent"`
	Keywords []string `json:"keywords"`
}

// DefaultRules are evaluated top to bottom; the first matching rule wins.
var DefaultRules = []Rule{
	{ProductInfo, []string{"phone", "model", "spec", "price", "buy"}},
	{RepairInfo, []string{"repair", "fix", "broken", "damage"}},
	{StatusCheck, []string{"status", "track", "check", "ticket"}},
	{Appointment, []string{"appointment", "schedule", "book", "meet"}},
	{Troubleshooting, []string{"help", "trouble", "issue", "problem"}},
	{WarrantyCheck, []string{"warranty", "guarantee", "cover"}},
	{ContactInfo, []string{"contact", "store", "location", "hours"}},
	{HumanEscalation, []string{"human", "agent", "speak to", "representative"}},
}

// Router classifies text against an ordered rule list.
type Router struct {
	rules    []Rule
	fallback Intent
}

// NewRouter creates a router. Keywords are matched lower-cased.
func NewRouter(rules []Rule, fallback Intent) *Router {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		normalized[i] = Rule{Intent: r.Intent, Keywords: kws}
	}
	return &Router{rules: normalized, fallback: fallback}
}

// Default returns the PhoneHub router.
func Default() *Router {
	return NewRouter(DefaultRules, GeneralChat)
}

// Classify returns the intent of the first rule with a keyword contained
// in the text, or the fallback intent.
func (r *Router) Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Intent
			}
		}
	}
	return r.fallback
}

// Rules returns a copy of the routing table.
func (r *Router) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Matches reports whether text contains a keyword of the rule for in,
// regardless of rule order.
func (r *Router) Matches(in Intent, text string) bool {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if rule.Intent != in {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
