package intent

import "testing"

func TestRouter_Classify(t *testing.T) {
	r := Default()

	cases := map[string]Intent{
		"What's the price of the iPhone 15?":     ProductInfo,
		"Can you REPAIR my screen?":              RepairInfo,
		"repair status for TICKET-001":           RepairInfo,
		"Check TICKET-001":                       StatusCheck,
		"I'd like to book an appointment":        Appointment,
		"I have a problem with wifi":             Troubleshooting,
		"Is water covered by the warranty?":      WarrantyCheck,
		"What are your store hours?":             ContactInfo,
		"Let me speak to a representative":       HumanEscalation,
		"hello there":                            GeneralChat,
		"":                                       GeneralChat,
		"my phone is broken, I need a human now": ProductInfo,
	}

	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			if got := r.Classify(text); got != want {
				t.Errorf("expected %s, got: %s", want, got)
			}
		})
	}
}

func TestRouter_Idempotent(t *testing.T) {
	r := Default()
	text := "where can I track my order"

	first := r.Classify(text)
	for i := 0; i < 3; i++ {
		if got := r.Classify(text); got != first {
			t.Fatalf("expected stable classification %s, got: %s", first, got)
		}
	}
}

func TestRouter_PriorityOrder(t *testing.T) {
	r := Default()
	rules := r.Rules()

	// Every pair of rules: a message holding a keyword from both must go to
	// the earlier rule.
	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			text := rules[j].Keywords[0] + " and " + rules[i].Keywords[0]
			if got := r.Classify(text); got != rules[i].Intent {
				t.Errorf("%q: expected %s, got: %s", text, rules[i].Intent, got)
			}
		}
	}
}

func TestNewRouter_Custom(t *testing.T) {
	r := NewRouter([]Rule{{Intent: StatusCheck, Keywords: []string{"WHERE IS"}}}, HumanEscalation)

	if got := r.Classify("where is my order"); got != StatusCheck {
		t.Errorf("expected %s, got: %s", StatusCheck, got)
	}
	if got := r.Classify("hi"); got != HumanEscalation {
		t.Errorf("expected fallback, got: %s", got)
	}
}

func TestRouter_Matches(t *testing.T) {
	r := Default()

	// "phone" wins in Classify, but the escalation keyword is still seen.
	text := "Let me speak to a human about my phone"
	if r.Classify(text) != ProductInfo {
		t.Fatalf("expected product_info to win, got: %s", r.Classify(text))
	}
	if !r.Matches(HumanEscalation, text) {
		t.Error("expected escalation keyword to match")
	}
	if r.Matches(HumanEscalation, "iPhone 15") {
		t.Error("expected no escalation match")
	}
	if r.Matches(Intent("unknown"), text) {
		t.Error("expected no match for an unknown intent")
	}
}
