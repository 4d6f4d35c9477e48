// Package knowledge holds the PhoneHub reference data: the phone catalogue,
// repair price table, repair tickets, orders, FAQ and store details.
//
// A Base is built once (usually from the embedded seed) and passed to the
// handlers that need it. Nothing in a Base is mutated after loading; the
// only mutable ledger is the AppointmentBook.
package knowledge

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// OtherBrand is the price bucket used when a phone matches no named brand.
const OtherBrand = "Other"

// Ticket statuses.
const (
	TicketInProgress = "In Progress"
	TicketCompleted  = "Completed"
)

// Phone is one sellable model in the catalogue.
type Phone struct {
	Model   string   `yaml:"model" json:"model"`
	Price   float64  `yaml:"price" json:"price"`
	Stock   int      `yaml:"stock" json:"stock"`
	Storage []string `yaml:"storage" json:"storage"`
	Colors  []string `yaml:"colors" json:"colors"`
	Specs   Specs    `yaml:"specs" json:"specs"`
}

// Specs are the headline specifications of a phone.
type Specs struct {
	Display   string `yaml:"display" json:"display"`
	Processor string `yaml:"processor" json:"processor,omitempty"`
	Camera    string `yaml:"camera" json:"camera"`
	Battery   string `yaml:"battery" json:"battery"`
}

// PriceLabel formats the price the way it is shown to customers:
// whole dollars without cents, otherwise two decimals.
func (p Phone) PriceLabel() string {
	return FormatUSD(p.Price)
}

// HasColor reports whether the phone is offered in the given color.
func (p Phone) HasColor(color string) bool {
	for _, c := range p.Colors {
		if strings.EqualFold(c, color) {
			return true
		}
	}
	return false
}

// FormatUSD renders an amount as "$799" or "$799.99".
func FormatUSD(amount float64) string {
	if amount == float64(int64(amount)) {
		return "$" + strconv.FormatInt(int64(amount), 10)
	}
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// RepairPrice is the cost and bench time of one repair kind per brand.
type RepairPrice struct {
	Issue   string         `yaml:"issue" json:"issue"`
	Name    string         `yaml:"name" json:"name"`
	Keyword string         `yaml:"keyword" json:"keyword"`
	Time    string         `yaml:"time" json:"time"`
	Prices  map[string]int `yaml:"prices" json:"prices"`
}

// PriceFor returns the price for a brand bucket, falling back to OtherBrand.
func (r RepairPrice) PriceFor(brand string) int {
	if p, ok := r.Prices[brand]; ok {
		return p
	}
	return r.Prices[OtherBrand]
}

// Ticket is a repair job tracked by ticket number.
type Ticket struct {
	ID                  string `yaml:"id" json:"id"`
	Status              string `yaml:"status" json:"status"`
	Phone               string `yaml:"phone" json:"phone"`
	Issue               string `yaml:"issue" json:"issue"`
	EstimatedCompletion string `yaml:"estimatedCompletion" json:"estimatedCompletion,omitempty"`
	CompletedDate       string `yaml:"completedDate" json:"completedDate,omitempty"`
}

// Completed reports whether the repair is finished.
func (t Ticket) Completed() bool {
	return t.Status == TicketCompleted
}

// Order is a sales or repair order.
type Order struct {
	ID                  string   `yaml:"id" json:"id"`
	Customer            string   `yaml:"customer" json:"customer"`
	Items               []string `yaml:"items" json:"items"`
	Status              string   `yaml:"status" json:"status"`
	TrackingNumber      string   `yaml:"trackingNumber" json:"trackingNumber,omitempty"`
	EstimatedDelivery   string   `yaml:"estimatedDelivery" json:"estimatedDelivery,omitempty"`
	EstimatedCompletion string   `yaml:"estimatedCompletion" json:"estimatedCompletion,omitempty"`
}

// FAQTopic is one policy question and its answer.
type FAQTopic struct {
	Key      string `yaml:"key" json:"key"`
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// WarrantyPolicy describes the warranty for one product type.
type WarrantyPolicy struct {
	Product string `yaml:"product" json:"product"`
	Policy  string `yaml:"policy" json:"policy"`
}

// Guide is a troubleshooting checklist for one problem keyword.
type Guide struct {
	Keyword string   `yaml:"keyword" json:"keyword"`
	Steps   []string `yaml:"steps" json:"steps"`
}

// OpeningHours is the schedule for one weekday.
type OpeningHours struct {
	Day  string `yaml:"day" json:"day"`
	Open string `yaml:"open" json:"open"`
}

// StoreInfo holds contact details for the store and support desk.
type StoreInfo struct {
	Name           string         `yaml:"name" json:"name"`
	Phone          string         `yaml:"phone" json:"phone"`
	Email          string         `yaml:"email" json:"email"`
	LiveChat       string         `yaml:"liveChat" json:"liveChat"`
	Address        string         `yaml:"address" json:"address"`
	EscalationWait string         `yaml:"escalationWait" json:"escalationWait"`
	Hours          []OpeningHours `yaml:"hours" json:"hours"`
}

// Base is the full set of read-only reference data.
type Base struct {
	Store           StoreInfo        `yaml:"store"`
	TimeSlots       []string         `yaml:"timeSlots"`
	Phones          []Phone          `yaml:"phones"`
	Repairs         []RepairPrice    `yaml:"repairs"`
	Tickets         []Ticket         `yaml:"tickets"`
	Orders          []Order          `yaml:"orders"`
	FAQ             []FAQTopic       `yaml:"faq"`
	Warranty        []WarrantyPolicy `yaml:"warranty"`
	Troubleshooting []Guide          `yaml:"troubleshooting"`

	phones  map[string]Phone
	tickets map[string]Ticket
	orders  map[string]Order
	faq     map[string]FAQTopic
}

// Validate checks the invariants the handlers rely on and builds the
// lookup indexes. It must be called before any lookup.
func (b *Base) Validate() error {
	if len(b.TimeSlots) == 0 {
		return fmt.Errorf("%w: no booking time slots", ErrInvalidSeed)
	}

	b.phones = make(map[string]Phone, len(b.Phones))
	for _, p := range b.Phones {
		if p.Model == "" {
			return fmt.Errorf("%w: phone without model name", ErrInvalidSeed)
		}
		if _, dup := b.phones[p.Model]; dup {
			return fmt.Errorf("%w: duplicate phone model %q", ErrInvalidSeed, p.Model)
		}
		b.phones[p.Model] = p
	}

	for _, r := range b.Repairs {
		if r.Keyword == "" {
			return fmt.Errorf("%w: repair %q has no keyword", ErrInvalidSeed, r.Issue)
		}
		if _, ok := r.Prices[OtherBrand]; !ok {
			return fmt.Errorf("%w: repair %q has no %q price", ErrInvalidSeed, r.Issue, OtherBrand)
		}
	}

	b.tickets = make(map[string]Ticket, len(b.Tickets))
	for _, t := range b.Tickets {
		if _, dup := b.tickets[t.ID]; dup {
			return fmt.Errorf("%w: duplicate ticket %q", ErrInvalidSeed, t.ID)
		}
		if t.Status != TicketInProgress && t.Status != TicketCompleted {
			return fmt.Errorf("%w: ticket %q has unknown status %q", ErrInvalidSeed, t.ID, t.Status)
		}
		b.tickets[t.ID] = t
	}

	b.orders = make(map[string]Order, len(b.Orders))
	for _, o := range b.Orders {
		if _, dup := b.orders[o.ID]; dup {
			return fmt.Errorf("%w: duplicate order %q", ErrInvalidSeed, o.ID)
		}
		b.orders[o.ID] = o
	}

	b.faq = make(map[string]FAQTopic, len(b.FAQ))
	for _, f := range b.FAQ {
		b.faq[f.Key] = f
	}

	return nil
}

// Phone returns the catalogue entry with exactly this model name.
func (b *Base) Phone(model string) (Phone, bool) {
	p, ok := b.phones[model]
	return p, ok
}

// PhonesByBrand returns the model names containing brand, case-insensitively,
// in catalogue order.
func (b *Base) PhonesByBrand(brand string) []string {
	needle := strings.ToLower(brand)
	var models []string
	for _, p := range b.Phones {
		if strings.Contains(strings.ToLower(p.Model), needle) {
			models = append(models, p.Model)
		}
	}
	return models
}

// ModelNames returns every catalogue model name in catalogue order.
func (b *Base) ModelNames() []string {
	names := make([]string, len(b.Phones))
	for i, p := range b.Phones {
		names[i] = p.Model
	}
	return names
}

// ModelsByLength returns model names longest first, so that text matching
// prefers "iPhone 15 Pro" over "iPhone 15".
func (b *Base) ModelsByLength() []string {
	names := b.ModelNames()
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})
	return names
}

// Ticket looks up a repair ticket by its exact id.
func (b *Base) Ticket(id string) (Ticket, bool) {
	t, ok := b.tickets[id]
	return t, ok
}

// Order looks up an order by its exact id.
func (b *Base) Order(id string) (Order, bool) {
	o, ok := b.orders[id]
	return o, ok
}

// Topic looks up an FAQ entry by key.
func (b *Base) Topic(key string) (FAQTopic, bool) {
	f, ok := b.faq[key]
	return f, ok
}

// TopicKeys returns FAQ keys in seed order.
func (b *Base) TopicKeys() []string {
	keys := make([]string, len(b.FAQ))
	for i, f := range b.FAQ {
		keys[i] = f.Key
	}
	return keys
}

// MatchRepair returns the first repair entry whose keyword occurs in the
// lower-cased issue text.
func (b *Base) MatchRepair(issue string) (RepairPrice, bool) {
	text := strings.ToLower(issue)
	for _, r := range b.Repairs {
		if strings.Contains(text, r.Keyword) {
			return r, true
		}
	}
	return RepairPrice{}, false
}

// MatchGuide returns the first troubleshooting guide whose keyword occurs
// in the lower-cased issue text.
func (b *Base) MatchGuide(issue string) (Guide, bool) {
	text := strings.ToLower(issue)
	for _, g := range b.Troubleshooting {
		if strings.Contains(text, g.Keyword) {
			return g, true
		}
	}
	return Guide{}, false
}

// WarrantyFor returns the policy text for a product type.
func (b *Base) WarrantyFor(product string) (string, bool) {
	for _, w := range b.Warranty {
		if w.Product == product {
			return w.Policy, true
		}
	}
	return "", false
}

// IsTimeSlot reports whether slot is one of the bookable time slots.
func (b *Base) IsTimeSlot(slot string) bool {
	for _, s := range b.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
