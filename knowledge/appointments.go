package knowledge

import (
	"fmt"
	"sync"
	"time"
)

// AppointmentConfirmed is the status of every newly booked appointment.
const AppointmentConfirmed = "Confirmed"

// Appointment is a booked repair slot.
type Appointment struct {
	ID                int       `json:"id"`
	Reference         string    `json:"reference"`
	ConfirmationCode  string    `json:"confirmationCode"`
	CustomerName      string    `json:"customerName"`
	PhoneType         string    `json:"phoneType"`
	ServiceType       string    `json:"serviceType"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Contact           string    `json:"contact"`
	Status            string    `json:"status"`
	EstimatedDuration string    `json:"estimatedDuration"`
	BookedAt          time.Time `json:"bookedAt"`
}

// AppointmentBook records bookings for the lifetime of the process.
// Ids are assigned from a counter and are never reused.
type AppointmentBook struct {
	mu     sync.Mutex
	nextID int
	items  map[int]Appointment
	now    func() time.Time
}

// BookOption configures an AppointmentBook.
type BookOption func(*AppointmentBook)

// WithClock overrides the clock used for references and timestamps.
func WithClock(now func() time.Time) BookOption {
	return func(b *AppointmentBook) { b.now = now }
}

// NewAppointmentBook creates an empty ledger.
func NewAppointmentBook(opts ...BookOption) *AppointmentBook {
	b := &AppointmentBook{
		nextID: 1,
		items:  make(map[int]Appointment),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Book records an appointment and fills in its id, codes and status.
// Caller-supplied fields are stored as given.
func (b *AppointmentBook) Book(a Appointment) Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	a.ID = b.nextID
	b.nextID++

	a.Reference = fmt.Sprintf("APT-%s-%04d", now.Format("20060102150405"), a.ID)
	a.ConfirmationCode = fmt.Sprintf("REP%04d", a.ID)
	a.Status = AppointmentConfirmed
	a.EstimatedDuration = "1 hour"
	a.BookedAt = now

	b.items[a.ID] = a
	return a
}

// Get returns a booked appointment.
func (b *AppointmentBook) Get(id int) (Appointment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.items[id]
	if !ok {
		return Appointment{}, fmt.Errorf("%w: %d", ErrAppointmentNotFound, id)
	}
	return a, nil
}

// Len returns how many appointments have been booked.
func (b *AppointmentBook) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
