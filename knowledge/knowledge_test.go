package knowledge

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("indexes the catalogue", func(t *testing.T) {
		p, ok := base.Phone("iPhone 15")
		if !ok {
			t.Fatal("expected to find iPhone 15")
		}
		if p.PriceLabel() != "$799" {
			t.Errorf("expected price $799, got: %s", p.PriceLabel())
		}
		if _, ok := base.Phone("iphone 15"); ok {
			t.Error("expected exact model match only")
		}
	})

	t.Run("every repair has an Other price", func(t *testing.T) {
		if len(base.Repairs) != 5 {
			t.Fatalf("expected 5 repair kinds, got: %d", len(base.Repairs))
		}
		for _, r := range base.Repairs {
			if _, ok := r.Prices[OtherBrand]; !ok {
				t.Errorf("repair %s missing Other price", r.Issue)
			}
		}
	})

	t.Run("seeds tickets and orders", func(t *testing.T) {
		if tk, ok := base.Ticket("TICKET-002"); !ok || !tk.Completed() {
			t.Errorf("expected TICKET-002 to be completed, got: %+v", tk)
		}
		if o, ok := base.Order("ORD001"); !ok || o.TrackingNumber != "UPS123456789" {
			t.Errorf("unexpected order: %+v", o)
		}
	})

	t.Run("keeps FAQ order", func(t *testing.T) {
		keys := base.TopicKeys()
		want := "return_policy,shipping,warranty,data_backup,payment_methods"
		if strings.Join(keys, ",") != want {
			t.Errorf("expected %s, got: %v", want, keys)
		}
	})
}

func TestBase_PhonesByBrand(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := base.PhonesByBrand("SAMSUNG")
	if len(got) != 2 {
		t.Fatalf("expected 2 samsung models, got: %v", got)
	}
	if got[0] != "Samsung Galaxy S23" {
		t.Errorf("expected catalogue order, got: %v", got)
	}

	if got := base.PhonesByBrand("nokia"); len(got) != 0 {
		t.Errorf("expected no models, got: %v", got)
	}
}

func TestBase_ModelsByLength(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := base.ModelsByLength()
	pro, plain := -1, -1
	for i, n := range names {
		switch n {
		case "iPhone 15 Pro":
			pro = i
		case "iPhone 15":
			plain = i
		}
	}
	if pro > plain {
		t.Errorf("expected iPhone 15 Pro before iPhone 15, got: %v", names)
	}
}

func TestBase_MatchRepair(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("first keyword in table order wins", func(t *testing.T) {
		r, ok := base.MatchRepair("Cracked SCREEN and weak battery")
		if !ok || r.Issue != "screen" {
			t.Errorf("expected screen, got: %+v", r)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, ok := base.MatchRepair("it makes a noise"); ok {
			t.Error("expected no match")
		}
	})

	t.Run("unknown brand falls back to Other", func(t *testing.T) {
		r, _ := base.MatchRepair("water")
		if r.PriceFor("Nokia") != 259 {
			t.Errorf("expected 259, got: %d", r.PriceFor("Nokia"))
		}
	})
}

func TestFormatUSD(t *testing.T) {
	if got := FormatUSD(799.99); got != "$799.99" {
		t.Errorf("expected $799.99, got: %s", got)
	}
	if got := FormatUSD(999); got != "$999" {
		t.Errorf("expected $999, got: %s", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing Other price", func(t *testing.T) {
		seed := `
timeSlots: ["9:00 AM"]
repairs:
  - issue: screen
    keyword: screen
    prices: { iPhone: 10 }
`
		_, err := Load(strings.NewReader(seed))
		if !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("expected ErrInvalidSeed, got: %v", err)
		}
	})

	t.Run("duplicate ticket", func(t *testing.T) {
		seed := `
timeSlots: ["9:00 AM"]
tickets:
  - { id: T-1, status: Completed }
  - { id: T-1, status: Completed }
`
		_, err := Load(strings.NewReader(seed))
		if !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("expected ErrInvalidSeed, got: %v", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(strings.NewReader("timeSlots: [\"9:00 AM\"]\nbogus: 1\n"))
		if !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("expected ErrInvalidSeed, got: %v", err)
		}
	})
}

func TestAppointmentBook(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	book := NewAppointmentBook(WithClock(func() time.Time { return fixed }))

	t.Run("assigns increasing ids and codes", func(t *testing.T) {
		first := book.Book(Appointment{CustomerName: "Ada"})
		second := book.Book(Appointment{CustomerName: "Grace"})

		if second.ID <= first.ID {
			t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
		}
		if first.ConfirmationCode != "REP0001" {
			t.Errorf("expected REP0001, got: %s", first.ConfirmationCode)
		}
		if first.Reference != "APT-20250301093000-0001" {
			t.Errorf("unexpected reference: %s", first.Reference)
		}
		if first.Reference == second.Reference {
			t.Error("expected unique references")
		}
		if first.Status != AppointmentConfirmed {
			t.Errorf("expected Confirmed, got: %s", first.Status)
		}
	})

	t.Run("get", func(t *testing.T) {
		a, err := book.Get(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.CustomerName != "Ada" {
			t.Errorf("expected Ada, got: %s", a.CustomerName)
		}

		if _, err := book.Get(99); !errors.Is(err, ErrAppointmentNotFound) {
			t.Errorf("expected ErrAppointmentNotFound, got: %v", err)
		}
	})
}
