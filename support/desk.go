// Package support answers customer queries from the knowledge base.
//
// Every handler returns text meant for the customer. Unknown ids, models
// and malformed booking input produce a corrective message, not an error.
package support

import (
	"fmt"
	"strings"

	"github.com/ourstudio-se/phonehub/knowledge"
)

// Desk is the set of query handlers over one knowledge base.
type Desk struct {
	kb           *knowledge.Base
	appointments *knowledge.AppointmentBook
}

// New creates a Desk. A nil appointment book gets a fresh in-memory one.
func New(kb *knowledge.Base, appointments *knowledge.AppointmentBook) *Desk {
	if appointments == nil {
		appointments = knowledge.NewAppointmentBook()
	}
	return &Desk{kb: kb, appointments: appointments}
}

// Knowledge returns the underlying knowledge base.
func (d *Desk) Knowledge() *knowledge.Base {
	return d.kb
}

func join(items []string) string {
	return strings.Join(items, ", ")
}

func numbered(steps []string) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, s)
	}
	return b.String()
}
