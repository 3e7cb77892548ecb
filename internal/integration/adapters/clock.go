// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// systemClock reports wall-clock time in the ledger's time zone, so "today"
// matches the calendar day users see.
type systemClock struct {
	location *time.Location
}

// NewSystemClock creates a clock for the named IANA time zone. An empty name
// selects UTC.
func NewSystemClock(timezone string) (adapter.Clock, error) {
	if timezone == "" {
		return &systemClock{location: time.UTC}, nil
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", timezone, err)
	}
	return &systemClock{location: location}, nil
}

// Now returns the current time in the clock's location.
func (c *systemClock) Now() time.Time {
	return time.Now().In(c.location)
}
