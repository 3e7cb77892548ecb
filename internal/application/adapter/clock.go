// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time in the ledger's configured time zone.
// "Today" for the 7-day series and debt settlement is derived from it.
type Clock interface {
	Now() time.Time
}
