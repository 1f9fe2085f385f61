// README: Trip record and module error definitions.
package trip

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("trip not found")
	ErrBadRequest = errors.New("invalid trip request")
)

// Trip is a saved trip. Dates are calendar dates in ISO-8601 text, matching
// the wire format used everywhere else in the API.
type Trip struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"startDate,omitempty"`
	EndDate     string    `json:"endDate,omitempty"`
	Destination string    `json:"destination,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateCommand carries the writable fields for create and update.
type CreateCommand struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	Destination string
}
