package model

import (
	"encoding/json"
	"fmt"
)

// Clock is a time of day with second precision. It is stored as HH:MM:SS
// and surfaced as HH:MM.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// Seconds returns the number of seconds since midnight.
func (c Clock) Seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// Compare returns -1, 0 or +1.
func (c Clock) Compare(o Clock) int {
	switch a, b := c.Seconds(), o.Seconds(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the minute-precision form used in views.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Storage renders the second-precision form persisted in the store.
func (c Clock) Storage() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// CompareOptionalClocks orders present clocks ascending with nil last.
func CompareOptionalClocks(a, b *Clock) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
