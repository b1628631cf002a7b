// Package validate checks the command-line arguments before any network
// call is made. Every check failure is fatal to the run.
package validate

import (
	"fmt"
	"time"
)

// Hours checks that both hours are in the 0-23 range and that the window is
// non-empty (start strictly before end).
func Hours(start, end int) error {
	if start < 0 || start > 23 {
		return fmt.Errorf("start time must be between 0 and 23")
	}
	if end < 0 || end > 23 {
		return fmt.Errorf("end time must be between 0 and 23")
	}
	if start >= end {
		return fmt.Errorf("start time must be before end time")
	}
	return nil
}

// Players checks that the player count is between 1 and 4.
func Players(n int) error {
	if n < 1 || n > 4 {
		return fmt.Errorf("number of players must be between 1 and 4")
	}
	return nil
}

// Date checks that the date parses as YYYY-MM-DD. Past and future dates are
// both accepted; the remote service decides what is bookable.
func Date(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date format, please use YYYY-MM-DD")
	}
	return nil
}

// Args runs all argument checks in order and returns the first failure.
func Args(start, end int, date string, players int) error {
	if err := Hours(start, end); err != nil {
		return err
	}
	if err := Players(players); err != nil {
		return err
	}
	return Date(date)
}
