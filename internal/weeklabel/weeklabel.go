// Package weeklabel computes the week-of-month title used for created pages.
package weeklabel

import (
	"fmt"
	"time"
)

// Ordinal returns the week-of-month bucket for a date. Weeks reset on the
// 1st, 8th, 15th, 22nd and 29th of each month regardless of weekday
// alignment; this is deliberately not an ISO week computation.
func Ordinal(date time.Time) int {
	return (date.Day()-1)/7 + 1
}

// Title formats a date as "Nov 05 Week 1" (abbreviated month, zero-padded
// day, week-of-month ordinal).
func Title(date time.Time) string {
	return fmt.Sprintf("%s Week %d", date.Format("Jan 02"), Ordinal(date))
}
