// utils/dates.go
package utils

import "time"

// SameMonthDay reports whether two dates share a calendar month and day,
// ignoring the year. Used for birthday matching.
func SameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}
