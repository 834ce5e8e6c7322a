package formula

import (
	"time"

	"supercalc/internal/calcerror"
)

// AgeSpan is the elapsed time between two calendar dates expressed in whole
// years, months and days.
type AgeSpan struct {
	Years  int
	Months int
	Days   int
}

// AgeBetween computes the calendar age from birth up to the reference date.
// It uses the borrow algorithm: a negative day difference borrows the length
// of the reference month, and a negative month difference then borrows 12
// months from the years. Born on the 15th and asked on the 14th of the same
// month therefore reads as one day short of the anniversary. A birth date
// after the reference date is rejected.
func AgeBetween(birth, ref time.Time) (AgeSpan, error) {
	birth = truncateToDay(birth)
	ref = truncateToDay(ref)
	if birth.After(ref) {
		return AgeSpan{}, &calcerror.ValidationError{Tool: "age", Field: "date", Reason: "must not be in the future"}
	}

	years := ref.Year() - birth.Year()
	months := int(ref.Month()) - int(birth.Month())
	days := ref.Day() - birth.Day()

	if days < 0 {
		months--
		days += daysInMonth(ref)
	}
	if months < 0 {
		years--
		months += 12
	}

	return AgeSpan{Years: years, Months: months, Days: days}, nil
}

// daysInMonth returns the number of days in the month of t. Day 0 of the
// following month normalizes to the last day of this one.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
