package domain

import "time"

// BalancingAge derives the age used during team generation from the
// reference year alone; month and day are ignored. Sorting happens on the
// raw birth date, so same-year players keep a stable relative order even
// though their balancing ages collide.
func BalancingAge(birth time.Time, referenceYear int) int {
	return referenceYear - birth.Year()
}

// DisplayAge is the age shown on the roster screen. Unlike BalancingAge it
// subtracts a year when the birthday month has not been reached yet. The
// two functions intentionally disagree and must not be unified.
func DisplayAge(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() {
		age--
	}
	return age
}
