package domain

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestBalancingAgeUsesYearOnly(t *testing.T) {
	cases := []struct {
		name  string
		birth time.Time
		ref   int
		want  int
	}{
		{"mid year", date(2000, 6, 15), 2025, 25},
		{"birthday not reached", date(2000, 12, 31), 2025, 25},
		{"january birth", date(2000, 1, 1), 2025, 25},
		{"same year", date(2025, 3, 1), 2025, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BalancingAge(tc.birth, tc.ref); got != tc.want {
				t.Fatalf("BalancingAge(%v, %d) = %d, want %d", tc.birth, tc.ref, got, tc.want)
			}
		})
	}
}

func TestDisplayAgeCorrectsForMonth(t *testing.T) {
	now := date(2025, 6, 1)
	cases := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday month passed", date(2000, 3, 10), 25},
		{"birthday month ahead", date(2000, 9, 10), 24},
		{"birthday this month", date(2000, 6, 25), 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayAge(tc.birth, now); got != tc.want {
				t.Fatalf("DisplayAge(%v) = %d, want %d", tc.birth, got, tc.want)
			}
		})
	}
}

func TestAgeFunctionsDisagreeLateYearBirthday(t *testing.T) {
	// A December birth observed in June: balancing ignores the month, the
	// display age does not.
	now := date(2025, 6, 1)
	birth := date(2000, 12, 24)
	if got := BalancingAge(birth, now.Year()); got != 25 {
		t.Fatalf("BalancingAge = %d, want 25", got)
	}
	if got := DisplayAge(birth, now); got != 24 {
		t.Fatalf("DisplayAge = %d, want 24", got)
	}
}

func TestSexValid(t *testing.T) {
	if !SexMale.Valid() || !SexFemale.Valid() {
		t.Fatal("expected known sexes to be valid")
	}
	if Sex("M").Valid() || Sex("").Valid() {
		t.Fatal("expected unknown sexes to be invalid")
	}
}
