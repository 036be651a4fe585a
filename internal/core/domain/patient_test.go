package domain

import (
	"testing"
	"time"
)

func TestPatient_AgeAt_CompletedBirthdays(t *testing.T) {
	p := &Patient{Birthdate: time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)}

	cases := []struct {
		name string
		at   time.Time
		want int
	}{
		{"day before birthday", time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC), 33},
		{"on birthday", time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), 34},
		{"day after birthday", time.Date(2024, time.May, 16, 0, 0, 0, 0, time.UTC), 34},
		{"earlier month", time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), 33},
		{"later month", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 34},
	}

	for _, tc := range cases {
		if got := p.AgeAt(tc.at); got != tc.want {
			t.Errorf("%s: AgeAt = %d, want %d", tc.name, got, tc.want)
		}
	}
}
