package finboard

import (
	"slices"
	"testing"
	"time"
)

func TestOccurrences(t *testing.T) {
	def := RecurringDefinition{
		Title:          "rent",
		Type:           Expense,
		Amount:         M(100, "EUR"),
		Frequency:      Monthly,
		NextOccurrence: NewDate(2024, time.May, 15),
		Active:         true,
	}

	var got []Date
	for on := range def.Occurrences(NewDate(2024, time.July, 31)) {
		got = append(got, on)
	}

	want := []Date{
		NewDate(2024, time.May, 15),
		NewDate(2024, time.June, 15),
		NewDate(2024, time.July, 15),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Occurrences() = %v, want %v", got, want)
	}
}

func TestOccurrences_EmptyWhenPointerBeyondBound(t *testing.T) {
	def := RecurringDefinition{
		Frequency:      Monthly,
		NextOccurrence: NewDate(2024, time.August, 1),
	}
	for on := range def.Occurrences(NewDate(2024, time.July, 31)) {
		t.Fatalf("unexpected occurrence %s", on)
	}
}

func TestOccurrences_DoesNotMutatePointer(t *testing.T) {
	def := RecurringDefinition{
		Frequency:      Weekly,
		NextOccurrence: NewDate(2024, time.May, 1),
	}
	for range def.Occurrences(NewDate(2024, time.December, 31)) {
	}
	if got, want := def.NextOccurrence, NewDate(2024, time.May, 1); got != want {
		t.Errorf("NextOccurrence = %s, want untouched %s", got, want)
	}
}

func TestDue(t *testing.T) {
	now := NewDate(2024, time.April, 20)
	testCases := []struct {
		name string
		def  RecurringDefinition
		want bool
	}{
		{
			name: "overdue and active",
			def:  RecurringDefinition{Active: true, NextOccurrence: NewDate(2024, time.April, 1)},
			want: true,
		},
		{
			name: "due today",
			def:  RecurringDefinition{Active: true, NextOccurrence: now},
			want: true,
		},
		{
			name: "in the future",
			def:  RecurringDefinition{Active: true, NextOccurrence: NewDate(2024, time.May, 1)},
			want: false,
		},
		{
			name: "frozen stays frozen even when overdue",
			def:  RecurringDefinition{Active: false, NextOccurrence: NewDate(2024, time.April, 1)},
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.def.Due(now); got != tc.want {
				t.Errorf("Due() = %v, want %v", got, tc.want)
			}
		})
	}
}
