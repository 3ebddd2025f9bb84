package finboard

import (
	"testing"
	"time"
)

func TestAddMonths_ClampsDayOverflow(t *testing.T) {
	testCases := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{
			name: "plain month",
			from: NewDate(2024, time.March, 15),
			n:    1,
			want: NewDate(2024, time.April, 15),
		},
		{
			name: "Jan 31 clamps to leap Feb 29",
			from: NewDate(2024, time.January, 31),
			n:    1,
			want: NewDate(2024, time.February, 29),
		},
		{
			name: "Jan 31 clamps to Feb 28",
			from: NewDate(2025, time.January, 31),
			n:    1,
			want: NewDate(2025, time.February, 28),
		},
		{
			name: "Mar 31 clamps to Apr 30",
			from: NewDate(2024, time.March, 31),
			n:    1,
			want: NewDate(2024, time.April, 30),
		},
		{
			name: "year rollover",
			from: NewDate(2024, time.December, 10),
			n:    1,
			want: NewDate(2025, time.January, 10),
		},
		{
			name: "backward into short month",
			from: NewDate(2024, time.March, 31),
			n:    -1,
			want: NewDate(2024, time.February, 29),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.AddMonths(tc.n); got != tc.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tc.from, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddYears_ClampsLeapDay(t *testing.T) {
	from := NewDate(2024, time.February, 29)
	if got, want := from.AddYears(1), NewDate(2025, time.February, 28); got != want {
		t.Errorf("AddYears(%s, 1) = %s, want %s", from, got, want)
	}
	if got, want := from.AddYears(4), NewDate(2028, time.February, 29); got != want {
		t.Errorf("AddYears(%s, 4) = %s, want %s", from, got, want)
	}
}

func TestFrequencyNext(t *testing.T) {
	on := NewDate(2024, time.January, 15)
	testCases := []struct {
		freq Frequency
		want Date
	}{
		{Daily, NewDate(2024, time.January, 16)},
		{Weekly, NewDate(2024, time.January, 22)},
		{Monthly, NewDate(2024, time.February, 15)},
		{Yearly, NewDate(2025, time.January, 15)},
	}
	for _, tc := range testCases {
		t.Run(tc.freq.String(), func(t *testing.T) {
			if got := tc.freq.Next(on); got != tc.want {
				t.Errorf("Next(%s) = %s, want %s", on, got, tc.want)
			}
		})
	}
}

// Next must always make forward progress, otherwise projection and
// materialization catch-up would loop forever.
func TestFrequencyNext_StrictlyMonotonic(t *testing.T) {
	dates := []Date{
		NewDate(2024, time.January, 1),
		NewDate(2024, time.January, 31),
		NewDate(2024, time.February, 29),
		NewDate(2024, time.December, 31),
		NewDate(2025, time.February, 28),
	}
	for _, freq := range []Frequency{Daily, Weekly, Monthly, Yearly} {
		for _, d := range dates {
			on := d
			for i := 0; i < 50; i++ {
				next := freq.Next(on)
				if !next.After(on) {
					t.Fatalf("%s.Next(%s) = %s, not strictly after", freq, on, next)
				}
				on = next
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{in: " 2024-01-15 ", want: NewDate(2024, time.January, 15)},
		{in: "15/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMonthKey(t *testing.T) {
	k := NewDate(2024, time.December, 25).MonthOf()
	if got, want := k.String(), "2024-12"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := k.Next(), (MonthKey{Year: 2025, Month: time.January}); got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
	if got, want := k.Start(), NewDate(2024, time.December, 1); got != want {
		t.Errorf("Start() = %s, want %s", got, want)
	}
	if got, want := k.End(), NewDate(2024, time.December, 31); got != want {
		t.Errorf("End() = %s, want %s", got, want)
	}
	if !k.Before(k.Next()) || k.Next().Before(k) {
		t.Errorf("Before() ordering broken for %v", k)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(NewDate(2024, time.January, 1), NewDate(2024, time.January, 31))
	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Error("boundaries must be included")
	}
	if r.Contains(NewDate(2023, time.December, 31)) || r.Contains(NewDate(2024, time.February, 1)) {
		t.Error("dates outside the range must be excluded")
	}
}
