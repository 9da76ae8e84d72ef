package tripsplit

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-07-10", want: NewDate(2026, time.July, 10)},
		{in: "2026-7-1", want: NewDate(2026, time.July, 1)},
		{in: " 2026-07-10 ", want: NewDate(2026, time.July, 10)},
		{in: "0d", want: Today()},
		{in: "-1d", want: Today().Add(-1)},
		{in: "+2d", want: Today().Add(2)},
		{in: "12-24", want: NewDate(Today().Year(), time.December, 24)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseDate_DayShorthand(t *testing.T) {
	got, err := ParseDate("27")
	if err != nil {
		t.Fatalf("ParseDate(27) error = %v", err)
	}
	want := NewDate(Today().Year(), Today().Month(), 27)
	if got != want {
		t.Errorf("ParseDate(27) = %v, want %v", got, want)
	}
}

func TestDate_Normalization(t *testing.T) {
	// Out-of-range day values roll over like time.Date.
	if got, want := NewDate(2026, time.January, 32), NewDate(2026, time.February, 1); got != want {
		t.Errorf("NewDate(2026, January, 32) = %v, want %v", got, want)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	day := NewDate(2026, time.July, 10)
	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2026-07-10"` {
		t.Errorf("Marshal() = %s, want %q", data, "2026-07-10")
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != day {
		t.Errorf("round trip = %v, want %v", decoded, day)
	}
}

func TestDate_Ordering(t *testing.T) {
	early := NewDate(2026, time.July, 10)
	late := NewDate(2026, time.July, 11)
	if !early.Before(late) || late.Before(early) {
		t.Errorf("Before() is inconsistent")
	}
	if !late.After(early) || early.After(late) {
		t.Errorf("After() is inconsistent")
	}
}
