package dates

import "testing"

func TestMonthsBefore(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2025-08-29", "2025-07-29"},
		{"2025-03-15", "2025-02-15"},
		// Month-end overflow normalizes forward, as JS setMonth does.
		{"2025-03-31", "2025-03-03"},
		{"2024-03-31", "2024-03-02"}, // leap February
		{"2025-07-31", "2025-07-01"}, // via the nonexistent June 31
		{"2025-01-15", "2024-12-15"}, // year boundary
	}
	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			if got := MonthsBefore(tt.day, 1); got != tt.want {
				t.Errorf("MonthsBefore(%s, 1) = %s, want %s", tt.day, got, tt.want)
			}
		})
	}
}

func TestDaysBefore(t *testing.T) {
	if got := DaysBefore("2025-08-29", 6); got != "2025-08-23" {
		t.Errorf("DaysBefore = %s, want 2025-08-23", got)
	}
	if got := DaysBefore("2025-01-01", 1); got != "2024-12-31" {
		t.Errorf("DaysBefore = %s, want 2024-12-31", got)
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween("2025-08-22", "2025-08-29"); got != 7 {
		t.Errorf("DaysBetween = %d, want 7", got)
	}
	if got := DaysBetween("2025-08-29", "2025-08-29"); got != 0 {
		t.Errorf("DaysBetween = %d, want 0", got)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"2025-08-29", true},
		{"2025-13-01", false},
		{"29/08/2025", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.s); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestRangeLabels(t *testing.T) {
	label := RangeLabel("2025-08-23", "2025-08-29")
	if label != "2025-08-23 - 2025-08-29" {
		t.Fatalf("label = %q", label)
	}

	start, end, ok := SplitRange(label)
	if !ok || start != "2025-08-23" || end != "2025-08-29" {
		t.Errorf("SplitRange = %q, %q, %v", start, end, ok)
	}

	if _, _, ok := SplitRange("2025-08-29"); ok {
		t.Error("a plain day is not a range label")
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		day  string
		want bool
	}{
		{"2025-08-23", true}, // inclusive start
		{"2025-08-29", true}, // inclusive end
		{"2025-08-26", true},
		{"2025-08-22", false},
		{"2025-08-30", false},
	}
	for _, tt := range tests {
		if got := InRange(tt.day, "2025-08-23", "2025-08-29"); got != tt.want {
			t.Errorf("InRange(%s) = %v, want %v", tt.day, got, tt.want)
		}
	}
}
