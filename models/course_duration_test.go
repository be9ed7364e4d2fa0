package models

import "testing"

func TestDurationInWeeks(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"exact weeks", "2024-01-01", "2024-01-29", 4},
		{"partial week rounds up", "2024-01-01", "2024-01-30", 5},
		{"same day", "2024-03-10", "2024-03-10", 0},
		{"one day", "2024-03-10", "2024-03-11", 1},
		{"swapped dates", "2024-01-29", "2024-01-01", 4},
		{"timestamps", "2024-01-01T00:00:00Z", "2024-01-15T00:00:01Z", 3},
		{"mixed layouts", "2024-01-01", "2024-01-08T00:00:00.000Z", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationInWeeks(tt.start, tt.end)
			if err != nil {
				t.Fatalf("DurationInWeeks() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("DurationInWeeks(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDurationInWeeksSymmetric(t *testing.T) {
	dates := []string{"2023-02-01", "2023-05-17", "2024-02-29", "2024-12-31T10:30:00Z"}
	for _, a := range dates {
		for _, b := range dates {
			ab, err := DurationInWeeks(a, b)
			if err != nil {
				t.Fatal(err)
			}
			ba, err := DurationInWeeks(b, a)
			if err != nil {
				t.Fatal(err)
			}
			if ab != ba {
				t.Fatalf("duration not symmetric for %s and %s: %d != %d", a, b, ab, ba)
			}
		}
	}
}

func TestDurationInWeeksInvalidDate(t *testing.T) {
	if _, err := DurationInWeeks("not-a-date", "2024-01-01"); err == nil {
		t.Fatal("expected error for invalid start date")
	}
	if _, err := DurationInWeeks("2024-01-01", "01/02/2024"); err == nil {
		t.Fatal("expected error for invalid end date")
	}
}
