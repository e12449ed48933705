package stay

import (
	"encoding/json"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2024-06-10", want: Date{2024, time.June, 10}},
		{input: "2024-02-29", want: Date{2024, time.February, 29}},
		{input: "2024-6-1", wantErr: true},
		{input: "10/06/2024", wantErr: true},
		{input: "", wantErr: true},
		{input: "2024-06-10T00:00:00Z", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDateStringRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-01-01", "2024-12-31", "2000-02-29"} {
		if got := mustDate(t, s).String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		n     int
		want  string
	}{
		{name: "forward within month", start: "2024-06-10", n: 4, want: "2024-06-14"},
		{name: "across month boundary", start: "2024-06-29", n: 3, want: "2024-07-02"},
		{name: "across year boundary", start: "2024-12-30", n: 5, want: "2025-01-04"},
		{name: "leap day", start: "2024-02-28", n: 1, want: "2024-02-29"},
		{name: "non-leap february", start: "2023-02-28", n: 1, want: "2023-03-01"},
		{name: "negative shift", start: "2024-03-01", n: -1, want: "2024-02-29"},
		{name: "zero", start: "2024-06-10", n: 0, want: "2024-06-10"},
		// DST transitions must not shift the calendar day
		{name: "spring forward", start: "2024-03-09", n: 1, want: "2024-03-10"},
		{name: "fall back", start: "2024-11-02", n: 1, want: "2024-11-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustDate(t, tt.start).AddDays(tt.n)
			if got.String() != tt.want {
				t.Errorf("%s.AddDays(%d) = %s, want %s", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    int
		wantErr bool
	}{
		{name: "one night", a: "2024-06-10", b: "2024-06-11", want: 1},
		{name: "two nights", a: "2024-06-10", b: "2024-06-12", want: 2},
		{name: "across leap day", a: "2024-02-28", b: "2024-03-01", want: 2},
		{name: "across year", a: "2024-12-30", b: "2025-01-02", want: 3},
		{name: "equal dates rejected", a: "2024-06-10", b: "2024-06-10", wantErr: true},
		{name: "inverted rejected", a: "2024-06-12", b: "2024-06-10", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysBetween(mustDate(t, tt.a), mustDate(t, tt.b))
			if tt.wantErr {
				if err != ErrInvalidRange {
					t.Fatalf("DaysBetween(%s, %s): expected ErrInvalidRange, got %v", tt.a, tt.b, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DaysBetween(%s, %s): %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got < 1 {
				t.Errorf("DaysBetween must be at least 1 for a valid range, got %d", got)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{name: "disjoint before", aStart: "2024-06-01", aEnd: "2024-06-05", bStart: "2024-06-10", bEnd: "2024-06-12", want: false},
		{name: "back to back half open", aStart: "2024-06-10", aEnd: "2024-06-12", bStart: "2024-06-12", bEnd: "2024-06-14", want: false},
		{name: "partial overlap", aStart: "2024-06-10", aEnd: "2024-06-12", bStart: "2024-06-11", bEnd: "2024-06-13", want: true},
		{name: "contained", aStart: "2024-06-10", aEnd: "2024-06-20", bStart: "2024-06-12", bEnd: "2024-06-14", want: true},
		{name: "identical", aStart: "2024-06-10", aEnd: "2024-06-12", bStart: "2024-06-10", bEnd: "2024-06-12", want: true},
		{name: "single shared night", aStart: "2024-06-10", aEnd: "2024-06-12", bStart: "2024-06-11", bEnd: "2024-06-12", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aStart, aEnd := mustDate(t, tt.aStart), mustDate(t, tt.aEnd)
			bStart, bEnd := mustDate(t, tt.bStart), mustDate(t, tt.bEnd)

			if got := Overlaps(aStart, aEnd, bStart, bEnd); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// symmetry
			if got, swapped := Overlaps(aStart, aEnd, bStart, bEnd), Overlaps(bStart, bEnd, aStart, aEnd); got != swapped {
				t.Errorf("Overlaps is not symmetric: %v vs %v", got, swapped)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := mustDate(t, "2024-06-10")
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-06-10"` {
		t.Fatalf("marshal = %s, want %q", raw, "2024-06-10")
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Fatalf("round trip = %v, want %v", back, d)
	}

	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !zero.IsZero() {
		t.Fatalf("empty string should decode to zero date, got %v", zero)
	}

	if err := json.Unmarshal([]byte(`"06/10/2024"`), &back); err == nil {
		t.Fatal("locale-style date must be rejected")
	}
}

func TestDateOfStripsTime(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 23:30 local on the eve of a DST switch still belongs to that day
	ts := time.Date(2024, time.March, 9, 23, 30, 0, 0, loc)
	if got := DateOf(ts).String(); got != "2024-03-09" {
		t.Errorf("DateOf = %s, want 2024-03-09", got)
	}
}
