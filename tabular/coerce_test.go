package tabular

import (
	"testing"
	"time"
)

func TestParseDateExplicitFormats(t *testing.T) {
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "DD-Mon-YY", input: "01-Jan-24"},
		{name: "YYYY-MM-DD", input: "2024-01-01"},
		{name: "DD/MM/YYYY", input: "01/01/2024"},
		{name: "DD-MM-YYYY", input: "01-01-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if got == nil {
				t.Fatalf("ParseDate(%q) = nil, want %s", tt.input, want.Format("2006-01-02"))
			}
			if !got.Equal(want) {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got.Format("2006-01-02"), want.Format("2006-01-02"))
			}
		})
	}
}

func TestParseDateDayFirstWins(t *testing.T) {
	// 05/01/2024 is ambiguous; the DD/MM layout is tried before MM/DD.
	got := ParseDate("05/01/2024")
	if got == nil {
		t.Fatal("ParseDate returned nil")
	}
	want := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate(\"05/01/2024\") = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestParseDateMissing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "garbage", input: "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDate(tt.input); got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tt.input, got)
			}
		})
	}
}

func TestParseDateFallback(t *testing.T) {
	got := ParseDate("2024-01-01 10:30:00")
	if got == nil {
		t.Fatal("ParseDate fallback returned nil")
	}
	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 1 {
		t.Errorf("ParseDate fallback = %v", got)
	}
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "plain", input: "12345", want: 12345},
		{name: "large", input: "9223372036854775807", want: 9223372036854775807},
		{name: "padded", input: " 67890 ", want: 67890},
		{name: "empty to zero", input: "", want: 0},
		{name: "whitespace to zero", input: "  ", want: 0},
		{name: "non-numeric to zero", input: "N/A", want: 0},
		{name: "decimal to zero", input: "12.5", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRef(tt.input); got != tt.want {
				t.Errorf("ParseRef(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	got := ParseAmount("1500.50")
	if !got.Valid {
		t.Fatal("ParseAmount(\"1500.50\") not valid")
	}
	if got.Decimal.String() != "1500.5" {
		t.Errorf("ParseAmount(\"1500.50\") = %s", got.Decimal.String())
	}

	for _, input := range []string{"", "   ", "abc"} {
		if got := ParseAmount(input); got.Valid {
			t.Errorf("ParseAmount(%q) valid, want missing", input)
		}
	}
}
