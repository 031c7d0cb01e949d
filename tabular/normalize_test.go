package tabular

import "testing"

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "punctuation and spaces stripped",
			input: "IRCTC ORDER NO.",
			want:  "IRCTCORDERNO",
		},
		{
			name:  "already normalized",
			input: "IRCTCORDERNO",
			want:  "IRCTCORDERNO",
		},
		{
			name:  "dots and slashes",
			input: "BANK BOOKING REF.NO.",
			want:  "BANKBOOKINGREFNO",
		},
		{
			name:  "leading and trailing whitespace",
			input: "  TXN DATE  ",
			want:  "TXNDATE",
		},
		{
			name:  "underscore removed",
			input: "txn_date",
			want:  "txndate",
		},
		{
			name:  "digits kept",
			input: "COL 2",
			want:  "COL2",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeColumn(tt.input); got != tt.want {
				t.Errorf("NormalizeColumn(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeColumnIdempotent(t *testing.T) {
	inputs := []string{"IRCTC ORDER NO.", "BOOKING AMOUNT", "  CREDITED ON "}
	for _, input := range inputs {
		once := NormalizeColumn(input)
		twice := NormalizeColumn(once)
		if once != twice {
			t.Errorf("NormalizeColumn not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeColumnsDoesNotMutateInput(t *testing.T) {
	input := []string{"TXN DATE", "IRCTC ORDER NO."}
	got := NormalizeColumns(input)

	if input[0] != "TXN DATE" || input[1] != "IRCTC ORDER NO." {
		t.Errorf("NormalizeColumns mutated its input: %v", input)
	}
	if got[0] != "TXNDATE" || got[1] != "IRCTCORDERNO" {
		t.Errorf("NormalizeColumns = %v", got)
	}
}
