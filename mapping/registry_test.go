package mapping

import (
	"errors"
	"reflect"
	"testing"
)

func TestLookupNormalizesColumns(t *testing.T) {
	entry, err := Lookup("karur_vysya", "booking")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	want := []string{"TXNDATE", "IRCTCORDERNO", "BANKBOOKINGREFNO", "BOOKINGAMOUNT", "CREDITEDON"}
	if !reflect.DeepEqual(entry.Columns, want) {
		t.Errorf("Columns = %v, want %v", entry.Columns, want)
	}
}

func TestLookupDoesNotMutateRegistry(t *testing.T) {
	first, err := Lookup("hdfc", "booking")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	first.Columns[0] = "TAMPERED"

	second, err := Lookup("hdfc", "booking")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if second.Columns[0] != "IRCTCORDERNO" {
		t.Errorf("registry mutated through a Lookup copy: %v", second.Columns)
	}
}

func TestLookupCaseInsensitiveBank(t *testing.T) {
	if _, err := Lookup("KARUR_VYSYA", "refund"); err != nil {
		t.Errorf("Lookup with upper-case bank: %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	tests := []struct {
		name string
		bank string
		kind string
	}{
		{name: "unknown bank", bank: "unknown_bank", kind: "booking"},
		{name: "unknown kind", bank: "hdfc", kind: "chargeback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lookup(tt.bank, tt.kind)
			if !errors.Is(err, ErrUnknownMapping) {
				t.Errorf("err = %v, want ErrUnknownMapping", err)
			}
		})
	}
}

func TestValidateReportsEveryMissingColumn(t *testing.T) {
	entry, err := Lookup("karur_vysya", "booking")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	err = entry.Validate([]string{"TXNDATE", "BOOKINGAMOUNT"})
	var missingErr *MissingColumnsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("err = %v, want MissingColumnsError", err)
	}

	want := []string{"IRCTCORDERNO", "BANKBOOKINGREFNO", "CREDITEDON"}
	if !reflect.DeepEqual(missingErr.Columns, want) {
		t.Errorf("missing = %v, want %v", missingErr.Columns, want)
	}
}

func TestValidateSupersetPasses(t *testing.T) {
	entry, err := Lookup("icici", "booking")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	headers := []string{"ORDERNO", "REFERENCENO", "AMOUNT", "BRANCHCODE", "EXTRA"}
	if err := entry.Validate(headers); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBankCode(t *testing.T) {
	tests := []struct {
		bank string
		want int
		ok   bool
	}{
		{bank: "hdfc", want: 101, ok: true},
		{bank: "icici", want: 102, ok: true},
		{bank: "karur_vysya", want: 40, ok: true},
		{bank: "unknown_bank", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.bank, func(t *testing.T) {
			code, ok := BankCode(tt.bank)
			if code != tt.want || ok != tt.ok {
				t.Errorf("BankCode(%q) = (%d, %v), want (%d, %v)", tt.bank, code, ok, tt.want, tt.ok)
			}
		})
	}
}
