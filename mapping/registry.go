// Package mapping holds the static per-bank column layouts for booking and
// refund reconciliation files, and the bank name to bank code table.
package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/railpay/reconciliation-ingestion/tabular"
)

var (
	ErrUnknownMapping = errors.New("no mapping found for bank and record kind")
	ErrUnknownBank    = errors.New("no bank code found for bank")
)

// Canonical field names. Each semantic column has exactly one name across
// all banks; the rename tables below resolve bank-specific headers to these.
const (
	FieldTxnDate          = "txn_date"
	FieldRefundDate       = "refund_date"
	FieldIrctcOrderNo     = "irctc_order_no"
	FieldBankBookingRefNo = "bank_booking_ref_no"
	FieldBankRefundRefNo  = "bank_refund_ref_no"
	FieldBookingAmount    = "booking_amount"
	FieldRefundAmount     = "refund_amount"
	FieldCreditedDate     = "credited_date"
	FieldDebitedDate      = "debited_date"
)

// Entry describes one (bank, kind) file layout: the source columns that must
// be present, and the rename table from normalized source column name to
// canonical field name.
type Entry struct {
	Columns []string
	Rename  map[string]string
}

// MissingColumnsError reports every required column absent from a file,
// after normalization of both sides.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns in file: %s", strings.Join(e.Columns, ", "))
}

// Bank name to numeric code. Could move to the database once bank
// onboarding is self-service.
var bankCodes = map[string]int{
	"hdfc":        101,
	"icici":       102,
	"karur_vysya": 40,
}

var registry = map[string]map[string]Entry{
	"hdfc": {
		"booking": {
			Columns: []string{"IRCTC ORDER NO.", "BANK BOOKING REF.NO.", "BOOKING AMOUNT"},
			Rename: map[string]string{
				"IRCTCORDERNO":     FieldIrctcOrderNo,
				"BANKBOOKINGREFNO": FieldBankBookingRefNo,
				"BOOKINGAMOUNT":    FieldBookingAmount,
			},
		},
		"refund": {
			Columns: []string{"REFUND ORDER NO.", "REFUND AMOUNT", "CREDITED ON"},
			Rename: map[string]string{
				"REFUNDORDERNO": FieldIrctcOrderNo,
				"REFUNDAMOUNT":  FieldRefundAmount,
				"CREDITEDON":    FieldRefundDate,
			},
		},
	},
	"icici": {
		"booking": {
			Columns: []string{"ORDER NO.", "REFERENCE NO.", "AMOUNT"},
			Rename: map[string]string{
				"ORDERNO":     FieldIrctcOrderNo,
				"REFERENCENO": FieldBankBookingRefNo,
				"AMOUNT":      FieldBookingAmount,
			},
		},
		"refund": {
			Columns: []string{"ORDER NO.", "REFUND AMOUNT", "CREDIT DATE"},
			Rename: map[string]string{
				"ORDERNO":      FieldIrctcOrderNo,
				"REFUNDAMOUNT": FieldRefundAmount,
				"CREDITDATE":   FieldRefundDate,
			},
		},
	},
	"karur_vysya": {
		"booking": {
			Columns: []string{"TXN DATE", "IRCTC ORDER NO.", "BANK BOOKING REF.NO.", "BOOKING AMOUNT", "CREDITED ON"},
			Rename: map[string]string{
				"TXNDATE":          FieldTxnDate,
				"IRCTCORDERNO":     FieldIrctcOrderNo,
				"BANKBOOKINGREFNO": FieldBankBookingRefNo,
				"BOOKINGAMOUNT":    FieldBookingAmount,
				"CREDITEDON":       FieldCreditedDate,
			},
		},
		"refund": {
			Columns: []string{"REFUND DATE", "IRCTC ORDER NO.", "BANK BOOKING REF.NO.", "BANK REFUND REF.NO.", "REFUND AMOUNT", "DEBITED ON"},
			Rename: map[string]string{
				"REFUNDDATE":       FieldRefundDate,
				"IRCTCORDERNO":     FieldIrctcOrderNo,
				"BANKBOOKINGREFNO": FieldBankBookingRefNo,
				"BANKREFUNDREFNO":  FieldBankRefundRefNo,
				"REFUNDAMOUNT":     FieldRefundAmount,
				"DEBITEDON":        FieldDebitedDate,
			},
		},
	},
}

// Lookup returns the entry for (bank, kind) with its required columns
// already normalized. The returned entry is a copy; the registry itself is
// never mutated, so concurrent workers can share it.
func Lookup(bankName, recordKind string) (Entry, error) {
	kinds, ok := registry[strings.ToLower(bankName)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s/%s", ErrUnknownMapping, bankName, recordKind)
	}
	entry, ok := kinds[recordKind]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s/%s", ErrUnknownMapping, bankName, recordKind)
	}

	normalized := Entry{
		Columns: tabular.NormalizeColumns(entry.Columns),
		Rename:  entry.Rename,
	}
	return normalized, nil
}

// Validate checks that every required column is present among the file's
// normalized headers. The error lists every missing column, not just the
// first.
func (e Entry) Validate(normalizedHeaders []string) error {
	present := make(map[string]bool, len(normalizedHeaders))
	for _, header := range normalizedHeaders {
		present[header] = true
	}

	var missing []string
	for _, col := range e.Columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}

// BankCode resolves a bank name to its numeric code.
func BankCode(bankName string) (int, bool) {
	code, ok := bankCodes[strings.ToLower(bankName)]
	return code, ok
}
