package ingestion

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/railpay/reconciliation-ingestion/consts"
	"github.com/railpay/reconciliation-ingestion/infra/db/model"
	"github.com/railpay/reconciliation-ingestion/mapping"
	"github.com/railpay/reconciliation-ingestion/tabular"
)

// ProcessUploadedFile runs the whole ingestion pipeline for one file and
// returns a human-readable status string. Every failure mode (unsupported
// format, unknown mapping, missing columns, unknown bank, persistence) is
// string-encoded into the result; nothing escapes to the caller.
func (u *ingestionUsecase) ProcessUploadedFile(ctx context.Context, fileContent []byte, fileName, bankName, recordKind string) (status string) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Ingest] Panic recovered for file %s: %v", fileName, r)
			status = failureStatus(fileName, fmt.Errorf("panic: %v", r))
		}
	}()

	log.Infof("[Ingest] Starting to process file: %s for bank: %s, record kind: %s", fileName, bankName, recordKind)

	if err := u.ingestFile(fileContent, fileName, bankName, recordKind); err != nil {
		log.Errorf("[Ingest] Error while processing file %s: %v", fileName, err)
		return failureStatus(fileName, err)
	}

	log.Infof("[Ingest] Finished processing file: %s", fileName)
	return fmt.Sprintf("Successfully processed %s", fileName)
}

func failureStatus(fileName string, err error) string {
	return fmt.Sprintf("Failed to process %s: %s", fileName, err.Error())
}

func (u *ingestionUsecase) ingestFile(fileContent []byte, fileName, bankName, recordKind string) error {
	table, err := tabular.Load(fileContent, fileName)
	if err != nil {
		return err
	}
	log.Infof("[Ingest] Loaded %s: %d rows, columns: %v", fileName, len(table.Rows), table.Columns)

	entry, err := mapping.Lookup(bankName, recordKind)
	if err != nil {
		return err
	}

	headers := tabular.NormalizeColumns(table.Columns)
	if err := entry.Validate(headers); err != nil {
		return err
	}

	bankCode, ok := mapping.BankCode(bankName)
	if !ok {
		return fmt.Errorf("%w: %s", mapping.ErrUnknownBank, bankName)
	}

	rows := selectCanonical(table, entry)

	if recordKind == consts.RecordKindRefund {
		return u.ingestRefunds(rows, bankCode, fileName)
	}
	return u.ingestBookings(rows, bankCode, fileName)
}

// selectCanonical keeps only mapped columns and rekeys every row by
// canonical field name, resolving raw headers through normalization.
func selectCanonical(table *tabular.Table, entry mapping.Entry) []map[string]string {
	canonicalByRaw := make(map[string]string, len(table.Columns))
	for _, raw := range table.Columns {
		if field, ok := entry.Rename[tabular.NormalizeColumn(raw)]; ok {
			canonicalByRaw[raw] = field
		}
	}

	rows := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		selected := make(map[string]string, len(canonicalByRaw))
		for raw, field := range canonicalByRaw {
			selected[field] = row[raw]
		}
		rows = append(rows, selected)
	}
	return rows
}

func (u *ingestionUsecase) ingestBookings(rows []map[string]string, bankCode int, fileName string) error {
	records := make([]*model.BookingRecord, 0, len(rows))
	invalidDates := 0
	for _, row := range rows {
		txnDate := tabular.ParseDate(row[mapping.FieldTxnDate])
		creditedDate := tabular.ParseDate(row[mapping.FieldCreditedDate])
		if txnDate == nil || creditedDate == nil {
			invalidDates++
		}

		records = append(records, &model.BookingRecord{
			BankCode:         bankCode,
			TxnDate:          txnDate,
			IrctcOrderNo:     tabular.ParseRef(row[mapping.FieldIrctcOrderNo]),
			BankBookingRefNo: tabular.ParseRef(row[mapping.FieldBankBookingRefNo]),
			BookingAmount:    tabular.ParseAmount(row[mapping.FieldBookingAmount]),
			CreditedDate:     creditedDate,
		})
	}
	if invalidDates > 0 {
		log.Warnf("[Ingest] %d rows with missing or invalid dates in booking file %s", invalidDates, fileName)
	}

	for _, rec := range records {
		exists, err := u.dao.BookingExists(rec.IrctcOrderNo, rec.BankBookingRefNo)
		if err != nil {
			return err
		}
		if exists {
			log.Infof("[Ingest] Duplicate booking found for IRCTC order no %d. Skipping...", rec.IrctcOrderNo)
			continue
		}

		inserted, err := u.dao.CreateBookingRecord(rec)
		if err != nil {
			return err
		}
		if !inserted {
			log.Infof("[Ingest] Booking for IRCTC order no %d inserted concurrently. Skipping...", rec.IrctcOrderNo)
			continue
		}
		log.Infof("[Ingest] Booking data saved for IRCTC order no %d.", rec.IrctcOrderNo)
	}
	return nil
}

func (u *ingestionUsecase) ingestRefunds(rows []map[string]string, bankCode int, fileName string) error {
	records := make([]*model.RefundRecord, 0, len(rows))
	invalidDates := 0
	for _, row := range rows {
		refundDate := tabular.ParseDate(row[mapping.FieldRefundDate])
		debitedDate := tabular.ParseDate(row[mapping.FieldDebitedDate])
		if refundDate == nil || debitedDate == nil {
			invalidDates++
		}

		records = append(records, &model.RefundRecord{
			BankCode:         bankCode,
			RefundDate:       refundDate,
			IrctcOrderNo:     tabular.ParseRef(row[mapping.FieldIrctcOrderNo]),
			BankBookingRefNo: tabular.ParseRef(row[mapping.FieldBankBookingRefNo]),
			BankRefundRefNo:  tabular.ParseRef(row[mapping.FieldBankRefundRefNo]),
			RefundAmount:     tabular.ParseAmount(row[mapping.FieldRefundAmount]),
			DebitedDate:      debitedDate,
		})
	}
	if invalidDates > 0 {
		log.Warnf("[Ingest] %d rows with missing or invalid dates in refund file %s", invalidDates, fileName)
	}

	for _, rec := range records {
		exists, err := u.dao.RefundExists(rec.IrctcOrderNo, rec.BankBookingRefNo)
		if err != nil {
			return err
		}
		if exists {
			log.Infof("[Ingest] Duplicate refund found for IRCTC order no %d. Skipping...", rec.IrctcOrderNo)
			continue
		}

		inserted, err := u.dao.CreateRefundRecord(rec)
		if err != nil {
			return err
		}
		if !inserted {
			log.Infof("[Ingest] Refund for IRCTC order no %d inserted concurrently. Skipping...", rec.IrctcOrderNo)
			continue
		}
		log.Infof("[Ingest] Refund data saved for IRCTC order no %d.", rec.IrctcOrderNo)
	}
	return nil
}
