package dao

import (
	"fmt"

	"github.com/railpay/reconciliation-ingestion/infra/db/model"
)

func (d *dao) BookingExists(irctcOrderNo, bankBookingRefNo int64) (bool, error) {
	var count int
	if err := d.db.Model(&model.BookingRecord{}).
		Where("irctc_order_no = ? AND bank_booking_ref_no = ?", irctcOrderNo, bankBookingRefNo).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check booking record: %v", err)
	}
	return count > 0, nil
}

// CreateBookingRecord inserts conditionally: a row absorbed by the natural
// unique index (a concurrent duplicate) reports false instead of an error.
func (d *dao) CreateBookingRecord(rec *model.BookingRecord) (bool, error) {
	result := d.db.Exec(`
		INSERT INTO booking_records
			(bank_code, txn_date, irctc_order_no, bank_booking_ref_no, booking_amount, credited_date, cus_account_no, remarks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING`,
		rec.BankCode, rec.TxnDate, rec.IrctcOrderNo, rec.BankBookingRefNo,
		rec.BookingAmount, rec.CreditedDate, rec.CusAccountNo, rec.Remarks)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create booking record: %v", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (d *dao) GetBookingRecords(filter RecordFilter) ([]model.BookingRecord, error) {
	query := d.db
	if filter.BankCode != 0 {
		query = query.Where("bank_code = ?", filter.BankCode)
	}
	if filter.IrctcOrderNo != 0 {
		query = query.Where("irctc_order_no = ?", filter.IrctcOrderNo)
	}

	var records []model.BookingRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch booking records: %v", err)
	}
	return records, nil
}
