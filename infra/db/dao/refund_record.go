package dao

import (
	"fmt"

	"github.com/railpay/reconciliation-ingestion/infra/db/model"
)

func (d *dao) RefundExists(irctcOrderNo, bankBookingRefNo int64) (bool, error) {
	var count int
	if err := d.db.Model(&model.RefundRecord{}).
		Where("irctc_order_no = ? AND bank_booking_ref_no = ?", irctcOrderNo, bankBookingRefNo).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check refund record: %v", err)
	}
	return count > 0, nil
}

// CreateRefundRecord inserts conditionally, same contract as
// CreateBookingRecord.
func (d *dao) CreateRefundRecord(rec *model.RefundRecord) (bool, error) {
	result := d.db.Exec(`
		INSERT INTO refund_records
			(bank_code, refund_date, irctc_order_no, bank_booking_ref_no, bank_refund_ref_no, refund_amount, debited_date, cus_account_no, remarks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING`,
		rec.BankCode, rec.RefundDate, rec.IrctcOrderNo, rec.BankBookingRefNo, rec.BankRefundRefNo,
		rec.RefundAmount, rec.DebitedDate, rec.CusAccountNo, rec.Remarks)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create refund record: %v", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (d *dao) GetRefundRecords(filter RecordFilter) ([]model.RefundRecord, error) {
	query := d.db
	if filter.BankCode != 0 {
		query = query.Where("bank_code = ?", filter.BankCode)
	}
	if filter.IrctcOrderNo != 0 {
		query = query.Where("irctc_order_no = ?", filter.IrctcOrderNo)
	}

	var records []model.RefundRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch refund records: %v", err)
	}
	return records, nil
}
