package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingRecord is one captured payment row from a bank booking report.
// Records are written once by the ingestion pipeline and never updated.
type BookingRecord struct {
	ID               int64               `gorm:"primary_key;auto_increment" json:"id"`
	BankCode         int                 `gorm:"not null;unique_index:uix_booking_natural" json:"bank_code"`
	TxnDate          *time.Time          `gorm:"type:date;unique_index:uix_booking_natural" json:"txn_date"`
	IrctcOrderNo     int64               `gorm:"unique_index:uix_booking_natural" json:"irctc_order_no"`
	BankBookingRefNo int64               `gorm:"unique_index:uix_booking_natural" json:"bank_booking_ref_no"`
	BookingAmount    decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"booking_amount"`
	CreditedDate     *time.Time          `gorm:"type:date;unique_index:uix_booking_natural" json:"credited_date"`
	CusAccountNo     string              `gorm:"size:25" json:"cus_account_no"`
	Remarks          string              `gorm:"size:25" json:"remarks"`
}
