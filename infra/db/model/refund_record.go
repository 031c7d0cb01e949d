package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundRecord is one reversal row from a bank refund report.
type RefundRecord struct {
	ID               int64               `gorm:"primary_key;auto_increment" json:"id"`
	BankCode         int                 `gorm:"not null;unique_index:uix_refund_natural" json:"bank_code"`
	RefundDate       *time.Time          `gorm:"type:date;unique_index:uix_refund_natural" json:"refund_date"`
	IrctcOrderNo     int64               `gorm:"unique_index:uix_refund_natural" json:"irctc_order_no"`
	BankBookingRefNo int64               `gorm:"unique_index:uix_refund_natural" json:"bank_booking_ref_no"`
	BankRefundRefNo  int64               `gorm:"unique_index:uix_refund_natural" json:"bank_refund_ref_no"`
	RefundAmount     decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"refund_amount"`
	DebitedDate      *time.Time          `gorm:"type:date;unique_index:uix_refund_natural" json:"debited_date"`
	CusAccountNo     string              `gorm:"size:25" json:"cus_account_no"`
	Remarks          string              `gorm:"size:25" json:"remarks"`
}
