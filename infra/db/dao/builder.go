package dao

import (
	"github.com/railpay/reconciliation-ingestion/infra/db/model"

	"github.com/jinzhu/gorm"
)

// RecordFilter narrows record reads; zero values mean "no filter".
type RecordFilter struct {
	BankCode     int
	IrctcOrderNo int64
}

type DaoMethod interface {
	BookingExists(irctcOrderNo, bankBookingRefNo int64) (bool, error)
	CreateBookingRecord(rec *model.BookingRecord) (bool, error)
	GetBookingRecords(filter RecordFilter) ([]model.BookingRecord, error)

	RefundExists(irctcOrderNo, bankBookingRefNo int64) (bool, error)
	CreateRefundRecord(rec *model.RefundRecord) (bool, error)
	GetRefundRecords(filter RecordFilter) ([]model.RefundRecord, error)

	CreateIngestionJob(job *model.IngestionJob) error
	GetIngestionJobs() ([]model.IngestionJob, error)
	GetIngestionJobByID(jobID int64) (model.IngestionJob, error)
	GetIngestionJobsByStatusList(statusList []int) ([]model.IngestionJob, error)
	UpdateIngestionJob(job model.IngestionJob) error
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
