package ingestion

import (
	"errors"

	"github.com/railpay/reconciliation-ingestion/infra/db/dao"
	"github.com/railpay/reconciliation-ingestion/infra/db/model"
	"github.com/railpay/reconciliation-ingestion/infra/locker"
)

var errJobNotFound = errors.New("job not found")

// fakeDao is an in-memory DaoMethod for pipeline tests. Setting
// conflictEveryInsert simulates a concurrent writer winning every insert
// race: the conditional insert reports "absorbed by unique constraint".
type fakeDao struct {
	bookings            []model.BookingRecord
	refunds             []model.RefundRecord
	jobs                map[int64]model.IngestionJob
	nextJobID           int64
	conflictEveryInsert bool
}

func newFakeDao() *fakeDao {
	return &fakeDao{jobs: make(map[int64]model.IngestionJob)}
}

func newTestUsecase(d dao.DaoMethod) *ingestionUsecase {
	return &ingestionUsecase{dao: d, locker: locker.New()}
}

func (f *fakeDao) BookingExists(irctcOrderNo, bankBookingRefNo int64) (bool, error) {
	for _, rec := range f.bookings {
		if rec.IrctcOrderNo == irctcOrderNo && rec.BankBookingRefNo == bankBookingRefNo {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDao) CreateBookingRecord(rec *model.BookingRecord) (bool, error) {
	if f.conflictEveryInsert {
		return false, nil
	}
	rec.ID = int64(len(f.bookings) + 1)
	f.bookings = append(f.bookings, *rec)
	return true, nil
}

func (f *fakeDao) GetBookingRecords(filter dao.RecordFilter) ([]model.BookingRecord, error) {
	var out []model.BookingRecord
	for _, rec := range f.bookings {
		if filter.BankCode != 0 && rec.BankCode != filter.BankCode {
			continue
		}
		if filter.IrctcOrderNo != 0 && rec.IrctcOrderNo != filter.IrctcOrderNo {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeDao) RefundExists(irctcOrderNo, bankBookingRefNo int64) (bool, error) {
	for _, rec := range f.refunds {
		if rec.IrctcOrderNo == irctcOrderNo && rec.BankBookingRefNo == bankBookingRefNo {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDao) CreateRefundRecord(rec *model.RefundRecord) (bool, error) {
	if f.conflictEveryInsert {
		return false, nil
	}
	rec.ID = int64(len(f.refunds) + 1)
	f.refunds = append(f.refunds, *rec)
	return true, nil
}

func (f *fakeDao) GetRefundRecords(filter dao.RecordFilter) ([]model.RefundRecord, error) {
	var out []model.RefundRecord
	for _, rec := range f.refunds {
		if filter.BankCode != 0 && rec.BankCode != filter.BankCode {
			continue
		}
		if filter.IrctcOrderNo != 0 && rec.IrctcOrderNo != filter.IrctcOrderNo {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeDao) CreateIngestionJob(job *model.IngestionJob) error {
	f.nextJobID++
	job.ID = f.nextJobID
	f.jobs[job.ID] = *job
	return nil
}

func (f *fakeDao) GetIngestionJobs() ([]model.IngestionJob, error) {
	var out []model.IngestionJob
	for _, job := range f.jobs {
		out = append(out, job)
	}
	return out, nil
}

func (f *fakeDao) GetIngestionJobByID(jobID int64) (model.IngestionJob, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return model.IngestionJob{}, errJobNotFound
	}
	return job, nil
}

func (f *fakeDao) GetIngestionJobsByStatusList(statusList []int) ([]model.IngestionJob, error) {
	var out []model.IngestionJob
	for _, job := range f.jobs {
		for _, status := range statusList {
			if job.Status == status {
				out = append(out, job)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeDao) UpdateIngestionJob(job model.IngestionJob) error {
	f.jobs[job.ID] = job
	return nil
}
