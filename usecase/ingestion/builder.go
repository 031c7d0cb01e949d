package ingestion

import (
	"context"

	"github.com/railpay/reconciliation-ingestion/infra/db/dao"
	"github.com/railpay/reconciliation-ingestion/infra/db/model"
	"github.com/railpay/reconciliation-ingestion/infra/locker"

	"github.com/jinzhu/gorm"
)

type IngestionUsecase interface {
	SubmitFile(filePath, bankName, recordKind, operator string) (*model.IngestionJob, error)
	GetIngestionResult(jobID int64) (model.IngestionJob, error)
	GetIngestionJobs() ([]model.IngestionJob, error)
	ProcessUploadedFile(ctx context.Context, fileContent []byte, fileName, bankName, recordKind string) string
	ProcessIngestionJob(ctx context.Context, jobID int64) error
	TryAcquireJob(ctx context.Context) (bool, int64, error)
	UnlockJob(ctx context.Context, jobID int64)
}

type ingestionUsecase struct {
	dao    dao.DaoMethod
	locker *locker.Locker
}

func NewIngestionUsecase(db *gorm.DB, lk *locker.Locker) IngestionUsecase {
	return &ingestionUsecase{
		dao:    dao.NewDaoMethod(db),
		locker: lk,
	}
}
