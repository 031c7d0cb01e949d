package ingestion

import (
	"github.com/railpay/reconciliation-ingestion/infra/db/model"
)

func (u *ingestionUsecase) GetIngestionResult(jobID int64) (model.IngestionJob, error) {
	return u.dao.GetIngestionJobByID(jobID)
}

func (u *ingestionUsecase) GetIngestionJobs() ([]model.IngestionJob, error) {
	return u.dao.GetIngestionJobs()
}
