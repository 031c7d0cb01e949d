package ingestion

import (
	"context"
	"log"

	"github.com/railpay/reconciliation-ingestion/consts"
)

func (u *ingestionUsecase) TryAcquireJob(ctx context.Context) (bool, int64, error) {
	jobs, err := u.dao.GetIngestionJobsByStatusList([]int{consts.StatusPending, consts.StatusRunning})
	if err != nil {
		return false, 0, err
	}

	for _, job := range jobs {
		if u.locker.IsProcessing(job.ID) {
			continue
		}

		u.locker.MarkAsProcessing(job.ID)
		log.Printf("[LOCK_JOB] job_id:%d", job.ID)
		return true, job.ID, nil
	}

	return false, 0, nil
}

func (u *ingestionUsecase) UnlockJob(ctx context.Context, jobID int64) {
	u.locker.Unlock(jobID)
	log.Printf("[UNLOCK_JOB] job_id:%d", jobID)
}
