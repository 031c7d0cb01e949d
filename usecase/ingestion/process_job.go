package ingestion

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/railpay/reconciliation-ingestion/consts"
	"github.com/railpay/reconciliation-ingestion/infra/db/model"
)

// ProcessIngestionJob is the worker entry point: it fetches the job, reads
// the staged file and runs the pipeline, then stores the status string on
// the job row.
func (u *ingestionUsecase) ProcessIngestionJob(ctx context.Context, jobID int64) error {
	log.Infof("[IngestJob] Starting job for JobID: %d", jobID)

	job, err := u.dao.GetIngestionJobByID(jobID)
	if err != nil {
		log.Errorf("[IngestJob] Could not fetch ingestion job %d: %v", jobID, err)
		return err
	}

	if err := u.markJob(job, consts.StatusRunning, ""); err != nil {
		return err
	}

	fileContent, err := os.ReadFile(job.FileUrl)
	if err != nil {
		log.Errorf("[IngestJob] Could not read staged file for job %d: %v", jobID, err)
		result := fmt.Sprintf("Failed to process %s: %s", job.FileName, err.Error())
		if updateErr := u.markJob(job, consts.StatusFailed, result); updateErr != nil {
			return updateErr
		}
		return err
	}

	result := u.ProcessUploadedFile(ctx, fileContent, job.FileName, job.BankName, job.RecordKind)

	status := consts.StatusFinished
	if strings.HasPrefix(result, "Failed") {
		status = consts.StatusFailed
	}
	if err := u.markJob(job, status, result); err != nil {
		log.Errorf("[IngestJob] Failed to update job %d: %v", jobID, err)
		return err
	}

	log.Infof("[IngestJob] Job completed for JobID %d", jobID)
	return nil
}

func (u *ingestionUsecase) markJob(job model.IngestionJob, status int, result string) error {
	job.Status = status
	if result != "" {
		job.Result = result
	}
	job.UpdateTime = time.Now().Unix()
	job.UpdateBy = "system"

	if err := u.dao.UpdateIngestionJob(job); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}
