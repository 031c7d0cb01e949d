package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/railpay/reconciliation-ingestion/consts"
	"github.com/railpay/reconciliation-ingestion/infra/db/model"
)

// SubmitFile stages the file and registers a pending ingestion job for the
// cron workers to pick up.
func (u *ingestionUsecase) SubmitFile(filePath, bankName, recordKind, operator string) (*model.IngestionJob, error) {
	timeNowUnix := time.Now().Unix()

	fileURL, err := u.uploadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %v", err)
	}

	job := &model.IngestionJob{
		BankName:   strings.ToLower(bankName),
		RecordKind: recordKind,
		FileName:   filepath.Base(filePath),
		FileUrl:    fileURL,
		Status:     consts.StatusPending,
		Result:     "",
		CreateTime: timeNowUnix,
		CreateBy:   operator,
		UpdateTime: timeNowUnix,
		UpdateBy:   operator,
	}

	if err := u.dao.CreateIngestionJob(job); err != nil {
		return nil, fmt.Errorf("failed to create ingestion job: %v", err)
	}

	return job, nil
}

// NOTES: this is the simulation version of object storage, later we can
// implement an object storage uploader in production.
func (u *ingestionUsecase) uploadFile(filePath string) (string, error) {
	input, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	fileName := filepath.Base(filePath)
	destPath := filepath.Join(consts.UploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), fileName))

	if err := os.WriteFile(destPath, input, 0644); err != nil {
		return "", err
	}

	return destPath, nil
}
