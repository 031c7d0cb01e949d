package dao

import (
	"fmt"

	"github.com/railpay/reconciliation-ingestion/infra/db/model"
)

func (d *dao) CreateIngestionJob(job *model.IngestionJob) error {
	if err := d.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create ingestion job: %v", err)
	}
	return nil
}

func (d *dao) GetIngestionJobs() ([]model.IngestionJob, error) {
	var jobs []model.IngestionJob
	if err := d.db.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (d *dao) GetIngestionJobByID(jobID int64) (model.IngestionJob, error) {
	var job model.IngestionJob
	if err := d.db.First(&job, jobID).Error; err != nil {
		return job, fmt.Errorf("job not found: %w", err)
	}
	return job, nil
}

func (d *dao) GetIngestionJobsByStatusList(statusList []int) ([]model.IngestionJob, error) {
	var jobs []model.IngestionJob
	if err := d.db.
		Select("id").
		Where("status IN (?)", statusList).
		Order("create_time ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (d *dao) UpdateIngestionJob(job model.IngestionJob) error {
	if err := d.db.Save(&job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}
