package model

// IngestionJob is one file submitted for asynchronous ingestion. Cron
// workers poll this table and run the pipeline, one file per job.
type IngestionJob struct {
	ID         int64  `gorm:"primary_key;auto_increment" json:"id"`
	BankName   string `gorm:"size:50;not null" json:"bank_name"`
	RecordKind string `gorm:"size:20;not null" json:"record_kind"`
	FileName   string `gorm:"size:100;not null" json:"file_name"`
	FileUrl    string `gorm:"size:100;not null" json:"file_url"`
	Status     int    `gorm:"not null;index" json:"status"`
	Result     string `gorm:"type:text" json:"result"`
	CreateTime int64  `gorm:"not null" json:"create_time"`
	CreateBy   string `gorm:"size:100;not null" json:"create_by"`
	UpdateTime int64  `gorm:"not null" json:"update_time"`
	UpdateBy   string `gorm:"size:100;not null" json:"update_by"`
}
