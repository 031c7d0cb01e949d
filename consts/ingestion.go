package consts

const (
	// Record kinds
	RecordKindBooking = "booking"
	RecordKindRefund  = "refund"

	// Ingestion job status codes
	StatusPending  = 1
	StatusRunning  = 2
	StatusFinished = 3
	StatusFailed   = 4

	// Default config
	DefaultWorkerNumber  = 1
	DefaultIntervalInSec = 2

	UploadDir = "uploads"
)
