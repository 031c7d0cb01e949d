package entity

type SubmitFileRequest struct {
	FilePath   string `json:"file_path"`
	BankName   string `json:"bank_name"`
	RecordKind string `json:"record_kind"`
	Operator   string `json:"operator"`
}
