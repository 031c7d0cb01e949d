package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/railpay/reconciliation-ingestion/consts"
	"github.com/railpay/reconciliation-ingestion/entity"
)

func (h *IngestionHandler) SubmitFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req entity.SubmitFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	if err := validateSubmitFileRequest(req); err != nil {
		log.Println("Invalid input:", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	job, err := h.Usecase.SubmitFile(req.FilePath, req.BankName, req.RecordKind, req.Operator)
	if err != nil {
		log.Printf("failed to submit file: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to submit file for ingestion",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   job,
	})
}

func validateSubmitFileRequest(req entity.SubmitFileRequest) error {
	if req.FilePath == "" {
		return errors.New("file path is required")
	}
	if _, err := os.Stat(req.FilePath); os.IsNotExist(err) {
		return errors.New("file does not exist")
	}
	if strings.TrimSpace(req.BankName) == "" {
		return errors.New("bank name is required")
	}
	if req.RecordKind != consts.RecordKindBooking && req.RecordKind != consts.RecordKindRefund {
		return errors.New("record kind must be booking or refund")
	}
	if strings.TrimSpace(req.Operator) == "" {
		return errors.New("operator must be specified")
	}
	return nil
}
