package handler

import (
	usecase "github.com/railpay/reconciliation-ingestion/usecase/ingestion"
)

type IngestionHandler struct {
	Usecase usecase.IngestionUsecase
}

func NewIngestionHandler(uc usecase.IngestionUsecase) *IngestionHandler {
	return &IngestionHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
