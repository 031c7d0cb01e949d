package controllers

import (
	"github.com/railpay/reconciliation-ingestion/handler"

	"github.com/gorilla/mux"
)

func RegisterIngestionRoutes(router *mux.Router, h *handler.IngestionHandler) {
	router.HandleFunc("/submit_file", h.SubmitFile).Methods("POST")
	router.HandleFunc("/get_result", h.GetResult).Methods("GET")
	router.HandleFunc("/list_jobs", h.ListJobs).Methods("GET")
}
