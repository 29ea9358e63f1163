package http

import (
	"net/http"

	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/ingestors"
	"dynamo-insights/internal/models"
)

type ingestOperationsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestOperationsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestOperationsHandler{ingestionService: ingestionService}
}

// Handle processes POST /operations requests.
func (h *ingestOperationsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestOperations(r.Context(), contentType(r), r.Body)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusAccepted, result)
}

// ExportResponse is the body of GET /operations.
type ExportResponse struct {
	Operations []models.OperationRecord `json:"operations"`
}

// NewExportOperationsHandler serves GET /operations with a copy of the buffered records.
func NewExportOperationsHandler(collector collectors.Collector) AppHttpHandler {
	return AppHttpHandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		records := collector.Export()
		if records == nil {
			records = []models.OperationRecord{}
		}
		return writeJSON(w, http.StatusOK, ExportResponse{Operations: records})
	})
}

// NewResetOperationsHandler serves DELETE /operations.
func NewResetOperationsHandler(collector collectors.Collector) AppHttpHandler {
	return AppHttpHandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		collector.Reset()
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}
