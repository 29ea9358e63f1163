package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/clock"
	"dynamo-insights/internal/shared/loggers"
	"dynamo-insights/internal/shared/metrics"
	"dynamo-insights/internal/shared/svcerrors"
	"dynamo-insights/internal/shared/ulid"
	"dynamo-insights/internal/shared/validators"
	"dynamo-insights/internal/streams"
)

const (
	maxBatchBytes = 2 * 1024 * 1024
)

const (
	FormatJSON = "json"
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID       string `json:"batchId"`
	AcceptedCount int    `json:"acceptedCount"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestOperations validates a JSON array of operation records and queues them for the
	// collector. A batch is accepted or rejected as a whole. A record without a timestamp is
	// stamped with the ingestion time; an explicit 0 is kept.
	IngestOperations(ctx context.Context, contentType string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	producer  streams.OperationRecordProducer
	validator *validators.Validate
	clock     clock.Clock
}

func NewIngestionService(producer streams.OperationRecordProducer, clk clock.Clock) IngestionService {
	return &ingestionService{
		producer:  producer,
		validator: validators.NewJSON(),
		clock:     clk,
	}
}

func (s *ingestionService) IngestOperations(ctx context.Context, contentType string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting operations with content type: %s", contentType)

	records, err := s.readOperationBatch(contentType, r)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	batchID := ulid.NewULIDAt(s.clock.Now())
	if err := s.producer.Produce(ctx, batchID, records); err != nil {
		svcErr := errInternalOperationProducerFailed(err)
		metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	for i := range records {
		metricRecordsIngestedTotal.WithLabelValues(string(records[i].Operation)).Inc()
	}
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricBatchSizeRecords.WithLabelValues().Observe(float64(len(records)))
	logger.Debug().
		Int(loggers.FieldRecordCount, len(records)).
		Msgf("ingested operation batch %s", batchID)

	return &IngestResult{BatchID: batchID, AcceptedCount: len(records)}, nil
}

func (s *ingestionService) readOperationBatch(contentType string, r io.Reader) ([]models.OperationRecord, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	if !strings.Contains(strings.ToLower(contentType), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", contentType), nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxBatchBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxBatchBytes {
		return nil, errValidationFailed("batch too large: must be <= 2MB", nil)
	}

	var payload []operationRecordPayload
	if err := json.Unmarshal(buf, &payload); err != nil {
		return nil, errValidationFailed("invalid json: expected an array of operation records", err)
	}
	if len(payload) == 0 {
		return nil, errValidationFailed("operation records cannot be empty", nil)
	}

	now := s.clock.Now().UnixMilli()
	records := make([]models.OperationRecord, len(payload))
	for i := range payload {
		records[i] = payload[i].OperationRecord
		records[i].Timestamp = now
		if payload[i].Timestamp != nil {
			records[i].Timestamp = *payload[i].Timestamp
		}
		if err := s.validator.Struct(&records[i]); err != nil {
			return nil, errValidationFailed(fmt.Sprintf("item at index %d: %s", i, formatValidationError(err)), err)
		}
	}
	return records, nil
}

// operationRecordPayload is the wire form of a record. An absent timestamp defaults to the
// ingestion time, while an explicit 0 is kept as the epoch.
type operationRecordPayload struct {
	models.OperationRecord
	Timestamp *int64 `json:"timestamp"`
}

// formatValidationError renders the first failing field as "field (tag=param)".
func formatValidationError(err error) string {
	var validationErrs validators.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	fe := validationErrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
}
