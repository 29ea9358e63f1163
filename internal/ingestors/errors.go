package ingestors

import (
	"fmt"

	"dynamo-insights/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"

	codeInternalOperationProducerFailed = "ING_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalOperationProducerFailed returns an error when records cannot be handed to the stream.
func errInternalOperationProducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOperationProducerFailed, fmt.Errorf("operationProducerFailed: %w", cause))
}
