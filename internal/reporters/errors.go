package reporters

import (
	"fmt"

	"dynamo-insights/internal/shared/svcerrors"
)

// DiagnosticsReporter errors
const (
	codeInternalReportStoreFailed     = "RPT_9000"
	codeInternalReportPublisherFailed = "RPT_9001"
)

func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

func errInternalReportPublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportPublisherFailed, fmt.Errorf("reportPublisherFailed: %w", cause))
}
