package collectors

import (
	"fmt"

	"dynamo-insights/internal/shared/svcerrors"
)

const (
	codeInvalidSampleRate = "COL_1000"
)

// errInvalidSampleRate returns an error when the configured sample rate is outside [0, 1].
func errInvalidSampleRate(sampleRate float64) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSampleRate,
		fmt.Sprintf("sample rate must be between 0 and 1, got %v", sampleRate), nil)
}
