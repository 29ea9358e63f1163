package detectors

import (
	"time"

	"dynamo-insights/internal/models"
)

// Input is the read-only view every detector works from: a point-in-time snapshot of the
// telemetry buffer and the reference time used for age comparisons.
type Input struct {
	Records []models.OperationRecord
	Now     time.Time
}

// Detector inspects a snapshot and returns zero or more recommendations. A detector must not
// modify its input and must tolerate records lacking the optional fields it needs.
type Detector interface {
	Name() string
	Detect(in *Input) []models.Recommendation
}

type detectorFunc struct {
	name   string
	detect func(in *Input) []models.Recommendation
}

// New adapts a plain function into a Detector.
func New(name string, detect func(in *Input) []models.Recommendation) Detector {
	return &detectorFunc{name: name, detect: detect}
}

func (d *detectorFunc) Name() string {
	return d.name
}

func (d *detectorFunc) Detect(in *Input) []models.Recommendation {
	return d.detect(in)
}
