package collectors

import (
	"math/rand/v2"
	"sync"

	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/loggers"
)

const (
	DefaultSampleRate     = 1.0
	DefaultSlowQueryMs    = 1000
	DefaultHighReadUnits  = 100
	DefaultHighWriteUnits = 100
)

// Thresholds mark a single operation as slow or expensive.
type Thresholds struct {
	SlowQueryMs    float64 `json:"slowQueryMs"`
	HighReadUnits  float64 `json:"highReadUnits"`
	HighWriteUnits float64 `json:"highWriteUnits"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SlowQueryMs:    DefaultSlowQueryMs,
		HighReadUnits:  DefaultHighReadUnits,
		HighWriteUnits: DefaultHighWriteUnits,
	}
}

// Options configures a Collector.
type Options struct {
	Enabled    bool
	SampleRate float64
	Thresholds Thresholds
}

func DefaultOptions() Options {
	return Options{
		Enabled:    true,
		SampleRate: DefaultSampleRate,
		Thresholds: DefaultThresholds(),
	}
}

// Collector buffers sampled operation telemetry in memory.
//
// Record is safe for concurrent use. Snapshot and Export copy the buffer under the same lock,
// so readers never observe a partially appended record.
//
//go:generate mockgen -source=collector.go -destination=./mocks/collector_mock.go -package=mocks
type Collector interface {
	// Record retains r subject to the enabled flag and the sample rate. It never fails.
	Record(r models.OperationRecord)
	// Snapshot returns the retained records in insertion order. Records must not be modified.
	Snapshot() []models.OperationRecord
	// Export returns a deep copy of the retained records.
	Export() []models.OperationRecord
	// Reset drops every retained record.
	Reset()
	IsEnabled() bool
	Thresholds() Thresholds
}

type collector struct {
	enabled    bool
	sampleRate float64
	thresholds Thresholds
	random     func() float64
	logger     loggers.Logger

	mu      sync.Mutex
	records []models.OperationRecord
}

// NewCollector returns a Collector, or an invalid argument error when the sample rate is
// outside [0, 1].
func NewCollector(options Options, logger loggers.Logger) (Collector, error) {
	c, err := newCollector(options, logger, rand.Float64)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newCollector(options Options, logger loggers.Logger, random func() float64) (*collector, error) {
	if options.SampleRate < 0 || options.SampleRate > 1 {
		return nil, errInvalidSampleRate(options.SampleRate)
	}
	return &collector{
		enabled:    options.Enabled,
		sampleRate: options.SampleRate,
		thresholds: options.Thresholds,
		random:     random,
		logger:     logger,
	}, nil
}

func (c *collector) Record(r models.OperationRecord) {
	if !c.enabled {
		metricRecordsTotal.WithLabelValues(string(r.Operation), outcomeDisabled).Inc()
		return
	}
	if !c.sampled() {
		metricRecordsTotal.WithLabelValues(string(r.Operation), outcomeSampledOut).Inc()
		return
	}

	c.mu.Lock()
	c.records = append(c.records, r)
	c.mu.Unlock()

	metricRecordsTotal.WithLabelValues(string(r.Operation), outcomeRecorded).Inc()
	c.checkThresholds(&r)
}

// sampled draws u in [0, 1) and keeps the record iff u <= sampleRate.
// A zero rate keeps nothing even when u is exactly zero.
func (c *collector) sampled() bool {
	if c.sampleRate <= 0 {
		return false
	}
	if c.sampleRate >= 1 {
		return true
	}
	return c.random() <= c.sampleRate
}

func (c *collector) checkThresholds(r *models.OperationRecord) {
	if r.LatencyMs > c.thresholds.SlowQueryMs {
		metricThresholdExceededTotal.WithLabelValues(thresholdSlowQuery).Inc()
		c.logger.Debug().
			Str(loggers.FieldOperation, string(r.Operation)).
			Str(loggers.FieldResourceName, r.ResourceLabel()).
			Msgf("slow operation: %.1fms exceeds %.1fms", r.LatencyMs, c.thresholds.SlowQueryMs)
	}
	if r.ReadUnits() > c.thresholds.HighReadUnits {
		metricThresholdExceededTotal.WithLabelValues(thresholdHighReadUnits).Inc()
		c.logger.Debug().
			Str(loggers.FieldOperation, string(r.Operation)).
			Str(loggers.FieldResourceName, r.ResourceLabel()).
			Msgf("high read capacity: %.1f units exceeds %.1f", r.ReadUnits(), c.thresholds.HighReadUnits)
	}
	if r.WriteUnits() > c.thresholds.HighWriteUnits {
		metricThresholdExceededTotal.WithLabelValues(thresholdHighWriteUnits).Inc()
		c.logger.Debug().
			Str(loggers.FieldOperation, string(r.Operation)).
			Str(loggers.FieldResourceName, r.ResourceLabel()).
			Msgf("high write capacity: %.1f units exceeds %.1f", r.WriteUnits(), c.thresholds.HighWriteUnits)
	}
}

func (c *collector) Snapshot() []models.OperationRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]models.OperationRecord, len(c.records))
	copy(snapshot, c.records)
	return snapshot
}

func (c *collector) Export() []models.OperationRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	exported := make([]models.OperationRecord, len(c.records))
	for i := range c.records {
		exported[i] = c.records[i].Clone()
	}
	return exported
}

func (c *collector) Reset() {
	c.mu.Lock()
	c.records = nil
	c.mu.Unlock()
}

func (c *collector) IsEnabled() bool {
	return c.enabled
}

func (c *collector) Thresholds() Thresholds {
	return c.thresholds
}
