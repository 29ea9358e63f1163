package detectors

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"dynamo-insights/internal/models"
)

const (
	secondsInHour = 3600.0
	hoursPerMonth = 730.0

	highVariabilityCV = 0.5
	steadyTrafficCV   = 0.3
	idleHourRatio     = 0.2
	steadyMinOpsHour  = 10.0
)

// Pricing holds the illustrative unit prices used for cost estimates.
type Pricing struct {
	OnDemandReadUnitPrice  float64
	OnDemandWriteUnitPrice float64
	ProvisionedRCUHourly   float64
	ProvisionedWCUHourly   float64
}

// DefaultPricing returns us-east-1 list prices.
func DefaultPricing() Pricing {
	return Pricing{
		OnDemandReadUnitPrice:  0.00000025,
		OnDemandWriteUnitPrice: 0.00000125,
		ProvisionedRCUHourly:   0.00013,
		ProvisionedWCUHourly:   0.00065,
	}
}

type hourBucket struct {
	ops        float64
	readUnits  float64
	writeUnits float64
}

// AdviseCapacityMode classifies hourly traffic as steady or spiky and recommends a billing mode.
// Only hours that contain at least one record take part in the statistics.
func AdviseCapacityMode(records []models.OperationRecord, pricing Pricing) models.CapacityModeRecommendation {
	rec := models.CapacityModeRecommendation{
		CurrentMode:     models.CapacityModeUnknown,
		RecommendedMode: models.CapacityModeOnDemand,
	}
	if len(records) == 0 {
		rec.Reasoning = "No operation data is available yet. On-demand is the safe default until traffic has been observed."
		return rec
	}

	buckets := make(map[int64]*hourBucket)
	var totalRead, totalWrite float64
	for i := range records {
		hour := models.WindowHour.BucketIndex(records[i].Timestamp)
		b, ok := buckets[hour]
		if !ok {
			b = &hourBucket{}
			buckets[hour] = b
		}
		b.ops++
		b.readUnits += records[i].ReadUnits()
		b.writeUnits += records[i].WriteUnits()
		totalRead += records[i].ReadUnits()
		totalWrite += records[i].WriteUnits()
	}

	hours := make([]int64, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i] < hours[j] })

	counts := make([]float64, len(hours))
	var peakRead, peakWrite float64
	for i, h := range hours {
		b := buckets[h]
		counts[i] = b.ops
		peakRead = max(peakRead, b.readUnits)
		peakWrite = max(peakWrite, b.writeUnits)
	}

	mean, std := stat.PopMeanStdDev(counts, nil)
	cv := 0.0
	if mean > 0 {
		cv = std / mean
	}
	rec.TrafficPattern = models.TrafficPattern{
		AvgOpsPerHour:          mean,
		PeakOpsPerHour:         maxOf(counts),
		MinOpsPerHour:          minOf(counts),
		CoefficientOfVariation: cv,
	}
	rec.EstimatedMonthlyCost = models.EstimatedMonthlyCost{
		Provisioned: (math.Ceil(peakRead/secondsInHour)*pricing.ProvisionedRCUHourly +
			math.Ceil(peakWrite/secondsInHour)*pricing.ProvisionedWCUHourly) * hoursPerMonth,
		OnDemand: totalRead*pricing.OnDemandReadUnitPrice + totalWrite*pricing.OnDemandWriteUnitPrice,
	}

	tp := rec.TrafficPattern
	switch {
	case cv > highVariabilityCV:
		rec.Reasoning = fmt.Sprintf("Traffic is highly variable (coefficient of variation %.2f). "+
			"On-demand absorbs spikes without throttling or paying for idle capacity.", cv)
	case tp.MinOpsPerHour < idleHourRatio*mean:
		rec.Reasoning = fmt.Sprintf("Traffic has idle periods (minimum %.0f ops/hour against an average of %.1f). "+
			"On-demand avoids paying for provisioned capacity that sits unused.", tp.MinOpsPerHour, mean)
	case cv < steadyTrafficCV && mean > steadyMinOpsHour:
		rec.RecommendedMode = models.CapacityModeProvisioned
		rec.Reasoning = fmt.Sprintf("Traffic is steady (coefficient of variation %.2f, average %.1f ops/hour). "+
			"Provisioned capacity with auto scaling is usually cheaper for predictable load.", cv, mean)
	default:
		rec.Reasoning = fmt.Sprintf("Traffic is moderately variable (coefficient of variation %.2f, average %.1f ops/hour). "+
			"On-demand remains the safe default until the pattern is clearer.", cv, mean)
	}
	return rec
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = max(m, v)
	}
	return m
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = min(m, v)
	}
	return m
}
