package models

import "time"

// HotPartitionReport describes a table or index bucket receiving a disproportionate share of
// the recorded traffic.
type HotPartitionReport struct {
	Bucket         string  `json:"bucket"`
	ResourceName   string  `json:"resourceName"`
	IndexName      string  `json:"indexName,omitempty"`
	AccessCount    int     `json:"accessCount"`
	Percentage     float64 `json:"percentage"`
	Recommendation string  `json:"recommendation"`
}

// IsIndex reports whether the bucket is a secondary index rather than the primary key.
func (r *HotPartitionReport) IsIndex() bool {
	return r.IndexName != ""
}

// ScanEfficiencyReport describes a scan that examined far more items than it returned.
type ScanEfficiencyReport struct {
	Operation      string  `json:"operation"`
	ResourceName   string  `json:"resourceName"`
	IndexName      string  `json:"indexName,omitempty"`
	ItemCount      int     `json:"itemCount"`
	ScannedCount   int     `json:"scannedCount"`
	Efficiency     float64 `json:"efficiency"`
	Recommendation string  `json:"recommendation"`
}

// UnusedIndexReport describes a secondary index that has not been used recently.
type UnusedIndexReport struct {
	ResourceName     string    `json:"resourceName"`
	IndexName        string    `json:"indexName"`
	UsageCount       int       `json:"usageCount"`
	LastUsed         time.Time `json:"lastUsed"`
	DaysSinceLastUse float64   `json:"daysSinceLastUse"`
	Recommendation   string    `json:"recommendation"`
}

// CapacityMode is the billing mode of a table.
type CapacityMode string

const (
	CapacityModeOnDemand    CapacityMode = "on-demand"
	CapacityModeProvisioned CapacityMode = "provisioned"
	CapacityModeUnknown     CapacityMode = "unknown"
)

// TrafficPattern summarizes operations per hour bucket.
type TrafficPattern struct {
	AvgOpsPerHour          float64 `json:"avgOpsPerHour"`
	PeakOpsPerHour         float64 `json:"peakOpsPerHour"`
	MinOpsPerHour          float64 `json:"minOpsPerHour"`
	CoefficientOfVariation float64 `json:"coefficientOfVariation"`
}

type EstimatedMonthlyCost struct {
	Provisioned float64 `json:"provisioned"`
	OnDemand    float64 `json:"onDemand"`
}

// CapacityModeRecommendation is the capacity advisor's verdict.
type CapacityModeRecommendation struct {
	CurrentMode          CapacityMode         `json:"currentMode"`
	RecommendedMode      CapacityMode         `json:"recommendedMode"`
	Reasoning            string               `json:"reasoning"`
	TrafficPattern       TrafficPattern       `json:"trafficPattern"`
	EstimatedMonthlyCost EstimatedMonthlyCost `json:"estimatedMonthlyCost"`
}
