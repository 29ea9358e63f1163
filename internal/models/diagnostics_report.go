package models

import "time"

// DiagnosticsReport is a point-in-time view of the collector produced by the periodic reporter.
// Reports are written for operators and are never read back into the collector.
//
// Example JSON:
//
//	{
//	  "reportId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "generatedAt": "2025-12-28T18:03:15Z",
//	  "windowStart": "2025-12-28T18:00:00Z",
//	  "windowSize": "hour",
//	  "recordCount": 1250,
//	  "stats": {"operations": {...}, "accessPatterns": {...}},
//	  "recommendations": [{"severity": "warning", "category": "hot-partition", ...}]
//	}
type DiagnosticsReport struct {
	ReportID        string           `json:"reportId"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	WindowStart     time.Time        `json:"windowStart"`
	WindowSize      WindowSize       `json:"windowSize"`
	RecordCount     int              `json:"recordCount"`
	Stats           *TableStats      `json:"stats"`
	Recommendations []Recommendation `json:"recommendations"`
}

// CountBySeverity returns how many recommendations carry each severity.
func (r *DiagnosticsReport) CountBySeverity() map[Severity]int {
	counts := map[Severity]int{
		SeverityError:   0,
		SeverityWarning: 0,
		SeverityInfo:    0,
	}
	for _, rec := range r.Recommendations {
		counts[rec.Severity]++
	}
	return counts
}
