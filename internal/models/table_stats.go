package models

// OperationTypeStats is the rollup of every record of one operation type.
type OperationTypeStats struct {
	Count           int     `json:"count"`
	TotalLatencyMs  float64 `json:"totalLatencyMs"`
	AvgLatencyMs    float64 `json:"avgLatencyMs"`
	TotalReadUnits  float64 `json:"totalReadUnits"`
	TotalWriteUnits float64 `json:"totalWriteUnits"`
}

// AccessPatternStats holds running means for one caller-assigned access pattern.
type AccessPatternStats struct {
	Count            int     `json:"count"`
	AvgLatencyMs     float64 `json:"avgLatencyMs"`
	AvgItemsReturned float64 `json:"avgItemsReturned"`
}

// TableStats is the result of aggregating a snapshot of the telemetry buffer.
//
// Example JSON:
//
//	{
//	  "operations": {
//	    "get": {"count": 2, "totalLatencyMs": 150, "avgLatencyMs": 75, "totalReadUnits": 2, "totalWriteUnits": 0}
//	  },
//	  "accessPatterns": {
//	    "userById": {"count": 2, "avgLatencyMs": 75, "avgItemsReturned": 1}
//	  }
//	}
type TableStats struct {
	Operations     map[OperationType]*OperationTypeStats `json:"operations"`
	AccessPatterns map[string]*AccessPatternStats        `json:"accessPatterns"`
}

func NewEmptyTableStats() *TableStats {
	return &TableStats{
		Operations:     make(map[OperationType]*OperationTypeStats),
		AccessPatterns: make(map[string]*AccessPatternStats),
	}
}

// TotalCount returns the number of records rolled into the stats.
func (s *TableStats) TotalCount() int {
	total := 0
	for _, op := range s.Operations {
		total += op.Count
	}
	return total
}
