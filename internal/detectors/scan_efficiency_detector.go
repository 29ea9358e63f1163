package detectors

import (
	"fmt"
	"sort"

	"dynamo-insights/internal/models"
)

// scanEfficiencyThreshold is the returned/examined ratio below which a scan is reported.
const scanEfficiencyThreshold = 0.20

// DetectScanInefficiencies reports scans that returned less than 20% of the items they
// examined, worst first. Scans without a positive scanned count are skipped.
func DetectScanInefficiencies(records []models.OperationRecord) []models.ScanEfficiencyReport {
	var reports []models.ScanEfficiencyReport
	for i := range records {
		r := &records[i]
		if r.Operation != models.OperationScan || r.ScannedCount == nil || *r.ScannedCount <= 0 {
			continue
		}
		efficiency := float64(r.ItemCount) / float64(*r.ScannedCount)
		if efficiency >= scanEfficiencyThreshold {
			continue
		}
		reports = append(reports, models.ScanEfficiencyReport{
			Operation:    "scan on " + r.ResourceLabel(),
			ResourceName: r.ResourceName,
			IndexName:    r.IndexName,
			ItemCount:    r.ItemCount,
			ScannedCount: *r.ScannedCount,
			Efficiency:   efficiency,
			Recommendation: fmt.Sprintf("Scan on %s returned %d of %d examined items (%.1f%% efficiency). "+
				"Replace it with a query on a key or a secondary index that matches the filter.",
				r.ResourceLabel(), r.ItemCount, *r.ScannedCount, efficiency*100),
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Efficiency < reports[j].Efficiency
	})
	return reports
}
