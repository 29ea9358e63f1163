package events

import (
	"time"

	"dynamo-insights/internal/models"
)

// OperationRecordedEvent carries the records of one resource from an ingested batch to the
// collector. Records keep their submission order, and one batch is enqueued as a unit so it
// is either delivered in full or not at all.
//
// Example JSON:
//
//	{
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "receivedAt": "2026-03-20T12:00:00Z",
//	  "resourceName": "users",
//	  "records": [
//	    {
//	      "operation": "get",
//	      "resourceName": "users",
//	      "timestamp": 1774008000000,
//	      "latencyMs": 4.2,
//	      "itemCount": 1
//	    }
//	  ]
//	}
type OperationRecordedEvent struct {
	BatchID      string                   `json:"batchId"`
	ReceivedAt   time.Time                `json:"receivedAt"`
	ResourceName string                   `json:"resourceName"`
	Records      []models.OperationRecord `json:"records"`
}
