package models

// OperationType is the kind of store operation a record describes.
type OperationType string

const (
	OperationGet           OperationType = "get"
	OperationPut           OperationType = "put"
	OperationUpdate        OperationType = "update"
	OperationDelete        OperationType = "delete"
	OperationQuery         OperationType = "query"
	OperationScan          OperationType = "scan"
	OperationBatchGet      OperationType = "batchGet"
	OperationBatchWrite    OperationType = "batchWrite"
	OperationTransactWrite OperationType = "transactWrite"
	OperationTransactGet   OperationType = "transactGet"
)

// OperationTypes lists every operation type in declaration order.
var OperationTypes = []OperationType{
	OperationGet,
	OperationPut,
	OperationUpdate,
	OperationDelete,
	OperationQuery,
	OperationScan,
	OperationBatchGet,
	OperationBatchWrite,
	OperationTransactWrite,
	OperationTransactGet,
}

// IsRead reports whether the operation only reads items.
func (o OperationType) IsRead() bool {
	switch o {
	case OperationGet, OperationQuery, OperationScan, OperationBatchGet, OperationTransactGet:
		return true
	}
	return false
}

// OperationRecord is the telemetry of one completed store operation.
//
// Optional string fields are absent when empty. Optional numeric and boolean fields are
// pointers so that an explicit zero can be told apart from a missing value.
//
// Example JSON:
//
//	{
//	  "operation": "query",
//	  "resourceName": "orders",
//	  "indexName": "GSI1",
//	  "accessPattern": "ordersByCustomer",
//	  "timestamp": 1766944980000,
//	  "latencyMs": 12.5,
//	  "consumedReadUnits": 2.5,
//	  "itemCount": 10,
//	  "scannedCount": 40,
//	  "usedProjection": true,
//	  "projectedAttributeCount": 3
//	}
type OperationRecord struct {
	Operation               OperationType `json:"operation" validate:"required,oneof=get put update delete query scan batchGet batchWrite transactWrite transactGet"`
	ResourceName            string        `json:"resourceName" validate:"required"`
	IndexName               string        `json:"indexName,omitempty"`
	AccessPattern           string        `json:"accessPattern,omitempty"`
	Timestamp               int64         `json:"timestamp" validate:"min=0"`
	LatencyMs               float64       `json:"latencyMs" validate:"min=0"`
	ConsumedReadUnits       *float64      `json:"consumedReadUnits,omitempty" validate:"omitempty,min=0"`
	ConsumedWriteUnits      *float64      `json:"consumedWriteUnits,omitempty" validate:"omitempty,min=0"`
	ItemCount               int           `json:"itemCount" validate:"min=0"`
	ScannedCount            *int          `json:"scannedCount,omitempty" validate:"omitempty,min=0"`
	UsedProjection          *bool         `json:"usedProjection,omitempty"`
	ProjectedAttributeCount *int          `json:"projectedAttributeCount,omitempty" validate:"omitempty,min=0"`
	PartitionKeyValue       string        `json:"partitionKeyValue,omitempty"`
	SortKeyValue            string        `json:"sortKeyValue,omitempty"`
	ItemSizeBytes           *int64        `json:"itemSizeBytes,omitempty" validate:"omitempty,min=0"`
}

// ResourceLabel returns "<resource>" or "<resource>:<index>".
func (r *OperationRecord) ResourceLabel() string {
	if r.IndexName == "" {
		return r.ResourceName
	}
	return r.ResourceName + ":" + r.IndexName
}

// ReadUnits returns the consumed read units, zero when absent.
func (r *OperationRecord) ReadUnits() float64 {
	if r.ConsumedReadUnits == nil {
		return 0
	}
	return *r.ConsumedReadUnits
}

// WriteUnits returns the consumed write units, zero when absent.
func (r *OperationRecord) WriteUnits() float64 {
	if r.ConsumedWriteUnits == nil {
		return 0
	}
	return *r.ConsumedWriteUnits
}

// Clone returns a deep copy that shares no memory with r.
func (r OperationRecord) Clone() OperationRecord {
	r.ConsumedReadUnits = clonePtr(r.ConsumedReadUnits)
	r.ConsumedWriteUnits = clonePtr(r.ConsumedWriteUnits)
	r.ScannedCount = clonePtr(r.ScannedCount)
	r.UsedProjection = clonePtr(r.UsedProjection)
	r.ProjectedAttributeCount = clonePtr(r.ProjectedAttributeCount)
	r.ItemSizeBytes = clonePtr(r.ItemSizeBytes)
	return r
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
