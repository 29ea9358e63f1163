package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldHttpRoute  = "http_route"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"

	FieldOperation    = "operation"
	FieldResourceName = "resource_name"
	FieldDetector     = "detector"
	FieldReportID     = "report_id"
	FieldRecordCount  = "record_count"
)
