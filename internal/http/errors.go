package http

const (
	errReportNotFound = "HTTP_4040"
	errReportLoad     = "HTTP_9000"
)
