package http

import (
	"net/http"

	"dynamo-insights/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the outcome of a request for the middlewares that run after the handler.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// StatusCode is the written status, 200 when the handler never called WriteHeader.
func (w *appResponseWriter) StatusCode() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// responseOutcome reads status, error code and body size off an appResponseWriter.
// Writers that were not wrapped report a bare 200.
func responseOutcome(w http.ResponseWriter) (status int, errorCode string, bytesWritten int) {
	appWriter, ok := w.(*appResponseWriter)
	if !ok {
		return http.StatusOK, "", 0
	}
	return appWriter.StatusCode(), appWriter.ErrorCode(), appWriter.BytesWritten()
}
