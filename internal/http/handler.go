package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AppHttpHandlerFunc adapts a plain function to AppHttpHandler.
type AppHttpHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f AppHttpHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}
