package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the HTTP response body.
//
// The "Content-Type" header is set to "application/json" and statusCode is
// written before the body. Marshaling happens first, so a value that cannot
// be encoded never commits the given status: the client receives a plain
// 500 instead, and the wrapped marshal error is returned to the caller.
//
// The int result is the number of body bytes written, as reported by the
// underlying [http.ResponseWriter].
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
