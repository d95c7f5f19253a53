package middlewares

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		err := json.NewEncoder(w).Encode(data)
		if err != nil {
			return
		}
	}
}

// HttpError logs the underlying error and writes the error envelope.
func HttpError(w http.ResponseWriter, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	RespondJSON(w, ErrorResponse{Success: false, Message: message}, status)
}
