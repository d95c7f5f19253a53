package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"newsboard-api/middlewares"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	middlewares.RespondJSON(w, healthResponse{
		Status:    "ok",
		Message:   "API is running",
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}

// SetupHealthRoute sets up the health check endpoint.
func SetupHealthRoute(router *mux.Router) {
	router.HandleFunc("/health", healthHandler).Methods("GET")
}
