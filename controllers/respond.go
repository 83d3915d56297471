package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"heartchain_server/services"
)

// writeJSON sends v with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error's kind to a status and sends its message.
// Internal errors are logged and masked.
func writeError(w http.ResponseWriter, err error) {
	status := services.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		message = "Internal server error"
	}
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
