package controllers

import (
	"encoding/json"
	"net/http"

	"heartchain_server/middleware"
	"heartchain_server/models"
	"heartchain_server/services"
)

// SOSController handles emergency alerts and trusted contacts.
type SOSController struct {
	SOS   *services.SOSService
	Users *services.UserService
}

// NewSOSController creates a new SOSController instance.
func NewSOSController(sos *services.SOSService, users *services.UserService) *SOSController {
	return &SOSController{SOS: sos, Users: users}
}

type triggerRequest struct {
	Location models.Location `json:"location"`
	Message  string          `json:"message"`
}

// Trigger records an SOS alert for the caller and notifies their trusted
// contacts.
func (c *SOSController) Trigger(w http.ResponseWriter, r *http.Request) {
	var req triggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	alert, err := c.SOS.Trigger(r.Context(), middleware.UserID(r), req.Location, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "SOS activated",
		"alertId": alert.AlertID,
	})
}

// AddContact appends an emergency contact to the caller's record.
func (c *SOSController) AddContact(w http.ResponseWriter, r *http.Request) {
	var contact models.EmergencyContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	user, err := c.Users.AddEmergencyContact(r.Context(), middleware.UserID(r), contact)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "Emergency contact added",
		"contacts": user.EmergencyContacts,
	})
}
