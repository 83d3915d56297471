package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"heartchain_server/models"

	"github.com/google/uuid"
)

// AlertStore persists SOS activations.
type AlertStore interface {
	CreateAlert(ctx context.Context, alert models.Alert) error
}

// SOSService records emergency alerts and fans them out to the user's
// trusted contacts.
type SOSService struct {
	Users    UserGetter
	Alerts   AlertStore
	Notifier Notifier
}

// Trigger stores an SOS alert for userID and notifies every emergency
// contact that is reachable in-app. The alert is recorded even when the user
// has no contacts yet. Notification delivery is fire and forget.
func (ss *SOSService) Trigger(ctx context.Context, userID string, location models.Location, message string) (*models.Alert, error) {
	if location.Latitude == 0 && location.Longitude == 0 {
		return nil, fmt.Errorf("location is required for an SOS alert: %w", ErrValidation)
	}

	user, err := ss.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	alert := models.Alert{
		AlertID:   uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Location:  location,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.Alerts.CreateAlert(ctx, alert); err != nil {
		return nil, err
	}

	notified := 0
	if ss.Notifier != nil {
		for _, contact := range user.EmergencyContacts {
			if contact.ContactUserID == "" {
				continue
			}
			ss.Notifier.Notify(contact.ContactUserID, EventSOSAlert, map[string]interface{}{
				"message":  message,
				"from":     user.Username,
				"location": location,
			})
			notified++
		}
	}
	log.Printf("SOS alert %s recorded for user %s, %d contact(s) notified", alert.AlertID, userID, notified)

	return &alert, nil
}
