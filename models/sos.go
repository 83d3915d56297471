package models

// EmergencyContact is a trusted contact stored on the user. ContactUserID is
// set when the contact is also an app user, which lets SOS alerts reach them
// through the notifier. Contacts never appear in any public projection.
type EmergencyContact struct {
	Name          string `json:"name" dynamodbav:"name"`
	Phone         string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Relation      string `json:"relation,omitempty" dynamodbav:"relation,omitempty"`
	ContactUserID string `json:"contactUserId,omitempty" dynamodbav:"contactUserId,omitempty"`
}

// Location is a latitude/longitude pair captured at SOS time.
type Location struct {
	Latitude  float64 `json:"latitude" dynamodbav:"latitude"`
	Longitude float64 `json:"longitude" dynamodbav:"longitude"`
}

// Alert is a stored SOS activation.
type Alert struct {
	AlertID   string   `json:"alertId" dynamodbav:"alertId"`
	UserID    string   `json:"userId" dynamodbav:"userId"`
	Message   string   `json:"message,omitempty" dynamodbav:"message,omitempty"`
	Location  Location `json:"location" dynamodbav:"location"`
	CreatedAt string   `json:"createdAt" dynamodbav:"createdAt"`
}

// AlertsTable is the DynamoDB table for SOS alerts.
const AlertsTable = "Alerts"
