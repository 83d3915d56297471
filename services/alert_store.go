package services

import (
	"context"

	"heartchain_server/models"
)

// DynamoAlertStore is the DynamoDB-backed AlertStore.
type DynamoAlertStore struct {
	Dynamo *DynamoService
}

func (s *DynamoAlertStore) CreateAlert(ctx context.Context, alert models.Alert) error {
	return s.Dynamo.PutItem(ctx, models.AlertsTable, alert)
}
