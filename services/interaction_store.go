package services

import (
	"context"
	"errors"

	"heartchain_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// InteractionStore is the DynamoDB-backed LikeStore. Likes key on the
// ordered (actorId, targetId) pair; matches key on the order-independent
// pair key. Both writes are conditional, so uniqueness is enforced by the
// store even under concurrent mutual likes.
type InteractionStore struct {
	Dynamo *DynamoService
}

// FindLike reports whether actorID has liked targetID.
func (s *InteractionStore) FindLike(ctx context.Context, actorID, targetID string) (bool, error) {
	key := map[string]types.AttributeValue{
		"actorId":  &types.AttributeValueMemberS{Value: actorID},
		"targetId": &types.AttributeValueMemberS{Value: targetID},
	}

	_, err := s.Dynamo.GetItem(ctx, models.InteractionsTable, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateLike writes a directed like; a second like on the same ordered pair
// fails with ErrConflict.
func (s *InteractionStore) CreateLike(ctx context.Context, like models.Interaction) error {
	return s.Dynamo.PutItemIfAbsent(ctx, models.InteractionsTable, like,
		"attribute_not_exists(actorId) AND attribute_not_exists(targetId)")
}

// CreateMatch writes the derived match; a second match on the same pair key
// fails with ErrConflict.
func (s *InteractionStore) CreateMatch(ctx context.Context, match models.Match) error {
	return s.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match,
		"attribute_not_exists(pairKey)")
}
