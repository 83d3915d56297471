package models

// Interaction kinds. A like is directed; a match is derived once both
// directions exist.
const (
	KindLike  = "like"
	KindMatch = "match"
)

// Interaction is a single directed like. The (actorId, targetId) pair is the
// table key, so the store rejects a second like on the same ordered pair.
type Interaction struct {
	ActorID       string `json:"actorId" dynamodbav:"actorId"`
	TargetID      string `json:"targetId" dynamodbav:"targetId"`
	Kind          string `json:"kind" dynamodbav:"kind"`
	InteractionID string `json:"interactionId" dynamodbav:"interactionId"`
	CreatedAt     string `json:"createdAt" dynamodbav:"createdAt"`
}

// Match is the derived record for a mutual like. PairKey is order-independent
// so at most one match can ever exist for a pair of users.
type Match struct {
	PairKey   string `json:"pairKey" dynamodbav:"pairKey"`
	MatchID   string `json:"matchId" dynamodbav:"matchId"`
	UserA     string `json:"userA" dynamodbav:"userA"`
	UserB     string `json:"userB" dynamodbav:"userB"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
}

// PairKey builds the order-independent key for a pair of user ids.
func PairKey(a, b string) string {
	if a < b {
		return a + "#" + b
	}
	return b + "#" + a
}

// DynamoDB table names for interactions and matches.
const (
	InteractionsTable = "Interactions"
	MatchesTable      = "Matches"
)
