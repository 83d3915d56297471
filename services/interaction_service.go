package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"heartchain_server/models"

	"github.com/google/uuid"
)

// LikeStore records directed likes and derived matches. CreateLike and
// CreateMatch must reject duplicates with ErrConflict; that store-level
// uniqueness, not a read-then-write check, is what keeps concurrent mutual
// likes from producing two matches or none.
type LikeStore interface {
	FindLike(ctx context.Context, actorID, targetID string) (bool, error)
	CreateLike(ctx context.Context, like models.Interaction) error
	CreateMatch(ctx context.Context, match models.Match) error
}

// UserGetter is the slice of the user store the recorder needs to address
// notifications.
type UserGetter interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// InteractionService is the like/match recorder.
type InteractionService struct {
	Likes    LikeStore
	Users    UserGetter
	Notifier Notifier
}

// Like records actorID liking targetID. It returns true when this like
// completes a mutual pair, in which case a match record is created and both
// parties are notified. Repeating a like on the same ordered pair fails with
// ErrDuplicateAction and changes nothing.
func (is *InteractionService) Like(ctx context.Context, actorID, targetID string) (bool, error) {
	if actorID == "" || targetID == "" {
		return false, fmt.Errorf("actor and target are required: %w", ErrValidation)
	}
	if actorID == targetID {
		return false, fmt.Errorf("cannot like your own profile: %w", ErrValidation)
	}

	target, err := is.Users.GetUser(ctx, targetID)
	if err != nil {
		return false, err
	}

	like := models.Interaction{
		ActorID:       actorID,
		TargetID:      targetID,
		Kind:          models.KindLike,
		InteractionID: uuid.NewString(),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := is.Likes.CreateLike(ctx, like); err != nil {
		if errors.Is(err, ErrConflict) {
			return false, fmt.Errorf("already liked this profile: %w", ErrDuplicateAction)
		}
		return false, err
	}

	reciprocal, err := is.Likes.FindLike(ctx, targetID, actorID)
	if err != nil {
		return false, err
	}
	if !reciprocal {
		return false, nil
	}

	match := models.Match{
		PairKey:   models.PairKey(actorID, targetID),
		MatchID:   uuid.NewString(),
		UserA:     actorID,
		UserB:     targetID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := is.Likes.CreateMatch(ctx, match); err != nil {
		if errors.Is(err, ErrConflict) {
			// Lost the race against the reciprocal like; the match and its
			// notifications already happened on the other side.
			return true, nil
		}
		return false, err
	}

	actor, err := is.Users.GetUser(ctx, actorID)
	if err != nil {
		return false, err
	}
	is.notifyMatch(actorID, target)
	is.notifyMatch(targetID, actor)
	return true, nil
}

// notifyMatch tells recipientID about their new counterpart. Delivery is
// best effort; the recorder never blocks on or retries it.
func (is *InteractionService) notifyMatch(recipientID string, counterpart *models.User) {
	if is.Notifier == nil {
		return
	}
	is.Notifier.Notify(recipientID, EventNewMatch, map[string]interface{}{
		"message": "You have a new match!",
		"match":   counterpart.PublicData(),
	})
	log.Printf("Match notification sent to %s", recipientID)
}
