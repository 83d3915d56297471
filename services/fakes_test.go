package services

import (
	"context"
	"fmt"
	"sync"

	"heartchain_server/models"
)

// fakeUserStore is an in-memory stand-in for UserService in tests. Listing
// preserves insertion order so ranking tests can assert tie-breaking.
type fakeUserStore struct {
	users   map[string]*models.User
	order   []string
	touched []string
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		f.add(u)
	}
	return f
}

func (f *fakeUserStore) add(u *models.User) {
	f.users[u.UserID] = u
	f.order = append(f.order, u.UserID)
}

func (f *fakeUserStore) GetUser(_ context.Context, userID string) (*models.User, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user not found: %w", ErrNotFound)
}

func (f *fakeUserStore) ListUsers(_ context.Context, excludeUserID string) ([]models.User, error) {
	var out []models.User
	for _, id := range f.order {
		if id == excludeUserID {
			continue
		}
		out = append(out, *f.users[id])
	}
	return out, nil
}

func (f *fakeUserStore) GetUserByWallet(_ context.Context, walletAddress string) (*models.User, error) {
	normalized := models.NormalizeWallet(walletAddress)
	for _, id := range f.order {
		if f.users[id].WalletAddress == normalized {
			return f.users[id], nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", ErrNotFound)
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, id := range f.order {
		if f.users[id].Username == username {
			return f.users[id], nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", ErrNotFound)
}

// CreateUser enforces id, wallet and username uniqueness together, the same
// guarantee the transactional marker write gives the real store.
func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(f.order)+1)
	}
	if _, ok := f.users[user.UserID]; ok {
		return fmt.Errorf("user already exists: %w", ErrConflict)
	}
	user.WalletAddress = models.NormalizeWallet(user.WalletAddress)
	for _, id := range f.order {
		if f.users[id].WalletAddress == user.WalletAddress {
			return fmt.Errorf("wallet already reserved: %w", ErrConflict)
		}
		if user.Username != "" && f.users[id].Username == user.Username {
			return fmt.Errorf("username already reserved: %w", ErrConflict)
		}
	}
	f.add(user)
	return nil
}

func (f *fakeUserStore) TouchLastLogin(_ context.Context, userID string) error {
	f.touched = append(f.touched, userID)
	return nil
}

// fakeLikeStore keeps likes and matches in maps with the same uniqueness
// the DynamoDB conditional writes enforce.
type fakeLikeStore struct {
	mu      sync.Mutex
	likes   map[string]models.Interaction
	matches map[string]models.Match
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{
		likes:   make(map[string]models.Interaction),
		matches: make(map[string]models.Match),
	}
}

func likeKey(actorID, targetID string) string {
	return actorID + "->" + targetID
}

func (f *fakeLikeStore) FindLike(_ context.Context, actorID, targetID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.likes[likeKey(actorID, targetID)]
	return ok, nil
}

func (f *fakeLikeStore) CreateLike(_ context.Context, like models.Interaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey(like.ActorID, like.TargetID)
	if _, ok := f.likes[key]; ok {
		return fmt.Errorf("like already exists: %w", ErrConflict)
	}
	f.likes[key] = like
	return nil
}

func (f *fakeLikeStore) CreateMatch(_ context.Context, match models.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.matches[match.PairKey]; ok {
		return fmt.Errorf("match already exists: %w", ErrConflict)
	}
	f.matches[match.PairKey] = match
	return nil
}

// fakeAlertStore records SOS alerts.
type fakeAlertStore struct {
	alerts []models.Alert
}

func (f *fakeAlertStore) CreateAlert(_ context.Context, alert models.Alert) error {
	f.alerts = append(f.alerts, alert)
	return nil
}

// recordingNotifier captures notifications in order.
type notification struct {
	UserID  string
	Event   string
	Payload interface{}
}

type recordingNotifier struct {
	sent []notification
}

func (n *recordingNotifier) Notify(userID, event string, payload interface{}) {
	n.sent = append(n.sent, notification{UserID: userID, Event: event, Payload: payload})
}

func intPtr(v int) *int { return &v }
