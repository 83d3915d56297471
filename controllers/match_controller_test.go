package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"heartchain_server/middleware"
	"heartchain_server/models"
	"heartchain_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	users map[string]*models.User
	order []string
}

func (s *stubUsers) GetUser(_ context.Context, id string) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user not found: %w", services.ErrNotFound)
}

func (s *stubUsers) ListUsers(_ context.Context, exclude string) ([]models.User, error) {
	var out []models.User
	for _, id := range s.order {
		if id != exclude {
			out = append(out, *s.users[id])
		}
	}
	return out, nil
}

type stubLikes struct {
	likes   map[string]bool
	matches map[string]bool
}

func (s *stubLikes) FindLike(_ context.Context, actorID, targetID string) (bool, error) {
	return s.likes[actorID+"->"+targetID], nil
}

func (s *stubLikes) CreateLike(_ context.Context, like models.Interaction) error {
	key := like.ActorID + "->" + like.TargetID
	if s.likes[key] {
		return fmt.Errorf("like exists: %w", services.ErrConflict)
	}
	s.likes[key] = true
	return nil
}

func (s *stubLikes) CreateMatch(_ context.Context, match models.Match) error {
	if s.matches[match.PairKey] {
		return fmt.Errorf("match exists: %w", services.ErrConflict)
	}
	s.matches[match.PairKey] = true
	return nil
}

func newTestRouter(t *testing.T) (*mux.Router, *services.AuthService) {
	t.Helper()

	alice := &models.User{
		UserID:   "alice",
		Username: "alice",
		Profile:  &models.Profile{Age: 30, IsVisible: true, Interests: []string{"hiking"}},
	}
	bob := &models.User{
		UserID:   "bob",
		Username: "bob",
		Profile:  &models.Profile{Age: 31, IsVisible: true, Interests: []string{"hiking"}},
	}
	users := &stubUsers{users: map[string]*models.User{"alice": alice, "bob": bob}, order: []string{"alice", "bob"}}

	auth := &services.AuthService{Secret: []byte("test-secret"), TokenTTL: time.Hour}
	suggestions := services.NewSuggestionService(users)
	interactions := &services.InteractionService{
		Likes: &stubLikes{likes: map[string]bool{}, matches: map[string]bool{}},
		Users: users,
	}

	r := mux.NewRouter()
	controller := NewMatchController(suggestions, interactions)
	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(middleware.Authenticate(auth))
	matchRouter.HandleFunc("/suggestions", controller.GetSuggestions).Methods("GET")
	matchRouter.HandleFunc("/like/{targetUserId}", controller.LikeProfile).Methods("POST")
	return r, auth
}

func bearerFor(t *testing.T, auth *services.AuthService, userID string) string {
	t.Helper()
	token, err := auth.IssueToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGetSuggestionsEndpoint(t *testing.T) {
	router, auth := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/matches/suggestions?limit=5", nil)
	req.Header.Set("Authorization", bearerFor(t, auth, "alice"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool `json:"success"`
		Suggestions []struct {
			User          models.PublicUser `json:"user"`
			Compatibility float64           `json:"compatibility"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "bob", resp.Suggestions[0].User.UserID)
	assert.Greater(t, resp.Suggestions[0].Compatibility, 0.0)
}

func TestSuggestionsRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/matches/suggestions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/matches/suggestions", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLikeEndpointFlow(t *testing.T) {
	router, auth := newTestRouter(t)

	like := func(actor, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/matches/like/"+target, nil)
		req.Header.Set("Authorization", bearerFor(t, auth, actor))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// First like: recorded, no match yet.
	w := like("alice", "bob")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		IsMatch bool   `json:"isMatch"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.IsMatch)

	// Duplicate like rejected.
	w = like("alice", "bob")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Reciprocal like completes the match.
	w = like("bob", "alice")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.IsMatch)
	assert.Equal(t, "It's a match!", resp.Message)

	// Unknown target maps to 404.
	w = like("alice", "ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
