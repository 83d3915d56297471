package controllers

import (
	"net/http"
	"strconv"

	"heartchain_server/middleware"
	"heartchain_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles suggestion and like requests.
type MatchController struct {
	Suggestions  *services.SuggestionService
	Interactions *services.InteractionService
}

// NewMatchController creates a new MatchController instance.
func NewMatchController(suggestions *services.SuggestionService, interactions *services.InteractionService) *MatchController {
	return &MatchController{Suggestions: suggestions, Interactions: interactions}
}

// GetSuggestions returns ranked match suggestions for the caller. A missing
// or unusable limit falls back to the default.
func (c *MatchController) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	suggestions, err := c.Suggestions.GetSuggestions(r.Context(), middleware.UserID(r), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"suggestions": suggestions,
	})
}

// LikeProfile records a like toward the target in the URL and reports
// whether it completed a match.
func (c *MatchController) LikeProfile(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["targetUserId"]

	isMatch, err := c.Interactions.Like(r.Context(), middleware.UserID(r), targetID)
	if err != nil {
		writeError(w, err)
		return
	}

	message := "Like recorded"
	if isMatch {
		message = "It's a match!"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
		"isMatch": isMatch,
	})
}
